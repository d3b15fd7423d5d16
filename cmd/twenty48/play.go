package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkruglov/twenty48/internal/config"
	"github.com/mkruglov/twenty48/internal/engine"
	"github.com/mkruglov/twenty48/internal/platform/tui"
	"github.com/mkruglov/twenty48/internal/report"
	"github.com/mkruglov/twenty48/internal/storage"
)

var flagReportURL string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move tiles
  u/z          - Undo (up to 20 moves)
  r/n          - New game
  ?            - Toggle help
  q/Ctrl+C     - Quit

Examples:
  twenty48 play
  twenty48 play --seed 42
  twenty48 play --config ./my-rules.yaml
  twenty48 play --report-url http://localhost:5000/games/api/save-score`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagReportURL, "report-url", "", "Score-submission endpoint (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works, best degrades to 0
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "twenty48"})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keeper := storage.NewBestKeeper(store, tui.GameID, logger)
	session := engine.NewSession(cfg.EngineRules(), rand.New(rand.NewSource(seed)), keeper)

	reportURL := flagReportURL
	if reportURL == "" {
		reportURL = cfg.Report.URL
	}
	reporter := report.New(reportURL, logger)

	runErr := tui.Run(session, store, reporter)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
