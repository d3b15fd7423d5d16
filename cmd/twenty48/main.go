// twenty48 is a terminal 2048 with undo, persistent best score and an
// optional score-submission hook.
//
// Usage:
//
//	twenty48 play             - Play in the current terminal
//	twenty48 scores           - Show high scores and the best score
//	twenty48 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Scores database path (default: ~/.twenty48/scores.db)
//	--seed <value>   - RNG seed for reproducible tile spawns
//	--config <path>  - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "Play 2048 in your terminal",
	Long: `twenty48 is a terminal-based 2048 game with undo, a persistent
best score and an optional score-submission hook for the platform's
score endpoint.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores and the best score
  serve    - Start SSH server for remote play

Examples:
  twenty48 play
  twenty48 play --seed 42
  twenty48 scores
  twenty48 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
