// Package tui provides the Bubble Tea front end for the game engine,
// including SSH serving via Wish.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkruglov/twenty48/internal/engine"
	"github.com/mkruglov/twenty48/internal/report"
	"github.com/mkruglov/twenty48/internal/storage"
)

// GameID is the key under which scores and the best score are stored.
const GameID = "2048"

// finalizedMsg signals that the final score was persisted and reported.
type finalizedMsg struct{}

// Model is the Bubble Tea model for one game session. The game is
// turn-based, so the model is purely event-driven: one key press is one
// complete move, with no tick loop.
type Model struct {
	session  *engine.Session
	store    *storage.Store
	reporter *report.Reporter
	keys     KeyMap
	help     help.Model

	width    int
	height   int
	quitting bool
	finished bool // Final score already saved for this game over
}

// NewModel creates a model around an existing engine session.
func NewModel(session *engine.Session, store *storage.Store, reporter *report.Reporter) Model {
	return Model{
		session:  session,
		store:    store,
		reporter: reporter,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case finalizedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.session.NewGame()
		m.finished = false
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.session.Undo() {
			// Undo re-opens a finished game; arm the latch again so the
			// next game over saves and reports the new final score.
			m.finished = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.move(engine.DirUp)
	case key.Matches(msg, m.keys.Down):
		return m.move(engine.DirDown)
	case key.Matches(msg, m.keys.Left):
		return m.move(engine.DirLeft)
	case key.Matches(msg, m.keys.Right):
		return m.move(engine.DirRight)
	}

	return m, nil
}

// move performs one directional move and, on the terminal transition,
// persists and reports the final score exactly once.
func (m Model) move(dir engine.Direction) (tea.Model, tea.Cmd) {
	result := m.session.Move(dir)

	if result.GameOver && !m.finished {
		m.finished = true
		return m, m.finalizeCmd(result.Score)
	}

	return m, nil
}

// finalizeCmd saves the final score and fires the score reporter.
// Both are best-effort and run off the input path.
func (m Model) finalizeCmd(score int) tea.Cmd {
	store := m.store
	reporter := m.reporter

	return func() tea.Msg {
		if store != nil && score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SaveScore(GameID, score)
		}

		if reporter.Enabled() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			//nolint:errcheck // Fire-and-forget submission, errors are logged inside
			reporter.Report(ctx, GameID, score)
		}

		return finalizedMsg{}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return renderGame(m.session.State(), m.width, m.height, m.help.View(m.keys))
}

// Run starts a local Bubble Tea program for the given session.
func Run(session *engine.Session, store *storage.Store, reporter *report.Reporter) error {
	p := tea.NewProgram(
		NewModel(session, store, reporter),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
