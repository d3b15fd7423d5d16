package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkruglov/twenty48/internal/engine"
)

const tileWidth = 7

// Palette matches the classic 2048 tile colors.
var (
	boardBg   = lipgloss.Color("#BBADA0")
	darkText  = lipgloss.Color("#776E65")
	lightText = lipgloss.Color("#F9F6F2")

	tileColors = map[int]lipgloss.Color{
		0:    lipgloss.Color("#CDC1B4"),
		2:    lipgloss.Color("#EEE4DA"),
		4:    lipgloss.Color("#EDE0C8"),
		8:    lipgloss.Color("#F2B179"),
		16:   lipgloss.Color("#F59563"),
		32:   lipgloss.Color("#F67C5F"),
		64:   lipgloss.Color("#F65E3B"),
		128:  lipgloss.Color("#EDCF72"),
		256:  lipgloss.Color("#EDCC61"),
		512:  lipgloss.Color("#EDC850"),
		1024: lipgloss.Color("#EDC53F"),
		2048: lipgloss.Color("#EDC22E"),
	}
	bigTileColor = lipgloss.Color("#3C3A32")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(darkText)

	scoreBoxStyle = lipgloss.NewStyle().
			Background(boardBg).
			Foreground(lightText).
			Padding(0, 1).
			Align(lipgloss.Center)

	boardStyle = lipgloss.NewStyle().
			Background(boardBg).
			Padding(0, 1)

	overlayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(darkText).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(darkText).
			Faint(true)
)

// tileStyle returns the style for a tile of the given value.
func tileStyle(value int) lipgloss.Style {
	bg, ok := tileColors[value]
	if !ok {
		bg = bigTileColor
	}

	fg := lightText
	if value == 2 || value == 4 {
		fg = darkText
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(value >= 8)
}

// renderBoard draws the tile grid.
func renderBoard(board engine.Board) string {
	rows := make([]string, 0, engine.BoardSize)

	for y := range engine.BoardSize {
		cells := make([]string, 0, engine.BoardSize)
		for x := range engine.BoardSize {
			value := board[y][x]
			label := ""
			if value != 0 {
				label = strconv.Itoa(value)
			}
			cells = append(cells, tileStyle(value).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the title plus the SCORE and BEST boxes.
func renderHUD(state engine.State) string {
	title := titleStyle.Render("2048")
	score := scoreBoxStyle.Render(fmt.Sprintf("SCORE\n%d", state.Score))
	best := scoreBoxStyle.Render(fmt.Sprintf("BEST\n%d", state.Best))

	boxes := lipgloss.JoinHorizontal(lipgloss.Top, score, " ", best)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", boxes)
}

// renderOverlay draws the game-over or win banner, or an empty string.
func renderOverlay(state engine.State) string {
	switch {
	case state.GameOver:
		return overlayStyle.Render(fmt.Sprintf("GAME OVER\nScore: %d\nPress r for a new game", state.Score))
	case state.Won:
		return hintStyle.Render("2048 reached - keep going!")
	default:
		return ""
	}
}

// renderGame composes the full game view, centered in the given window.
func renderGame(state engine.State, width, height int, helpView string) string {
	sections := []string{
		renderHUD(state),
		"",
		renderBoard(state.Board),
	}

	if overlay := renderOverlay(state); overlay != "" {
		sections = append(sections, overlay)
	}

	sections = append(sections, "", helpView)

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if width <= 0 || height <= 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
