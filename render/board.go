// Package render draws the board for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"solar/game"
)

var (
	player0Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	player1Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	flatStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	shadeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// Board renders the same glyph pairs as game.Draw, coloured by owner.
// It only reads the board.
func Board(b game.Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell(b[x][y]))
		}
	}
	return frameStyle.Render(sb.String())
}

func cell(c game.Cell) string {
	angle, shade := c.Glyphs()

	style := flatStyle
	switch c.ClaimedBy {
	case game.Player0:
		style = player0Style
	case game.Player1:
		style = player1Style
	}

	shadeGlyph := string(shade)
	if c.IsShaded {
		shadeGlyph = shadeStyle.Render(shadeGlyph)
	}
	return style.Render(string(angle)) + shadeGlyph
}

// Scoreboard renders the board with cumulative and current scores.
func Scoreboard(g *game.Game, player0, player1 string) string {
	total0, total1 := g.Scores()
	board0, board1 := g.CalculateScore()
	header := titleStyle.Render(fmt.Sprintf("%dx%d board, sun angle %d", g.Width(), g.Height(), g.SunAngle()))
	scores := lipgloss.JoinVertical(lipgloss.Left,
		player0Style.Render(fmt.Sprintf("Player 0 (%s): %d (board %d)", player0, total0, board0)),
		player1Style.Render(fmt.Sprintf("Player 1 (%s): %d (board %d)", player1, total1, board1)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, Board(g.Board()), scores)
}
