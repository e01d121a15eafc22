package game

import (
	"io"
	"strings"
)

const (
	AngledGlyph = '/'
	FlatGlyph   = '_'
	ShadedGlyph = '*'
	LitGlyph    = '.'
)

// Glyphs returns the angle and shade markers for a cell.
func (c Cell) Glyphs() (angle, shade rune) {
	angle, shade = FlatGlyph, LitGlyph
	if c.IsAngled {
		angle = AngledGlyph
	}
	if c.IsShaded {
		shade = ShadedGlyph
	}
	return angle, shade
}

// Draw writes the board one row per line, two glyphs per cell separated by spaces.
func (g *Game) Draw(w io.Writer) error {
	_, err := io.WriteString(w, g.dump())
	return err
}

func (g *Game) dump() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			angle, shade := g.board[x][y].Glyphs()
			sb.WriteRune(angle)
			sb.WriteRune(shade)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
