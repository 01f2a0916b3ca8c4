// Package render draws simulation snapshots: live to a terminal through
// tcell, and to a PNG image on game over.
package render

import (
	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/world"
)

const (
	foodGlyph  = '●'
	emptyGlyph = '·'
)

var headGlyphs = [4]rune{
	grid.Left:  '◀',
	grid.Up:    '▲',
	grid.Right: '▶',
	grid.Down:  '▼',
}

// Glyph returns the rune for one segment. Heads point where they face;
// body segments show the axis they travel along.
func Glyph(v world.SegmentView) rune {
	if v.Head {
		return headGlyphs[v.Direction&3]
	}
	switch v.Direction {
	case grid.Up, grid.Down:
		return '║'
	default:
		return '═'
	}
}

// screenRow converts an arena row to a screen row. Arena Y grows upward,
// screen rows grow downward.
func screenRow(a grid.Arena, y int) int {
	return a.Height - 1 - y
}
