package render

import (
	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/world"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/width"
)

// Board placement on screen: one HUD row, then the bordered arena.
const (
	hudRow   = 0
	boardTop = 1
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Terminal draws snapshots onto a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	title   string
	printer *message.Printer
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen, title string) *Terminal {
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	return &Terminal{
		screen:  screen,
		title:   title,
		printer: message.NewPrinter(language.English),
	}
}

// Draw renders snap and shows the result.
func (t *Terminal) Draw(snap world.Snapshot) {
	t.screen.Clear()
	a := snap.Arena

	t.drawText(0, hudRow, styleHUD, t.title)
	hud := t.printer.Sprintf("score %d  length %d", snap.Score, snap.Length())
	t.drawText(2*a.Width+2-textWidth(hud), hudRow, styleHUD, hud)

	t.drawBorder(a.Width, a.Height)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			t.setCell(a, grid.Position{X: x, Y: y}, emptyGlyph, styleEmpty)
		}
	}
	if snap.HasFood {
		t.setCell(a, snap.Food, foodGlyph, styleFood)
	}
	// Tail first so the head wins if anything overlaps.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		v := snap.Segments[i]
		style := styleBody
		if v.Head {
			style = styleHead
		}
		t.setCell(a, v.Position, Glyph(v), style)
	}

	if snap.Status != world.Running {
		msg := t.printer.Sprintf("GAME OVER  %d", snap.Score)
		t.drawText(a.Width+1-textWidth(msg)/2, boardTop+1+a.Height/2, styleOver, msg)
	}
	t.screen.Show()
}

// setCell draws one arena cell. Cells are two columns wide so the board
// looks square in most terminal fonts.
func (t *Terminal) setCell(a grid.Arena, p grid.Position, r rune, style tcell.Style) {
	if !a.Contains(p) {
		return
	}
	t.screen.SetContent(1+2*p.X, boardTop+1+screenRow(a, p.Y), r, nil, style)
}

func (t *Terminal) drawBorder(w, h int) {
	right := 2*w + 1
	bottom := boardTop + h + 1
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, boardTop, '─', nil, styleBorder)
		t.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := boardTop + 1; y < bottom; y++ {
		t.screen.SetContent(0, y, '│', nil, styleBorder)
		t.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	t.screen.SetContent(0, boardTop, '┌', nil, styleBorder)
	t.screen.SetContent(right, boardTop, '┐', nil, styleBorder)
	t.screen.SetContent(0, bottom, '└', nil, styleBorder)
	t.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (t *Terminal) drawText(x, y int, style tcell.Style, s string) {
	if x < 0 {
		x = 0
	}
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runeWidth(r)
	}
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func textWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// KeyName returns the keymap name of a key event: the rune itself for
// printable keys, otherwise tcell's key name ("Left", "Esc", "Ctrl-C").
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return name
	}
	return ""
}
