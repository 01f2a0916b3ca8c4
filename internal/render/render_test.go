package render

import (
	"os"
	"testing"

	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/world"
	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
)

func sampleSnapshot() world.Snapshot {
	return world.Snapshot{
		Arena: grid.NewArena(10, 10),
		Segments: []world.SegmentView{
			{Position: grid.Position{X: 2, Y: 3}, Direction: grid.Left, Head: true},
			{Position: grid.Position{X: 3, Y: 3}, Direction: grid.Up},
			{Position: grid.Position{X: 3, Y: 2}, Direction: grid.Up},
		},
		Food:    grid.Position{X: 7, Y: 9},
		HasFood: true,
		Score:   1234,
		Status:  world.Running,
	}
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		view world.SegmentView
		want rune
	}{
		{world.SegmentView{Direction: grid.Up, Head: true}, '▲'},
		{world.SegmentView{Direction: grid.Down, Head: true}, '▼'},
		{world.SegmentView{Direction: grid.Left, Head: true}, '◀'},
		{world.SegmentView{Direction: grid.Right, Head: true}, '▶'},
		{world.SegmentView{Direction: grid.Up}, '║'},
		{world.SegmentView{Direction: grid.Down}, '║'},
		{world.SegmentView{Direction: grid.Left}, '═'},
		{world.SegmentView{Direction: grid.Right}, '═'},
	}
	for _, tc := range cases {
		if got := Glyph(tc.view); got != tc.want {
			t.Errorf("Glyph(%+v): expected %q, got %q", tc.view, tc.want, got)
		}
	}
}

func TestScreenRowFlips(t *testing.T) {
	a := grid.NewArena(10, 10)
	if got := screenRow(a, 0); got != 9 {
		t.Errorf("expected bottom row 9, got %d", got)
	}
	if got := screenRow(a, 9); got != 0 {
		t.Errorf("expected top row 0, got %d", got)
	}
}

func TestTerminalDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 15)

	term := NewTerminal(screen, "Cookie Rampage")
	snap := sampleSnapshot()
	term.Draw(snap)

	cellAt := func(p grid.Position) rune {
		r, _, _, _ := screen.GetContent(1+2*p.X, boardTop+1+screenRow(snap.Arena, p.Y))
		return r
	}
	if got := cellAt(grid.Position{X: 2, Y: 3}); got != '◀' {
		t.Errorf("head: expected ◀, got %q", got)
	}
	if got := cellAt(grid.Position{X: 3, Y: 2}); got != '║' {
		t.Errorf("tail: expected ║, got %q", got)
	}
	if got := cellAt(grid.Position{X: 7, Y: 9}); got != foodGlyph {
		t.Errorf("food: expected %q, got %q", foodGlyph, got)
	}
	if got := cellAt(grid.Position{X: 0, Y: 0}); got != emptyGlyph {
		t.Errorf("empty: expected %q, got %q", emptyGlyph, got)
	}
	if r, _, _, _ := screen.GetContent(0, boardTop); r != '┌' {
		t.Errorf("border: expected ┌, got %q", r)
	}

	var hud []rune
	for x := 0; x < 14; x++ {
		r, _, _, _ := screen.GetContent(x, hudRow)
		hud = append(hud, r)
	}
	if string(hud) != "Cookie Rampage" {
		t.Errorf("expected title in HUD, got %q", string(hud))
	}
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "Left"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Esc"},
	}
	for _, tc := range cases {
		if got := KeyName(tc.ev); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestImage(t *testing.T) {
	snap := sampleSnapshot()
	img := Image(snap, 8)
	b := img.Bounds()
	if b.Dx() != 80 || b.Dy() != 80 {
		t.Fatalf("expected 80x80 image, got %dx%d", b.Dx(), b.Dy())
	}
	// Head at (2,3) lands in image row 6 (flipped), column 2.
	r, g, _, _ := img.At(2*8+4, 6*8+4).RGBA()
	if r>>8 < 200 || g>>8 < 180 {
		t.Errorf("expected head colour at head cell, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveImage(sampleSnapshot(), 4, dir, "run")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("expected width 40, got %d", img.Bounds().Dx())
	}
}
