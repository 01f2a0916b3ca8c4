package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cookierampage/rampage/internal/grid"
	"go.uber.org/zap"
)

const sampleKeymap = `
bindings:
  - key: Left
    direction: left
  - key: Right
    direction: right
  - key: i
    direction: up
  - key: K
    direction: down
quit: [Esc, x]
`

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap([]byte(sampleKeymap))
	if err != nil {
		t.Fatalf("ParseKeymap: %v", err)
	}
	cases := []struct {
		key  string
		want grid.Direction
	}{
		{"Left", grid.Left},
		{"left", grid.Left},
		{"Right", grid.Right},
		{"i", grid.Up},
		{"K", grid.Down},
	}
	for _, tc := range cases {
		got, ok := km.Lookup(tc.key)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%q): expected %s, got %s %v", tc.key, tc.want, got, ok)
		}
	}
	if _, ok := km.Lookup("k"); ok {
		t.Error("expected single-rune keys to be case-sensitive")
	}
	if !km.IsQuit("esc") || !km.IsQuit("x") || km.IsQuit("q") {
		t.Error("unexpected quit bindings")
	}
	if km.Len() != 4 {
		t.Errorf("expected 4 bindings, got %d", km.Len())
	}
}

func TestParseKeymapErrors(t *testing.T) {
	bad := []string{
		"bindings: []",
		"bindings:\n  - key: Left\n    direction: sideways\n",
		"bindings:\n  - key: ''\n    direction: up\n",
		"bindings: [",
	}
	for _, raw := range bad {
		if _, err := ParseKeymap([]byte(raw)); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	for key, want := range map[string]grid.Direction{"Up": grid.Up, "a": grid.Left, "j": grid.Down, "Right": grid.Right} {
		if got, ok := km.Lookup(key); !ok || got != want {
			t.Errorf("Lookup(%q): expected %s, got %s %v", key, want, got, ok)
		}
	}
	if !km.IsQuit("Ctrl-C") {
		t.Error("expected Ctrl-C to quit")
	}
}

func TestLoadKeymapMissingFile(t *testing.T) {
	if _, err := LoadKeymap(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatchKeymapReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	if err := os.WriteFile(path, []byte(sampleKeymap), 0644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := WatchKeymap(ctx, path, zap.NewNop())
	if err != nil {
		t.Fatalf("WatchKeymap: %v", err)
	}

	updated := "bindings:\n  - key: z\n    direction: left\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case km := <-ch:
		if d, ok := km.Lookup("z"); !ok || d != grid.Left {
			t.Errorf("expected reloaded binding z->left, got %s %v", d, ok)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for keymap reload")
	}
}

func TestShippedKeymapMatchesDefault(t *testing.T) {
	km, err := LoadKeymap(filepath.Join("..", "..", "data", "yaml", "keymap.yaml"))
	if err != nil {
		t.Fatalf("load shipped keymap: %v", err)
	}
	def := DefaultKeymap()
	if km.Len() != def.Len() {
		t.Errorf("expected %d bindings, got %d", def.Len(), km.Len())
	}
	for _, key := range []string{"Left", "Right", "Up", "Down", "w", "a", "s", "d", "h", "j", "k", "l"} {
		want, _ := def.Lookup(key)
		if got, ok := km.Lookup(key); !ok || got != want {
			t.Errorf("key %q: expected %s, got %s (bound %v)", key, want, got, ok)
		}
	}
	if !km.IsQuit("Esc") || !km.IsQuit("Ctrl-C") {
		t.Error("expected Esc and Ctrl-C to quit")
	}
}
