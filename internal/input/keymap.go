package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/cookierampage/rampage/internal/grid"
	"gopkg.in/yaml.v3"
)

// Binding maps one key name to a direction.
type Binding struct {
	Key       string         `yaml:"key"`
	Direction grid.Direction `yaml:"direction"`
}

type keymapFile struct {
	Bindings []Binding `yaml:"bindings"`
	Quit     []string  `yaml:"quit"`
}

// Keymap resolves terminal key names ("Left", "Up", "w", "h", ...) to
// directions. Lookups are case-insensitive for named keys; single runes
// are matched exactly.
type Keymap struct {
	bindings map[string]grid.Direction
	quit     map[string]struct{}
}

// DefaultKeymap binds the arrow keys, WASD and hjkl.
func DefaultKeymap() *Keymap {
	km := newKeymap()
	for _, b := range []Binding{
		{"Left", grid.Left}, {"Right", grid.Right}, {"Up", grid.Up}, {"Down", grid.Down},
		{"a", grid.Left}, {"d", grid.Right}, {"w", grid.Up}, {"s", grid.Down},
		{"h", grid.Left}, {"l", grid.Right}, {"k", grid.Up}, {"j", grid.Down},
	} {
		km.bind(b)
	}
	for _, q := range []string{"Esc", "Ctrl-C", "q"} {
		km.quit[normalizeKey(q)] = struct{}{}
	}
	return km
}

func newKeymap() *Keymap {
	return &Keymap{
		bindings: make(map[string]grid.Direction),
		quit:     make(map[string]struct{}),
	}
}

// LoadKeymap reads a keymap YAML file.
func LoadKeymap(path string) (*Keymap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	return ParseKeymap(raw)
}

// ParseKeymap decodes keymap YAML. At least one binding is required.
func ParseKeymap(raw []byte) (*Keymap, error) {
	var f keymapFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	if len(f.Bindings) == 0 {
		return nil, fmt.Errorf("parse keymap: no bindings")
	}
	km := newKeymap()
	for _, b := range f.Bindings {
		if strings.TrimSpace(b.Key) == "" {
			return nil, fmt.Errorf("parse keymap: empty key for direction %s", b.Direction)
		}
		km.bind(b)
	}
	for _, q := range f.Quit {
		km.quit[normalizeKey(q)] = struct{}{}
	}
	return km, nil
}

func (k *Keymap) bind(b Binding) {
	k.bindings[normalizeKey(b.Key)] = b.Direction
}

// Lookup returns the direction bound to key.
func (k *Keymap) Lookup(key string) (grid.Direction, bool) {
	d, ok := k.bindings[normalizeKey(key)]
	return d, ok
}

// IsQuit reports whether key ends the run.
func (k *Keymap) IsQuit(key string) bool {
	_, ok := k.quit[normalizeKey(key)]
	return ok
}

// Len returns the number of direction bindings.
func (k *Keymap) Len() int { return len(k.bindings) }

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(key)
}
