package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cookierampage/rampage/internal/grid"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Game      GameConfig      `toml:"game"`
	Arena     ArenaConfig     `toml:"arena"`
	Timing    TimingConfig    `toml:"timing"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Food      FoodConfig      `toml:"food"`
	Input     InputConfig     `toml:"input"`
	Scripting ScriptingConfig `toml:"scripting"`
	Audio     AudioConfig     `toml:"audio"`
	Snapshot  SnapshotConfig  `toml:"snapshot"`
	Logging   LoggingConfig   `toml:"logging"`
}

type GameConfig struct {
	Title string `toml:"title"`
	Seed  int64  `toml:"seed"` // 0 = seed from the clock
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Duration accepts "300ms"-style strings in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type TimingConfig struct {
	MovementStep Duration `toml:"movement_step"`
	FoodStep     Duration `toml:"food_step"`
	Debounce     Duration `toml:"debounce"`
	FrameRate    Duration `toml:"frame_rate"`  // host frame period
	Diagnostics  Duration `toml:"diagnostics"` // frame time log period, 0 = off
}

type SpawnConfig struct {
	X             int            `toml:"x"`
	Y             int            `toml:"y"`
	Direction     grid.Direction `toml:"direction"`
	TailDirection grid.Direction `toml:"tail_direction"`
	Length        int            `toml:"length"`
}

type FoodConfig struct {
	MaxAttempts int `toml:"max_attempts"` // random samples before scanning free cells
}

type InputConfig struct {
	Keymap string `toml:"keymap"`
	Watch  bool   `toml:"watch"` // reload the keymap when the file changes
}

type ScriptingConfig struct {
	Dir string `toml:"dir"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type SnapshotConfig struct {
	Dir   string `toml:"dir"` // empty = no game over image
	Scale int    `toml:"scale"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Title: "Cookie Rampage",
		},
		Arena: ArenaConfig{
			Width:  10,
			Height: 10,
		},
		Timing: TimingConfig{
			MovementStep: Duration{300 * time.Millisecond},
			FoodStep:     Duration{2 * time.Second},
			Debounce:     Duration{300 * time.Millisecond},
			FrameRate:    Duration{16 * time.Millisecond},
			Diagnostics:  Duration{5 * time.Second},
		},
		Spawn: SpawnConfig{
			X:             3,
			Y:             3,
			Direction:     grid.Up,
			TailDirection: grid.Up,
			Length:        2,
		},
		Food: FoodConfig{
			MaxAttempts: 100,
		},
		Input: InputConfig{
			Keymap: "data/yaml/keymap.yaml",
			Watch:  true,
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.75,
		},
		Snapshot: SnapshotConfig{
			Dir:   "snapshots",
			Scale: 24,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/rampage.log",
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}
	periods := []struct {
		name string
		d    time.Duration
	}{
		{"movement_step", c.Timing.MovementStep.Duration},
		{"food_step", c.Timing.FoodStep.Duration},
		{"debounce", c.Timing.Debounce.Duration},
		{"frame_rate", c.Timing.FrameRate.Duration},
	}
	for _, p := range periods {
		if p.d <= 0 {
			return fmt.Errorf("%w: timing.%s must be positive, got %s", ErrInvalid, p.name, p.d)
		}
	}
	if c.Spawn.Length < 2 {
		return fmt.Errorf("%w: spawn.length must be at least 2, got %d", ErrInvalid, c.Spawn.Length)
	}
	arena := grid.NewArena(c.Arena.Width, c.Arena.Height)
	head := grid.Position{X: c.Spawn.X, Y: c.Spawn.Y}
	tail := head
	for i := 1; i < c.Spawn.Length; i++ {
		tail = tail.Add(c.Spawn.Direction.Opposite())
	}
	if !arena.Contains(head) || !arena.Contains(tail) {
		return fmt.Errorf("%w: spawn %v length %d does not fit the arena", ErrInvalid, head, c.Spawn.Length)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside 0-1", ErrInvalid, c.Audio.Volume)
	}
	if c.Snapshot.Scale <= 0 {
		return fmt.Errorf("%w: snapshot.scale must be positive", ErrInvalid)
	}
	return nil
}

// ArenaGrid returns the configured arena.
func (c *Config) ArenaGrid() grid.Arena {
	return grid.NewArena(c.Arena.Width, c.Arena.Height)
}
