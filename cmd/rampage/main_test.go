package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cookierampage/rampage/internal/config"
	"github.com/cookierampage/rampage/internal/grid"
	"github.com/cookierampage/rampage/internal/input"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerWritesFile(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "rampage.log")
			log, err := newLogger(config.LoggingConfig{Level: "debug", Format: format, File: path})
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			log.Info("hello", zap.Int("score", 3))
			_ = log.Sync()

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(raw), "hello") {
				t.Errorf("expected log line, got %q", raw)
			}
		})
	}
}

func TestNewLoggerBadLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rampage.log")
	log, err := newLogger(config.LoggingConfig{Level: "loud", File: path})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug disabled at the fallback level")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info enabled")
	}
}

func TestFrameStats(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var s frameStats
	s.add(2*time.Millisecond, 16*time.Millisecond)
	s.add(4*time.Millisecond, 16*time.Millisecond)
	s.log(zap.New(core))

	entries := logs.FilterMessage("frame time").All()
	if len(entries) != 1 {
		t.Fatalf("expected one diagnostics line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["frames"] != int64(2) {
		t.Errorf("expected 2 frames, got %v", fields["frames"])
	}
	if fields["avg"] != 3*time.Millisecond {
		t.Errorf("expected avg 3ms, got %v", fields["avg"])
	}
	if s.frames != 0 {
		t.Error("expected stats reset after logging")
	}
}

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"score", 5},
		{"貪食蛇", 6},
		{"a·b", 3},
		{"", 0},
	}
	for _, tc := range cases {
		if got := displayWidth(tc.in); got != tc.want {
			t.Errorf("displayWidth(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestKeymapWatcherStopOnShutdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  - {key: x, direction: left}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	reloads, err := input.WatchKeymap(ctx, path, zap.NewNop())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	h := &host{keymap: input.DefaultKeymap(), reloads: reloads, log: zap.NewNop()}
	cancel()

	select {
	case km, ok := <-h.reloads:
		if ok {
			t.Fatalf("expected closed channel after cancel, got keymap %v", km)
		}
		h.applyKeymap(km, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}

	if h.reloads != nil {
		t.Error("expected reload case disabled after watcher stopped")
	}
	if d, ok := h.keymap.Lookup("Left"); !ok || d != grid.Left {
		t.Errorf("expected default keymap kept, got %s (bound %v)", d, ok)
	}
}

func TestApplyKeymapInstallsReload(t *testing.T) {
	h := &host{keymap: input.DefaultKeymap(), log: zap.NewNop()}
	km, err := input.ParseKeymap([]byte("bindings:\n  - {key: x, direction: right}\n"))
	if err != nil {
		t.Fatal(err)
	}
	h.applyKeymap(km, true)
	if d, ok := h.keymap.Lookup("x"); !ok || d != grid.Right {
		t.Errorf("expected x bound to right, got %s (bound %v)", d, ok)
	}
}
