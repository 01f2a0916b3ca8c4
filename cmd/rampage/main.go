package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cookierampage/rampage/internal/audio"
	"github.com/cookierampage/rampage/internal/config"
	"github.com/cookierampage/rampage/internal/core/event"
	"github.com/cookierampage/rampage/internal/game"
	"github.com/cookierampage/rampage/internal/input"
	"github.com/cookierampage/rampage/internal/render"
	"github.com/cookierampage/rampage/internal/scripting"
	"github.com/cookierampage/rampage/internal/world"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// How long the game over screen stays up unless a key is pressed.
const gameOverLinger = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/rampage.toml"
	if p := os.Getenv("RAMPAGE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	runID := uuid.New()
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.Stringer("run", runID))
	log.Info("starting", zap.String("config", cfgPath))

	// 3. Scripts
	scripts, err := scripting.NewEngine(cfg.Scripting.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer scripts.Close()

	// 4. Simulation
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(cfg, rand.New(rand.NewSource(seed)), scripts, log)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	log.Info("seeded", zap.Int64("seed", seed))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 5. Input
	keymap := input.DefaultKeymap()
	if km, err := input.LoadKeymap(cfg.Input.Keymap); err != nil {
		log.Warn("keymap not loaded, using defaults", zap.Error(err))
	} else {
		keymap = km
	}
	var reloads <-chan *input.Keymap
	if cfg.Input.Watch {
		if reloads, err = input.WatchKeymap(ctx, cfg.Input.Keymap, log); err != nil {
			log.Warn("keymap watch disabled", zap.Error(err))
		}
	}

	// 6. Audio
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume, log)
		if err := player.Init(); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			player.Attach(g.Bus())
			defer player.Close()
		}
	}

	// 7. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	h := &host{
		cfg:     cfg,
		game:    g,
		screen:  screen,
		term:    render.NewTerminal(screen, cfg.Game.Title),
		keymap:  keymap,
		reloads: reloads,
		log:     log,
	}
	event.Subscribe(g.Bus(), func(ev event.TerminationRequested) { h.ended = &ev })

	res, err := h.loop(ctx)
	screen.Fini()
	if err != nil {
		return err
	}

	// 8. Game over image
	if h.ended != nil && cfg.Snapshot.Dir != "" {
		path, err := render.SaveImage(h.last, cfg.Snapshot.Scale, cfg.Snapshot.Dir, runID.String())
		if err != nil {
			log.Warn("snapshot not saved", zap.Error(err))
		} else {
			res.image = path
			log.Info("snapshot saved", zap.String("path", path))
		}
	}

	printSummary(cfg.Game.Title, res)
	log.Info("stopped",
		zap.Stringer("status", g.Status()),
		zap.Int("score", res.score),
		zap.Uint64("frames", g.Frames()),
	)
	return nil
}

type host struct {
	cfg     *config.Config
	game    *game.Game
	screen  tcell.Screen
	term    *render.Terminal
	keymap  *input.Keymap
	reloads <-chan *input.Keymap
	log     *zap.Logger

	last  world.Snapshot // latest board with the actor still on it
	ended *event.TerminationRequested
	diag  frameStats
}

// outcome is what the exit summary prints.
type outcome struct {
	score  int
	length int
	steps  uint64
	quit   bool
	image  string
}

// loop owns the game: only this goroutine calls into it. A panic anywhere
// in a frame restores the terminal and comes back as an error.
func (h *host) loop(ctx context.Context) (res outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.screen.Fini()
			h.log.Error("panic in game loop", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	period := h.cfg.Timing.FrameRate.Duration
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var diagC <-chan time.Time
	if d := h.cfg.Timing.Diagnostics.Duration; d > 0 {
		diag := time.NewTicker(d)
		defer diag.Stop()
		diagC = diag.C
	}

	h.last = h.game.Snapshot()
	h.term.Draw(h.last)
	prev := time.Now()

	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(prev)
			prev = now
			start := time.Now()
			h.game.Frame(dt)
			snap := h.game.Snapshot()
			if !h.game.Terminated() {
				h.last = snap
			}
			h.term.Draw(snap)
			h.diag.add(time.Since(start), dt)

			if h.ended != nil {
				h.showGameOver(ctx, events)
				return h.outcome(false), nil
			}

		case ev := <-events:
			if h.handle(ev) {
				h.log.Info("quit by player")
				return h.outcome(true), nil
			}

		case km, ok := <-h.reloads:
			h.applyKeymap(km, ok)

		case <-diagC:
			h.diag.log(h.log)

		case <-ctx.Done():
			h.log.Info("signal received, stopping")
			return h.outcome(true), nil
		}
	}
}

// applyKeymap installs a reloaded keymap. A closed channel means the
// watcher stopped; the receive case is disabled from then on.
func (h *host) applyKeymap(km *input.Keymap, ok bool) {
	if !ok {
		h.reloads = nil
		h.log.Debug("keymap watcher stopped")
		return
	}
	h.keymap = km
	h.log.Info("keymap reloaded", zap.Int("bindings", km.Len()))
}

// handle applies one terminal event and reports whether the player quit.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.term.Draw(h.game.Snapshot())
	case *tcell.EventKey:
		name := render.KeyName(ev)
		if h.keymap.IsQuit(name) {
			return true
		}
		if d, ok := h.keymap.Lookup(name); ok {
			h.game.Submit(d)
		}
	}
	return false
}

// showGameOver keeps the final board up until a key, a signal or the
// linger timeout.
func (h *host) showGameOver(ctx context.Context, events <-chan tcell.Event) {
	final := h.last
	final.Status = h.game.Status()
	final.Score = h.ended.Score
	h.term.Draw(final)

	timeout := time.NewTimer(gameOverLinger)
	defer timeout.Stop()
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		case <-timeout.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *host) outcome(quit bool) outcome {
	res := outcome{
		score:  h.last.Score,
		length: h.last.Length(),
		steps:  h.last.Steps,
		quit:   quit,
	}
	if h.ended != nil {
		res.score = h.ended.Score
		res.length = h.ended.Length
	}
	return res
}
