// Package audio plays short synthesized cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/cookierampage/rampage/internal/core/event"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into a single speaker stream. Cues queued before Init
// stay in the mixer and play once the speaker starts.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
	log         *zap.Logger
}

// NewPlayer creates a player at volume 0.0-1.0.
func NewPlayer(volume float64, log *zap.Logger) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		gain:  volume - 1,
		log:   log,
	}
}

// Init opens the audio device. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Attach plays cues for the events dispatched on q.
func (p *Player) Attach(q *event.Queue) {
	event.Subscribe(q, func(event.FoodEaten) { p.PlayEat() })
	event.Subscribe(q, func(event.CollisionDetected) { p.PlayCrash() })
}

// PlayEat is a short rising chirp.
func (p *Player) PlayEat() {
	p.add(NewChirpGenerator(sampleRate, 520, 1040, 90*time.Millisecond))
}

// PlayCrash is a falling chirp over a burst of noise.
func (p *Player) PlayCrash() {
	p.add(
		NewChirpGenerator(sampleRate, 440, 90, 400*time.Millisecond),
		NewNoiseGenerator(sampleRate, 350*time.Millisecond),
	)
}

func (p *Player) add(streamers ...beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cue := &effects.Gain{Streamer: beep.Mix(streamers...), Gain: p.gain}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(cue)
}

// Pending returns how many cues are still in the mixer.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
