package main

import (
	"time"

	"go.uber.org/zap"
)

// frameStats accumulates frame timings between diagnostic log lines.
type frameStats struct {
	frames int
	busy   time.Duration // time spent simulating and drawing
	wall   time.Duration // sum of frame deltas
	worst  time.Duration
}

func (s *frameStats) add(busy, dt time.Duration) {
	s.frames++
	s.busy += busy
	s.wall += dt
	if busy > s.worst {
		s.worst = busy
	}
}

func (s *frameStats) log(log *zap.Logger) {
	if s.frames == 0 {
		return
	}
	fps := 0.0
	if s.wall > 0 {
		fps = float64(s.frames) / s.wall.Seconds()
	}
	log.Debug("frame time",
		zap.Int("frames", s.frames),
		zap.Float64("fps", fps),
		zap.Duration("avg", s.busy/time.Duration(s.frames)),
		zap.Duration("worst", s.worst),
	)
	*s = frameStats{}
}
