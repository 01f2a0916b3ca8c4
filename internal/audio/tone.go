package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine from one frequency to another over its
// length and then ends. Used for the eat cue (rising) and the crash cue
// (falling).
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func NewChirpGenerator(sr beep.SampleRate, from, to float64, length time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, total: sr.N(length)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		p := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack, linear release.
		env := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)+1), 1) * (1 - p)
		s := 0.3 * env * math.Sin(g.phase)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error { return nil }

// NoiseGenerator is decaying noise over a low rumble, layered under the
// crash chirp.
type NoiseGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	seed  uint32
}

func NewNoiseGenerator(sr beep.SampleRate, length time.Duration) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, total: sr.N(length), seed: 0x2545f491}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 10)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		s := env * (0.2*noise + 0.25*math.Sin(2*math.Pi*70*t))
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error { return nil }
