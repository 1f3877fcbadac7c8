package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Cue describes one synthesized sound effect: a frequency sweep with an
// exponential decay envelope, optionally mixed with noise.
type Cue struct {
	Name     string
	Freq     float64 // start frequency, Hz
	EndFreq  float64 // end frequency, Hz; equal to Freq for a flat tone
	Duration time.Duration
	Gain     float64 // peak amplitude, 0..1
	Decay    float64 // envelope decay rate, 1/s
	Noise    float64 // share of the signal that is noise, 0..1
}

var (
	cueShot     = Cue{Name: "shot", Freq: 920, EndFreq: 620, Duration: 40 * time.Millisecond, Gain: 0.08, Decay: 40}
	cueKill     = Cue{Name: "kill", Freq: 440, EndFreq: 330, Duration: 90 * time.Millisecond, Gain: 0.18, Decay: 25, Noise: 0.2}
	cueBossIn   = Cue{Name: "boss_spawn", Freq: 110, EndFreq: 90, Duration: 650 * time.Millisecond, Gain: 0.3, Decay: 3}
	cueBossDown = Cue{Name: "boss_kill", Freq: 300, EndFreq: 900, Duration: 420 * time.Millisecond, Gain: 0.3, Decay: 4, Noise: 0.1}
	cueLevel    = Cue{Name: "level", Freq: 523, EndFreq: 784, Duration: 250 * time.Millisecond, Gain: 0.2, Decay: 6}
	cuePickup   = Cue{Name: "pickup", Freq: 1320, EndFreq: 1560, Duration: 60 * time.Millisecond, Gain: 0.12, Decay: 30}
	cueHit      = Cue{Name: "hit", Freq: 160, EndFreq: 120, Duration: 150 * time.Millisecond, Gain: 0.3, Decay: 14, Noise: 0.6}
	cueDodge    = Cue{Name: "dodge", Freq: 600, EndFreq: 1200, Duration: 80 * time.Millisecond, Gain: 0.12, Decay: 20}
	cueBuy      = Cue{Name: "purchase", Freq: 660, EndFreq: 990, Duration: 120 * time.Millisecond, Gain: 0.15, Decay: 12}
	cueGameOver = Cue{Name: "run_end", Freq: 400, EndFreq: 100, Duration: 700 * time.Millisecond, Gain: 0.3, Decay: 2}
)

// toneGenerator streams a Cue. It runs forever; callers bound it with
// beep.Take.
type toneGenerator struct {
	sr    beep.SampleRate
	cue   Cue
	total int
	pos   int
	phase float64
	seed  uint32
}

func newToneGenerator(sr beep.SampleRate, c Cue) *toneGenerator {
	total := sr.N(c.Duration)
	if total < 1 {
		total = 1
	}
	return &toneGenerator{sr: sr, cue: c, total: total, seed: 0x9e3779b9}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(1, float64(g.pos)/float64(g.total))
		freq := g.cue.Freq + (g.cue.EndFreq-g.cue.Freq)*progress

		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}
		tone := math.Sin(2 * math.Pi * g.phase)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := (1-g.cue.Noise)*tone + g.cue.Noise*noise
		sample *= g.cue.Gain * math.Exp(-t*g.cue.Decay) * attack(t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// attack ramps the first 5ms to avoid clicks.
func attack(t float64) float64 {
	return math.Min(1, t/0.005)
}

// Stream returns a finite streamer playing c once.
func (c Cue) Stream(sr beep.SampleRate) beep.Streamer {
	g := newToneGenerator(sr, c)
	return beep.Take(g.total, g)
}
