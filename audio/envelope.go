package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// envelope fades a tone in and out so cues start and stop without clicks
// Output ends after duration even if the source is longer
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Envelope shapes s with a linear attack and release over duration
func Envelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)

	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := e.gain()
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.position >= e.total-e.release:
		return float64(e.total-e.position) / float64(e.release)
	default:
		return 1
	}
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by a gain in (0, 1]; zero or less is silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	// Base 2: Volume -1 halves the amplitude
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
