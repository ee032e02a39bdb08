package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constant emits 1.0 on both channels forever
var constant = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
})

func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 7)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	sr := beep.SampleRate(1000) // one sample per millisecond
	out := drain(Envelope(constant, 20*time.Millisecond, 4*time.Millisecond, 5*time.Millisecond, sr))

	if len(out) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(out))
	}

	want := map[int]float64{
		0:  0,
		2:  0.5,
		4:  1,
		14: 1,
		15: 1,
		16: 0.8,
		19: 0.2,
	}
	for i, w := range want {
		if math.Abs(out[i]-w) > 1e-9 {
			t.Errorf("sample %d: got %v, want %v", i, out[i], w)
		}
	}
	for i, v := range out {
		if v < 0 || v > 1 {
			t.Errorf("sample %d out of range: %v", i, v)
		}
	}
}

func TestEnvelopeClampsPhases(t *testing.T) {
	sr := beep.SampleRate(1000)
	// attack and release longer than the tone
	out := drain(Envelope(constant, 6*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, sr))
	if len(out) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			t.Errorf("attack-only envelope should rise, sample %d: %v < %v", i, out[i], out[i-1])
		}
	}
}

func TestEnvelopeShortSource(t *testing.T) {
	sr := beep.SampleRate(1000)
	out := drain(Envelope(beep.Take(3, constant), 20*time.Millisecond, 0, 0, sr))
	if len(out) != 3 {
		t.Errorf("expected source length 3, got %d", len(out))
	}
}

func TestWithVolume(t *testing.T) {
	out := drain(beep.Take(4, withVolume(constant, 0.5)))
	for i, v := range out {
		if math.Abs(v-0.5) > 1e-9 {
			t.Errorf("sample %d: got %v, want 0.5", i, v)
		}
	}

	silent := drain(beep.Take(4, withVolume(constant, 0)))
	for i, v := range silent {
		if v != 0 {
			t.Errorf("sample %d: got %v, want silence", i, v)
		}
	}
}
