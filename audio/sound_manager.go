package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/engine"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays short cues for locks, clears and game over
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close that allows re-Init, clearing the mixer is enough
	sm.initialized = false
}

// SetMuted silences or restores cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// OnLock maps a lock result to a cue
func (sm *SoundManager) OnLock(r engine.LockResult) {
	switch {
	case r.GameOver:
		sm.PlayGameOver()
	case r.RowsCleared() > 0:
		sm.PlayClear(r.RowsCleared())
	case r.Locked:
		sm.PlayLock()
	}
}

// PlayLock plays a short low thud
func (sm *SoundManager) PlayLock() {
	tone, err := generators.SineTone(sampleRate, constants.LockSoundFreq)
	if err != nil {
		return
	}
	sm.play(withVolume(Envelope(tone, constants.LockSoundDuration, constants.SoundAttack, constants.SoundRelease, sampleRate), constants.LockSoundGain))
}

// PlayClear plays one rising note per cleared row
func (sm *SoundManager) PlayClear(rows int) {
	if rows < 1 {
		return
	}

	notes := make([]beep.Streamer, 0, rows)
	freq := constants.ClearBaseFreq
	for i := 0; i < rows; i++ {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return
		}
		notes = append(notes, Envelope(tone, constants.ClearNoteDuration, constants.SoundAttack, constants.SoundRelease, sampleRate))
		freq *= constants.ClearFreqStep
	}
	sm.play(withVolume(beep.Seq(notes...), constants.ClearSoundGain))
}

// PlayGameOver plays a falling sweep
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(constants.GameOverSoundDuration), NewSweepGenerator(sampleRate, constants.GameOverStartFreq, constants.GameOverEndFreq, constants.GameOverSoundDuration)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SweepGenerator glides exponentially from one frequency to another with a linear fade-out
type SweepGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	samples int
	pos     int
	phase   float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from * math.Pow(g.to/g.from, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.25 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
