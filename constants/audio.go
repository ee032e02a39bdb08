package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Shaping
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 20 * time.Millisecond
)

// Lock Sound Timing
const (
	LockSoundDuration = 40 * time.Millisecond
	LockSoundFreq     = 220.0
	LockSoundGain     = 0.4
)

// Clear Sound Timing (one note per cleared row, rising)
const (
	ClearNoteDuration = 90 * time.Millisecond
	ClearBaseFreq     = 523.25 // C5
	ClearFreqStep     = 1.25   // major third per row
	ClearSoundGain    = 0.5
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverStartFreq     = 330.0
	GameOverEndFreq       = 82.0
)
