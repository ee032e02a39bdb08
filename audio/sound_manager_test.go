package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-tetris/engine"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayLock()
	sm.PlayClear(0)
	sm.PlayClear(4)
	sm.PlayGameOver()
	sm.OnLock(engine.LockResult{Locked: true, Rows: []int{3, 4}})
	sm.OnLock(engine.LockResult{GameOver: true})
	sm.SetMuted(true)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayLock()
	sm.SetMuted(true)
	sm.PlayClear(2)
	sm.Cleanup()
}

func TestSweepGeneratorLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewSweepGenerator(sr, 440, 110, 100*time.Millisecond)
	want := sr.N(100 * time.Millisecond)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := g.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.25 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total-n+i, buf[i])
			}
		}
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got %v", g.Err())
	}
}
