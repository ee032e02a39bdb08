package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("expected at least 10ms between readings, got %v", diff)
	}
}

func TestRunSummaryDuration(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := RunSummary{Started: start, Ended: start.Add(90 * time.Second)}
	if got := s.Duration(); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &steppingClock{}
}
