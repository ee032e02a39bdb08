package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/vi-tetris/input"
	"github.com/lixenwraith/vi-tetris/status"
)

// Display renders a snapshot; called once per tick with a fresh snapshot
type Display interface {
	Draw(Snapshot)
}

// Listener receives lock-and-clear results (audio cues, stats)
type Listener interface {
	OnLock(LockResult)
}

// RunSummary describes a finished run
type RunSummary struct {
	Phase   Phase
	Score   int
	Pieces  int
	Ticks   uint64
	Started time.Time
	Ended   time.Time
}

// Duration returns the wall time the run took
func (s RunSummary) Duration() time.Duration {
	return s.Ended.Sub(s.Started)
}

// Runner drives a Game on a fixed tick: one poll, one Step, one Draw per tick
// The only cancellation points are the top of the loop and the tick wait
type Runner struct {
	game      *Game
	source    input.Source
	display   Display
	listeners []Listener

	tickInterval time.Duration
	clock        TimeProvider
	metrics      *runnerMetrics
}

// runnerMetrics caches registry pointers so the loop never takes the registry lock
type runnerMetrics struct {
	ticks   *status.Counter
	moves   *status.Counter
	locks   *status.Counter
	rows    *status.Counter
	frameMs *status.Gauge
}

// NewRunner creates a runner; a nil display discards frames
func NewRunner(game *Game, source input.Source, display Display, tickInterval time.Duration) *Runner {
	return &Runner{
		game:         game,
		source:       source,
		display:      display,
		tickInterval: tickInterval,
		clock:        NewMonotonicTimeProvider(),
	}
}

// AddListener registers a lock listener, must be called before Run
func (r *Runner) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// SetTimeProvider replaces the clock used for the run summary
func (r *Runner) SetTimeProvider(clock TimeProvider) {
	r.clock = clock
}

// SetStatus publishes loop counters to reg; must be called before Run
func (r *Runner) SetStatus(reg *status.Registry) {
	r.metrics = &runnerMetrics{
		ticks:   reg.Counter("engine.ticks"),
		moves:   reg.Counter("engine.moves"),
		locks:   reg.Counter("engine.locks"),
		rows:    reg.Counter("engine.rows"),
		frameMs: reg.Gauge("engine.frame_ms"),
	}
}

// Run ticks until the player quits, the game ends or ctx is cancelled
// The final frame is always drawn before returning
func (r *Runner) Run(ctx context.Context) (RunSummary, error) {
	summary := RunSummary{Started: r.clock.Now()}
	finish := func() RunSummary {
		snap := r.game.Snapshot()
		summary.Phase = snap.Phase
		summary.Score = snap.Score
		summary.Pieces = snap.Pieces
		summary.Ticks = r.game.state.Ticks
		summary.Ended = r.clock.Now()
		return summary
	}

	r.draw()
	if r.game.Phase().Terminal() {
		return finish(), nil
	}

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return finish(), ctx.Err()
		default:
		}

		frameStart := time.Now()
		result := r.game.Step(r.source.Poll())
		if result.Lock.Locked || result.Lock.GameOver {
			r.notify(result.Lock)
		}
		r.draw()
		r.publish(result, time.Since(frameStart))

		if result.Phase.Terminal() {
			log.Printf("Game ended: phase=%s score=%d pieces=%d", result.Phase, r.game.Score(), r.game.state.Pieces)
			return finish(), nil
		}

		select {
		case <-ctx.Done():
			return finish(), ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Runner) publish(result StepResult, frame time.Duration) {
	m := r.metrics
	if m == nil {
		return
	}
	if result.Phase == PhaseStopped {
		return
	}
	m.ticks.Add(1)
	if result.Moved {
		m.moves.Add(1)
	}
	if result.Lock.Locked {
		m.locks.Add(1)
		m.rows.Add(int64(result.Lock.RowsCleared()))
	}
	m.frameMs.Set(float64(frame.Microseconds()) / 1000)
}

func (r *Runner) draw() {
	if r.display != nil {
		r.display.Draw(r.game.Snapshot())
	}
}

func (r *Runner) notify(lock LockResult) {
	if lock.RowsCleared() > 0 {
		log.Printf("Cleared %d row(s) at %v, score %d", lock.RowsCleared(), lock.Rows, r.game.Score())
	}
	for _, l := range r.listeners {
		l.OnLock(lock)
	}
}
