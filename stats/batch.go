// Package stats aggregates results of headless games for the autoplay runner
package stats

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/engine"
	"gonum.org/v1/gonum/stat"
)

// GameResult is the outcome of one finished (or capped) game
type GameResult struct {
	Seed   int64
	Phase  engine.Phase
	Score  int
	Pieces int
	Ticks  uint64
}

// Batch collects per-lock and per-game figures across many games
// Not safe for concurrent use
type Batch struct {
	results []GameResult

	// shape id -> pieces locked
	shapes *intmap.Map[core.ShapeId, int]
	// rows cleared by one lock -> number of such locks
	clears *intmap.Map[int, int]
	locks  int
}

// NewBatch creates an empty batch
func NewBatch() *Batch {
	return &Batch{
		shapes: intmap.New[core.ShapeId, int](core.ShapeCount),
		clears: intmap.New[int, int](4),
	}
}

// OnLock records a lock; Batch is an engine.Listener
func (b *Batch) OnLock(r engine.LockResult) {
	if !r.Locked {
		return
	}
	b.locks++

	n, _ := b.shapes.Get(r.Piece.Shape)
	b.shapes.Put(r.Piece.Shape, n+1)

	if rows := r.RowsCleared(); rows > 0 {
		c, _ := b.clears.Get(rows)
		b.clears.Put(rows, c+1)
	}
}

// Record adds a finished game
func (b *Batch) Record(r GameResult) {
	b.results = append(b.results, r)
}

// Games returns the number of recorded games
func (b *Batch) Games() int {
	return len(b.results)
}

// Results returns a copy of the recorded games in order
func (b *Batch) Results() []GameResult {
	return slices.Clone(b.results)
}

// ShapeCount returns how many pieces of the shape were locked
func (b *Batch) ShapeCount(id core.ShapeId) int {
	n, _ := b.shapes.Get(id)
	return n
}

// ClearCount returns how many locks cleared exactly rows rows
func (b *Batch) ClearCount(rows int) int {
	n, _ := b.clears.Get(rows)
	return n
}

// Summary holds the aggregate figures of a batch
type Summary struct {
	Games     int
	GameOvers int
	Capped    int

	ScoreMean   float64
	ScoreStdDev float64
	ScoreMedian float64
	ScoreMax    int
	TotalRows   int

	PiecesMean float64
	TicksMean  float64
	Locks      int
}

// Summarize computes the aggregate figures; an empty batch yields zeros
func (b *Batch) Summarize() Summary {
	s := Summary{Games: len(b.results), Locks: b.locks}
	if s.Games == 0 {
		return s
	}

	scores := make([]float64, 0, s.Games)
	pieces := make([]float64, 0, s.Games)
	ticks := make([]float64, 0, s.Games)
	for _, r := range b.results {
		switch r.Phase {
		case engine.PhaseGameOver:
			s.GameOvers++
		case engine.PhasePlaying:
			s.Capped++
		}
		s.TotalRows += r.Score
		s.ScoreMax = max(s.ScoreMax, r.Score)
		scores = append(scores, float64(r.Score))
		pieces = append(pieces, float64(r.Pieces))
		ticks = append(ticks, float64(r.Ticks))
	}

	s.ScoreMean, s.ScoreStdDev = stat.PopMeanStdDev(scores, nil)
	s.PiecesMean = stat.Mean(pieces, nil)
	s.TicksMean = stat.Mean(ticks, nil)

	slices.Sort(scores)
	s.ScoreMedian = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return s
}
