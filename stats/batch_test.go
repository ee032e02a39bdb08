package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lock(shape core.ShapeId, rows ...int) engine.LockResult {
	return engine.LockResult{
		Locked: true,
		Piece:  engine.FallingPiece{Shape: shape},
		Rows:   rows,
	}
}

func TestEmptyBatch(t *testing.T) {
	b := NewBatch()
	s := b.Summarize()
	assert.Equal(t, Summary{}, s)
	assert.Zero(t, b.ShapeCount(0))
	assert.Zero(t, b.ClearCount(1))
}

func TestOnLockHistograms(t *testing.T) {
	b := NewBatch()
	b.OnLock(lock(1))
	b.OnLock(lock(1, 16))
	b.OnLock(lock(3, 16, 16))
	b.OnLock(lock(6, 15))
	// a game-over at the spawn row never locked
	b.OnLock(engine.LockResult{GameOver: true, Piece: engine.FallingPiece{Shape: 2}})

	assert.Equal(t, 2, b.ShapeCount(1))
	assert.Equal(t, 1, b.ShapeCount(3))
	assert.Equal(t, 1, b.ShapeCount(6))
	assert.Zero(t, b.ShapeCount(2))

	assert.Equal(t, 2, b.ClearCount(1))
	assert.Equal(t, 1, b.ClearCount(2))
	assert.Zero(t, b.ClearCount(3))

	assert.Equal(t, 4, b.Summarize().Locks)
}

func TestSummarize(t *testing.T) {
	b := NewBatch()
	b.Record(GameResult{Seed: 1, Phase: engine.PhaseGameOver, Score: 2, Pieces: 30, Ticks: 600})
	b.Record(GameResult{Seed: 2, Phase: engine.PhaseGameOver, Score: 4, Pieces: 40, Ticks: 800})
	b.Record(GameResult{Seed: 3, Phase: engine.PhasePlaying, Score: 6, Pieces: 50, Ticks: 1000})

	s := b.Summarize()
	assert.Equal(t, 3, s.Games)
	assert.Equal(t, 2, s.GameOvers)
	assert.Equal(t, 1, s.Capped)
	assert.Equal(t, 12, s.TotalRows)
	assert.Equal(t, 6, s.ScoreMax)
	assert.InDelta(t, 4.0, s.ScoreMean, 1e-9)
	// population std of {2,4,6}
	assert.InDelta(t, 1.632993, s.ScoreStdDev, 1e-6)
	assert.InDelta(t, 4.0, s.ScoreMedian, 1e-9)
	assert.InDelta(t, 40.0, s.PiecesMean, 1e-9)
	assert.InDelta(t, 800.0, s.TicksMean, 1e-9)
}

func TestResultsIsCopy(t *testing.T) {
	b := NewBatch()
	b.Record(GameResult{Score: 1})
	res := b.Results()
	res[0].Score = 99
	assert.Equal(t, 1, b.Results()[0].Score)
	assert.Equal(t, 1, b.Games())
}

func TestWriteReport(t *testing.T) {
	b := NewBatch()
	b.OnLock(lock(0, 16))
	b.Record(GameResult{Phase: engine.PhaseGameOver, Score: 1234, Pieces: 5000, Ticks: 100000})

	var buf bytes.Buffer
	require.NoError(t, b.WriteReport(&buf, 1500*time.Millisecond))
	out := buf.String()

	assert.Contains(t, out, "Autoplay")
	assert.Contains(t, out, "1,234", "numbers use English grouping")
	assert.Contains(t, out, "Shape A")
	assert.Contains(t, out, "Shape G")
	assert.Contains(t, out, "1.5s")
}

func TestFormatTableAlignment(t *testing.T) {
	out := formatTable("T", []string{"a", "longer key"}, map[string]string{"a": "1", "longer key": "12,345"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Equal(t, runewidth.StringWidth(lines[0]), runewidth.StringWidth(line), "line %q", line)
	}
	assert.Equal(t, "| a          |      1 |", lines[3])
}

func TestFormatTableWideTitle(t *testing.T) {
	out := formatTable("A rather long title", []string{"k"}, map[string]string{"k": "v"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, runewidth.StringWidth(lines[0]), runewidth.StringWidth(line), "line %q", line)
	}
}
