package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGlyphCoversEveryCellValue verifies every value the engine can write has a distinct symbol
func TestGlyphCoversEveryCellValue(t *testing.T) {
	values := []core.CellValue{core.CellEmpty, core.CellBorder, core.CellReserved}
	for id := core.ShapeId(0); id < core.ShapeCount; id++ {
		values = append(values, id.Cell())
	}

	seen := make(map[rune]core.CellValue)
	for _, v := range values {
		g := Glyph(v)
		require.NotEqual(t, GlyphUnknown, g, "value %d has no glyph", v)
		if prev, dup := seen[g]; dup {
			t.Errorf("values %d and %d share glyph %q", prev, v, g)
		}
		seen[g] = v
	}

	assert.Equal(t, ' ', Glyph(core.CellEmpty))
	assert.Equal(t, '#', Glyph(core.CellBorder))
	assert.Equal(t, 'A', Glyph(1))
	assert.Equal(t, 'G', Glyph(7))
	assert.Equal(t, GlyphUnknown, Glyph(200))
}

func TestPieceGlyphMatchesLockedGlyph(t *testing.T) {
	for id := core.ShapeId(0); id < core.ShapeCount; id++ {
		assert.Equal(t, Glyph(id.Cell()), PieceGlyph(id))
	}
}

func TestCellStyle(t *testing.T) {
	base := tcell.StyleDefault
	assert.Equal(t, base, CellStyle(base, core.CellEmpty))
	assert.Equal(t, base.Foreground(RgbBorder), CellStyle(base, core.CellBorder))
	assert.Equal(t, base.Foreground(ShapeColor(2)), CellStyle(base, 3))
	assert.Equal(t, RgbStatusText, ShapeColor(core.ShapeCount))
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func textAt(screen tcell.Screen, x, y, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(runeAt(screen, x+i, y))
	}
	return sb.String()
}

func TestTerminalRendererDrawsSnapshot(t *testing.T) {
	screen := newSimScreen(t)
	r := NewTerminalRenderer(screen, 2, 1)

	g, err := engine.NewGame(engine.DefaultRules())
	require.NoError(t, err)
	snap := g.Snapshot()
	r.Draw(snap)

	// Border walls and floor
	assert.Equal(t, '#', runeAt(screen, 2, 1))
	assert.Equal(t, '#', runeAt(screen, 2+11, 1))
	assert.Equal(t, '#', runeAt(screen, 2+5, 1+17))
	assert.Equal(t, ' ', runeAt(screen, 2+3, 1+5))

	// Falling piece overlay (shape 1 -> 'B')
	for _, c := range snap.PieceCells() {
		assert.Equal(t, 'B', runeAt(screen, 2+c.X, 1+c.Y), "piece cell %v", c)
	}

	assert.Equal(t, "Score: 0", textAt(screen, 2+12+4, 1+1, 8))
}

func TestTerminalRendererShowsLockedCellsAndPhase(t *testing.T) {
	screen := newSimScreen(t)
	r := NewTerminalRenderer(screen, 0, 0)

	rules := engine.DefaultRules()
	g, err := engine.NewGame(rules)
	require.NoError(t, err)

	// Play until the piece locks at the bottom and the next one spawns
	for g.Snapshot().Pieces == 0 {
		g.Step(input.CommandNone)
	}
	snap := g.Snapshot()
	r.Draw(snap)

	locked := 0
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if snap.Cell(x, y) == 2 {
				assert.Equal(t, 'B', runeAt(screen, x, y))
				locked++
			}
		}
	}
	assert.Equal(t, 4, locked)

	g.Step(input.CommandQuit)
	r.Draw(g.Snapshot())
	assert.Equal(t, "Stopped", textAt(screen, 12+4, 3, 7))
}
