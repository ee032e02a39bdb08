package engine

import "github.com/lixenwraith/vi-tetris/core"

// Snapshot is a read-only copy of the game for display adapters
// Nothing done to a Snapshot reaches the game
type Snapshot struct {
	Width  int
	Height int
	Cells  []core.CellValue // row-major, index = y*Width + x

	Piece  FallingPiece
	Score  int
	Phase  Phase
	Tick   int
	Pieces int
}

// Snapshot copies the current state; repeated calls without a Step are equal
func (g *Game) Snapshot() Snapshot {
	st := &g.state
	return Snapshot{
		Width:  st.Field.Width(),
		Height: st.Field.Height(),
		Cells:  st.Field.Cells(),
		Piece:  st.Piece,
		Score:  st.Score,
		Phase:  st.Phase,
		Tick:   st.Tick,
		Pieces: st.Pieces,
	}
}

// Cell returns the locked content at (x, y), CellEmpty outside the grid
func (s Snapshot) Cell(x, y int) core.CellValue {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return core.CellEmpty
	}
	return s.Cells[y*s.Width+x]
}

// PieceCells returns the field-space cells of the falling piece
// Empty once the game is over, since no piece is in play
func (s Snapshot) PieceCells() []core.Point {
	if s.Phase == PhaseGameOver {
		return nil
	}
	return s.Piece.Cells()
}
