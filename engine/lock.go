package engine

import (
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/core"
)

// LockResult describes one lock-and-clear transaction
type LockResult struct {
	// Locked is set when the piece was written into the field
	Locked bool
	// Piece is the piece that came to rest
	Piece FallingPiece
	// Rows lists cleared rows by their index at the moment each was cleared
	Rows []int
	// GameOver is set when the transaction ended the game
	GameOver bool
}

// RowsCleared returns the number of rows removed
func (r LockResult) RowsCleared() int {
	return len(r.Rows)
}

// lockAndClear runs when the piece can no longer descend
// A piece still on the spawn row ends the game without touching the field
func (g *Game) lockAndClear() LockResult {
	st := &g.state
	result := LockResult{Piece: st.Piece}

	if st.Piece.Row == constants.SpawnRow {
		st.Phase = PhaseGameOver
		result.GameOver = true
		return result
	}

	commit(st.Field, st.Piece)
	result.Locked = true
	st.Pieces++

	result.Rows = clearCompleteRows(st.Field)
	st.Score += len(result.Rows)

	st.Piece = spawnPiece(g.rules, st.Piece.Shape.Next())
	if !fits(st.Field, st.Piece) {
		st.Phase = PhaseGameOver
		result.GameOver = true
	}
	return result
}

// commit writes shape id + 1 under every occupied cell of the piece
// Placement was validated before the piece got here
func commit(field *core.Field, p FallingPiece) {
	v := p.Shape.Cell()
	for _, c := range p.Cells() {
		field.Set(c.X, c.Y, v)
	}
}

// clearCompleteRows removes complete interior rows top to bottom
// The scan restarts from the top after every clear since compaction moves
// rows that were already inspected
func clearCompleteRows(field *core.Field) []int {
	var rows []int
	for y := 0; y < field.InteriorRows(); y++ {
		if !field.RowComplete(y) {
			continue
		}
		field.ClearRow(y)
		rows = append(rows, y)
		y = -1
	}
	return rows
}
