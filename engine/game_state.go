package engine

import (
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/core"
)

// Phase is the lifecycle state of a game
type Phase uint8

const (
	PhasePlaying Phase = iota
	// PhaseGameOver is terminal: the stack reached the spawn row
	PhaseGameOver
	// PhaseStopped is terminal: the player quit
	PhaseStopped
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further ticks change the game
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// FallingPiece is the controllable, not-yet-locked shape
// Column/Row place the top-left corner of its 4x4 mask in field space
type FallingPiece struct {
	Shape    core.ShapeId
	Rotation int
	Column   int
	Row      int
}

// Cells returns the field-space cells the piece occupies
func (p FallingPiece) Cells() []core.Point {
	cells := core.ShapeOf(p.Shape).Cells(p.Rotation)
	for i := range cells {
		cells[i].X += p.Column
		cells[i].Y += p.Row
	}
	return cells
}

// GameState holds everything one game owns
// Mutated only by Game; readers receive a Snapshot
type GameState struct {
	Field *core.Field
	Piece FallingPiece
	Phase Phase

	// Score counts cleared rows
	Score int

	// Tick is the speed-tick counter, wraps at Rules.TickPeriod
	Tick int

	// Pieces counts locked pieces, Ticks counts every Step taken while playing
	Pieces int
	Ticks  uint64
}

func spawnPiece(rules Rules, shape core.ShapeId) FallingPiece {
	return FallingPiece{
		Shape:    shape,
		Rotation: 0,
		Column:   rules.SpawnColumn(),
		Row:      constants.SpawnRow,
	}
}
