package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-tetris/core"
	"github.com/lixenwraith/vi-tetris/input"
)

// StepResult reports what a single tick did
type StepResult struct {
	Phase Phase
	// Moved is set when the command was applied
	Moved bool
	// Descended is set when gravity moved the piece down
	Descended bool
	// Lock is populated when gravity could not move the piece
	Lock LockResult
}

// Game is the game-state engine: it owns the field and the falling piece and
// advances them one tick at a time. Not safe for concurrent use.
type Game struct {
	rules Rules
	state GameState
}

// NewGame builds a game with an empty field and the first piece at spawn
func NewGame(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	field, err := core.NewField(rules.Width, rules.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate field: %w", err)
	}

	g := &Game{
		rules: rules,
		state: GameState{
			Field: field,
			Piece: spawnPiece(rules, rules.FirstShape),
			Phase: PhasePlaying,
		},
	}

	// A field too narrow for the spawn position can never be played
	if !fits(field, g.state.Piece) {
		g.state.Phase = PhaseGameOver
	}
	return g, nil
}

// Rules returns the rules the game was built with
func (g *Game) Rules() Rules {
	return g.rules
}

// Phase returns the current lifecycle phase
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Score returns the number of cleared rows
func (g *Game) Score() int {
	return g.state.Score
}

// Piece returns the falling piece
func (g *Game) Piece() FallingPiece {
	return g.state.Piece
}

// CanPlace queries the game's field
func (g *Game) CanPlace(id core.ShapeId, rotation, column, row int) bool {
	return CanPlace(g.state.Field, id, rotation, column, row)
}

// Step advances the game by one tick: apply cmd, then run gravity
// Steps on a finished game do nothing
func (g *Game) Step(cmd input.Command) StepResult {
	st := &g.state
	if st.Phase.Terminal() {
		return StepResult{Phase: st.Phase}
	}

	if cmd == input.CommandQuit {
		st.Phase = PhaseStopped
		return StepResult{Phase: st.Phase}
	}

	var result StepResult
	result.Moved = g.apply(cmd)

	st.Ticks++
	st.Tick = (st.Tick + 1) % g.rules.TickPeriod
	if st.Tick >= g.rules.Threshold(st.Score) {
		down := st.Piece
		down.Row++
		if fits(st.Field, down) {
			st.Piece = down
			result.Descended = true
		} else {
			result.Lock = g.lockAndClear()
		}
	}

	result.Phase = st.Phase
	return result
}

// apply moves or rotates the piece if the target placement is free
// Rejected moves are silently ignored
func (g *Game) apply(cmd input.Command) bool {
	next := g.state.Piece
	switch cmd {
	case input.CommandLeft:
		next.Column--
	case input.CommandRight:
		next.Column++
	case input.CommandSoftDrop:
		next.Row++
	case input.CommandRotate:
		next.Rotation = (next.Rotation + 1) % 4
	default:
		return false
	}

	if !fits(g.state.Field, next) {
		return false
	}
	g.state.Piece = next
	return true
}
