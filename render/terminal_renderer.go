package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/mattn/go-runewidth"
)

// Screen layout relative to the field origin
const (
	scoreOffsetX = 4 // columns right of the field
	scoreRow     = 1
	phaseRow     = 3
	helpRow      = 5
)

const helpText = "←/h →/l move  ↓/j drop  z/↑ rotate  q quit"

// TerminalRenderer draws snapshots onto a tcell screen
// Every frame is a full redraw; there is no diffing
type TerminalRenderer struct {
	screen  tcell.Screen
	originX int
	originY int
}

// NewTerminalRenderer creates a renderer drawing the field at (originX, originY)
func NewTerminalRenderer(screen tcell.Screen, originX, originY int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		originX: originX,
		originY: originY,
	}
}

// Draw renders the entire frame and shows it
func (r *TerminalRenderer) Draw(s engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawField(s, defaultStyle)
	r.drawPiece(s, defaultStyle)
	r.drawStatus(s, defaultStyle)

	r.screen.Show()
}

// drawField draws locked, border and empty cells
func (r *TerminalRenderer) drawField(s engine.Snapshot, defaultStyle tcell.Style) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			v := s.Cell(x, y)
			r.screen.SetContent(r.originX+x, r.originY+y, Glyph(v), nil, CellStyle(defaultStyle, v))
		}
	}
}

// drawPiece overlays the falling piece on top of the field
func (r *TerminalRenderer) drawPiece(s engine.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(ShapeColor(s.Piece.Shape)).Bold(true)
	ch := PieceGlyph(s.Piece.Shape)
	for _, c := range s.PieceCells() {
		r.screen.SetContent(r.originX+c.X, r.originY+c.Y, ch, nil, style)
	}
}

// drawStatus draws score, phase and key help beside the field
func (r *TerminalRenderer) drawStatus(s engine.Snapshot, defaultStyle tcell.Style) {
	x := r.originX + s.Width + scoreOffsetX
	textStyle := defaultStyle.Foreground(RgbStatusText)

	r.drawText(x, r.originY+scoreRow, fmt.Sprintf("Score: %d", s.Score), textStyle)

	switch s.Phase {
	case engine.PhaseGameOver:
		r.drawText(x, r.originY+phaseRow, "GAME OVER", defaultStyle.Foreground(RgbGameOver).Bold(true))
	case engine.PhaseStopped:
		r.drawText(x, r.originY+phaseRow, "Stopped", defaultStyle.Foreground(RgbStopped))
	}

	r.drawText(x, r.originY+helpRow, helpText, defaultStyle.Foreground(RgbStopped))
}

// drawText writes s starting at (x, y), advancing by display width
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
