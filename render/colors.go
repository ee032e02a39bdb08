package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-tetris/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted steel for walls
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbStopped    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// shapeColors holds one foreground per shape id
var shapeColors = [core.ShapeCount]tcell.Color{
	tcell.NewRGBColor(0, 200, 200),   // Cyan
	tcell.NewRGBColor(255, 80, 80),   // Red
	tcell.NewRGBColor(0, 200, 0),     // Green
	tcell.NewRGBColor(255, 255, 0),   // Yellow
	tcell.NewRGBColor(255, 165, 0),   // Orange
	tcell.NewRGBColor(100, 150, 255), // Blue
	tcell.NewRGBColor(200, 100, 255), // Purple
}

// ShapeColor returns the foreground color for a shape
func ShapeColor(id core.ShapeId) tcell.Color {
	if !id.Valid() {
		return RgbStatusText
	}
	return shapeColors[id]
}

// CellStyle returns the style of a locked field cell
func CellStyle(base tcell.Style, v core.CellValue) tcell.Style {
	switch {
	case v == core.CellBorder || v == core.CellReserved:
		return base.Foreground(RgbBorder)
	case v >= 1 && v <= core.ShapeCount:
		return base.Foreground(ShapeColor(core.ShapeId(v - 1)))
	default:
		return base
	}
}
