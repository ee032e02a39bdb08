package render

import "github.com/lixenwraith/vi-tetris/core"

// GlyphUnknown is drawn for values outside the table
const GlyphUnknown = '?'

// glyphs maps every CellValue the field can hold to its symbol
var glyphs = map[core.CellValue]rune{
	core.CellEmpty:    ' ',
	1:                 'A',
	2:                 'B',
	3:                 'C',
	4:                 'D',
	5:                 'E',
	6:                 'F',
	7:                 'G',
	core.CellReserved: '=',
	core.CellBorder:   '#',
}

// Glyph returns the symbol for a field cell
func Glyph(v core.CellValue) rune {
	if r, ok := glyphs[v]; ok {
		return r
	}
	return GlyphUnknown
}

// PieceGlyph returns the symbol used to overlay a falling piece
func PieceGlyph(id core.ShapeId) rune {
	return id.Letter()
}
