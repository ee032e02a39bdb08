package engine

import "github.com/lixenwraith/vi-tetris/core"

// CanPlace reports whether shape id at rotation fits with its mask origin at
// (column, row). Every occupied mask cell must land inside the field on an
// empty cell; leaving the field on any side always collides.
func CanPlace(field *core.Field, id core.ShapeId, rotation, column, row int) bool {
	if !id.Valid() {
		return false
	}

	shape := core.ShapeOf(id)
	for y := 0; y < core.MaskSize; y++ {
		for x := 0; x < core.MaskSize; x++ {
			if occupied, _ := shape.Occupied(x, y, rotation); !occupied {
				continue
			}
			v, ok := field.Get(column+x, row+y)
			if !ok || v != core.CellEmpty {
				return false
			}
		}
	}
	return true
}

// fits checks a candidate piece against the field
func fits(field *core.Field, p FallingPiece) bool {
	return CanPlace(field, p.Shape, p.Rotation, p.Column, p.Row)
}
