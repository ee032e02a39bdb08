package core

import (
	"errors"
	"fmt"
)

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// CellValue is the content of a single field cell
// 0 is empty, 1..7 is a locked shape (id+1), Border is the wall
type CellValue uint8

const (
	CellEmpty CellValue = 0
	// CellReserved has a glyph in the display table but is never written by the engine
	CellReserved CellValue = 8
	CellBorder   CellValue = 9
)

// MinFieldSize is the smallest width/height that still leaves an interior
const MinFieldSize = 3

// ErrInvalidDimensions is returned when a field cannot be built with the requested size
var ErrInvalidDimensions = errors.New("invalid field dimensions")

// Field is the persistent grid of locked, border and empty cells
// Column 0, the last column and the last row are border; the top row is open
type Field struct {
	width  int
	height int
	cells  []CellValue // row-major, index = y*width + x
}

// NewField creates a field of the given size with its border in place
func NewField(width, height int) (*Field, error) {
	if width < MinFieldSize || height < MinFieldSize {
		return nil, fmt.Errorf("%w: %dx%d (each side must exceed %d)", ErrInvalidDimensions, width, height, MinFieldSize-1)
	}

	f := &Field{
		width:  width,
		height: height,
		cells:  make([]CellValue, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || x == width-1 || y == height-1 {
				f.cells[f.index(x, y)] = CellBorder
			}
		}
	}
	return f, nil
}

// Width returns the field width including both border columns
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height including the bottom border row
func (f *Field) Height() int {
	return f.height
}

func (f *Field) index(x, y int) int {
	return y*f.width + x
}

// InBounds reports whether (x, y) addresses a field cell
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Get returns the cell at the given position
func (f *Field) Get(x, y int) (CellValue, bool) {
	if !f.InBounds(x, y) {
		return CellEmpty, false
	}
	return f.cells[f.index(x, y)], true
}

// Set writes the cell at the given position
func (f *Field) Set(x, y int, v CellValue) bool {
	if !f.InBounds(x, y) {
		return false
	}
	f.cells[f.index(x, y)] = v
	return true
}

// InteriorRows is the number of rows above the bottom border
func (f *Field) InteriorRows() int {
	return f.height - 1
}

// RowComplete reports whether every interior column of row y is occupied
func (f *Field) RowComplete(y int) bool {
	if y < 0 || y >= f.InteriorRows() {
		return false
	}
	for x := 1; x < f.width-1; x++ {
		if f.cells[f.index(x, y)] == CellEmpty {
			return false
		}
	}
	return true
}

// ClearRow empties the interior of row y and shifts every row above it down
// by one; the top interior row is left empty
func (f *Field) ClearRow(y int) bool {
	if y < 0 || y >= f.InteriorRows() {
		return false
	}
	for row := y; row > 0; row-- {
		copy(f.cells[f.index(1, row):f.index(f.width-1, row)], f.cells[f.index(1, row-1):f.index(f.width-1, row-1)])
	}
	for x := 1; x < f.width-1; x++ {
		f.cells[f.index(x, 0)] = CellEmpty
	}
	return true
}

// Row returns a copy of row y
func (f *Field) Row(y int) []CellValue {
	if y < 0 || y >= f.height {
		return nil
	}
	row := make([]CellValue, f.width)
	copy(row, f.cells[f.index(0, y):f.index(0, y)+f.width])
	return row
}

// Cells returns a copy of the whole grid, row-major
func (f *Field) Cells() []CellValue {
	cells := make([]CellValue, len(f.cells))
	copy(cells, f.cells)
	return cells
}

// Clone returns an independent copy of the field
func (f *Field) Clone() *Field {
	return &Field{
		width:  f.width,
		height: f.height,
		cells:  f.Cells(),
	}
}
