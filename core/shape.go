package core

// ShapeId identifies one of the seven tetromino masks
type ShapeId uint8

// ShapeCount is the number of shapes in the catalog
const ShapeCount = 7

// MaskSize is the side length of a shape mask
const MaskSize = 4

// Shape is an immutable 4x4 occupancy mask, row-major (index = y*4 + x)
type Shape [MaskSize * MaskSize]bool

// shapeSources are the catalog masks, 'X' marks an occupied cell
var shapeSources = [ShapeCount]string{
	"..X." +
		"..X." +
		"..X." +
		"..X.",

	"..X." +
		".XX." +
		".X.." +
		"....",

	".X.." +
		".XX." +
		"..X." +
		"....",

	"...." +
		".XX." +
		".XX." +
		"....",

	"...." +
		".XX." +
		"..X." +
		"..X.",

	"...." +
		".XX." +
		".X.." +
		".X..",

	".X.." +
		".XX." +
		".X.." +
		"....",
}

var catalog = buildCatalog()

func buildCatalog() [ShapeCount]Shape {
	var shapes [ShapeCount]Shape
	for id, src := range shapeSources {
		for i, c := range src {
			shapes[id][i] = c == 'X'
		}
	}
	return shapes
}

// Valid reports whether the id names a catalog shape
func (id ShapeId) Valid() bool {
	return id < ShapeCount
}

// Next returns the id that follows in spawn order, wrapping after the last shape
func (id ShapeId) Next() ShapeId {
	return (id + 1) % ShapeCount
}

// Cell returns the field value written when a piece of this shape locks
func (id ShapeId) Cell() CellValue {
	return CellValue(id) + 1
}

// Letter returns the display letter of the shape ('A' for id 0)
func (id ShapeId) Letter() rune {
	return 'A' + rune(id)
}

// ShapeOf returns the catalog mask for id; invalid ids yield an empty mask
func ShapeOf(id ShapeId) Shape {
	if !id.Valid() {
		return Shape{}
	}
	return catalog[id]
}

// Occupied reports whether the cell at local (x, y) is set once the shape is
// rotated by r quarter turns clockwise. ok is false outside the 4x4 mask.
func (s Shape) Occupied(x, y, r int) (occupied, ok bool) {
	i := RotatedIndex(x, y, r)
	if i < 0 {
		return false, false
	}
	return s[i], true
}

// Cells returns the local coordinates of every occupied cell at rotation r,
// in row-major order of the rotated view
func (s Shape) Cells(r int) []Point {
	cells := make([]Point, 0, 4)
	for y := 0; y < MaskSize; y++ {
		for x := 0; x < MaskSize; x++ {
			if s[RotatedIndex(x, y, r)] {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}
