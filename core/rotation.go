package core

// NormalizeRotation maps any quarter-turn count into 0..3
func NormalizeRotation(r int) int {
	return ((r % 4) + 4) % 4
}

// RotatedIndex returns the mask index shown at local (x, y) when a shape is
// turned r quarter turns clockwise. No rotated copy of the mask is built.
// Returns -1 when (x, y) lies outside the 4x4 mask.
//
// With src(col, row) = row*4 + col:
//
//	0:   src(x, y)
//	90:  src(y, 3-x)
//	180: src(3-x, 3-y)
//	270: src(3-y, x)
func RotatedIndex(x, y, r int) int {
	if x < 0 || x >= MaskSize || y < 0 || y >= MaskSize {
		return -1
	}

	switch NormalizeRotation(r) {
	case 1:
		return 12 + y - x*4
	case 2:
		return 15 - y*4 - x
	case 3:
		return 3 - y + x*4
	default:
		return x + y*4
	}
}
