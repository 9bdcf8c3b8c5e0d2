package volume

import "github.com/cockroachdb/errors"

// Clamp is the coordinate policy for point mutations: values below zero become
// zero and values at or beyond size become size-1. It never fails.
func Clamp(c, size int) int {
	if c >= size {
		c = size - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// IsSolid reports whether the cell at (x, y, z) is solid. Coordinates are not
// range checked: anything outside the cube is looked up literally and is
// therefore empty, unless the volume is compressed-full, in which case every
// coordinate is solid.
func (v *SparseVolume) IsSolid(x, y, z int) bool {
	if v.cells == nil {
		return true
	}
	return v.cells.has(Pos(x, y, z))
}

// Get returns the tag of the cell at (x, y, z), or 0 if it is empty. Every
// coordinate of a compressed-full volume reports FillTag.
func (v *SparseVolume) Get(x, y, z int) Tag {
	if v.cells == nil {
		return FillTag
	}
	t, _ := v.cells.Get(Pos(x, y, z))
	return t
}

// Set writes tag to the cell at (x, y, z) after clamping each axis into the
// cube. A zero tag empties the cell. The volume is marked modified only if the
// cell actually changed. A compressed-full volume is uncompressed first.
func (v *SparseVolume) Set(x, y, z int, tag Tag) {
	if v.cells == nil {
		v.Uncompress()
	}
	p := Pos(Clamp(x, v.size), Clamp(y, v.size), Clamp(z, v.size))
	if tag > 0 {
		if cur, ok := v.cells.Get(p); !ok || cur != tag {
			v.cells.Put(p, tag)
			v.modified = true
		}
		return
	}
	if v.cells.has(p) {
		v.cells.Delete(p)
		v.modified = true
	}
}

// YRangeSet writes a column of cells at (x, z). With a non-zero tag every cell
// with y in [y0, y1] is overwritten; with a zero tag the cells with y in
// [y0, y1) are erased. x and z are used as given.
//
// The bounds must satisfy 0 <= y0 <= y1 < size; otherwise nothing is changed
// and an error matching ErrInvalidRange is returned. A successful call always
// marks the volume modified.
func (v *SparseVolume) YRangeSet(x, y0, y1, z int, tag Tag) error {
	if y0 > y1 || y0 < 0 || y1 >= v.size {
		log.Warnw("rejected column write", "x", x, "y0", y0, "y1", y1, "z", z, "size", v.size)
		return errors.Wrapf(ErrInvalidRange, "y range [%d, %d] in volume of size %d", y0, y1, v.size)
	}
	if v.cells == nil {
		v.Uncompress()
	}
	if tag == 0 {
		for y := y0; y < y1; y++ {
			v.cells.Delete(Pos(x, y, z))
		}
	} else {
		for y := y0; y <= y1; y++ {
			v.cells.Put(Pos(x, y, z), tag)
		}
	}
	v.modified = true
	return nil
}
