package volume

import "github.com/willf/bitset"

// BorderFull reports whether every cell of the cube's border plane on face f
// is solid. A compressed-full volume answers without scanning.
func (v *SparseVolume) BorderFull(f Face) bool {
	if v.cells == nil {
		return true
	}
	for u := 0; u < v.size; u++ {
		for w := 0; w < v.size; w++ {
			if !v.cells.has(borderCell(f, v.size, u, w)) {
				return false
			}
		}
	}
	return true
}

// TopBorderFull tests the plane y = size-1.
func (v *SparseVolume) TopBorderFull() bool { return v.BorderFull(Top) }

// BottomBorderFull tests the plane y = 0.
func (v *SparseVolume) BottomBorderFull() bool { return v.BorderFull(Bottom) }

// LeftBorderFull tests the plane x = 0.
func (v *SparseVolume) LeftBorderFull() bool { return v.BorderFull(Left) }

// RightBorderFull tests the plane x = size-1.
func (v *SparseVolume) RightBorderFull() bool { return v.BorderFull(Right) }

// FrontBorderFull tests the plane z = size-1.
func (v *SparseVolume) FrontBorderFull() bool { return v.BorderFull(Front) }

// BackBorderFull tests the plane z = 0.
func (v *SparseVolume) BackBorderFull() bool { return v.BorderFull(Back) }

// BorderMask returns a size² bit set of the border plane on face f. Bit
// u*size+w is set when the cell at in-plane coordinate (u, w) is solid, using
// the same axes as BorderFull scans.
func (v *SparseVolume) BorderMask(f Face) *bitset.BitSet {
	mask := bitset.New(uint(v.size * v.size))
	for u := 0; u < v.size; u++ {
		for w := 0; w < v.size; w++ {
			p := borderCell(f, v.size, u, w)
			if v.IsSolid(p.X, p.Y, p.Z) {
				mask.Set(uint(u*v.size + w))
			}
		}
	}
	return mask
}

// FaceVisible reports whether face f of the cell at (x, y, z) is exposed, that
// is whether the neighbouring cell across f is not solid. The neighbour is not
// clamped: on the cube boundary it lies outside the volume and counts as empty
// unless the volume is compressed-full.
func (v *SparseVolume) FaceVisible(f Face, x, y, z int) bool {
	dx, dy, dz := f.Normal()
	return !v.IsSolid(x+dx, y+dy, z+dz)
}

func (v *SparseVolume) BlockLeftVisible(x, y, z int) bool {
	return v.FaceVisible(Left, x, y, z)
}

func (v *SparseVolume) BlockRightVisible(x, y, z int) bool {
	return v.FaceVisible(Right, x, y, z)
}

func (v *SparseVolume) BlockAboveVisible(x, y, z int) bool {
	return v.FaceVisible(Top, x, y, z)
}

func (v *SparseVolume) BlockBelowVisible(x, y, z int) bool {
	return v.FaceVisible(Bottom, x, y, z)
}

func (v *SparseVolume) BlockFrontVisible(x, y, z int) bool {
	return v.FaceVisible(Front, x, y, z)
}

func (v *SparseVolume) BlockBackVisible(x, y, z int) bool {
	return v.FaceVisible(Back, x, y, z)
}

// ExposedFaces counts the visible faces of the stored cells. A compressed-full
// volume has none inside itself and reports 0.
func (v *SparseVolume) ExposedFaces() int {
	if v.cells == nil {
		return 0
	}
	n := 0
	v.cells.All(func(p Position, _ Tag) bool {
		for _, f := range Faces {
			if v.FaceVisible(f, p.X, p.Y, p.Z) {
				n++
			}
		}
		return true
	})
	return n
}
