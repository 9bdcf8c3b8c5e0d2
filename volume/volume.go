// Package volume implements a sparse container for a cube of voxel cells.
//
// A SparseVolume is either compressed-full, where every cell is solid and no
// per-cell storage exists, or sparse, where only the solid cells are stored.
// The two representations never coexist. A volume is owned by a single
// goroutine; it has no internal locking.
package volume

import (
	"github.com/cockroachdb/errors"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("volume")

// FillTag is the tag reported for every cell of a compressed-full volume, and
// the tag Uncompress materializes.
const FillTag Tag = 1

var ErrInvalidRange = errors.New("volume: a valid range must be specified")

type SparseVolume struct {
	size int
	// cells is nil exactly when the volume is compressed-full.
	cells    *cellMap
	modified bool
}

// New creates an empty volume with the given edge length. It panics if size is
// not positive.
func New(size int) *SparseVolume {
	if size <= 0 {
		panic(errors.AssertionFailedf("volume: invalid size %d", size))
	}
	return &SparseVolume{size: size, cells: newCellMap(0)}
}

func (v *SparseVolume) Size() int {
	return v.size
}

// Fill makes every cell solid and drops all per-cell storage. The volume is
// marked modified unless it was already compressed-full.
func (v *SparseVolume) Fill() {
	if v.cells == nil {
		return
	}
	v.cells = nil
	v.modified = true
}

// Empty drops every cell. The volume is marked modified unless it was already
// empty.
func (v *SparseVolume) Empty() {
	if v.IsEmpty() {
		return
	}
	v.cells = newCellMap(0)
	v.modified = true
}

// Uncompress expands a compressed-full volume into explicit storage, writing
// FillTag to every cell of the cube. It costs O(size³) and leaves the logical
// content, and therefore the modified flag, unchanged. It is a no-op on a
// sparse volume.
func (v *SparseVolume) Uncompress() {
	if v.cells != nil {
		return
	}
	modified := v.modified
	v.cells = newCellMap(v.size * v.size * v.size)
	for x := 0; x < v.size; x++ {
		for y := 0; y < v.size; y++ {
			for z := 0; z < v.size; z++ {
				v.Set(x, y, z, FillTag)
			}
		}
	}
	v.modified = modified
}

func (v *SparseVolume) IsCompressed() bool {
	return v.cells == nil
}

// IsFull reports whether every cell is solid, either because the volume is
// compressed-full or because size³ cells are stored.
func (v *SparseVolume) IsFull() bool {
	return v.cells == nil || v.cells.Len() == v.size*v.size*v.size
}

func (v *SparseVolume) IsEmpty() bool {
	return v.cells != nil && v.cells.Len() == 0
}

func (v *SparseVolume) IsModified() bool {
	return v.modified
}

// ClearModified acknowledges the current content. Nothing else clears the
// flag.
func (v *SparseVolume) ClearModified() {
	v.modified = false
}

// Len returns the number of explicitly stored cells.
func (v *SparseVolume) Len() int {
	if v.cells == nil {
		return 0
	}
	return v.cells.Len()
}

// SolidCount returns the number of solid cells in the cube.
func (v *SparseVolume) SolidCount() int {
	if v.cells == nil {
		return v.size * v.size * v.size
	}
	return v.cells.Len()
}

// Positions returns the stored cell positions in Compare order. A
// compressed-full volume stores nothing and returns nil.
func (v *SparseVolume) Positions() []Position {
	if v.cells == nil {
		return nil
	}
	return v.cells.sortedKeys()
}
