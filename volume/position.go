package volume

import "fmt"

// Position is a cell coordinate inside a volume. Any integer triple is a valid
// Position; range policy belongs to the volume, not the key.
type Position struct {
	X, Y, Z int
}

func Pos(x, y, z int) Position {
	return Position{X: x, Y: y, Z: z}
}

// Compare orders positions lexicographically by X, then Y, then Z. It returns
// -1, 0 or +1.
func (p Position) Compare(o Position) int {
	switch {
	case p.X != o.X:
		return cmpInt(p.X, o.X)
	case p.Y != o.Y:
		return cmpInt(p.Y, o.Y)
	default:
		return cmpInt(p.Z, o.Z)
	}
}

func (p Position) Less(o Position) bool {
	return p.Compare(o) < 0
}

// Hash mixes the three axes with large odd multipliers so that neighbouring
// cells land in unrelated buckets. It is a pure function of the position and
// the seed.
func (p Position) Hash(seed uintptr) uintptr {
	const m = 11400714819323198485
	h := uint64(seed)
	h ^= uint64(p.X) * 0x9e3779b185ebca87
	h = (h ^ h>>29) * m
	h ^= uint64(p.Y) * 0xc2b2ae3d27d4eb4f
	h = (h ^ h>>29) * m
	h ^= uint64(p.Z) * 0x165667b19e3779f9
	h = (h ^ h>>32) * m
	return uintptr(h ^ h>>29)
}

// Offset returns the position moved by the given deltas.
func (p Position) Offset(dx, dy, dz int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
