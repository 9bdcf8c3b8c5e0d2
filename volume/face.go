package volume

import "fmt"

// Face names one side of a cell, or of the whole cube.
type Face uint8

const (
	Top Face = iota
	Bottom
	Left
	Right
	Front
	Back
)

// Faces lists every face in declaration order.
var Faces = [...]Face{Top, Bottom, Left, Right, Front, Back}

var faceNames = [...]string{
	Top:    "top",
	Bottom: "bottom",
	Left:   "left",
	Right:  "right",
	Front:  "front",
	Back:   "back",
}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("face(%d)", uint8(f))
}

// Normal returns the unit step from a cell to its neighbour across f.
func (f Face) Normal() (dx, dy, dz int) {
	switch f {
	case Top:
		return 0, 1, 0
	case Bottom:
		return 0, -1, 0
	case Left:
		return -1, 0, 0
	case Right:
		return 1, 0, 0
	case Front:
		return 0, 0, 1
	case Back:
		return 0, 0, -1
	}
	panic(fmt.Sprintf("volume: unknown face %d", uint8(f)))
}

// borderCell maps the in-plane coordinate (u, v) of the border plane on face
// f to a cube position. u and v follow the outer and inner scan axes: (x, z)
// for top and bottom, (y, z) for left and right, (x, y) for front and back.
func borderCell(f Face, size, u, v int) Position {
	switch f {
	case Top:
		return Pos(u, size-1, v)
	case Bottom:
		return Pos(u, 0, v)
	case Left:
		return Pos(0, u, v)
	case Right:
		return Pos(size-1, u, v)
	case Front:
		return Pos(u, v, size-1)
	case Back:
		return Pos(u, v, 0)
	}
	panic(fmt.Sprintf("volume: unknown face %d", uint8(f)))
}
