package volume

import (
	"sort"

	"github.com/cockroachdb/swiss"
)

// Tag is a cell's type. Zero means the cell is empty.
type Tag = byte

func positionHash(p *Position, seed uintptr) uintptr {
	return p.Hash(seed)
}

var cellMapOptions = []swiss.Option[Position, Tag]{
	swiss.WithHash[Position, Tag](positionHash),
}

// cellMap holds the solid cells of a sparse volume. Absent keys are empty.
type cellMap struct {
	swiss.Map[Position, Tag]
}

func newCellMap(initialCapacity int) *cellMap {
	m := &cellMap{}
	m.Init(initialCapacity, cellMapOptions...)
	return m
}

func (m *cellMap) has(p Position) bool {
	_, ok := m.Get(p)
	return ok
}

// sortedKeys returns every stored position in Compare order.
func (m *cellMap) sortedKeys() []Position {
	keys := make([]Position, 0, m.Len())
	m.All(func(p Position, _ Tag) bool {
		keys = append(keys, p)
		return true
	})
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
