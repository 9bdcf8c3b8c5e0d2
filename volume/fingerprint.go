package volume

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint digests the logical content of the volume: its representation,
// size and every stored cell in Compare order. Volumes with the same content
// and representation have the same fingerprint regardless of the order the
// cells were written in.
func (v *SparseVolume) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [25]byte
	if v.cells == nil {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint64(buf[1:], uint64(v.size))
	_, _ = d.Write(buf[:9])
	for _, p := range v.Positions() {
		t, _ := v.cells.Get(p)
		binary.LittleEndian.PutUint64(buf[0:], uint64(p.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(p.Y))
		binary.LittleEndian.PutUint64(buf[16:], uint64(p.Z))
		buf[24] = t
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
