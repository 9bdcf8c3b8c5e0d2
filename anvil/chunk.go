package anvil

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/astei/smallvolume/volume"
	"github.com/cockroachdb/errors"
	"github.com/willf/bitset"
)

// SectionSize is the edge length of a chunk section, and of the volumes built
// from one.
const SectionSize = 16

const sectionVolume = SectionSize * SectionSize * SectionSize

// SectionsPerChunk is the number of sections stacked in a pre-flattening chunk.
const SectionsPerChunk = 16

var ErrInvalidSection = errors.New("anvil: invalid section")

var blank [sectionVolume]byte

type Chunk struct {
	X        int32     `nbt:"xPos"`
	Z        int32     `nbt:"zPos"`
	Sections []Section `nbt:"Sections"`
}

// Section holds one 16³ slice of a chunk. Blocks is indexed y<<8 | z<<4 | x.
type Section struct {
	Y      int8   `nbt:"Y"`
	Blocks []byte `nbt:"Blocks"`
}

type chunkRoot struct {
	Level Chunk `nbt:"Level"`
}

// SectionCoord locates a section in the world: chunk X and Z, section Y.
type SectionCoord struct {
	X, Y, Z int
}

func (c SectionCoord) Less(o SectionCoord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Z != o.Z {
		return c.Z < o.Z
	}
	return c.Y < o.Y
}

func (c SectionCoord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// DecodeChunk reads the NBT payload of a chunk.
func DecodeChunk(r io.Reader) (Chunk, error) {
	var root chunkRoot
	if err := nbt.NewDecoder(r).Decode(&root); err != nil {
		return Chunk{}, err
	}
	return root.Level, nil
}

// SectionMask returns the set of section heights present in the chunk.
func (c *Chunk) SectionMask() *bitset.BitSet {
	mask := bitset.New(SectionsPerChunk)
	for _, s := range c.Sections {
		if s.Y >= 0 && int(s.Y) < SectionsPerChunk {
			mask.Set(uint(s.Y))
		}
	}
	return mask
}

// IsBlank reports whether the section holds nothing but air.
func (s *Section) IsBlank() bool {
	return bytes.Equal(blank[:], s.Blocks)
}

// SectionVolume builds a volume from the section's block ids, writing each
// column as runs of equal ids. The returned volume is not marked modified.
func SectionVolume(s Section) (*volume.SparseVolume, error) {
	if len(s.Blocks) != sectionVolume {
		return nil, errors.Wrapf(ErrInvalidSection, "section %d has %d blocks", s.Y, len(s.Blocks))
	}
	v := volume.New(SectionSize)
	for x := 0; x < SectionSize; x++ {
		for z := 0; z < SectionSize; z++ {
			y0 := 0
			for y := 1; y <= SectionSize; y++ {
				id := s.Blocks[y0<<8|z<<4|x]
				if y < SectionSize && s.Blocks[y<<8|z<<4|x] == id {
					continue
				}
				if id != 0 {
					if err := v.YRangeSet(x, y0, y-1, z, id); err != nil {
						return nil, err
					}
				}
				y0 = y
			}
		}
	}
	v.ClearModified()
	return v, nil
}
