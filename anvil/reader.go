package anvil

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

const anvilMaxOffsets = 1024
const anvilSectorSize = 4096

// RegionWidth is the number of chunk slots along each horizontal axis of a
// region file.
const RegionWidth = 32

var ErrNoChunk = errors.New("anvil: chunk not found")
var ErrInvalidChunkLength = errors.New("anvil: invalid chunk length")
var ErrInvalidCompression = errors.New("anvil: invalid compression format")

type CompressionType byte

const (
	CompressionGzip    CompressionType = 1
	CompressionDeflate CompressionType = 2
	CompressionNone    CompressionType = 3
)

// Reader reads chunks out of an Anvil region file. The reader is not safe for
// concurrent access.
type Reader struct {
	source      io.ReadSeeker
	sectorTable []int32
	Name        string
}

// NewReader creates a Reader. The ownership of the source is transferred to
// the reader; it is closed by Close if it implements io.Closer.
func NewReader(source io.ReadSeeker) (reader *Reader, err error) {
	reader = &Reader{
		source:      source,
		sectorTable: make([]int32, anvilMaxOffsets),
	}

	if named, ok := source.(interface{ Name() string }); ok {
		reader.Name = named.Name()
	}
	if err = reader.readSectorTable(); err != nil {
		return nil, errors.Wrapf(err, "reading sector table of %q", reader.Name)
	}
	return reader, nil
}

func (r *Reader) readSectorTable() error {
	if _, err := r.source.Seek(0, io.SeekStart); err != nil {
		return err
	}

	rawSectorData := make([]byte, anvilSectorSize)
	if _, err := io.ReadFull(r.source, rawSectorData); err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(rawSectorData), binary.BigEndian, r.sectorTable)
}

// ReadChunk returns a decompressed stream of the chunk in slot (x, z). The
// coordinates are relative to the region file, each in [0, RegionWidth). The
// stream holds NBT data and must be closed by the caller.
func (r *Reader) ReadChunk(x, z int) (io.ReadCloser, error) {
	if !inRegion(x, z) {
		return nil, errors.Wrapf(ErrNoChunk, "slot %d,%d is outside the region", x, z)
	}
	offset := r.sectorTable[x+z*RegionWidth]

	sectorNumber := offset >> 8
	occupiedSectors := offset & 0xff
	if sectorNumber == 0 {
		return nil, ErrNoChunk
	}

	if _, err := r.source.Seek(int64(sectorNumber)*anvilSectorSize, io.SeekStart); err != nil {
		return nil, err
	}

	sectorData := make([]byte, int(occupiedSectors)*anvilSectorSize)
	if _, err := io.ReadFull(r.source, sectorData); err != nil {
		return nil, err
	}

	sectorReader := bytes.NewReader(sectorData)
	var sectorHeader struct {
		Length      int32
		Compression CompressionType
	}
	if err := binary.Read(sectorReader, binary.BigEndian, &sectorHeader); err != nil {
		return nil, err
	}

	// The length counts the compression byte.
	if sectorHeader.Length < 1 || sectorHeader.Length > int32(len(sectorData)-4) {
		return nil, ErrInvalidChunkLength
	}

	chunkStream := io.LimitReader(sectorReader, int64(sectorHeader.Length-1))
	switch sectorHeader.Compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(chunkStream)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionDeflate:
		return zlib.NewReader(chunkStream)
	case CompressionNone:
		return io.NopCloser(chunkStream), nil
	default:
		return nil, errors.Wrapf(ErrInvalidCompression, "type %d", sectorHeader.Compression)
	}
}

// ChunkExists reports whether slot (x, z) holds a chunk. Slots outside the
// region hold nothing.
func (r *Reader) ChunkExists(x, z int) bool {
	return inRegion(x, z) && r.sectorTable[x+z*RegionWidth] != 0
}

func inRegion(x, z int) bool {
	return x >= 0 && x < RegionWidth && z >= 0 && z < RegionWidth
}

func (r *Reader) Close() error {
	if closer, ok := r.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Open opens the region file at path through the OS file API.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}
