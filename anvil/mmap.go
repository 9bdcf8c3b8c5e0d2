package anvil

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	mmap "github.com/edsrzf/mmap-go"
)

// mappedFile serves a read-only memory mapping of a region file as an
// io.ReadSeeker.
type mappedFile struct {
	*bytes.Reader
	data mmap.MMap
	file *os.File
}

func openMapped(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if stat.Size() < anvilSectorSize {
		_ = f.Close()
		return nil, errors.Newf("anvil: %s is too small to be a region file", path)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &mappedFile{Reader: bytes.NewReader(data), data: data, file: f}, nil
}

func (m *mappedFile) Name() string {
	return m.file.Name()
}

func (m *mappedFile) Close() error {
	if err := m.data.Unmap(); err != nil {
		_ = m.file.Close()
		return err
	}
	return m.file.Close()
}

// OpenRegion opens the region file at path, memory mapping it when useMmap is
// set.
func OpenRegion(path string, useMmap bool) (*Reader, error) {
	if !useMmap {
		return Open(path)
	}
	m, err := openMapped(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(m)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return r, nil
}
