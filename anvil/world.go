package anvil

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/astei/smallvolume/volume"
	"github.com/cockroachdb/errors"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"
)

var log = logging.Logger("anvil")

// Sections maps every non-blank section of a world to its volume.
type Sections map[SectionCoord]*volume.SparseVolume

// Coords returns the section coordinates in X, Z, Y order.
func (s Sections) Coords() []SectionCoord {
	keys := make([]SectionCoord, 0, len(s))
	for coord := range s {
		keys = append(keys, coord)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}

type LoadOptions struct {
	// Mmap maps region files into memory instead of reading them.
	Mmap bool
	// OnChunk, if set, is called once for every chunk slot visited. It may be
	// called from several goroutines at once.
	OnChunk func()
}

// LoadRegion reads every chunk of a region and builds a volume for each
// section that is not entirely air.
func LoadRegion(ctx context.Context, reader *Reader, opts LoadOptions) (Sections, error) {
	sections := make(Sections)
	for x := 0; x < RegionWidth; x++ {
		for z := 0; z < RegionWidth; z++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := loadChunk(reader, x, z, sections); err != nil {
				return nil, err
			}
			if opts.OnChunk != nil {
				opts.OnChunk()
			}
		}
	}
	return sections, nil
}

func loadChunk(reader *Reader, x, z int, into Sections) error {
	if !reader.ChunkExists(x, z) {
		return nil
	}
	stream, err := reader.ReadChunk(x, z)
	if err != nil {
		return errors.Wrapf(err, "could not read chunk %d,%d in %s", x, z, reader.Name)
	}
	chunk, err := DecodeChunk(stream)
	_ = stream.Close()
	if err != nil {
		return errors.Wrapf(err, "could not deserialize chunk %d,%d in %s", x, z, reader.Name)
	}

	loaded := 0
	for _, section := range chunk.Sections {
		if section.IsBlank() {
			continue
		}
		v, err := SectionVolume(section)
		if err != nil {
			return errors.Wrapf(err, "chunk %d,%d in %s", x, z, reader.Name)
		}
		into[SectionCoord{X: int(chunk.X), Y: int(section.Y), Z: int(chunk.Z)}] = v
		loaded++
	}
	log.Debugf("chunk %d,%d has %d sections, %d loaded. Raw bitmask: %s",
		chunk.X, chunk.Z, len(chunk.Sections), loaded, chunk.SectionMask().String())
	return nil
}

// LoadRegions loads several region files concurrently and merges their
// sections. The first failure cancels the remaining loads.
func LoadRegions(ctx context.Context, paths []string, opts LoadOptions) (Sections, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan Sections, len(paths))
	for _, path := range paths {
		g.Go(func() error {
			reader, err := OpenRegion(path, opts.Mmap)
			if err != nil {
				return err
			}
			defer reader.Close()

			sections, err := LoadRegion(ctx, reader, opts)
			if err != nil {
				return err
			}
			log.Infof("loaded %d sections from %s", len(sections), path)
			results <- sections
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	all := make(Sections)
	for sections := range results {
		for coord, v := range sections {
			all[coord] = v
		}
	}
	log.Infof("discovered %d sections in %d regions", len(all), len(paths))
	return all, nil
}

// RegionPaths expands directories into the region files they hold. Other
// paths are returned unchanged.
func RegionPaths(roots []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".mca") {
				log.Debugf("discovered %s", entry.Name())
				paths = append(paths, filepath.Join(root, entry.Name()))
			}
		}
	}
	return paths, nil
}
