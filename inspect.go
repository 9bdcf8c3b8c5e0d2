package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/astei/smallvolume/anvil"
	"github.com/astei/smallvolume/volume"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"gopkg.in/cheggaaa/pb.v1"
)

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "print the state of every section of one or more regions",
	ArgsUsage: "<region.mca | world/region>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "mmap", Usage: "memory map region files instead of reading them"},
		&cli.BoolFlag{Name: "progress", Usage: "show a progress bar on stderr while loading"},
	},
	Action: inspect,
}

func inspect(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("need a region file or directory to work with")
	}
	paths, err := anvil.RegionPaths(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.Newf("no region files found in %s", strings.Join(c.Args().Slice(), ", "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := anvil.LoadOptions{Mmap: c.Bool("mmap")}
	var bar *pb.ProgressBar
	if c.Bool("progress") {
		bar = pb.New(len(paths) * anvil.RegionWidth * anvil.RegionWidth)
		bar.Output = os.Stderr
		bar.ShowTimeLeft = true
		bar.Start()
		opts.OnChunk = func() { bar.Increment() }
	}
	sections, err := anvil.LoadRegions(ctx, paths, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	writeReport(os.Stdout, sections)
	return nil
}

func writeReport(w io.Writer, sections anvil.Sections) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"section", "solid", "state", "full borders", "exposed", "fingerprint"})
	for _, coord := range sections.Coords() {
		v := sections[coord]
		table.Append([]string{
			coord.String(),
			strconv.Itoa(v.SolidCount()),
			describeState(v),
			describeBorders(v),
			strconv.Itoa(v.ExposedFaces()),
			fmt.Sprintf("%016x", v.Fingerprint()),
		})
	}
	table.Render()
}

func describeState(v *volume.SparseVolume) string {
	switch {
	case v.IsCompressed():
		return "compressed"
	case v.IsFull():
		return "full"
	case v.IsEmpty():
		return "empty"
	}
	return "partial"
}

func describeBorders(v *volume.SparseVolume) string {
	var full []string
	for _, f := range volume.Faces {
		if v.BorderFull(f) {
			full = append(full, f.String())
		}
	}
	if len(full) == 0 {
		return "-"
	}
	return strings.Join(full, ",")
}
