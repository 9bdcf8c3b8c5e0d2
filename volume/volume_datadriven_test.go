package volume

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

func TestVolumeDataDriven(t *testing.T) {
	var v *SparseVolume
	datadriven.RunTest(t, "testdata/volume", func(t *testing.T, td *datadriven.TestData) string {
		var x, y, z, tag int
		scanXYZ := func() {
			td.ScanArgs(t, "x", &x)
			td.ScanArgs(t, "y", &y)
			td.ScanArgs(t, "z", &z)
		}
		switch td.Cmd {
		case "new":
			var size int
			td.ScanArgs(t, "size", &size)
			v = New(size)
			return describe(v)

		case "set":
			scanXYZ()
			td.ScanArgs(t, "tag", &tag)
			v.Set(x, y, z, Tag(tag))
			return describe(v)

		case "yrange":
			var y0, y1 int
			td.ScanArgs(t, "x", &x)
			td.ScanArgs(t, "y0", &y0)
			td.ScanArgs(t, "y1", &y1)
			td.ScanArgs(t, "z", &z)
			td.ScanArgs(t, "tag", &tag)
			if err := v.YRangeSet(x, y0, y1, z, Tag(tag)); err != nil {
				if errors.Is(err, ErrInvalidRange) {
					return "invalid range\n" + describe(v)
				}
				return err.Error()
			}
			return describe(v)

		case "fill":
			v.Fill()
			return describe(v)

		case "empty":
			v.Empty()
			return describe(v)

		case "uncompress":
			v.Uncompress()
			return describe(v)

		case "clear-modified":
			v.ClearModified()
			return describe(v)

		case "get":
			scanXYZ()
			return fmt.Sprintf("%d\n", v.Get(x, y, z))

		case "borders":
			var buf strings.Builder
			for _, f := range Faces {
				fmt.Fprintf(&buf, "%s=%t\n", f, v.BorderFull(f))
			}
			return buf.String()

		case "visible":
			scanXYZ()
			var buf strings.Builder
			for _, f := range Faces {
				fmt.Fprintf(&buf, "%s=%t\n", f, v.FaceVisible(f, x, y, z))
			}
			return buf.String()

		case "positions":
			var buf strings.Builder
			for _, p := range v.Positions() {
				fmt.Fprintf(&buf, "%s=%d\n", p, v.Get(p.X, p.Y, p.Z))
			}
			return buf.String()

		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func describe(v *SparseVolume) string {
	return fmt.Sprintf("compressed=%t full=%t empty=%t modified=%t len=%d\n",
		v.IsCompressed(), v.IsFull(), v.IsEmpty(), v.IsModified(), v.Len())
}
