package main

import (
	"bytes"
	"testing"

	"github.com/astei/smallvolume/anvil"
	"github.com/astei/smallvolume/volume"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	v := volume.New(2)
	require.Equal(t, "empty", describeState(v))
	require.Equal(t, "-", describeBorders(v))

	v.Set(0, 0, 0, 1)
	v.Set(1, 0, 0, 1)
	v.Set(0, 0, 1, 1)
	v.Set(1, 0, 1, 1)
	require.Equal(t, "partial", describeState(v))
	require.Equal(t, "bottom", describeBorders(v))

	v.Fill()
	require.Equal(t, "compressed", describeState(v))
	require.Equal(t, "top,bottom,left,right,front,back", describeBorders(v))

	v.Uncompress()
	require.Equal(t, "full", describeState(v))
}

func TestWriteReport(t *testing.T) {
	a := volume.New(anvil.SectionSize)
	require.NoError(t, a.YRangeSet(3, 0, 15, 4, 9))
	b := volume.New(anvil.SectionSize)
	b.Fill()

	var buf bytes.Buffer
	writeReport(&buf, anvil.Sections{
		{X: 1, Y: 0, Z: 2}: a,
		{X: 0, Y: 5, Z: 0}: b,
	})
	out := buf.String()
	require.Contains(t, out, "FINGERPRINT")
	require.Contains(t, out, "1,0,2")
	require.Contains(t, out, "compressed")
	require.Contains(t, out, "4096")
	// A lone column hides only its internal faces.
	require.Contains(t, out, " 66 ")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("0,5,0")), bytes.Index(buf.Bytes(), []byte("1,0,2")))
}
