package psp

// Helpers for building synthetic PSP files. Unlike guppy-style fake readers,
// these write real bytes to a temp file, because the table reader maps the
// file by name.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeComponent describes one synthetic component block. If info is empty,
// a minimal YAML info string is synthesized from name and indexing.
type fakeComponent struct {
	name     string
	indexing bool
	index    []int64
	base     [][nFixedFields]float64
	iAttrs   [][]int32
	fAttrs   [][]float64
	info     string
}

func (c *fakeComponent) infoBytes() []byte {
	if c.info != "" {
		return []byte(c.info)
	}
	return []byte(fmt.Sprintf("name: %s\nparameters:\n  indexing: %v\n",
		c.name, c.indexing))
}

func writeFloat(buf *bytes.Buffer, prec Precision, x float64) {
	if prec == SinglePrecision {
		binary.Write(buf, binary.LittleEndian, float32(x))
	} else {
		binary.Write(buf, binary.LittleEndian, x)
	}
}

func (c *fakeComponent) append(buf *bytes.Buffer, prec Precision) {
	le := binary.LittleEndian
	info := c.infoBytes()

	if prec == SinglePrecision {
		binary.Write(buf, le, [2]uint32{MagicNumber, 0})
	}
	binary.Write(buf, le, [4]uint32{
		uint32(len(c.base)), uint32(len(c.iAttrs)),
		uint32(len(c.fAttrs)), uint32(len(info)),
	})
	buf.Write(info)

	for i := range c.base {
		if c.indexing {
			binary.Write(buf, le, c.index[i])
		}
		for j := 0; j < nFixedFields; j++ {
			writeFloat(buf, prec, c.base[i][j])
		}
		for _, attr := range c.iAttrs {
			binary.Write(buf, le, attr[i])
		}
		for _, attr := range c.fAttrs {
			writeFloat(buf, prec, attr[i])
		}
	}
}

func makePSPBytes(
	time float64, total uint32, prec Precision, comps []fakeComponent,
) []byte {
	buf := &bytes.Buffer{}
	le := binary.LittleEndian
	binary.Write(buf, le, time)
	binary.Write(buf, le, total)
	binary.Write(buf, le, uint32(len(comps)))
	for i := range comps {
		comps[i].append(buf, prec)
	}
	return buf.Bytes()
}

func makePSP(
	t *testing.T, time float64, total uint32, prec Precision,
	comps []fakeComponent,
) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snap.psp")
	if err := os.WriteFile(path, makePSPBytes(time, total, prec, comps),
		0666); err != nil {
		t.Fatalf("could not write synthetic PSP file: %s", err.Error())
	}
	return path
}

// baseRows generates n deterministic rows of the eight fixed fields. Values
// are small integers so they round-trip exactly through float32.
func baseRows(n int, seed float64) [][nFixedFields]float64 {
	rows := make([][nFixedFields]float64, n)
	for i := range rows {
		for j := 0; j < nFixedFields; j++ {
			rows[i][j] = seed + float64(10*i+j)
		}
	}
	return rows
}

// baseCol extracts the j-th fixed field of every row.
func baseCol(rows [][nFixedFields]float64, j int) []float64 {
	out := make([]float64, len(rows))
	for i := range rows {
		out[i] = rows[i][j]
	}
	return out
}

func toFloat32s(x []float64) []float32 {
	out := make([]float32, len(x))
	for i := range x {
		out[i] = float32(x[i])
	}
	return out
}

// readHeaders runs the header stage against a file on disk without going
// through the File facade.
func readHeaders(
	t *testing.T, path string,
) (*SnapshotHeader, []*ComponentHeader) {
	t.Helper()
	fp, err := os.Open(path)
	if err != nil {
		t.Fatalf("could not open %s: %s", path, err.Error())
	}
	defer fp.Close()

	hd, err := readSnapshotHeader(fp)
	if err != nil {
		t.Fatalf("could not read the master header of %s: %s",
			path, err.Error())
	}
	comps, err := walkComponents(fp, hd)
	if err != nil {
		t.Fatalf("could not walk the components of %s: %s",
			path, err.Error())
	}
	return hd, comps
}
