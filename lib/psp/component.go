package psp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adrn/pspio/lib/meta"
)

// nFixedFields is the number of per-body float fields every component
// carries: m, x, y, z, vx, vy, vz, potE.
const nFixedFields = 8

// ComponentHeader describes one component block of a snapshot. It is
// immutable once parsed.
type ComponentHeader struct {
	// Name is the component's label from its info string.
	Name string
	// Index is the component's 0-based position in on-disk order. It is
	// unrelated to any per-body index column inside the data.
	Index int
	// Indexing reports whether each record is prefixed with an 8-byte
	// integer body identifier.
	Indexing bool
	// Bodies is the number of records in the component's data block.
	Bodies uint32
	// IntAttrs and FloatAttrs are the counts of extra per-body integer and
	// float attribute columns.
	IntAttrs, FloatAttrs uint32
	// Meta is the component's decoded info string. The fields the format
	// requires (name, parameters.indexing) are already validated; anything
	// else EXP chose to record is reachable through it.
	Meta *meta.Tree
	// DataStart and DataEnd are the file-absolute byte extent of the
	// component's data block. DataEnd - DataStart is always
	// Bodies * record size.
	DataStart, DataEnd int64
}

// RecordSize returns the packed byte width of one of the component's
// records under the given precision.
func (c *ComponentHeader) RecordSize(prec Precision) int64 {
	size := int64(0)
	if c.Indexing {
		size += 8
	}
	size += int64(prec.FloatWidth()) * nFixedFields
	size += 4 * int64(c.IntAttrs)
	size += int64(prec.FloatWidth()) * int64(c.FloatAttrs)
	return size
}

// walkComponents parses every component header from f, whose cursor must sit
// immediately after the master header, i.e. at byte 16. The walk is strictly
// sequential: a component's header position is only known once the previous
// component's data extent has been computed and skipped, because the format
// has no table of contents.
func walkComponents(f io.ReadSeeker, hd *SnapshotHeader) ([]*ComponentHeader, error) {
	comps := make([]*ComponentHeader, 0, hd.ComponentCount)
	for i := 0; i < int(hd.ComponentCount); i++ {
		c, err := readComponentHeader(f, hd.Precision, i)
		if err != nil {
			return nil, err
		}
		if _, err := f.Seek(c.DataEnd, io.SeekStart); err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// readComponentHeader parses the component header at the cursor and computes
// the extent of the data block that follows it. The cursor is left at
// DataStart, not DataEnd; the caller does the skipping.
func readComponentHeader(
	f io.ReadSeeker, prec Precision, idx int,
) (*ComponentHeader, error) {
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	// Single-precision files lead each component header with two extra
	// words (the precision sentinel and a reserved field); only the last
	// four matter either way.
	counts := [4]uint32{}
	if prec == SinglePrecision {
		padded := [6]uint32{}
		err = binary.Read(f, binary.LittleEndian, &padded)
		counts[0], counts[1], counts[2], counts[3] =
			padded[2], padded[3], padded[4], padded[5]
	} else {
		err = binary.Read(f, binary.LittleEndian, &counts)
	}
	if err != nil {
		return nil, fmt.Errorf("the file ends inside the header of "+
			"component %d at byte %d: %w", idx, pos, ErrTruncated)
	}

	bodies, intAttrs, floatAttrs, infoLen :=
		counts[0], counts[1], counts[2], counts[3]

	info := make([]byte, infoLen)
	if _, err := io.ReadFull(f, info); err != nil {
		return nil, fmt.Errorf("the file ends inside the %d-byte info "+
			"string of component %d at byte %d: %w",
			infoLen, idx, pos, ErrTruncated)
	}

	tree, err := meta.Decode(info)
	if err != nil {
		return nil, fmt.Errorf("component %d at byte %d: %v: %w",
			idx, pos, err, ErrMissingField)
	}
	name, err := tree.Str("name")
	if err != nil {
		return nil, fmt.Errorf("component %d at byte %d: %v: %w",
			idx, pos, err, ErrMissingField)
	}
	indexing, err := tree.Bool("parameters.indexing")
	if err != nil {
		return nil, fmt.Errorf("component '%s' at byte %d: %v: %w",
			name, pos, err, ErrMissingField)
	}

	dataStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	c := &ComponentHeader{
		Name: name, Index: idx, Indexing: indexing,
		Bodies: bodies, IntAttrs: intAttrs, FloatAttrs: floatAttrs,
		Meta: tree, DataStart: dataStart,
	}
	c.DataEnd = dataStart + int64(bodies)*c.RecordSize(prec)

	return c, nil
}
