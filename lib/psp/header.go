/*package psp reads PSP ("Phase-Space Protocol") snapshot files written by the
EXP basis function expansion N-body code. A PSP file is a binary container: a
small master header (simulation time, total body count, component count),
followed by one labeled component block per particle group. Each component
block carries its own sub-header, a YAML info string, and a flat array of
fixed-width per-body records. There is no table of contents, so component
headers can only be found by walking the file and computing each data block's
extent from the counts its header declares.

The public surface is the File type: Open() it, then ask for component names,
the snapshot time, or a component's Table of columns. Headers and data are
each read once, on first use, and the underlying file is never held open
between calls.
*/
package psp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MagicNumber is the sentinel EXP writes at byte 16 of single-precision
// snapshots. Any other value there means the file stores 8-byte floats; the
// format gives no way to reject garbage at this stage, and real files depend
// on the fallback, so none is attempted.
const MagicNumber = 2915019716

// Precision is the float width of a snapshot, fixed for the whole file and
// decided once while reading the master header. Its numeric value is the
// width in bytes.
type Precision int

const (
	SinglePrecision Precision = 4
	DoublePrecision Precision = 8
)

// FloatWidth returns the width in bytes of the file's float fields.
func (p Precision) FloatWidth() int { return int(p) }

func (p Precision) String() string {
	if p == SinglePrecision {
		return "single"
	}
	return "double"
}

// SnapshotHeader is the master header of a PSP file. It is immutable once
// parsed.
type SnapshotHeader struct {
	// Time is the simulation time of the snapshot.
	Time float64
	// TotalBodies is the body count summed over every component.
	TotalBodies uint32
	// ComponentCount is the number of component blocks in the file.
	ComponentCount uint32
	// Precision is derived from the magic sentinel, not stored explicitly.
	Precision Precision
}

// readSnapshotHeader parses the master header from f, which must be
// positioned at offset 0. On success the cursor is left at byte 16, the
// start of the first component header. All fields are little-endian.
func readSnapshotHeader(f io.ReadSeeker) (*SnapshotHeader, error) {
	// The precision sentinel lives at byte 16 and is probed with a seek
	// rather than consumed: byte 16 is also where the first component
	// header begins.
	if _, err := f.Seek(16, io.SeekStart); err != nil {
		return nil, err
	}

	magic := uint32(0)
	if err := binary.Read(f, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("the file ends before the precision "+
			"sentinel at byte 16: %w", ErrTruncated)
	}

	prec := DoublePrecision
	if magic == MagicNumber {
		prec = SinglePrecision
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	hd := &SnapshotHeader{Precision: prec}
	if err := binary.Read(f, binary.LittleEndian, &hd.Time); err != nil {
		return nil, fmt.Errorf("the file ends inside the master header "+
			"time field at byte 0: %w", ErrTruncated)
	}
	if err := binary.Read(f, binary.LittleEndian, &hd.TotalBodies); err != nil {
		return nil, fmt.Errorf("the file ends inside the master header "+
			"body count at byte 8: %w", ErrTruncated)
	}
	if err := binary.Read(f, binary.LittleEndian, &hd.ComponentCount); err != nil {
		return nil, fmt.Errorf("the file ends inside the master header "+
			"component count at byte 12: %w", ErrTruncated)
	}

	return hd, nil
}
