package psp

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/exp/mmap"
)

// Table is one component's materialized data: an ordered set of named
// columns, each Len() values long. Every column is an owned contiguous
// slice; mutating one touches neither the file nor any other component.
type Table struct {
	names []string
	cols  map[string]interface{}
	n     int
}

// Names returns the column names in record order.
func (t *Table) Names() []string { return t.names }

// Len returns the number of rows, i.e. the component's body count.
func (t *Table) Len() int { return t.n }

// Col returns the column with the given name. The concrete type is
// []int64 for the index column, []int32 for i_attr columns, and []float32
// or []float64 for everything else, matching the file's precision.
func (t *Table) Col(name string) (interface{}, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("the table has no column '%s' (columns: "+
			"%s)", name, t.names)
	}
	return col, nil
}

// Float64s returns the column widened to float64, copying if the stored
// type is narrower. Handy for feeding columns to numeric code that doesn't
// care about the file's precision.
func (t *Table) Float64s(name string) ([]float64, error) {
	col, err := t.Col(name)
	if err != nil {
		return nil, err
	}

	switch x := col.(type) {
	case []float64:
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	case []float32:
		out := make([]float64, len(x))
		for i := range x {
			out[i] = float64(x[i])
		}
		return out, nil
	case []int32:
		out := make([]float64, len(x))
		for i := range x {
			out[i] = float64(x[i])
		}
		return out, nil
	case []int64:
		out := make([]float64, len(x))
		for i := range x {
			out[i] = float64(x[i])
		}
		return out, nil
	}
	panic("(Supposedly) impossible column type")
}

// column is one entry of a component's record layout: a name, a scalar
// type, and a byte offset within the record.
type column struct {
	name   string
	typ    string // "i64", "i32", "f32", or "f64"
	offset int64
}

var fixedFieldNames = [nFixedFields]string{
	"m", "x", "y", "z", "vx", "vy", "vz", "potE",
}

// componentColumns derives the record layout of a component: the optional
// index column, the eight fixed float fields, then the integer and float
// attribute columns. Offsets are the running sum of preceding widths.
func componentColumns(c *ComponentHeader, prec Precision) []column {
	floatType := "f64"
	if prec == SinglePrecision {
		floatType = "f32"
	}

	cols := []column{}
	off := int64(0)
	if c.Indexing {
		cols = append(cols, column{"index", "i64", off})
		off += 8
	}
	for _, name := range fixedFieldNames {
		cols = append(cols, column{name, floatType, off})
		off += int64(prec.FloatWidth())
	}
	for i := 0; i < int(c.IntAttrs); i++ {
		cols = append(cols, column{fmt.Sprintf("i_attr%d", i), "i32", off})
		off += 4
	}
	for i := 0; i < int(c.FloatAttrs); i++ {
		cols = append(cols, column{fmt.Sprintf("f_attr%d", i), floatType, off})
		off += int64(prec.FloatWidth())
	}

	return cols
}

// readTable materializes one component's Table. The data block is read
// through a transient read-only memory mapping, falling back to plain
// pread-style access if the platform won't map the file. The mapping is
// released before readTable returns on every path, success or failure.
func readTable(
	fileName string, c *ComponentHeader, prec Precision,
) (tbl *Table, err error) {
	info, err := os.Stat(fileName)
	if err != nil {
		return nil, err
	}
	if c.DataEnd > info.Size() {
		return nil, fmt.Errorf("the data block of component '%s' would end "+
			"at byte %d, but %s only has %d bytes: %w",
			c.Name, c.DataEnd, fileName, info.Size(), ErrOutOfRange)
	}

	var src io.ReaderAt
	var closer io.Closer
	if m, merr := mmap.Open(fileName); merr == nil {
		src, closer = m, m
	} else {
		fp, oerr := os.Open(fileName)
		if oerr != nil {
			return nil, oerr
		}
		src, closer = fp, fp
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cols := componentColumns(c, prec)
	recSize := c.RecordSize(prec)
	n := int(c.Bodies)

	tbl = &Table{
		names: make([]string, len(cols)),
		cols:  make(map[string]interface{}, len(cols)),
		n:     n,
	}
	for i := range cols {
		tbl.names[i] = cols[i].name
		switch cols[i].typ {
		case "i64":
			tbl.cols[cols[i].name] = make([]int64, n)
		case "i32":
			tbl.cols[cols[i].name] = make([]int32, n)
		case "f32":
			tbl.cols[cols[i].name] = make([]float32, n)
		case "f64":
			tbl.cols[cols[i].name] = make([]float64, n)
		}
	}

	rec := make([]byte, recSize)
	le := binary.LittleEndian
	for i := 0; i < n; i++ {
		if _, err := src.ReadAt(rec, c.DataStart+int64(i)*recSize); err != nil {
			// The Stat() check above makes this unreachable unless the
			// file shrank under us.
			return nil, fmt.Errorf("record %d of component '%s' at byte "+
				"%d could not be read: %w",
				i, c.Name, c.DataStart+int64(i)*recSize, ErrTruncated)
		}

		for j := range cols {
			b := rec[cols[j].offset:]
			switch col := tbl.cols[cols[j].name].(type) {
			case []int64:
				col[i] = int64(le.Uint64(b))
			case []int32:
				col[i] = int32(le.Uint32(b))
			case []float32:
				col[i] = math.Float32frombits(le.Uint32(b))
			case []float64:
				col[i] = math.Float64frombits(le.Uint64(b))
			}
		}
	}

	return tbl, nil
}
