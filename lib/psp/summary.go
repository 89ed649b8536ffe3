package psp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds summary statistics for one table column.
type ColumnSummary struct {
	Name                string
	Min, Max, Mean, Std float64
}

// Summarize computes per-column statistics over the table. Mostly useful
// for eyeballing whether a snapshot was read with the right precision and
// units: a table full of garbage minima and maxima usually means a
// misdeclared attribute count upstream.
func (t *Table) Summarize() ([]ColumnSummary, error) {
	out := make([]ColumnSummary, 0, len(t.names))
	for _, name := range t.names {
		x, err := t.Float64s(name)
		if err != nil {
			return nil, err
		}

		s := ColumnSummary{Name: name}
		if len(x) > 0 {
			s.Min, s.Max = floats.Min(x), floats.Max(x)
			s.Mean = stat.Mean(x, nil)
			s.Std = stat.StdDev(x, nil)
		}
		out = append(out, s)
	}
	return out, nil
}

func (s ColumnSummary) String() string {
	return fmt.Sprintf("%8s: min = %12.6g max = %12.6g mean = %12.6g "+
		"std = %12.6g", s.Name, s.Min, s.Max, s.Mean, s.Std)
}
