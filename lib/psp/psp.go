package psp

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrn/pspio/lib/log"
	"github.com/adrn/pspio/lib/units"
)

// DuplicatePolicy says what to do when two components in one file share a
// name. The EXP reference reader silently keeps the last one; whether that
// is intentional is unconfirmed upstream, so the choice is left to the
// caller instead of being hardcoded.
type DuplicatePolicy int

const (
	// LastWins keeps the later component under the shared name, at the
	// earlier component's position in the name ordering. This matches the
	// reference reader and is the default.
	LastWins DuplicatePolicy = iota
	// Reject fails the header load with ErrDuplicateComponent.
	Reject
)

// Options configures a File beyond its file name. The zero value is valid:
// no physical units, last-wins duplicate handling.
type Options struct {
	// PosUnit and VelUnit are the SI values (meters, meters per second) of
	// one simulation unit of position and velocity. Set both or neither;
	// setting exactly one fails with ErrIncompleteUnitSpec, since a unit
	// system cannot be derived from half a pair. The units package has
	// constants for the usual astronomical scales.
	PosUnit, VelUnit float64
	// Duplicates is the policy for components that share a name.
	Duplicates DuplicatePolicy
}

// File is a PSP snapshot on disk. The header scan and the data load each
// happen once, triggered by the first call that needs them; the underlying
// file is opened and closed inside each load and never held between calls.
// A File is single-owner: wrap it in your own lock if you must share one
// across goroutines.
type File struct {
	fileName string
	opt      Options
	usys     *units.System

	// Header slot. A nil hd means the headers haven't been read yet; there
	// is no transition back, so every other header field is valid iff hd
	// is non-nil.
	hd     *SnapshotHeader
	comps  []*ComponentHeader
	byName map[string]*ComponentHeader
	names  []string

	// Data slot, nil until the first table access.
	tables map[string]*Table

	// opens counts physical file opens so tests can prove loads are not
	// repeated.
	opens int
}

// Open prepares a PSP file for reading with default Options. No I/O happens
// until the first query.
func Open(fileName string) (*File, error) {
	return OpenOptions(fileName, Options{})
}

// OpenOptions is Open with explicit Options. Option validation happens
// here, before the file is ever touched.
func OpenOptions(fileName string, opt Options) (*File, error) {
	if (opt.PosUnit == 0) != (opt.VelUnit == 0) {
		return nil, fmt.Errorf("a position unit was given without a "+
			"velocity unit, or vice versa; the pair can only be "+
			"interpreted together: %w", ErrIncompleteUnitSpec)
	}

	f := &File{fileName: fileName, opt: opt}
	if opt.PosUnit != 0 {
		f.usys = units.Derive(opt.PosUnit, opt.VelUnit)
	}
	return f, nil
}

// Units returns the unit system derived from the Options unit pair, or nil
// if the File was opened without units.
func (f *File) Units() *units.System { return f.usys }

// ensureHeaders runs the header scan if it hasn't run yet: master header,
// then the sequential component walk. Any failure in here means the file
// isn't usable as PSP at all, so everything is wrapped in ErrNotPSP on top
// of its specific kind.
func (f *File) ensureHeaders() error {
	if f.hd != nil {
		return nil
	}

	fp, err := os.Open(f.fileName)
	if err != nil {
		return fmt.Errorf("%s cannot be opened (%v): %w",
			f.fileName, err, ErrNotPSP)
	}
	defer fp.Close()
	f.opens++

	hd, err := readSnapshotHeader(fp)
	if err != nil {
		return fmt.Errorf("%s is not a valid PSP file: %w: %w",
			f.fileName, err, ErrNotPSP)
	}
	comps, err := walkComponents(fp, hd)
	if err != nil {
		return fmt.Errorf("%s is not a valid PSP file: %w: %w",
			f.fileName, err, ErrNotPSP)
	}

	byName := make(map[string]*ComponentHeader, len(comps))
	names := make([]string, 0, len(comps))
	for _, c := range comps {
		if _, ok := byName[c.Name]; ok {
			if f.opt.Duplicates == Reject {
				return fmt.Errorf("%s has more than one component named "+
					"'%s': %w: %w",
					f.fileName, c.Name, ErrDuplicateComponent, ErrNotPSP)
			}
			log.Warnf("%s has more than one component named '%s'; "+
				"keeping the later one", f.fileName, c.Name)
			byName[c.Name] = c
			continue
		}
		byName[c.Name] = c
		names = append(names, c.Name)
	}

	f.hd, f.comps, f.byName, f.names = hd, comps, byName, names
	log.Verbosef("%s: t = %g, %d bodies in %d components (%s precision)",
		f.fileName, hd.Time, hd.TotalBodies, hd.ComponentCount, hd.Precision)

	return nil
}

// ensureData materializes every component's table if that hasn't happened
// yet. Loading headers first is implied. After the load, the per-component
// body counts must sum to the master header's total; a file that fails that
// check is structurally broken and no tables are exposed.
func (f *File) ensureData() error {
	if f.tables != nil {
		return nil
	}
	if err := f.ensureHeaders(); err != nil {
		return err
	}

	tables := make(map[string]*Table, len(f.names))
	for _, name := range f.names {
		c := f.byName[name]
		f.opens++
		tbl, err := readTable(f.fileName, c, f.hd.Precision)
		if err != nil {
			return err
		}
		tables[name] = tbl
		log.Verbosef("%s: read %d bodies of component '%s'",
			f.fileName, c.Bodies, name)
	}

	total := uint64(0)
	for _, c := range f.comps {
		total += uint64(c.Bodies)
	}
	if total != uint64(f.hd.TotalBodies) {
		return fmt.Errorf("the components of %s hold %d bodies in total, "+
			"but the master header says %d: %w",
			f.fileName, total, f.hd.TotalBodies, ErrBodyCountMismatch)
	}

	f.tables = tables
	return nil
}

// Header returns the master header, reading it on first use.
func (f *File) Header() (*SnapshotHeader, error) {
	if err := f.ensureHeaders(); err != nil {
		return nil, err
	}
	return f.hd, nil
}

// Time returns the snapshot's simulation time.
func (f *File) Time() (float64, error) {
	if err := f.ensureHeaders(); err != nil {
		return 0, err
	}
	return f.hd.Time, nil
}

// TotalBodies returns the body count summed over all components, as
// declared by the master header.
func (f *File) TotalBodies() (uint64, error) {
	if err := f.ensureHeaders(); err != nil {
		return 0, err
	}
	return uint64(f.hd.TotalBodies), nil
}

// ComponentNames returns the component names in on-disk order.
func (f *File) ComponentNames() ([]string, error) {
	if err := f.ensureHeaders(); err != nil {
		return nil, err
	}
	return f.names, nil
}

// Component returns the named component's header.
func (f *File) Component(name string) (*ComponentHeader, error) {
	if err := f.ensureHeaders(); err != nil {
		return nil, err
	}
	c, ok := f.byName[name]
	if !ok {
		return nil, f.notFound(name)
	}
	return c, nil
}

// Table returns the named component's materialized table, triggering the
// one-time data load. Repeated calls return the same Table without touching
// the file again.
func (f *File) Table(name string) (*Table, error) {
	if err := f.ensureData(); err != nil {
		return nil, err
	}
	tbl, ok := f.tables[name]
	if !ok {
		return nil, f.notFound(name)
	}
	return tbl, nil
}

func (f *File) notFound(name string) error {
	return fmt.Errorf("%s has no component named '%s' (components: %s): %w",
		f.fileName, name, f.names, ErrComponentNotFound)
}

// String renders a one-line description, e.g.
// <PSP 1100 bodies; 2 components: "dark", "star">. It never triggers a
// load.
func (f *File) String() string {
	if f.hd == nil {
		return fmt.Sprintf("<PSP %s (headers not read)>", f.fileName)
	}
	quoted := make([]string, len(f.names))
	for i := range f.names {
		quoted[i] = fmt.Sprintf("%q", f.names[i])
	}
	return fmt.Sprintf("<PSP %d bodies; %d components: %s>",
		f.hd.TotalBodies, len(f.names), strings.Join(quoted, ", "))
}
