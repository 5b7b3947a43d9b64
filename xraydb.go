// Package xraydb is an embedded, read-only reference library for X-ray
// physics over the periodic table: element metadata, absorption edges and
// emission lines, Elam/Chantler/Waasmaier-Kirfel cross-sections, Compton
// energetics, core-hole widths, ionization potentials, chemical-formula
// material properties, ion-chamber flux inversion, and crystal/mirror/
// multilayer X-ray optics.
//
// The backing data is a zstd-compressed artifact embedded in the binary
// (see internal/xdata) and is decoded exactly once per process, the first
// time any exported function is called; every call afterward, concurrent or
// not, shares the same immutable database and index maps. There is no
// mutation, no persistence, and no networking — every lookup is a pure
// function of its arguments and the loaded database.
package xraydb

import (
	"github.com/xraydb/xraydb/internal/xdata"
)

// DB is a handle to the loaded reference database. The zero value is not
// usable; obtain one with Default.
type DB struct {
	h *xdata.Handle
}

// Record type aliases. The schema lives in internal/xdata (the Blob
// Loader's concern); this package re-exports the row types under its own
// name so callers never need to import an internal package to spell a
// return type.
type (
	Element         = xdata.Element
	XrayLevel       = xdata.XrayLevel
	XrayTransition  = xdata.XrayTransition
	CosterKronigRow = xdata.CosterKronigRow
	CoreWidthRow    = xdata.CoreWidthRow
	WaasmaierRecord = xdata.WaasmaierRecord
)

// Default returns the process-wide database handle, triggering the
// one-time decompress+decode+index pipeline on the first call. A non-nil
// error here means the embedded artifact could not be loaded at all and is
// fatal for the process: no lookup can proceed without it.
func Default() (*DB, error) {
	h, err := xdata.Load()
	if err != nil {
		return nil, err
	}
	return &DB{h: h}, nil
}

// mustDefault is used by the package-level convenience wrappers. It panics
// only on the fatal first-load failure path — once
// Default has succeeded once in the process, it always succeeds again.
func mustDefault() *DB {
	db, err := Default()
	if err != nil {
		panic(err)
	}
	return db
}

// Elements returns every loaded element record, ascending by atomic number.
func (db *DB) Elements() []xdata.Element {
	out := make([]xdata.Element, len(db.h.DB.Elements))
	copy(out, db.h.DB.Elements)
	return out
}

// Elements is the package-level convenience wrapper around DB.Elements,
// using the process-wide default database.
func Elements() []xdata.Element { return mustDefault().Elements() }
