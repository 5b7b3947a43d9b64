package xraydb

import "strconv"

// Resolve implements the element registry's identifier resolution chain:
// integer Z in [1,118], exact symbol, lowercase symbol, exact name,
// lowercase name, in that order. The first match wins.
func (db *DB) Resolve(id string) (int, error) {
	if z, err := strconv.Atoi(id); err == nil {
		if _, ok := db.h.Index.ElementByZ(z); ok {
			return z, nil
		}
		return 0, errUnknownElement(id)
	}
	if z, ok := db.h.Index.ResolveZ(id); ok {
		return z, nil
	}
	return 0, errUnknownElement(id)
}

// Resolve is the package-level convenience wrapper for Resolve.
func Resolve(id string) (int, error) { return mustDefault().Resolve(id) }

// AtomicNumber is an alias for Resolve kept for readers coming from the
// upstream Python/Rust APIs, where this entry point is named
// atomic_number.
func (db *DB) AtomicNumber(id string) (int, error) { return db.Resolve(id) }

// AtomicNumber is the package-level convenience wrapper for AtomicNumber.
func AtomicNumber(id string) (int, error) { return mustDefault().AtomicNumber(id) }

// Element returns the canonical element record for an identifier (symbol,
// name, or atomic number as a string).
func (db *DB) Element(id string) (Element, error) {
	z, err := db.Resolve(id)
	if err != nil {
		return Element{}, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	return el, nil
}

// Lookup is the package-level convenience wrapper for DB.Element. It is
// named Lookup rather than Element at package scope because Element is
// already the exported record type.
func Lookup(id string) (Element, error) { return mustDefault().Element(id) }

// Elements (method) is declared in xraydb.go; Elements (func) wraps it.
