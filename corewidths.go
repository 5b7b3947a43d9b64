package xraydb

// CoreWidth returns core-hole widths for an element from the merged
// core-width table (K/L1/L2/L3 rows from the Krause-Oliver table override
// the Keski-Rahkonen-Krause table; every other row comes from
// Keski-Rahkonen-Krause). If edge is non-empty, the result has at most one
// entry.
func (db *DB) CoreWidth(element, edge string) (map[string]float64, error) {
	z, err := db.Resolve(element)
	if err != nil {
		return nil, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	rows := db.h.Index.CoreWidths(el.Symbol)
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		if edge != "" && r.Edge != edge {
			continue
		}
		out[r.Edge] = r.WidthEV
	}
	if edge != "" && len(out) == 0 {
		return nil, errUnknownEdge(element, edge)
	}
	return out, nil
}

// CoreWidth is the package-level convenience wrapper for CoreWidth.
func CoreWidth(element, edge string) (map[string]float64, error) {
	return mustDefault().CoreWidth(element, edge)
}

// IonizationPotential looks up a gas's ionization potential by
// case-insensitive name match.
func (db *DB) IonizationPotential(gas string) (float64, error) {
	row, ok := db.h.Index.IonizationPotential(gas)
	if !ok {
		return 0, errUnknownGas(gas)
	}
	return row.PotentialEV, nil
}

// IonizationPotential is the package-level convenience wrapper for
// IonizationPotential.
func IonizationPotential(gas string) (float64, error) { return mustDefault().IonizationPotential(gas) }
