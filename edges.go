package xraydb

import "math"

// defaultGuessEdges is the candidate edge set guess_edge(E) searches when
// the caller doesn't supply one.
var defaultGuessEdges = []string{"K", "L3", "L2", "L1", "M5"}

// Edges returns every absorption-edge row for an element, keyed by IUPAC
// edge label.
func (db *DB) Edges(element string) (map[string]XrayLevel, error) {
	z, err := db.Resolve(element)
	if err != nil {
		return nil, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	rows := db.h.Index.Levels(el.Symbol)
	out := make(map[string]XrayLevel, len(rows))
	for _, r := range rows {
		out[r.Edge] = r
	}
	return out, nil
}

// Edges is the package-level convenience wrapper for Edges.
func Edges(element string) (map[string]XrayLevel, error) { return mustDefault().Edges(element) }

// Edge returns a single absorption-edge row.
func (db *DB) Edge(element, edge string) (XrayLevel, error) {
	edges, err := db.Edges(element)
	if err != nil {
		return XrayLevel{}, err
	}
	row, ok := edges[edge]
	if !ok {
		return XrayLevel{}, errUnknownEdge(element, edge)
	}
	return row, nil
}

// Edge is the package-level convenience wrapper for Edge.
func Edge(element, edge string) (XrayLevel, error) { return mustDefault().Edge(element, edge) }

// GuessEdge finds the (element, edge) pair whose absorption energy is
// closest to energy, searching over candidateEdges (defaulting to
// ["K","L3","L2","L1","M5"]) across every loaded element. Rows with a
// non-positive tabulated edge energy are skipped.
func (db *DB) GuessEdge(energy float64, candidateEdges ...string) (elementSymbol, edgeLabel string, err error) {
	if len(candidateEdges) == 0 {
		candidateEdges = defaultGuessEdges
	}
	want := make(map[string]bool, len(candidateEdges))
	for _, e := range candidateEdges {
		want[e] = true
	}

	best := math.Inf(1)
	found := false
	for _, lv := range db.h.DB.XrayLevels {
		if !want[lv.Edge] || lv.AbsorptionEdgeEV <= 0 {
			continue
		}
		d := math.Abs(lv.AbsorptionEdgeEV - energy)
		if d < best {
			best = d
			elementSymbol = lv.Element
			edgeLabel = lv.Edge
			found = true
		}
	}
	if !found {
		return "", "", errDataf("guess_edge: no tabulated edges match any of %v", candidateEdges)
	}
	return elementSymbol, edgeLabel, nil
}

// GuessEdge is the package-level convenience wrapper for GuessEdge.
func GuessEdge(energy float64, candidateEdges ...string) (string, string, error) {
	return mustDefault().GuessEdge(energy, candidateEdges...)
}
