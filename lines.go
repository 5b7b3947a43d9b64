package xraydb

// LinesQuery customizes Lines. The zero value of LinesQuery applies no
// filtering.
type LinesQuery struct {
	InitialLevel      string  // filter to this initial level, if non-empty
	ExcitationEnergy  float64 // if HasExcitationEnergy, drop transitions whose initial level's edge exceeds this energy
	HasExcitationEnergy bool
}

// Lines returns every emission line for an element, keyed by Siegbahn
// label, optionally filtered by initial level and/or excitation energy:
// a transition is dropped if q.InitialLevel is set and
// doesn't match, or if q.HasExcitationEnergy and the transition's initial
// level's absorption edge exceeds q.ExcitationEnergy.
func (db *DB) Lines(element string, q LinesQuery) (map[string]XrayTransition, error) {
	z, err := db.Resolve(element)
	if err != nil {
		return nil, err
	}
	el, _ := db.h.Index.ElementByZ(z)

	var edgeEnergy map[string]float64
	if q.HasExcitationEnergy {
		edgeEnergy = make(map[string]float64)
		for _, lv := range db.h.Index.Levels(el.Symbol) {
			edgeEnergy[lv.Edge] = lv.AbsorptionEdgeEV
		}
	}

	out := make(map[string]XrayTransition)
	for _, tr := range db.h.Index.Transitions(el.Symbol) {
		if q.InitialLevel != "" && tr.InitialLevel != q.InitialLevel {
			continue
		}
		if q.HasExcitationEnergy {
			if ev, ok := edgeEnergy[tr.InitialLevel]; ok && ev > q.ExcitationEnergy {
				continue
			}
		}
		out[tr.SiegbahnSymbol] = tr
	}
	return out, nil
}

// Lines is the package-level convenience wrapper for Lines.
func Lines(element string, q LinesQuery) (map[string]XrayTransition, error) {
	return mustDefault().Lines(element, q)
}

// CKProbability returns the Coster-Kronig transition probability between
// initial and final levels for an element: the direct probability, or the
// total probability if total is true.
func (db *DB) CKProbability(element, initial, final string, total bool) (float64, error) {
	z, err := db.Resolve(element)
	if err != nil {
		return 0, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	for _, row := range db.h.Index.CosterKronigRows(el.Symbol) {
		if row.InitialLevel == initial && row.FinalLevel == final {
			if total {
				return row.TotalProbability, nil
			}
			return row.DirectProbability, nil
		}
	}
	return 0, errUnknownEdge(element, initial+"-"+final)
}

// CKProbability is the package-level convenience wrapper for CKProbability.
func CKProbability(element, initial, final string, total bool) (float64, error) {
	return mustDefault().CKProbability(element, initial, final, total)
}
