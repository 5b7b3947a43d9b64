package xdata

import "strings"

// Index holds the O(1) lookup maps built once over a Database at load time.
// Every map is immutable after BuildIndex returns.
type Index struct {
	db *Database

	symbolToZ     map[string]int
	lowerSymToZ   map[string]int
	nameToZ       map[string]int
	lowerNameToZ  map[string]int
	zToElementIdx map[int]int

	symToChantlerIdx map[string]int
	symToPhotoIdx    map[string]int
	symToScatterIdx  map[string]int

	ionToWaasmaierIdx map[string]int
	symToWaasmaierIdx map[string][]int

	levelsByElement      map[string][]int
	transitionsByElement map[string][]int
	ckByElement          map[string][]int
	coreWidthsByElement  map[string][]int
	ionizationByLowerGas map[string]int
}

// DB returns the underlying database the index was built over.
func (ix *Index) DB() *Database { return ix.db }

// BuildIndex constructs all derived lookup maps over db.
func BuildIndex(db *Database) *Index {
	ix := &Index{
		db:                   db,
		symbolToZ:            make(map[string]int, len(db.Elements)),
		lowerSymToZ:          make(map[string]int, len(db.Elements)),
		nameToZ:              make(map[string]int, len(db.Elements)),
		lowerNameToZ:         make(map[string]int, len(db.Elements)),
		zToElementIdx:        make(map[int]int, len(db.Elements)),
		symToChantlerIdx:     make(map[string]int, len(db.Chantler)),
		symToPhotoIdx:        make(map[string]int, len(db.Photoabsorption)),
		symToScatterIdx:      make(map[string]int, len(db.Scattering)),
		ionToWaasmaierIdx:    make(map[string]int, len(db.Waasmaier)),
		symToWaasmaierIdx:    make(map[string][]int, len(db.Waasmaier)),
		levelsByElement:      make(map[string][]int),
		transitionsByElement: make(map[string][]int),
		ckByElement:          make(map[string][]int),
		coreWidthsByElement:  make(map[string][]int),
		ionizationByLowerGas: make(map[string]int, len(db.IonizationPotentials)),
	}

	for i, el := range db.Elements {
		ix.symbolToZ[el.Symbol] = el.Z
		ix.lowerSymToZ[strings.ToLower(el.Symbol)] = el.Z
		ix.nameToZ[el.Name] = el.Z
		ix.lowerNameToZ[strings.ToLower(el.Name)] = el.Z
		ix.zToElementIdx[el.Z] = i
	}
	for i, c := range db.Chantler {
		ix.symToChantlerIdx[c.Element] = i
	}
	for i, p := range db.Photoabsorption {
		ix.symToPhotoIdx[p.Element] = i
	}
	for i, s := range db.Scattering {
		ix.symToScatterIdx[s.Element] = i
	}
	for i, w := range db.Waasmaier {
		ix.ionToWaasmaierIdx[w.Ion] = i
		ix.symToWaasmaierIdx[w.Element] = append(ix.symToWaasmaierIdx[w.Element], i)
	}
	for i, lv := range db.XrayLevels {
		ix.levelsByElement[lv.Element] = append(ix.levelsByElement[lv.Element], i)
	}
	for i, tr := range db.XrayTransitions {
		ix.transitionsByElement[tr.Element] = append(ix.transitionsByElement[tr.Element], i)
	}
	for i, ck := range db.CosterKronig {
		ix.ckByElement[ck.Element] = append(ix.ckByElement[ck.Element], i)
	}
	for i, cw := range db.CoreWidthsMerged {
		ix.coreWidthsByElement[cw.Element] = append(ix.coreWidthsByElement[cw.Element], i)
	}
	for i, ip := range db.IonizationPotentials {
		ix.ionizationByLowerGas[strings.ToLower(ip.Gas)] = i
	}
	return ix
}

// ResolveZ implements the element-identifier fallback chain: exact symbol,
// lowercase symbol, exact name, lowercase name. Integer-string parsing is
// handled by the caller (the registry), which needs element count bounds
// checking that this package doesn't have an opinion about.
func (ix *Index) ResolveZ(id string) (int, bool) {
	if z, ok := ix.symbolToZ[id]; ok {
		return z, true
	}
	if z, ok := ix.lowerSymToZ[strings.ToLower(id)]; ok {
		return z, true
	}
	if z, ok := ix.nameToZ[id]; ok {
		return z, true
	}
	if z, ok := ix.lowerNameToZ[strings.ToLower(id)]; ok {
		return z, true
	}
	return 0, false
}

// ElementByZ returns the element record for Z, if loaded.
func (ix *Index) ElementByZ(z int) (Element, bool) {
	i, ok := ix.zToElementIdx[z]
	if !ok {
		return Element{}, false
	}
	return ix.db.Elements[i], true
}

// Chantler returns the Chantler record for an element symbol.
func (ix *Index) Chantler(symbol string) (ChantlerRecord, bool) {
	i, ok := ix.symToChantlerIdx[symbol]
	if !ok {
		return ChantlerRecord{}, false
	}
	return ix.db.Chantler[i], true
}

// Photoabsorption returns the photoabsorption record for an element symbol.
func (ix *Index) Photoabsorption(symbol string) (PhotoabsorptionRecord, bool) {
	i, ok := ix.symToPhotoIdx[symbol]
	if !ok {
		return PhotoabsorptionRecord{}, false
	}
	return ix.db.Photoabsorption[i], true
}

// Scattering returns the scattering record for an element symbol.
func (ix *Index) Scattering(symbol string) (ScatteringRecord, bool) {
	i, ok := ix.symToScatterIdx[symbol]
	if !ok {
		return ScatteringRecord{}, false
	}
	return ix.db.Scattering[i], true
}

// Waasmaier returns the f0 record for an exact ion label (e.g. "Fe2+").
func (ix *Index) Waasmaier(ion string) (WaasmaierRecord, bool) {
	i, ok := ix.ionToWaasmaierIdx[ion]
	if !ok {
		return WaasmaierRecord{}, false
	}
	return ix.db.Waasmaier[i], true
}

// WaasmaierByElement returns all f0 records (neutral + ionized) for an
// element symbol.
func (ix *Index) WaasmaierByElement(symbol string) []WaasmaierRecord {
	idxs := ix.symToWaasmaierIdx[symbol]
	out := make([]WaasmaierRecord, len(idxs))
	for i, idx := range idxs {
		out[i] = ix.db.Waasmaier[idx]
	}
	return out
}

// Levels returns every XrayLevel row for an element.
func (ix *Index) Levels(symbol string) []XrayLevel {
	idxs := ix.levelsByElement[symbol]
	out := make([]XrayLevel, len(idxs))
	for i, idx := range idxs {
		out[i] = ix.db.XrayLevels[idx]
	}
	return out
}

// Transitions returns every XrayTransition row for an element.
func (ix *Index) Transitions(symbol string) []XrayTransition {
	idxs := ix.transitionsByElement[symbol]
	out := make([]XrayTransition, len(idxs))
	for i, idx := range idxs {
		out[i] = ix.db.XrayTransitions[idx]
	}
	return out
}

// CosterKronigRows returns every CosterKronig row for an element.
func (ix *Index) CosterKronigRows(symbol string) []CosterKronigRow {
	idxs := ix.ckByElement[symbol]
	out := make([]CosterKronigRow, len(idxs))
	for i, idx := range idxs {
		out[i] = ix.db.CosterKronig[idx]
	}
	return out
}

// CoreWidths returns every merged core-width row for an element.
func (ix *Index) CoreWidths(symbol string) []CoreWidthRow {
	idxs := ix.coreWidthsByElement[symbol]
	out := make([]CoreWidthRow, len(idxs))
	for i, idx := range idxs {
		out[i] = ix.db.CoreWidthsMerged[idx]
	}
	return out
}

// IonizationPotential returns the ionization potential row for a
// case-insensitive gas name match.
func (ix *Index) IonizationPotential(gas string) (IonizationPotentialRow, bool) {
	i, ok := ix.ionizationByLowerGas[strings.ToLower(gas)]
	if !ok {
		return IonizationPotentialRow{}, false
	}
	return ix.db.IonizationPotentials[i], true
}
