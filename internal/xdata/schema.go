// Package xdata implements the Blob Loader: the embedded, zstd-compressed
// data artifact, its schema, and the once-initialized shared handle that
// every other package in this module reads from. Nothing in this package
// mutates after Load returns; callers share the returned *Database across
// goroutines without synchronization.
package xdata

// VersionEntry records one entry of the data artifact's changelog.
type VersionEntry struct {
	Tag   string `json:"tag"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// Element is one row of the periodic table.
type Element struct {
	Z         int     `json:"z"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	MolarMass float64 `json:"molar_mass"`
	Density   float64 `json:"density"`
}

// XrayLevel is one (element, absorption edge) row.
type XrayLevel struct {
	Element           string  `json:"element"`
	Edge              string  `json:"edge"`
	AbsorptionEdgeEV  float64 `json:"absorption_edge_ev"`
	FluorescenceYield float64 `json:"fluorescence_yield"`
	JumpRatio         float64 `json:"jump_ratio"`
}

// XrayTransition is one emission line.
type XrayTransition struct {
	Element        string  `json:"element"`
	IUPACSymbol    string  `json:"iupac_symbol"`
	SiegbahnSymbol string  `json:"siegbahn_symbol"`
	InitialLevel   string  `json:"initial_level"`
	FinalLevel     string  `json:"final_level"`
	EmissionEnergy float64 `json:"emission_energy_ev"`
	Intensity      float64 `json:"intensity"`
}

// CosterKronigRow is one intra-shell non-radiative transition probability.
type CosterKronigRow struct {
	Element          string  `json:"element"`
	InitialLevel     string  `json:"initial_level"`
	FinalLevel       string  `json:"final_level"`
	DirectProbability float64 `json:"direct_probability"`
	TotalProbability  float64 `json:"total_probability"`
}

// PhotoabsorptionRecord holds one element's Elam photoabsorption table:
// log-energy knots, log-mu values, and the pre-stored spline second
// derivatives, all equal length and log_energy strictly increasing.
type PhotoabsorptionRecord struct {
	Element      string    `json:"element"`
	LogEnergy    []float64 `json:"log_energy"`
	LogMu        []float64 `json:"log_mu"`
	LogMuSpline  []float64 `json:"log_mu_spline"`
}

// ScatteringRecord holds one element's coherent and incoherent Elam
// scattering tables, sharing a single log-energy grid.
type ScatteringRecord struct {
	Element          string    `json:"element"`
	LogEnergy        []float64 `json:"log_energy"`
	CoherentLogMu    []float64 `json:"coherent_log_mu"`
	CoherentSpline   []float64 `json:"coherent_log_mu_spline"`
	IncoherentLogMu  []float64 `json:"incoherent_log_mu"`
	IncoherentSpline []float64 `json:"incoherent_log_mu_spline"`
}

// ChantlerRecord holds one element's Chantler tabulation. F1 is stored as
// f' = raw - Z + CorrCl35 + CorrNucl (the caller adds Z back to get f).
// MuTotal is, per upstream convention, MuPhoto+MuIncoh (the coherent
// contribution is not included — see spec Open Questions).
type ChantlerRecord struct {
	Element    string    `json:"element"`
	Z          int       `json:"z"`
	SigmaMu    float64   `json:"sigma_mu"`
	MueF2      float64   `json:"mue_f2"`
	Density    float64   `json:"density"`
	CorrHenke  float64   `json:"corr_henke"`
	CorrCl35   float64   `json:"corr_cl35"`
	CorrNucl   float64   `json:"corr_nucl"`
	EnergyEV   []float64 `json:"energy_ev"`
	F1         []float64 `json:"f1"`
	F2         []float64 `json:"f2"`
	MuPhoto    []float64 `json:"mu_photo"`
	MuIncoh    []float64 `json:"mu_incoh"`
	MuTotal    []float64 `json:"mu_total"`
}

// WaasmaierRecord is one Waasmaier-Kirfel f0 parameterization row.
type WaasmaierRecord struct {
	Z         int        `json:"z"`
	Element   string     `json:"element"`
	Ion       string     `json:"ion"`
	Offset    float64    `json:"offset"`
	Scale     [5]float64 `json:"scale"`
	Exponents [5]float64 `json:"exponents"`
}

// ComptonTable holds the Compton-energetics grid. All fields equal length
// and Incident strictly increasing.
type ComptonTable struct {
	Incident      []float64 `json:"incident"`
	Xray90Deg     []float64 `json:"xray_90deg"`
	XrayMean      []float64 `json:"xray_mean"`
	ElectronMean  []float64 `json:"electron_mean"`
}

// CoreWidthRow is one (element, edge) core-hole width entry.
type CoreWidthRow struct {
	Element string  `json:"element"`
	Edge    string  `json:"edge"`
	WidthEV float64 `json:"width_ev"`
}

// IonizationPotentialRow is one (gas, ionization potential) row.
type IonizationPotentialRow struct {
	Gas        string  `json:"gas"`
	PotentialEV float64 `json:"potential_ev"`
}

// Database is the complete, immutable aggregate decoded from the embedded
// artifact. It is never mutated after Load publishes it.
type Database struct {
	SchemaVersion int `json:"schema_version"`

	Versions         []VersionEntry           `json:"versions"`
	Elements         []Element                `json:"elements"`
	XrayLevels       []XrayLevel              `json:"xray_levels"`
	XrayTransitions  []XrayTransition         `json:"xray_transitions"`
	CosterKronig     []CosterKronigRow        `json:"coster_kronig"`
	Photoabsorption  []PhotoabsorptionRecord  `json:"photoabsorption"`
	Scattering       []ScatteringRecord       `json:"scattering"`
	Chantler         []ChantlerRecord         `json:"chantler"`
	Waasmaier        []WaasmaierRecord        `json:"waasmaier"`
	Compton          ComptonTable             `json:"compton"`
	CoreWidthsKK     []CoreWidthRow           `json:"core_widths_kk"`
	CoreWidthsKO     []CoreWidthRow           `json:"core_widths_ko"`
	CoreWidthsMerged []CoreWidthRow           `json:"core_widths_merged"`
	IonizationPotentials []IonizationPotentialRow `json:"ionization_potentials"`
}

// CurrentSchemaVersion is bumped whenever the Database field layout changes
// in a way that is not backward compatible with an older embedded artifact.
// The embedded blob and this reader are always built together, so
// this exists only to give Load a concrete, checkable precondition.
const CurrentSchemaVersion = 1
