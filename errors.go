package xraydb

import "fmt"

// Kind identifies the category of error a lookup or computation failed
// with, so callers can branch on it with errors.As instead of matching
// message text.
type Kind int

const (
	// KindUnknownElement means an element identifier did not resolve by
	// integer Z, symbol, or name.
	KindUnknownElement Kind = iota
	// KindUnknownEdge means an (element, edge) pair has no row.
	KindUnknownEdge
	// KindUnknownIon means a Waasmaier ion label has no row.
	KindUnknownIon
	// KindUnknownGas means an ionization-potential gas name has no row.
	KindUnknownGas
	// KindInvalidFormula means a chemical formula string failed to parse.
	KindInvalidFormula
	// KindEnergyOutOfRange is reserved: the kernel clamps rather than
	// rejecting out-of-range energies, so nothing in this package raises
	// it today. It exists so the taxonomy stays exhaustive.
	KindEnergyOutOfRange
	// KindDataError is the catch-all for precondition failures: bad hkl
	// parity, mismatched array lengths, non-positive total weight, empty
	// gas mixtures.
	KindDataError
)

func (k Kind) String() string {
	switch k {
	case KindUnknownElement:
		return "UnknownElement"
	case KindUnknownEdge:
		return "UnknownEdge"
	case KindUnknownIon:
		return "UnknownIon"
	case KindUnknownGas:
		return "UnknownGas"
	case KindInvalidFormula:
		return "InvalidFormula"
	case KindEnergyOutOfRange:
		return "EnergyOutOfRange"
	case KindDataError:
		return "DataError"
	default:
		return "Unknown"
	}
}

// Error is the single error type every exported xraydb lookup and
// computation function returns (Default instead returns the loader's own
// error when the embedded artifact cannot be decoded).
// It carries a Kind plus whatever context fields apply (Element, Edge, Ion,
// Gas, Formula), following the fmt.Errorf("xraydb: ...: %v", ...)
// string-prefix convention for Error() while still being a typed value
// callers can branch on via errors.As.
type Error struct {
	kind    Kind
	Element string
	Edge    string
	Ion     string
	Gas     string
	Formula string
	detail  string
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	switch e.kind {
	case KindUnknownElement:
		return fmt.Sprintf("xraydb: unknown element %q", e.Element)
	case KindUnknownEdge:
		return fmt.Sprintf("xraydb: unknown edge %q for element %q", e.Edge, e.Element)
	case KindUnknownIon:
		return fmt.Sprintf("xraydb: unknown ion %q", e.Ion)
	case KindUnknownGas:
		return fmt.Sprintf("xraydb: unknown gas %q", e.Gas)
	case KindInvalidFormula:
		return fmt.Sprintf("xraydb: invalid formula %q: %s", e.Formula, e.detail)
	case KindDataError:
		return fmt.Sprintf("xraydb: %s", e.detail)
	default:
		return fmt.Sprintf("xraydb: %s", e.detail)
	}
}

func errUnknownElement(id string) error {
	return &Error{kind: KindUnknownElement, Element: id}
}

func errUnknownEdge(element, edge string) error {
	return &Error{kind: KindUnknownEdge, Element: element, Edge: edge}
}

func errUnknownIon(ion string) error {
	return &Error{kind: KindUnknownIon, Ion: ion}
}

func errUnknownGas(gas string) error {
	return &Error{kind: KindUnknownGas, Gas: gas}
}

func errInvalidFormula(formula, detail string) error {
	return &Error{kind: KindInvalidFormula, Formula: formula, detail: detail}
}

func errDataf(format string, args ...interface{}) error {
	return &Error{kind: KindDataError, detail: fmt.Sprintf(format, args...)}
}
