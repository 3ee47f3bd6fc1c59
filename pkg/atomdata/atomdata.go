// Ionization energies and ground levels from the NIST Atomic Spectra
// Database, indexed per element and charge state.
package atomdata

import (
	"fmt"
	"sort"
)

// StateRecord holds the spectroscopic data of one charge state.
// IonizationEnergy is the energy to remove the next electron, in eV; it is
// zero for the bare nucleus, which has nothing left to ionize.
type StateRecord struct {
	Charge           int
	GroundLevel      string
	IonizationEnergy float64 // eV
}

// ElementData is the full charge-state ladder of one element, sorted by
// charge ascending from 0 with no gaps.
type ElementData struct {
	Symbol string
	Name   string
	States []StateRecord
}

// MaxCharge returns the highest charge state present.
func (e *ElementData) MaxCharge() int {
	return len(e.States) - 1
}

// Validate checks the shape the solver assumes: charges contiguous from 0,
// ground levels present, and a positive ionization energy for every stage
// that still has electrons to lose.
func (e *ElementData) Validate() error {
	if len(e.States) == 0 {
		return fmt.Errorf("element %s: no charge states", e.Symbol)
	}
	for i, s := range e.States {
		if s.Charge != i {
			return fmt.Errorf("element %s: charge states not contiguous: got charge %d at position %d", e.Symbol, s.Charge, i)
		}
		if s.GroundLevel == "" {
			return fmt.Errorf("element %s charge %d: missing ground level", e.Symbol, s.Charge)
		}
		if i < len(e.States)-1 && s.IonizationEnergy <= 0 {
			return fmt.Errorf("element %s charge %d: missing or non-positive ionization energy", e.Symbol, s.Charge)
		}
	}
	return nil
}

// Database indexes element data by symbol.
type Database struct {
	elements map[string]*ElementData
}

// Elements returns the available element symbols, sorted.
func (db *Database) Elements() []string {
	symbols := make([]string, 0, len(db.elements))
	for s := range db.elements {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Element looks up one element by symbol.
func (db *Database) Element(symbol string) (*ElementData, error) {
	elem, ok := db.elements[symbol]
	if !ok {
		return nil, fmt.Errorf("element %s: not in database", symbol)
	}
	return elem, nil
}
