package analysis

import (
	"fmt"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/saha"
)

// Equilibrium solves the charge-state distribution for a single plasma
// condition (T, ne).
type Equilibrium struct {
	BaseAnalysis
	temp float64 // K
	ne   float64 // cm^-3
}

func NewEquilibrium(T, ne float64) *Equilibrium {
	return &Equilibrium{
		BaseAnalysis: *NewBaseAnalysis(),
		temp:         T,
		ne:           ne,
	}
}

func (eq *Equilibrium) Setup(elem *atomdata.ElementData) error {
	if err := elem.Validate(); err != nil {
		return err
	}
	eq.Element = elem
	return nil
}

func (eq *Equilibrium) Execute() error {
	if eq.Element == nil {
		return fmt.Errorf("element not set")
	}

	frac, err := saha.IonizationFractions(eq.Element, eq.temp, eq.ne)
	if err != nil {
		return err
	}

	eq.storePoint("TEMP", eq.temp, frac)
	eq.storeValue("NE", eq.ne)

	return nil
}
