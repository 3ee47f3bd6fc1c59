package saha

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/partition"
)

// Distribution maps charge state to population fraction; index i is the
// fraction of ions carrying charge +i. Fractions are non-negative and sum
// to 1. Every solver call returns a fresh value.
type Distribution []float64

// MaxCharge returns the highest charge state covered.
func (d Distribution) MaxCharge() int {
	return len(d) - 1
}

// Fraction returns the population fraction of one charge state, or 0 for a
// charge outside the distribution.
func (d Distribution) Fraction(charge int) float64 {
	if charge < 0 || charge >= len(d) {
		return 0
	}
	return d[charge]
}

// IonizationFractions solves the equilibrium charge-state distribution of one
// element at temperature T (K) and electron density ne (cm^-3).
//
// Starting from an unnormalized neutral population n[0] = 1, the Saha
// equilibrium constant of each adjacent pair gives n[i+1] = K_i * n[i]. The
// recurrence is strictly sequential; each stage depends on the previous one.
// The populations are then normalized to fractions summing to 1.
func IonizationFractions(elem *atomdata.ElementData, T, ne float64) (Distribution, error) {
	if err := elem.Validate(); err != nil {
		return nil, err
	}
	if T <= 0 {
		return nil, fmt.Errorf("element %s: temperature must be positive, got %g K", elem.Symbol, T)
	}
	if ne <= 0 {
		return nil, fmt.Errorf("element %s: electron density must be positive, got %g cm^-3", elem.Symbol, ne)
	}

	n := make(Distribution, elem.MaxCharge()+1)
	n[0] = 1
	for i := 0; i < elem.MaxCharge(); i++ {
		lower, upper := elem.States[i], elem.States[i+1]
		zLower := partition.Function(lower.GroundLevel, T)
		zUpper := partition.Function(upper.GroundLevel, T)

		K, err := EquilibriumConstant(lower.IonizationEnergy, zLower, zUpper, T, ne)
		if err != nil {
			return nil, fmt.Errorf("element %s charge %d -> %d: %v", elem.Symbol, i, i+1, err)
		}
		n[i+1] = K * n[i]
	}

	// Total is at least n[0] = 1, so the division is safe.
	floats.Scale(1/floats.Sum(n), n)

	return n, nil
}

// MeanIonization reduces a distribution to the expectation value of the
// charge, sum(charge * fraction).
func MeanIonization(d Distribution) float64 {
	zAvg := 0.0
	for charge, frac := range d {
		zAvg += float64(charge) * frac
	}
	return zAvg
}
