package saha

import (
	"fmt"
	"math"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
)

// Defaults for the self-consistent fixed-point loop.
const (
	DefaultMaxIterations = 50
	DefaultTolerance     = 1e-6
)

// SelfConsistentOptions tune the fixed-point iteration. The zero value
// selects the defaults.
type SelfConsistentOptions struct {
	MaxIterations int
	Tolerance     float64
}

// SelfConsistentResult is the resolved electron density together with the
// distribution it produces. Converged is false when the iteration budget ran
// out; the values are then the last estimate, still usable as best effort.
type SelfConsistentResult struct {
	Ne         float64 // cm^-3
	Fractions  Distribution
	ZAvg       float64
	Iterations int
	Converged  bool
}

// SelfConsistentElectronDensity finds the electron density consistent with
// the ionization state it produces, for a total particle density nTotal
// (atoms + ions, cm^-3) at temperature T (K).
//
// The loop starts from half of the maximum possible ionization,
// ne = nTotal * maxCharge / 2, and iterates ne' = nTotal * zAvg(ne) until the
// relative change drops below the tolerance.
func SelfConsistentElectronDensity(elem *atomdata.ElementData, T, nTotal float64, opts SelfConsistentOptions) (SelfConsistentResult, error) {
	if nTotal <= 0 {
		return SelfConsistentResult{}, fmt.Errorf("element %s: total density must be positive, got %g cm^-3", elem.Symbol, nTotal)
	}
	if err := elem.Validate(); err != nil {
		return SelfConsistentResult{}, err
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	res := SelfConsistentResult{
		Ne: nTotal * float64(elem.MaxCharge()) / 2,
	}
	if res.Ne <= 0 {
		// Single charge state: nothing ionizes and no electrons are freed.
		res.Fractions = Distribution{1}
		res.Converged = true
		return res, nil
	}

	var err error
	for iter := 1; iter <= maxIter; iter++ {
		res.Iterations = iter

		res.Fractions, err = IonizationFractions(elem, T, res.Ne)
		if err != nil {
			return SelfConsistentResult{}, err
		}
		res.ZAvg = MeanIonization(res.Fractions)

		neNew := nTotal * res.ZAvg
		if neNew <= 0 {
			// Fully neutral to double precision; iterating further would
			// divide by zero. Report the estimate as non-converged.
			return res, nil
		}
		if math.Abs(neNew-res.Ne)/res.Ne < tol {
			res.Ne = neNew
			res.Converged = true
			return res, nil
		}
		res.Ne = neNew
	}

	return res, nil
}
