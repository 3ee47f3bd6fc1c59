package analysis

import (
	"fmt"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/saha"
)

// SelfConsistent resolves the electron density consistent with the ionization
// state for a total particle density, then reports that single condition.
type SelfConsistent struct {
	BaseAnalysis
	temp   float64 // K
	nTotal float64 // cm^-3
	opts   saha.SelfConsistentOptions
	result saha.SelfConsistentResult
	solved bool
}

func NewSelfConsistent(T, nTotal float64, opts saha.SelfConsistentOptions) *SelfConsistent {
	return &SelfConsistent{
		BaseAnalysis: *NewBaseAnalysis(),
		temp:         T,
		nTotal:       nTotal,
		opts:         opts,
	}
}

func (sc *SelfConsistent) Setup(elem *atomdata.ElementData) error {
	if err := elem.Validate(); err != nil {
		return err
	}
	if sc.nTotal <= 0 {
		return fmt.Errorf("total density must be positive, got %g cm^-3", sc.nTotal)
	}
	sc.Element = elem
	return nil
}

func (sc *SelfConsistent) Execute() error {
	if sc.Element == nil {
		return fmt.Errorf("element not set")
	}

	res, err := saha.SelfConsistentElectronDensity(sc.Element, sc.temp, sc.nTotal, sc.opts)
	if err != nil {
		return err
	}
	sc.result = res
	sc.solved = true

	sc.storePoint("TEMP", sc.temp, res.Fractions)
	sc.storeValue("NE", res.Ne)
	sc.storeValue("ITER", float64(res.Iterations))

	return nil
}

// Result exposes the solver outcome, including the convergence flag the
// results map cannot carry.
func (sc *SelfConsistent) Result() (saha.SelfConsistentResult, bool) {
	return sc.result, sc.solved
}
