// Analysis drivers over the Saha solver: a single equilibrium condition,
// temperature and electron-density sweeps, and the self-consistent
// electron-density mode. Results are keyed slices so that every driver can
// be printed or plotted the same way: "F(i)" is the fraction of charge
// state i, "ZAVG" the mean ionization, "TEMP"/"NE" the condition axis.
package analysis

import (
	"fmt"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/saha"
)

// FractionKey names the result column of one charge state, e.g. "F(2)".
func FractionKey(charge int) string {
	return fmt.Sprintf("F(%d)", charge)
}

type Analysis interface {
	Setup(elem *atomdata.ElementData) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Element *atomdata.ElementData
	results map[string][]float64
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

func (a *BaseAnalysis) storeValue(key string, value float64) {
	a.results[key] = append(a.results[key], value)
}

// storePoint appends one solved condition: the sweep coordinate, every
// charge-state fraction and the mean ionization.
func (a *BaseAnalysis) storePoint(sweepKey string, sweepVal float64, frac saha.Distribution) {
	a.storeValue(sweepKey, sweepVal)
	for charge := 0; charge <= frac.MaxCharge(); charge++ {
		a.storeValue(FractionKey(charge), frac.Fraction(charge))
	}
	a.storeValue("ZAVG", saha.MeanIonization(frac))
}
