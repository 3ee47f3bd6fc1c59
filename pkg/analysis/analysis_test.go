package analysis

import (
	"math"
	"testing"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/saha"
)

func hydrogen() *atomdata.ElementData {
	return &atomdata.ElementData{
		Symbol: "H",
		Name:   "Hydrogen",
		States: []atomdata.StateRecord{
			{Charge: 0, GroundLevel: "2S<1/2>", IonizationEnergy: 13.598434},
			{Charge: 1, GroundLevel: "1S0"},
		},
	}
}

func TestEquilibrium(t *testing.T) {
	eq := NewEquilibrium(10000, 1e15)
	if err := eq.Setup(hydrogen()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := eq.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	results := eq.GetResults()
	f0, f1 := results[FractionKey(0)], results[FractionKey(1)]
	if len(f0) != 1 || len(f1) != 1 {
		t.Fatalf("fraction columns have lengths %d, %d; want 1, 1", len(f0), len(f1))
	}
	if sum := f0[0] + f1[0]; math.Abs(sum-1) > 1e-9 {
		t.Errorf("fractions sum to %v, want 1", sum)
	}
	if z := results["ZAVG"][0]; z <= 0 || z >= 1 {
		t.Errorf("ZAVG = %v, want in (0, 1)", z)
	}
}

func TestEquilibriumRejectsBadElement(t *testing.T) {
	gap := hydrogen()
	gap.States[1].Charge = 2

	eq := NewEquilibrium(10000, 1e15)
	if err := eq.Setup(gap); err == nil {
		t.Fatal("Setup accepted non-contiguous charge states")
	}
}

func TestTemperatureSweep(t *testing.T) {
	ts := NewTemperatureSweep(6000, 15000, 10, 1e15)
	if err := ts.Setup(hydrogen()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := ts.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	results := ts.GetResults()
	temps := results["TEMP"]
	if len(temps) != 10 {
		t.Fatalf("len(TEMP) = %d, want 10", len(temps))
	}
	if temps[0] != 6000 || temps[len(temps)-1] != 15000 {
		t.Errorf("grid spans %g..%g, want 6000..15000", temps[0], temps[len(temps)-1])
	}
	if len(results["ZAVG"]) != 10 {
		t.Fatalf("len(ZAVG) = %d, want 10", len(results["ZAVG"]))
	}
	for i := 1; i < len(temps); i++ {
		if results["ZAVG"][i] < results["ZAVG"][i-1] {
			t.Errorf("ZAVG not monotone over T at point %d", i)
		}
	}
}

func TestTemperatureSweepInvalidRange(t *testing.T) {
	for _, ts := range []*TemperatureSweep{
		NewTemperatureSweep(0, 15000, 10, 1e15),
		NewTemperatureSweep(15000, 6000, 10, 1e15),
		NewTemperatureSweep(6000, 15000, 1, 1e15),
	} {
		if err := ts.Setup(hydrogen()); err == nil {
			t.Errorf("Setup accepted invalid sweep %+v", ts)
		}
	}
}

func TestDensitySweep(t *testing.T) {
	ds := NewDensitySweep(1e12, 1e18, 7, 10000)
	if err := ds.Setup(hydrogen()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := ds.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	results := ds.GetResults()
	nes := results["NE"]
	if len(nes) != 7 {
		t.Fatalf("len(NE) = %d, want 7", len(nes))
	}
	// Log grid endpoints.
	if math.Abs(nes[0]/1e12-1) > 1e-9 || math.Abs(nes[6]/1e18-1) > 1e-9 {
		t.Errorf("grid spans %g..%g, want 1e12..1e18", nes[0], nes[6])
	}
	// Equal ratios between neighbors on a log grid.
	ratio := nes[1] / nes[0]
	for i := 2; i < len(nes); i++ {
		if math.Abs(nes[i]/nes[i-1]-ratio) > 1e-6*ratio {
			t.Errorf("grid not logarithmic at point %d", i)
		}
	}
	// More electrons, less ionization.
	for i := 1; i < len(nes); i++ {
		if results["ZAVG"][i] > results["ZAVG"][i-1] {
			t.Errorf("ZAVG not decreasing over ne at point %d", i)
		}
	}
}

func TestSelfConsistentAnalysis(t *testing.T) {
	sc := NewSelfConsistent(10000, 1e15, saha.SelfConsistentOptions{})
	if err := sc.Setup(hydrogen()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := sc.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	res, ok := sc.Result()
	if !ok {
		t.Fatal("Result before Execute reported")
	}
	if !res.Converged {
		t.Errorf("did not converge in %d iterations", res.Iterations)
	}

	results := sc.GetResults()
	if got := results["NE"][0]; got != res.Ne {
		t.Errorf("NE column %g != result %g", got, res.Ne)
	}
	if got := int(results["ITER"][0]); got != res.Iterations {
		t.Errorf("ITER column %d != result %d", got, res.Iterations)
	}
}

func TestSelfConsistentAnalysisRejectsTotal(t *testing.T) {
	sc := NewSelfConsistent(10000, 0, saha.SelfConsistentOptions{})
	if err := sc.Setup(hydrogen()); err == nil {
		t.Fatal("Setup accepted nTotal=0")
	}
}
