package saha

import (
	"math"
	"testing"
)

func TestEquilibriumConstantHydrogen(t *testing.T) {
	// H I -> H II at ICP-like conditions; the equation is well within a
	// partially-ionized regime here.
	K, err := EquilibriumConstant(13.598434, 2, 1, 10000, 1e15)
	if err != nil {
		t.Fatalf("EquilibriumConstant: %v", err)
	}
	if K <= 0 {
		t.Fatalf("K = %g, want > 0", K)
	}
	if K < 1e-3 || K > 1e3 {
		t.Errorf("K = %g, expected order unity at 10000 K / 1e15 cm^-3", K)
	}
}

func TestEquilibriumConstantMonotonicity(t *testing.T) {
	base, err := EquilibriumConstant(13.598434, 2, 1, 10000, 1e15)
	if err != nil {
		t.Fatalf("EquilibriumConstant: %v", err)
	}

	hotter, _ := EquilibriumConstant(13.598434, 2, 1, 12000, 1e15)
	if hotter <= base {
		t.Errorf("K(12000 K) = %g not above K(10000 K) = %g", hotter, base)
	}

	denser, _ := EquilibriumConstant(13.598434, 2, 1, 10000, 1e17)
	if denser >= base {
		t.Errorf("K(1e17 cm^-3) = %g not below K(1e15 cm^-3) = %g", denser, base)
	}

	// More electrons suppress ionization linearly: K ~ 1/ne.
	ratio := base / denser
	if math.Abs(ratio-100) > 1e-6*100 {
		t.Errorf("K(1e15)/K(1e17) = %g, want 100", ratio)
	}
}

func TestEquilibriumConstantDensityLimit(t *testing.T) {
	// ne -> infinity drives each stage's equilibrium constant toward 0.
	K, err := EquilibriumConstant(13.598434, 2, 1, 10000, 1e30)
	if err != nil {
		t.Fatalf("EquilibriumConstant: %v", err)
	}
	if K > 1e-8 {
		t.Errorf("K = %g at ne=1e30 cm^-3, want ~0", K)
	}
}

func TestEquilibriumConstantInvalidInput(t *testing.T) {
	tests := []struct {
		name                     string
		chi, zLow, zUp, temp, ne float64
	}{
		{"zero temperature", 13.6, 2, 1, 0, 1e15},
		{"negative temperature", 13.6, 2, 1, -300, 1e15},
		{"zero density", 13.6, 2, 1, 10000, 0},
		{"negative density", 13.6, 2, 1, 10000, -1e15},
		{"zero energy", 0, 2, 1, 10000, 1e15},
		{"partition below one", 13.6, 0, 1, 10000, 1e15},
	}

	for _, tt := range tests {
		K, err := EquilibriumConstant(tt.chi, tt.zLow, tt.zUp, tt.temp, tt.ne)
		if err == nil {
			t.Errorf("%s: got K = %g, want error", tt.name, K)
		}
		if math.IsInf(K, 0) || math.IsNaN(K) {
			t.Errorf("%s: K = %g, must not be Inf/NaN", tt.name, K)
		}
	}
}
