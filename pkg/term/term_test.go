package term

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		notation string
		j        float64
		g        int
	}{
		{"2S<1/2>", 0.5, 2},
		{"2P*<1/2>", 0.5, 2},
		{"2P*<3/2>", 1.5, 4},
		{"4S*<3/2>", 1.5, 4},
		{"1S0", 0, 1},
		{"3P0", 0, 1},
		{"3P1", 1, 3},
		{"3P2", 2, 5},
		{"5D4", 4, 9},
		{"6S<5/2>", 2.5, 6},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.notation)
		if !ok {
			t.Errorf("Parse(%q): not ok", tt.notation)
			continue
		}
		if math.Abs(got.J-tt.j) > 1e-12 {
			t.Errorf("Parse(%q): J = %v, want %v", tt.notation, got.J, tt.j)
		}
		if got.G != tt.g {
			t.Errorf("Parse(%q): G = %d, want %d", tt.notation, got.G, tt.g)
		}
	}
}

func TestParseUnrecognized(t *testing.T) {
	for _, notation := range []string{"", "S", "??", "limit", "a/b"} {
		if got, ok := Parse(notation); ok {
			t.Errorf("Parse(%q): ok with %+v, want not ok", notation, got)
		}
	}
}

func TestParseFractionBeforeTrailingInteger(t *testing.T) {
	// "6S<5/2>" ends in a digit too; the fraction must win.
	got, ok := Parse("6S<5/2>")
	if !ok || got.J != 2.5 || got.G != 6 {
		t.Fatalf("Parse(6S<5/2>) = %+v, %v; want J=2.5 G=6", got, ok)
	}
}

func TestParseZeroDenominator(t *testing.T) {
	if got, ok := Parse("2S<1/0>"); ok {
		t.Fatalf("Parse(2S<1/0>): ok with %+v, want not ok", got)
	}
}
