// Ground-state approximation of atomic partition functions.
package partition

import (
	"github.com/vikasci/ionization-sim/pkg/term"
)

// Degeneracy returns the ground-state statistical weight for a term-symbol
// notation, or 1 when the notation cannot be parsed.
func Degeneracy(groundLevel string) int {
	if t, ok := term.Parse(groundLevel); ok {
		return t.G
	}
	return 1
}

// Function evaluates the partition function of one ionization stage in the
// ground-state approximation, which is adequate for ICP-OES temperatures
// (6000-10000 K). T is unused for now; it stays in the signature so that an
// excited-state correction can be added without touching callers.
func Function(groundLevel string, T float64) float64 {
	return float64(Degeneracy(groundLevel))
}
