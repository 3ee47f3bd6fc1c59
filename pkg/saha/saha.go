// Equilibrium ionization balance of a plasma via the Saha equation:
//
//	n_{i+1}/n_i = (2 Z_{i+1} / (n_e Z_i)) (2 pi m_e k T / h^2)^{3/2} exp(-chi_i / kT)
//
// Temperatures are in K, electron densities in cm^-3 at the package boundary
// and ionization energies in eV. Only the equilibrium-constant prefactor
// works in SI units internally.
package saha

import (
	"fmt"
	"math"

	"github.com/vikasci/ionization-sim/internal/consts"
)

// EquilibriumConstant returns the Saha population ratio n_{i+1}/n_i for one
// ionization stage. chi is the stage's ionization energy (eV), zLower and
// zUpper the partition functions of the two adjacent charge states, T the
// temperature (K) and ne the electron density (cm^-3).
func EquilibriumConstant(chi, zLower, zUpper, T, ne float64) (float64, error) {
	switch {
	case T <= 0:
		return 0, fmt.Errorf("temperature must be positive, got %g K", T)
	case ne <= 0:
		return 0, fmt.Errorf("electron density must be positive, got %g cm^-3", ne)
	case chi <= 0:
		return 0, fmt.Errorf("ionization energy must be positive, got %g eV", chi)
	case zLower < 1 || zUpper < 1:
		return 0, fmt.Errorf("partition functions must be >= 1, got %g and %g", zLower, zUpper)
	}

	kT := consts.BOLTZMANN_EV * T // eV
	neSI := ne * 1e6              // cm^-3 -> m^-3

	// (2 pi m_e kT / h^2)^(3/2), SI units throughout
	prefactor := math.Pow(2*math.Pi*consts.ELECTRONMASS*kT*consts.EV_TO_J/(consts.PLANCK*consts.PLANCK), 1.5)

	return (2 * zUpper / (neSI * zLower)) * prefactor * math.Exp(-chi/kT), nil
}
