package consts

const (
	BOLTZMANN_EV = 8.617333262e-5   // Boltzmann constant (eV/K)
	BOLTZMANN    = 1.380649e-23     // Boltzmann constant (J/K)
	PLANCK       = 6.62607015e-34   // Planck constant (J*s)
	ELECTRONMASS = 9.1093837015e-31 // Electron mass (kg)
	EV_TO_J      = 1.602176634e-19  // Electronvolt (J)
)
