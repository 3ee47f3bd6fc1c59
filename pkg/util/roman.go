package util

import "fmt"

var romanNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
	"XXI", "XXII", "XXIII", "XXIV", "XXV", "XXVI", "XXVII", "XXVIII", "XXIX", "XXX",
}

// IonName formats a charge state in spectroscopic notation ("Fe I", "Fe II").
// Past the Roman numeral table it falls back to the "+charge" form.
func IonName(symbol string, charge int) string {
	if charge >= 0 && charge < len(romanNumerals) {
		return fmt.Sprintf("%s %s", symbol, romanNumerals[charge])
	}
	return fmt.Sprintf("%s+%d", symbol, charge)
}
