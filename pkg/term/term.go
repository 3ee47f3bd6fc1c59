// Parsing of NIST ground-level term symbols.
//
// The NIST Atomic Spectra Database writes the total angular momentum J of a
// ground level either as a bracketed fraction ("2S<1/2>", "2P*<3/2>") or as a
// trailing integer ("3P2", "1S0"). The statistical weight of the level is
// g = 2J + 1.
package term

import (
	"regexp"
	"strconv"
)

// Term is a parsed ground-level term symbol.
type Term struct {
	J float64 // Total angular momentum quantum number
	G int     // Statistical weight 2J+1
}

var (
	fractionRe = regexp.MustCompile(`<(\d+)/(\d+)>`)
	trailingRe = regexp.MustCompile(`(\d+)$`)
)

// Parse extracts J and the degeneracy g = 2J+1 from a ground-level notation.
// The bracketed fraction form takes precedence over a trailing integer.
// ok is false when the notation matches neither form; callers are expected
// to fall back to g = 1 in that case.
func Parse(notation string) (t Term, ok bool) {
	if m := fractionRe.FindStringSubmatch(notation); m != nil {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den == 0 {
			return Term{}, false
		}
		j := float64(num) / float64(den)
		return Term{J: j, G: int(2*j + 1)}, true
	}

	if m := trailingRe.FindStringSubmatch(notation); m != nil {
		j, _ := strconv.Atoi(m[1])
		return Term{J: float64(j), G: 2*j + 1}, true
	}

	return Term{}, false
}
