package atomdata

import (
	_ "embed"
	"strings"
)

//go:embed data/ionizationenergy.tsv
var defaultTable string

// Default returns the database bundled with the binary (H, He and Ne from
// the NIST ASD). Larger tables can be exported from NIST and passed to Load.
func Default() (*Database, error) {
	return Parse(strings.NewReader(defaultTable))
}
