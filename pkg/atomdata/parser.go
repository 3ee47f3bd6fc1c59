package atomdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column headers of the NIST ASD ionization-energy export. Header cells are
// matched after trimming, so ragged padding in the export is harmless.
const (
	colElement     = "Element"
	colName        = "El. Name"
	colCharge      = "Ion Charge"
	colGroundLevel = "Ground Level"
	colEnergy      = "Ionization Energy (b) (eV)"
)

// Parse reads a tab-separated NIST ionization-energy table. The first
// non-empty line is the header; every following line is one charge state.
// Rows may appear in any order, they are sorted per element afterwards.
func Parse(r io.Reader) (*Database, error) {
	scanner := bufio.NewScanner(r)

	cols := map[string]int{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for i, name := range strings.Split(line, "\t") {
			cols[strings.TrimSpace(name)] = i
		}
		break
	}
	for _, required := range []string{colElement, colCharge, colGroundLevel, colEnergy} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("header: missing column %q", required)
		}
	}

	db := &Database{elements: make(map[string]*ElementData)}
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		get := func(col string) string {
			idx := cols[col]
			if idx >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[idx])
		}

		symbol := get(colElement)
		if symbol == "" {
			return nil, fmt.Errorf("line %d: missing element symbol", lineNo)
		}

		charge, err := strconv.Atoi(get(colCharge))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad ion charge %q: %v", lineNo, get(colCharge), err)
		}

		// The bare nucleus has no ionization energy; an empty cell is valid
		// there and caught by Validate anywhere else.
		energy := 0.0
		if cell := get(colEnergy); cell != "" {
			energy, err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad ionization energy %q: %v", lineNo, cell, err)
			}
		}

		elem, ok := db.elements[symbol]
		if !ok {
			elem = &ElementData{Symbol: symbol, Name: get(colName)}
			db.elements[symbol] = elem
		}
		elem.States = append(elem.States, StateRecord{
			Charge:           charge,
			GroundLevel:      get(colGroundLevel),
			IonizationEnergy: energy,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}

	for _, elem := range db.elements {
		sort.Slice(elem.States, func(i, j int) bool {
			return elem.States[i].Charge < elem.States[j].Charge
		})
		if err := elem.Validate(); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Load parses a NIST table from a file.
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %v", err)
	}
	defer f.Close()
	return Parse(f)
}
