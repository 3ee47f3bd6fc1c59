package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vikasci/ionization-sim/pkg/analysis"
	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/plotting"
	"github.com/vikasci/ionization-sim/pkg/saha"
	"github.com/vikasci/ionization-sim/pkg/util"
)

type preset struct {
	temp        float64 // K
	ne          float64 // cm^-3
	description string
}

var presets = map[string]preset{
	"icp": {7000, 1e15, "Typical ICP-OES conditions"},
	"arc": {10000, 1e16, "Atmospheric arc discharge"},
}

var (
	element  = flag.String("element", "H", "element symbol")
	mode     = flag.String("mode", "eq", "analysis mode: eq, tscan, nescan, sc")
	temp     = flag.Float64("T", 7000, "temperature (K)")
	ne       = flag.Float64("ne", 1e15, "electron density (cm^-3)")
	nTotal   = flag.Float64("ntotal", 1e15, "total particle density for sc mode (cm^-3)")
	tStart   = flag.Float64("tstart", 3000, "sweep start temperature (K)")
	tStop    = flag.Float64("tstop", 15000, "sweep stop temperature (K)")
	tPoints  = flag.Int("tpoints", 50, "temperature sweep points")
	neStart  = flag.Float64("nestart", 1e12, "sweep start electron density (cm^-3)")
	neStop   = flag.Float64("nestop", 1e18, "sweep stop electron density (cm^-3)")
	nePoints = flag.Int("nepoints", 50, "density sweep points")
	dataFile = flag.String("data", "", "NIST ionization-energy table (tab separated); empty uses the bundled table")
	presetID = flag.String("preset", "", "plasma condition preset: icp, arc")
	plotFile = flag.String("plot", "", "write a PNG chart of the result")
	list     = flag.Bool("list", false, "list available elements and exit")
)

func openDatabase() (*atomdata.Database, error) {
	if *dataFile != "" {
		return atomdata.Load(*dataFile)
	}
	return atomdata.Default()
}

func printCondition(elem *atomdata.ElementData, results map[string][]float64) {
	fmt.Printf("\n%s (%s), T = %s, ne = %s\n",
		elem.Name, elem.Symbol,
		util.FormatTemperature(results["TEMP"][0]),
		util.FormatDensity(results["NE"][0]))
	fmt.Println("---------------------------------------------")

	for charge := 0; charge <= elem.MaxCharge(); charge++ {
		frac := results[analysis.FractionKey(charge)][0]
		fmt.Printf("%-10s %s  (%s)\n", util.IonName(elem.Symbol, charge),
			util.FormatFraction(frac), util.FormatPercent(frac))
	}
	fmt.Printf("\nAverage ionization: %.4f\n", results["ZAVG"][0])
	if iters, ok := results["ITER"]; ok {
		fmt.Printf("Fixed-point iterations: %d\n", int(iters[0]))
	}
}

func printSweep(elem *atomdata.ElementData, results map[string][]float64, axisKey string) {
	axis := results[axisKey]
	fmt.Printf("\n%s (%s) sweep, %d points\n", elem.Name, elem.Symbol, len(axis))
	fmt.Println("---------------------------------------------")

	for i, v := range axis {
		if axisKey == "TEMP" {
			fmt.Printf("%-12s", util.FormatTemperature(v))
		} else {
			fmt.Printf("%-18s", util.FormatDensity(v))
		}
		for charge := 0; charge <= elem.MaxCharge(); charge++ {
			fmt.Printf("%s=%s  ", analysis.FractionKey(charge),
				util.FormatFraction(results[analysis.FractionKey(charge)][i]))
		}
		fmt.Printf("ZAVG=%.4f\n", results["ZAVG"][i])
	}
}

func main() {
	flag.Parse()

	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Error loading database: %v", err)
	}

	if *list {
		for _, symbol := range db.Elements() {
			elem, _ := db.Element(symbol)
			fmt.Printf("%-4s %-12s max charge +%d\n", symbol, elem.Name, elem.MaxCharge())
		}
		return
	}

	elem, err := db.Element(*element)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	T, neVal := *temp, *ne
	if *presetID != "" {
		p, ok := presets[*presetID]
		if !ok {
			log.Fatalf("Unknown preset %q", *presetID)
		}
		T, neVal = p.temp, p.ne
		fmt.Printf("Preset %s: %s\n", *presetID, p.description)
	}

	var analyzer analysis.Analysis
	switch *mode {
	case "eq":
		analyzer = analysis.NewEquilibrium(T, neVal)
	case "tscan":
		analyzer = analysis.NewTemperatureSweep(*tStart, *tStop, *tPoints, neVal)
	case "nescan":
		analyzer = analysis.NewDensitySweep(*neStart, *neStop, *nePoints, T)
	case "sc":
		analyzer = analysis.NewSelfConsistent(T, *nTotal, saha.SelfConsistentOptions{})
	default:
		log.Fatalf("Unsupported analysis mode %q", *mode)
	}

	if err := analyzer.Setup(elem); err != nil {
		log.Fatalf("Analysis setup failed: %v", err)
	}
	if err := analyzer.Execute(); err != nil {
		log.Fatalf("Analysis execution failed: %v", err)
	}

	results := analyzer.GetResults()
	switch *mode {
	case "tscan":
		printSweep(elem, results, "TEMP")
	case "nescan":
		printSweep(elem, results, "NE")
	default:
		printCondition(elem, results)
		if sc, ok := analyzer.(*analysis.SelfConsistent); ok {
			if res, solved := sc.Result(); solved && !res.Converged {
				log.Printf("Warning: electron density did not converge in %d iterations; result is best effort", res.Iterations)
			}
		}
	}

	if *plotFile != "" {
		var err error
		switch *mode {
		case "tscan":
			err = plotting.TemperatureScan(results, elem.Symbol, *plotFile)
		case "nescan":
			err = plotting.DensityScan(results, elem.Symbol, *plotFile)
		default:
			var frac saha.Distribution
			frac, err = saha.IonizationFractions(elem, results["TEMP"][0], results["NE"][0])
			if err == nil {
				err = plotting.FractionsBar(frac, elem.Symbol, results["TEMP"][0], results["NE"][0], *plotFile)
			}
		}
		if err != nil {
			log.Fatalf("Plot failed: %v", err)
		}
		fmt.Printf("\nChart written to %s\n", *plotFile)
	}
}
