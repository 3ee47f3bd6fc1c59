// Chart rendering for solver output: a bar chart of one distribution and
// line charts for temperature / electron-density scans, written as PNG.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/vikasci/ionization-sim/pkg/analysis"
	"github.com/vikasci/ionization-sim/pkg/saha"
	"github.com/vikasci/ionization-sim/pkg/util"
)

// Scan charts only draw states whose fraction ever exceeds 1%; trace states
// clutter the legend without being visible.
const scanFractionCutoff = 0.01

// FractionsBar renders one charge-state distribution as a bar chart.
func FractionsBar(frac saha.Distribution, symbol string, T, ne float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s ionization fractions\nT = %s, ne = %s", symbol, util.FormatTemperature(T), util.FormatDensity(ne))
	p.Y.Label.Text = "Fraction (%)"
	p.X.Label.Text = "Ion state"

	values := make(plotter.Values, len(frac))
	names := make([]string, len(frac))
	for charge := range frac {
		values[charge] = frac.Fraction(charge) * 100
		names[charge] = util.IonName(symbol, charge)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return fmt.Errorf("building bar chart: %v", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)
	p.Y.Min = 0

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// TemperatureScan renders fraction-vs-temperature lines from a
// TemperatureSweep results map.
func TemperatureScan(results map[string][]float64, symbol string, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s ionization fractions vs temperature", symbol)
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Fraction (%)"
	p.Y.Min = 0

	if err := addScanLines(p, results, "TEMP", symbol); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// DensityScan renders fraction-vs-density lines from a DensitySweep results
// map, with a logarithmic density axis.
func DensityScan(results map[string][]float64, symbol string, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s ionization fractions vs electron density", symbol)
	p.X.Label.Text = "Electron density (cm^-3)"
	p.Y.Label.Text = "Fraction (%)"
	p.Y.Min = 0
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := addScanLines(p, results, "NE", symbol); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func addScanLines(p *plot.Plot, results map[string][]float64, axisKey, symbol string) error {
	axis, ok := results[axisKey]
	if !ok || len(axis) == 0 {
		return fmt.Errorf("results have no %s axis", axisKey)
	}

	lineIdx := 0
	for charge := 0; ; charge++ {
		fracs, ok := results[analysis.FractionKey(charge)]
		if !ok {
			break
		}
		if len(fracs) != len(axis) {
			return fmt.Errorf("column %s has %d points, axis has %d", analysis.FractionKey(charge), len(fracs), len(axis))
		}

		peak := 0.0
		for _, f := range fracs {
			if f > peak {
				peak = f
			}
		}
		if peak < scanFractionCutoff {
			continue
		}

		xys := make(plotter.XYs, len(axis))
		for i := range axis {
			xys[i].X = axis[i]
			xys[i].Y = fracs[i] * 100
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("building line for charge %d: %v", charge, err)
		}
		line.Color = plotutil.Color(lineIdx)
		lineIdx++

		p.Add(line)
		p.Legend.Add(util.IonName(symbol, charge), line)
	}

	if lineIdx == 0 {
		return fmt.Errorf("no charge state above the %g fraction cutoff", scanFractionCutoff)
	}
	return nil
}
