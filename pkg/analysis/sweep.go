package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/vikasci/ionization-sim/pkg/atomdata"
	"github.com/vikasci/ionization-sim/pkg/saha"
)

// TemperatureSweep solves the distribution on a linear temperature grid at
// fixed electron density.
type TemperatureSweep struct {
	BaseAnalysis
	tStart, tStop float64 // K
	points        int
	ne            float64 // cm^-3
}

func NewTemperatureSweep(tStart, tStop float64, points int, ne float64) *TemperatureSweep {
	return &TemperatureSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		tStart:       tStart,
		tStop:        tStop,
		points:       points,
		ne:           ne,
	}
}

func (ts *TemperatureSweep) Setup(elem *atomdata.ElementData) error {
	if err := elem.Validate(); err != nil {
		return err
	}
	if ts.tStart <= 0 || ts.tStop < ts.tStart {
		return fmt.Errorf("invalid temperature range %g..%g K", ts.tStart, ts.tStop)
	}
	if ts.points < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", ts.points)
	}
	ts.Element = elem
	return nil
}

func (ts *TemperatureSweep) Execute() error {
	if ts.Element == nil {
		return fmt.Errorf("element not set")
	}

	grid := floats.Span(make([]float64, ts.points), ts.tStart, ts.tStop)
	for _, T := range grid {
		frac, err := saha.IonizationFractions(ts.Element, T, ts.ne)
		if err != nil {
			return fmt.Errorf("at T=%g K: %v", T, err)
		}
		ts.storePoint("TEMP", T, frac)
	}

	return nil
}

// DensitySweep solves the distribution on a logarithmic electron-density
// grid at fixed temperature.
type DensitySweep struct {
	BaseAnalysis
	neStart, neStop float64 // cm^-3
	points          int
	temp            float64 // K
}

func NewDensitySweep(neStart, neStop float64, points int, T float64) *DensitySweep {
	return &DensitySweep{
		BaseAnalysis: *NewBaseAnalysis(),
		neStart:      neStart,
		neStop:       neStop,
		points:       points,
		temp:         T,
	}
}

func (ds *DensitySweep) Setup(elem *atomdata.ElementData) error {
	if err := elem.Validate(); err != nil {
		return err
	}
	if ds.neStart <= 0 || ds.neStop < ds.neStart {
		return fmt.Errorf("invalid density range %g..%g cm^-3", ds.neStart, ds.neStop)
	}
	if ds.points < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", ds.points)
	}
	ds.Element = elem
	return nil
}

func (ds *DensitySweep) Execute() error {
	if ds.Element == nil {
		return fmt.Errorf("element not set")
	}

	grid := floats.LogSpan(make([]float64, ds.points), ds.neStart, ds.neStop)
	for _, ne := range grid {
		frac, err := saha.IonizationFractions(ds.Element, ds.temp, ne)
		if err != nil {
			return fmt.Errorf("at ne=%g cm^-3: %v", ne, err)
		}
		ds.storePoint("NE", ne, frac)
	}

	return nil
}
