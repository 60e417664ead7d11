// +build ignore

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/unitscale"
	"github.com/vdobler/unitscale/unit"
)

var (
	meter = unit.MustParse("m")
	km    = unit.MustParse("km")
)

func main() {
	// Altitude profile of a hike. Distances were logged in kilometers,
	// altitudes in meters; the altitude axis gets a secondary feet
	// labeling.
	dist := unit.Tag(km, 0, 1.5, 3, 4.5, 6, 7.5, 9)
	alt := unit.Tag(meter, 450, 740, 1100, 1520, 1390, 980, 520)

	x, err := unitscale.NewX(unitscale.Options{Name: "distance", Unit: "km"})
	if err != nil {
		panic(err)
	}
	y, err := unitscale.NewY(unitscale.Options{
		Name: "altitude",
		Unit: "m",
		SecAxis: &unitscale.SecondaryAxis{
			Name:    "altitude [ft]",
			Formula: func(m float64) float64 { return m * 3.28084 },
		},
	})
	if err != nil {
		panic(err)
	}

	xAxis, _, err := unitscale.BuildAxis(x, dist)
	if err != nil {
		panic(err)
	}
	yAxis, _, err := unitscale.BuildAxis(y, alt)
	if err != nil {
		panic(err)
	}

	// gonum/plot draws no opposite axis, so the secondary labeling is
	// shown on stdout.
	fmt.Println(yAxis.SecTitle)
	for _, tick := range yAxis.SecTicks {
		fmt.Printf("  %8.1f m = %s ft\n", tick.Value, tick.Label)
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Hike profile"
	p.X.Label.Text = xAxis.Title
	p.X.Min, p.X.Max = xAxis.Range.Min, xAxis.Range.Max
	p.X.Tick.Marker = plot.ConstantTicks(xAxis.Ticks)
	p.Y.Label.Text = yAxis.Title
	p.Y.Min, p.Y.Max = yAxis.Range.Min, yAxis.Range.Max
	p.Y.Tick.Marker = plot.ConstantTicks(yAxis.Ticks)
	p.Add(plotter.NewGrid())

	xy := make(plotter.XYs, dist.Len())
	for i := range xy {
		xy[i].X, xy[i].Y = dist.Values[i], alt.Values[i]
	}
	line, err := plotter.NewLine(xy)
	if err != nil {
		panic(err)
	}
	p.Add(line)

	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, "testdata/secaxis-demo.png"); err != nil {
		panic(err)
	}
}
