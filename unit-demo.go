// +build ignore

package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/unitscale"
	"github.com/vdobler/unitscale/unit"
)

var (
	meter = unit.MustParse("m")
	km    = unit.MustParse("km")
	watt  = unit.MustParse("W")
	kw    = unit.MustParse("kW")
)

func main() {
	// Two rides, recorded by different head units: one reports
	// kilometers and kilowatts, the other meters and watts.
	distA := unit.Tag(km, 0.5, 1.0, 1.5, 2.0, 2.5)
	powA := unit.Tag(kw, 0.21, 0.25, 0.22, 0.28, 0.24)
	distB := unit.Tag(meter, 400, 900, 1400, 1900, 2400)
	powB := unit.Tag(watt, 180, 210, 205, 230, 215)

	// The x scale is fixed to meters, the y scale adopts the unit of
	// the first series it maps, kilowatts here.
	x, err := unitscale.NewX(unitscale.Options{Name: "distance", Unit: "m"})
	if err != nil {
		panic(err)
	}
	y, err := unitscale.NewY(unitscale.Options{Name: "power"})
	if err != nil {
		panic(err)
	}

	xAxis, _, err := unitscale.BuildAxis(x, distA, distB)
	if err != nil {
		panic(err)
	}
	yAxis, _, err := unitscale.BuildAxis(y, powA, powB)
	if err != nil {
		panic(err)
	}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Power over distance"
	p.X.Label.Text = xAxis.Title
	p.X.Min, p.X.Max = xAxis.Range.Min, xAxis.Range.Max
	p.X.Tick.Marker = plot.ConstantTicks(xAxis.Ticks)
	p.Y.Label.Text = yAxis.Title
	p.Y.Min, p.Y.Max = yAxis.Range.Min, yAxis.Range.Max
	p.Y.Tick.Marker = plot.ConstantTicks(yAxis.Ticks)
	p.Add(plotter.NewGrid())

	sA := scatter(distA, powA, x, y)
	sA.GlyphStyle.Color = color.RGBA{R: 0xd6, G: 0x2f, B: 0x2f, A: 0xff}
	sB := scatter(distB, powB, x, y)
	sB.GlyphStyle.Color = color.RGBA{R: 0x2f, G: 0x5f, B: 0xd6, A: 0xff}
	p.Add(sA, sB)
	p.Legend.Add("ride A", sA)
	p.Legend.Add("ride B", sB)
	p.Legend.Top = true

	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, "testdata/unit-demo.png"); err != nil {
		panic(err)
	}
}

// scatter converts the two series to the units of their scales and
// pairs them up.
func scatter(xs, ys unit.Series, x, y *unitscale.Scale) *plotter.Scatter {
	xc, err := xs.Convert(x.Unit())
	if err != nil {
		panic(err)
	}
	yc, err := ys.Convert(y.Unit())
	if err != nil {
		panic(err)
	}

	xy := make(plotter.XYs, xs.Len())
	for i := range xy {
		xy[i].X, xy[i].Y = xc.Values[i], yc.Values[i]
	}
	s, err := plotter.NewScatter(xy)
	if err != nil {
		panic(err)
	}
	s.GlyphStyle.Radius = vg.Points(3)
	return s
}
