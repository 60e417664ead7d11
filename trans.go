package unitscale

import (
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale transformations
//
// A positional scale may deform its data space before mapping it onto
// the plot coordinate, like the log and sqrt scale transformations known
// from common grammar-of-graphics implementations.

// A Transformation bundles two functions Trans and Inverse together with
// a plot.Ticker appropriate for the transformed space. Trans maps x from
// the interval from onto the interval to; Inverse maps a value of to
// back into from, undoing Trans.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker

	// LogDomain marks transformations which require a strictly
	// positive data range.
	LogDomain bool
}

func linmap(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// IdentityTrans maps the data linearly, i.e. does not deform it.
var IdentityTrans = Transformation{
	Name: "identity",
	Trans: func(from, to Interval, x float64) float64 {
		return linmap(from, to, x)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return linmap(to, from, y)
	},
	Ticker: plot.DefaultTicks{},
}

// ReverseTrans flips the scale so that larger values map to smaller
// coordinates.
var ReverseTrans = Transformation{
	Name: "reverse",
	Trans: func(from, to Interval, x float64) float64 {
		return linmap(from, Interval{to.Max, to.Min}, x)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return linmap(Interval{to.Max, to.Min}, from, y)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps the data logarithmically. The data range must be
// strictly positive.
var Log10Trans = Transformation{
	Name: "log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
	Ticker:    plot.LogTicks{},
	LogDomain: true,
}

// SqrtTrans spreads the lower end of the data by mapping it through a
// square root. The data must not be negative.
var SqrtTrans = Transformation{
	Name: "sqrt",
	Trans: func(from, to Interval, x float64) float64 {
		lo, hi := math.Sqrt(from.Min), math.Sqrt(from.Max)
		t := (math.Sqrt(x) - lo) / (hi - lo)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		lo, hi := math.Sqrt(from.Min), math.Sqrt(from.Max)
		s := lo + (hi-lo)*(y-to.Min)/(to.Max-to.Min)
		return s * s
	},
	Ticker: plot.DefaultTicks{},
}
