package unitscale

import "math"

// ----------------------------------------------------------------------------
// Interval

// An Interval represents a (potentially degenerate) real interval. An
// edge may be NaN indicating that this edge is not set.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval with both edges unset.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include the non-NaN values of x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j agree, treating NaN edges as equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Width returns the length of i.
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

func have(x float64) bool {
	return !math.IsNaN(x)
}

// ----------------------------------------------------------------------------
// Autoscaling

// Expansion describes how far a scale's range extends past the trained
// data: a fraction of the data width plus an absolute amount.
type Expansion struct {
	Relative float64
	Absolute float64
}

// DefaultExpansion is the usual 5% padding around the data.
func DefaultExpansion() Expansion {
	return Expansion{Relative: 0.05}
}

// Autoscaling controls how the min and max of a scale's range are
// derived from the trained data. Setting MinRange (or MaxRange) to a
// degenerate interval [f,f] turns autoscaling off for that edge and
// fixes it to f. A non-degenerate range [u,v] clamps autoscaling between
// u and v; a NaN edge works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the data range is expanded.
	Expand Expansion

	MinRange Interval // MinRange constrains the Min of the range.
	MaxRange Interval // MaxRange constrains the Max of the range.
}
