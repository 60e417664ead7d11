package unitscale

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/vdobler/unitscale/unit"
)

// ----------------------------------------------------------------------------
// PositionScaler

// A PositionScaler is the capability set a plot builder expects from a
// positional scale: accumulate the domain covered by the data, map data
// values to normalized plot coordinates and produce the axis title.
//
// The builder calls Train once per layer while collecting data, Map
// while drawing and MakeTitle when the axis decorations are assembled,
// in that order.
type PositionScaler interface {
	// Train folds the values of s into the trained data range.
	Train(s unit.Series) error

	// Map converts the values of s into [0,1]-normalized plot
	// coordinates relative to limits.
	Map(s unit.Series, limits Interval) ([]float64, error)

	// Limits returns the fixed limits of the scale or, where not
	// fixed, the trained data range.
	Limits() Interval

	// MakeTitle derives the axis title from the given title.
	MakeTitle(title string) string
}

// ----------------------------------------------------------------------------
// OOB

// OOB selects how Map treats values outside the axis limits.
type OOB int

const (
	// OOBCensor replaces out-of-bounds values with the missing-value
	// placeholder.
	OOBCensor OOB = iota

	// OOBSquish clamps out-of-bounds values to the nearest limit.
	OOBSquish

	// OOBKeep maps out-of-bounds values as they are, yielding
	// coordinates below 0 or above 1.
	OOBKeep
)

// String returns the name of o.
func (o OOB) String() string {
	return [...]string{"censor", "squish", "keep"}[int(o)]
}

func (o OOB) apply(x float64, limits Interval) float64 {
	if limits.Contains(x) {
		return x
	}
	switch o {
	case OOBCensor:
		return math.NaN()
	case OOBSquish:
		if x < limits.Min {
			return limits.Min
		}
		return limits.Max
	case OOBKeep:
		return x
	default:
		panic(o)
	}
}

// ----------------------------------------------------------------------------
// Position

// Position names the plot edge an axis is drawn on.
type Position int

const (
	// PosDefault selects the factory's default edge: bottom for x
	// scales and left for y scales.
	PosDefault Position = iota
	PosBottom
	PosLeft
	PosTop
	PosRight
)

// String returns the name of p.
func (p Position) String() string {
	return [...]string{"default", "bottom", "left", "top", "right"}[int(p)]
}

// ----------------------------------------------------------------------------
// Continuous

// Continuous is the default PositionScaler implementation: a continuous
// positional scale with autoscaling, range expansion, an optional
// transformation and plot.Ticker based break generation. It treats all
// values as plain numbers; unit handling is layered on top by Scale.
type Continuous struct {
	// Name is the axis title before decoration.
	Name string

	// Aes lists the aesthetic names this scale applies to, e.g. "x",
	// "xmin" and "xmax" for an x scale.
	Aes []string

	// Breaks fixes the major breaks and MinorBreaks the unlabeled
	// minor ones. While unset the Ticker generates the breaks. Labels
	// replaces the default break labels and requires Breaks of the
	// same length.
	Breaks      []float64
	MinorBreaks []float64
	Labels      []string

	// Ticker generates breaks when none are fixed. It defaults to the
	// transformation's ticker.
	Ticker plot.Ticker

	// NAValue is the coordinate Map substitutes for missing and
	// censored values.
	NAValue float64

	// OOB selects the treatment of values outside the limits.
	OOB OOB

	// Trans deforms the data space before mapping.
	Trans Transformation

	// Position is the plot edge the axis is drawn on.
	Position Position

	// Guide names the guide drawn for this scale. Positional scales
	// are drawn as axes, not as guides, so this is fixed to "none" by
	// the factories.
	Guide string

	// SecAxis optionally describes a secondary axis sharing this
	// scale's spatial extent.
	SecAxis *SecondaryAxis

	// Autoscaling controls how Range is derived from Data.
	Autoscaling

	// Data is the range covered by the trained data. It is owned by
	// the scale: only Train updates it.
	Data Interval

	// Range is the displayed range computed by Autoscale.
	Range Interval
}

var _ PositionScaler = (*Continuous)(nil)

// NewContinuous returns a continuous scale which autoscales to the
// trained data with the default expansion.
func NewContinuous() *Continuous {
	return &Continuous{
		NAValue: math.NaN(),
		Trans:   IdentityTrans,
		Guide:   "none",
		Autoscaling: Autoscaling{
			Expand:   DefaultExpansion(),
			MinRange: UnsetInterval(),
			MaxRange: UnsetInterval(),
		},
		Data:  UnsetInterval(),
		Range: UnsetInterval(),
	}
}

// Train implements PositionScaler. The default implementation ignores
// any unit tag and trains on the plain values.
func (c *Continuous) Train(s unit.Series) error {
	c.train(s.Values)
	return nil
}

func (c *Continuous) train(vs []float64) {
	if len(vs) == 0 {
		return
	}
	c.Data.Update(vs...)
}

// Map implements PositionScaler. The default implementation ignores any
// unit tag and maps the plain values.
func (c *Continuous) Map(s unit.Series, limits Interval) ([]float64, error) {
	return c.mapValues(s.Values, limits), nil
}

func (c *Continuous) mapValues(vs []float64, limits Interval) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = c.mapValue(v, limits)
	}
	return out
}

// mapValue maps x to [0,1] relative to limits: the out-of-bounds policy
// first, the missing-value placeholder second, then the transformation.
func (c *Continuous) mapValue(x float64, limits Interval) float64 {
	if !limits.Valid() || limits.Min == limits.Max {
		return math.NaN()
	}
	if !math.IsNaN(x) {
		x = c.OOB.apply(x, limits)
	}
	if math.IsNaN(x) {
		return c.NAValue
	}
	return c.trans().Trans(limits, Interval{0, 1}, x)
}

func (c *Continuous) trans() Transformation {
	if c.Trans.Trans == nil {
		return IdentityTrans
	}
	return c.Trans
}

// FixMin fixes the lower limit of the scale to x. If x is NaN the limit
// is determined by autoscaling again.
func (c *Continuous) FixMin(x float64) {
	c.MinRange.Min = x
	c.MinRange.Max = x
}

// FixMax fixes the upper limit of the scale to x. If x is NaN the limit
// is determined by autoscaling again.
func (c *Continuous) FixMax(x float64) {
	c.MaxRange.Min = x
	c.MaxRange.Max = x
}

// HasData reports whether the Data interval of c is valid.
func (c *Continuous) HasData() bool {
	return c.Data.Valid()
}

// Limits implements PositionScaler: the fixed limits where set,
// otherwise the trained data range.
func (c *Continuous) Limits() Interval {
	lim := c.Data
	if c.MinRange.Min == c.MinRange.Max {
		lim.Min = c.MinRange.Min
	}
	if c.MaxRange.Min == c.MaxRange.Max {
		lim.Max = c.MaxRange.Min
	}
	return lim
}

// MakeTitle implements PositionScaler. The default implementation
// returns the title unchanged.
func (c *Continuous) MakeTitle(title string) string {
	return title
}

// expanded returns the data range widened per Expand. Transformations
// with a log domain expand multiplicatively to stay positive.
func (c *Continuous) expanded() Interval {
	if c.trans().LogDomain && c.Data.Min > 0 {
		f := math.Pow(c.Data.Max/c.Data.Min, c.Expand.Relative)
		return Interval{c.Data.Min / f, c.Data.Max * f}
	}
	ext := c.Expand.Relative*c.Data.Width() + c.Expand.Absolute
	return Interval{c.Data.Min - ext, c.Data.Max + ext}
}

// Autoscale derives the displayed Range from the trained data: each
// edge is either fixed by the user, or the expanded data edge clamped
// per MinRange/MaxRange. A scale without data and without fixed edges
// falls back to [-1,1] so that an axis can always be drawn.
func (c *Continuous) Autoscale() {
	if c.HasData() {
		exp := c.expanded()

		// Determine the left edge.
		if c.MinRange.Min == c.MinRange.Max {
			// Degenerate MinRange and non NaN: fixed by the user.
			c.Range.Min = c.MinRange.Min
		} else {
			c.Range.Min = exp.Min
			if c.MinRange.Min > c.Range.Min {
				c.Range.Min = c.MinRange.Min
			}
			if c.MinRange.Max < c.Range.Min {
				c.Range.Min = c.MinRange.Max
			}
		}

		// Determine the right edge.
		if c.MaxRange.Min == c.MaxRange.Max {
			c.Range.Max = c.MaxRange.Min
		} else {
			c.Range.Max = exp.Max
			if c.MaxRange.Min > c.Range.Max {
				c.Range.Max = c.MaxRange.Min
			}
			if c.MaxRange.Max < c.Range.Max {
				c.Range.Max = c.MaxRange.Max
			}
		}
	} else {
		if c.MinRange.Min == c.MinRange.Max {
			c.Range.Min = c.MinRange.Min
		}
		if c.MaxRange.Min == c.MaxRange.Max {
			c.Range.Max = c.MaxRange.Min
		}
	}

	// The range must not be unset or degenerate.
	switch {
	case !have(c.Range.Min) && !have(c.Range.Max):
		c.Range = Interval{-1, 1}
	case !have(c.Range.Min):
		c.Range.Min = c.Range.Max - 2
	case !have(c.Range.Max):
		c.Range.Max = c.Range.Min + 2
	}
	if c.Range.Min == c.Range.Max {
		c.Range.Min--
		c.Range.Max++
	}
}

// Ticks returns the axis breaks for the displayed range: the explicit
// Breaks, MinorBreaks and Labels when set, otherwise the ticker's
// output. Breaks outside the range are dropped.
func (c *Continuous) Ticks() []plot.Tick {
	lim := c.Range
	if !lim.Valid() {
		lim = c.Limits()
	}
	if !lim.Valid() {
		return nil
	}

	if c.Breaks != nil || c.MinorBreaks != nil {
		return c.explicitTicks(lim)
	}

	t := c.Ticker
	if t == nil {
		t = c.trans().Ticker
	}
	if t == nil {
		t = plot.DefaultTicks{}
	}
	return t.Ticks(lim.Min, lim.Max)
}

func (c *Continuous) explicitTicks(lim Interval) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(c.Breaks)+len(c.MinorBreaks))
	for i, b := range c.Breaks {
		if !lim.Contains(b) {
			continue
		}
		label := formatTick(b)
		if c.Labels != nil {
			label = c.Labels[i]
		}
		ticks = append(ticks, plot.Tick{Value: b, Label: label})
	}
	for _, b := range c.MinorBreaks {
		if !lim.Contains(b) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: b})
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (c *Continuous) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %q",
		c.Range.Min, c.Range.Max, c.Data.Min, c.Data.Max, c.Name)
}
