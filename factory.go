package unitscale

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"

	"github.com/vdobler/unitscale/unit"
)

// ErrBreaksLabels is returned when explicit labels do not pair up with
// explicit breaks.
var ErrBreaksLabels = errors.New("unitscale: labels require breaks of the same length")

// ----------------------------------------------------------------------------
// Scale factories

// XAesthetics and YAesthetics are the aesthetic names governed by an x
// respectively y scale. Every positional aesthetic of a layer maps
// through the scale of its family.
var (
	XAesthetics = []string{
		"x", "xmin", "xmax", "xend", "xintercept",
		"xmin_final", "xmax_final", "xlower", "xmiddle", "xupper", "x0",
	}
	YAesthetics = []string{
		"y", "ymin", "ymax", "yend", "yintercept",
		"ymin_final", "ymax_final", "lower", "middle", "upper", "y0",
	}
)

// Options collects the configuration of a positional scale. The zero
// value of every field selects the documented default, so callers set
// only what they need.
type Options struct {
	// Name is the axis title. MakeTitle appends the unit symbol.
	Name string

	// Unit determines the unit of the scale. Accepted are nil (no
	// unit yet), a unit.Unit, the textual name or symbol of a unit
	// and a tagged unit.Series whose unit is taken.
	Unit interface{}

	// Breaks, MinorBreaks and Labels fix the axis breaks, see
	// Continuous.
	Breaks      []float64
	MinorBreaks []float64
	Labels      []string

	// Ticker generates breaks when none are fixed.
	Ticker plot.Ticker

	// Limits fixes the displayed range. A NaN edge keeps autoscaling
	// for that edge.
	Limits *Interval

	// Expand overrides the default range expansion.
	Expand *Expansion

	// OOB selects the treatment of values outside the limits. The
	// default censors them.
	OOB OOB

	// NAValue overrides the coordinate substituted for missing and
	// censored values, NaN by default.
	NAValue *float64

	// Trans deforms the data space before mapping, e.g. Log10Trans.
	Trans Transformation

	// Position selects the plot edge of the axis.
	Position Position

	// SecAxis describes an optional secondary axis.
	SecAxis SecAxisSpec
}

// NewX returns a unit aware continuous scale for the x family of
// aesthetics, drawn at the bottom of the plot unless opts says
// otherwise.
func NewX(opts Options) (*Scale, error) {
	return newScale(XAesthetics, PosBottom, opts)
}

// NewY returns a unit aware continuous scale for the y family of
// aesthetics, drawn at the left of the plot unless opts says otherwise.
func NewY(opts Options) (*Scale, error) {
	return newScale(YAesthetics, PosLeft, opts)
}

func newScale(aes []string, defPos Position, opts Options) (*Scale, error) {
	u, err := unit.Resolve(opts.Unit)
	if err != nil {
		return nil, fmt.Errorf("unitscale: %w", err)
	}

	if opts.Labels != nil && len(opts.Labels) != len(opts.Breaks) {
		return nil, fmt.Errorf("%w: %d labels for %d breaks",
			ErrBreaksLabels, len(opts.Labels), len(opts.Breaks))
	}

	c := NewContinuous()
	c.Name = opts.Name
	c.Aes = aes
	c.Breaks = opts.Breaks
	c.MinorBreaks = opts.MinorBreaks
	c.Labels = opts.Labels
	c.Ticker = opts.Ticker
	c.OOB = opts.OOB
	c.Position = opts.Position
	if c.Position == PosDefault {
		c.Position = defPos
	}
	if opts.Trans.Trans != nil {
		c.Trans = opts.Trans
	}
	if opts.Limits != nil {
		c.FixMin(opts.Limits.Min)
		c.FixMax(opts.Limits.Max)
	}
	if opts.Expand != nil {
		c.Expand = *opts.Expand
	}
	if opts.NAValue != nil {
		c.NAValue = *opts.NAValue
	}
	if opts.SecAxis != nil {
		sec, err := opts.SecAxis.secondaryAxis()
		if err != nil {
			return nil, err
		}
		c.SecAxis = sec
	}

	return &Scale{Continuous: c, unit: u}, nil
}

// ----------------------------------------------------------------------------
// Scale families

// Family names a class of scale implementations.
type Family string

const (
	FamilyUnit       Family = "unit"
	FamilyContinuous Family = "continuous"
)

// ScaleFamilies returns the scale families a series can be handled by,
// most specific first. Plot builders use it to pick a scale
// implementation for a data column.
func ScaleFamilies(s unit.Series) []Family {
	if s.Tagged() {
		return []Family{FamilyUnit, FamilyContinuous}
	}
	return []Family{FamilyContinuous}
}
