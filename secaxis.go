package unitscale

import (
	"errors"
	"fmt"
)

// ErrSecAxis is returned when a secondary axis specification is not one
// of the supported forms or is incomplete.
var ErrSecAxis = errors.New("unitscale: secondary axes must be specified using a SecondaryAxis or a transformation formula")

// ----------------------------------------------------------------------------
// SecAxisSpec

// A SecAxisSpec describes the secondary axis of a scale. The supported
// specifications are a full *SecondaryAxis, a bare SecFormula and
// Duplicate which mirrors the primary axis.
type SecAxisSpec interface {
	secondaryAxis() (*SecondaryAxis, error)
}

// SecondaryAxis describes an axis drawn opposite the primary one. It
// shares the primary axis' spatial extent and relabels it through
// Formula, typically a unit conversion like meters to feet.
type SecondaryAxis struct {
	// Name is the title of the secondary axis.
	Name string

	// Formula converts a primary axis value to the corresponding
	// secondary axis value.
	Formula func(float64) float64

	// Breaks fixes the secondary breaks, given in primary axis values.
	// While unset the primary breaks are reused. Labels replaces the
	// default labels and requires Breaks of the same length.
	Breaks []float64
	Labels []string
}

func (sa *SecondaryAxis) secondaryAxis() (*SecondaryAxis, error) {
	if sa == nil || sa.Formula == nil {
		return nil, fmt.Errorf("%w: missing formula", ErrSecAxis)
	}
	if sa.Labels != nil && len(sa.Labels) != len(sa.Breaks) {
		return nil, fmt.Errorf("%w: %d labels for %d breaks",
			ErrBreaksLabels, len(sa.Labels), len(sa.Breaks))
	}
	return sa, nil
}

// SecFormula promotes a bare conversion formula to a secondary axis
// specification without a title of its own.
type SecFormula func(float64) float64

func (f SecFormula) secondaryAxis() (*SecondaryAxis, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: missing formula", ErrSecAxis)
	}
	return &SecondaryAxis{Formula: f}, nil
}

// Duplicate returns a secondary axis specification which mirrors the
// primary axis one to one.
func Duplicate() SecAxisSpec {
	return SecFormula(func(x float64) float64 { return x })
}
