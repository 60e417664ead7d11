package unitscale

import (
	"fmt"

	"github.com/vdobler/unitscale/unit"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is a continuous positional scale which is aware of measurement
// units. It behaves like the embedded Continuous scale except that
// tagged series are converted to the scale's unit before training and
// mapping, and that the unit's symbol decorates the axis title.
//
// The unit of a Scale may be unset. Such a scale treats all values as
// plain numbers until the first tagged series is mapped, at which point
// it adopts that series' unit. Training never adopts a unit: data
// passed to Train before the unit is known is folded in unconverted.
type Scale struct {
	*Continuous

	unit unit.Unit
}

var _ PositionScaler = (*Scale)(nil)

// Unit returns the unit of s. It is the zero Unit while no unit has
// been set or adopted.
func (s *Scale) Unit() unit.Unit {
	return s.unit
}

// Train folds the values of seq into the trained data range. A tagged
// series is converted to the scale's unit first; the conversion happens
// wholesale, so an incompatible series leaves the trained range
// untouched.
func (s *Scale) Train(seq unit.Series) error {
	if seq.Len() == 0 {
		return nil
	}
	if !s.unit.IsZero() && seq.Tagged() {
		conv, err := seq.Convert(s.unit)
		if err != nil {
			return fmt.Errorf("unitscale: train: %w", err)
		}
		seq = conv
	}
	s.Continuous.train(seq.Values)
	return nil
}

// Map converts the values of seq into [0,1]-normalized plot coordinates
// relative to limits. A tagged series is converted to the scale's unit
// first; if the scale has no unit yet it adopts the series' unit
// instead. Untagged series are mapped as plain numbers.
func (s *Scale) Map(seq unit.Series, limits Interval) ([]float64, error) {
	if seq.Tagged() {
		if s.unit.IsZero() {
			s.unit = seq.Unit
		} else {
			conv, err := seq.Convert(s.unit)
			if err != nil {
				return nil, fmt.Errorf("unitscale: map: %w", err)
			}
			seq = conv
		}
	}
	return s.Continuous.mapValues(seq.Values, limits), nil
}

// MakeTitle appends the unit symbol in square brackets to title. The
// brackets are kept even while the unit is unset so that a missing unit
// is visible on the axis.
func (s *Scale) MakeTitle(title string) string {
	if title == "" {
		return "[" + s.unit.Symbol() + "]"
	}
	return title + " [" + s.unit.Symbol() + "]"
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s in %s", s.Continuous.String(), s.unit)
}
