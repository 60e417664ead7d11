package unit

import "fmt"

// A Series is a sequence of numeric values optionally tagged with the
// Unit they are expressed in. The zero value is an empty untagged
// series.
type Series struct {
	Values []float64
	Unit   Unit
}

// Plain returns an untagged series of vs.
func Plain(vs ...float64) Series {
	return Series{Values: vs}
}

// Tag returns a series of vs expressed in u.
func Tag(u Unit, vs ...float64) Series {
	return Series{Values: vs, Unit: u}
}

// Len returns the number of values in s.
func (s Series) Len() int { return len(s.Values) }

// Tagged reports whether s carries a unit.
func (s Series) Tagged() bool { return !s.Unit.IsZero() }

// Convert returns s expressed in to. It fails with an error wrapping
// ErrMismatch if s is untagged or of a different dimension than to;
// s itself is never modified. Converting a series into its own unit
// returns it unchanged.
func (s Series) Convert(to Unit) (Series, error) {
	if s.Unit.Equal(to) {
		return s, nil
	}
	out := Series{Values: make([]float64, len(s.Values)), Unit: to}
	for i, v := range s.Values {
		c, err := Convert(v, s.Unit, to)
		if err != nil {
			return Series{}, err
		}
		out.Values[i] = c
	}
	return out, nil
}

func (s Series) String() string {
	if !s.Tagged() {
		return fmt.Sprintf("%v", s.Values)
	}
	return fmt.Sprintf("%v %s", s.Values, s.Unit.Symbol())
}
