// Package unit tags plain float64 data with physical units and converts
// between compatible units.
//
// The actual unit algebra -- which units exist, which are convertible
// and by what rule -- is delegated to github.com/bcicen/go-units. This
// package merely adapts it for use by plot scales: parsing unit
// specifications, tagging value sequences and converting them, with
// dimension mismatches reported as errors suitable for errors.Is.
package unit

import (
	"errors"
	"fmt"

	units "github.com/bcicen/go-units"
)

// All errors returned by this package wrap one of these sentinels.
var (
	// ErrParse is returned when a textual unit specification does not
	// name a known unit.
	ErrParse = errors.New("unit: unrecognized unit")

	// ErrMismatch is returned when a conversion between units of
	// different dimension is attempted.
	ErrMismatch = errors.New("unit: incompatible dimensions")

	// ErrBadSpec is returned by Resolve for argument types that cannot
	// describe a unit.
	ErrBadSpec = errors.New("unit: unit must be unset or a recognized unit specification")
)

// A Unit identifies a physical dimension specification like meters or
// watts. Two units of the same dimension are convertible into each
// other, all other conversions fail. The zero value is the unset unit.
type Unit struct {
	u   units.Unit
	set bool
}

// Parse resolves a textual unit specification -- a name or symbol like
// "meter", "m" or "km" -- to a Unit. The error wraps ErrParse if the
// text does not name a known unit.
func Parse(s string) (Unit, error) {
	u, err := units.Find(s)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return Unit{u: u, set: true}, nil
}

// MustParse is like Parse but panics on unknown units. Use it for units
// known at compile time.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// IsZero reports whether u is the unset unit.
func (u Unit) IsZero() bool { return !u.set }

// Name returns the canonical unit name, e.g. "meter", or the empty
// string for the unset unit.
func (u Unit) Name() string {
	if !u.set {
		return ""
	}
	return u.u.Name
}

// Symbol returns the short unit symbol, e.g. "m", or the empty string
// for the unset unit.
func (u Unit) Symbol() string {
	if !u.set {
		return ""
	}
	return u.u.Symbol
}

func (u Unit) String() string {
	if !u.set {
		return "unset"
	}
	return u.u.Name
}

// Equal reports whether u and v name the same unit.
func (u Unit) Equal(v Unit) bool {
	if u.set != v.set {
		return false
	}
	return !u.set || u.u.Name == v.u.Name
}

// Compatible reports whether values can be converted between u and v,
// i.e. whether both measure the same dimension.
func (u Unit) Compatible(v Unit) bool {
	if !u.set || !v.set {
		return false
	}
	if u.Equal(v) {
		return true
	}
	_, err := units.ConvertFloat(1, u.u, v.u)
	return err == nil
}

// Convert expresses x, given in from, in to. Conversions between units
// of different dimension fail with an error wrapping ErrMismatch; the
// unset unit is not convertible at all.
func Convert(x float64, from, to Unit) (float64, error) {
	if !from.set || !to.set {
		return 0, fmt.Errorf("%w: %v -> %v", ErrMismatch, from, to)
	}
	if from.Equal(to) {
		return x, nil
	}
	v, err := units.ConvertFloat(x, from.u, to.u)
	if err != nil {
		return 0, fmt.Errorf("%w: %v -> %v", ErrMismatch, from, to)
	}
	return v.Float(), nil
}

// Resolve normalizes the accepted forms of a unit argument into a Unit:
//
//	nil        the unset unit
//	Unit       used as is
//	string     parsed with Parse
//	Series     the unit carried by the series, which may be unset
//
// Any other type fails with an error wrapping ErrBadSpec.
func Resolve(v interface{}) (Unit, error) {
	switch x := v.(type) {
	case nil:
		return Unit{}, nil
	case Unit:
		return x, nil
	case string:
		return Parse(x)
	case Series:
		return x.Unit, nil
	}
	return Unit{}, fmt.Errorf("%w, not %T", ErrBadSpec, v)
}
