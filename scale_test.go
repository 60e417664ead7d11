package unitscale

import (
	"errors"
	"testing"

	"github.com/vdobler/unitscale/unit"
)

var (
	meter = unit.MustParse("m")
	km    = unit.MustParse("km")
	watt  = unit.MustParse("W")
	kw    = unit.MustParse("kW")
)

func mustNewX(t *testing.T, opts Options) *Scale {
	t.Helper()
	s, err := NewX(opts)
	if err != nil {
		t.Fatalf("NewX failed: %v", err)
	}
	return s
}

func TestScaleTrainConverts(t *testing.T) {
	s := mustNewX(t, Options{Name: "distance", Unit: "m"})

	if err := s.Train(unit.Tag(km, 1, 2)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := (Interval{1000, 2000}); !s.Data.Equal(want) {
		t.Errorf("got data %v, want %v", s.Data, want)
	}

	// Same unit values are folded in as they are.
	if err := s.Train(unit.Tag(meter, 500)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := (Interval{500, 2000}); !s.Data.Equal(want) {
		t.Errorf("got data %v, want %v", s.Data, want)
	}
}

func TestScaleTrainUntagged(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})

	// Untagged values are trusted to be in the scale's unit.
	if err := s.Train(unit.Plain(3, 7)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := (Interval{3, 7}); !s.Data.Equal(want) {
		t.Errorf("got data %v, want %v", s.Data, want)
	}
}

func TestScaleTrainNeverAdopts(t *testing.T) {
	s := mustNewX(t, Options{})

	if err := s.Train(unit.Tag(km, 1, 2)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !s.Unit().IsZero() {
		t.Errorf("train adopted unit %v", s.Unit())
	}
	if want := (Interval{1, 2}); !s.Data.Equal(want) {
		t.Errorf("got data %v, want %v", s.Data, want)
	}
}

func TestScaleTrainMismatch(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})
	if err := s.Train(unit.Tag(meter, 5)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	err := s.Train(unit.Tag(watt, 1, 2))
	if !errors.Is(err, unit.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
	// The failed series must not leak into the trained range.
	if want := (Interval{5, 5}); !s.Data.Equal(want) {
		t.Errorf("got data %v, want %v", s.Data, want)
	}
}

func TestScaleTrainEmpty(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})
	if err := s.Train(unit.Series{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if s.HasData() {
		t.Errorf("empty series trained data %v", s.Data)
	}
}

func TestScaleMapConverts(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})

	got, err := s.Map(unit.Tag(km, 1, 2), Interval{0, 2000})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []float64{0.5, 1}
	for i := range want {
		if !equal64(got[i], want[i]) {
			t.Errorf("%d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestScaleMapAdopts(t *testing.T) {
	s := mustNewX(t, Options{Name: "power"})

	// The first tagged series donates its unit.
	got, err := s.Map(unit.Tag(watt, 5), Interval{0, 10})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !equal64(got[0], 0.5) {
		t.Errorf("got %g, want 0.5", got[0])
	}
	if !s.Unit().Equal(watt) {
		t.Errorf("got unit %v, want W", s.Unit())
	}

	// Later series convert to the adopted unit.
	got, err = s.Map(unit.Tag(kw, 1), Interval{0, 2000})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !equal64(got[0], 0.5) {
		t.Errorf("got %g, want 0.5", got[0])
	}

	// Incompatible series fail against the adopted unit.
	if _, err := s.Map(unit.Tag(km, 3), Interval{0, 10}); !errors.Is(err, unit.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}

	if got, want := s.MakeTitle("power"), "power [W]"; got != want {
		t.Errorf("got title %q, want %q", got, want)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	// Mapping km data on a meter scale matches mapping the identical
	// data pre-converted to meters.
	a := mustNewX(t, Options{Unit: "m"})
	b := mustNewX(t, Options{Unit: "m"})
	limits := Interval{0, 2000}

	conv, err := unit.Tag(km, 1.5).Convert(meter)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	ma, err := a.Map(unit.Tag(km, 1.5), limits)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	mb, err := b.Map(conv, limits)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ma[0] != mb[0] {
		t.Errorf("got %g and %g", ma[0], mb[0])
	}
}

func TestScaleMapMismatch(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})

	_, err := s.Map(unit.Tag(watt, 1), Interval{0, 1})
	if !errors.Is(err, unit.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
	if !s.Unit().Equal(meter) {
		t.Errorf("mismatch changed unit to %v", s.Unit())
	}
}

func TestScaleMapUntagged(t *testing.T) {
	s := mustNewX(t, Options{Unit: "m"})

	got, err := s.Map(unit.Plain(5), Interval{0, 10})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !equal64(got[0], 0.5) {
		t.Errorf("got %g, want 0.5", got[0])
	}
}

func TestScaleMakeTitle(t *testing.T) {
	cases := []struct {
		unit  interface{}
		title string
		want  string
	}{
		{"m", "distance", "distance [m]"},
		{"m", "", "[m]"},
		{"W", "power", "power [W]"},
		{nil, "speed", "speed []"},
		{nil, "", "[]"},
	}

	for i, tc := range cases {
		s := mustNewX(t, Options{Unit: tc.unit})
		if got := s.MakeTitle(tc.title); got != tc.want {
			t.Errorf("%d: got %q, want %q", i, got, tc.want)
		}
		// Deriving the title must not change the scale.
		if got := s.MakeTitle(tc.title); got != tc.want {
			t.Errorf("%d: second call got %q, want %q", i, got, tc.want)
		}
	}
}

func TestScaleString(t *testing.T) {
	s := mustNewX(t, Options{Name: "distance", Unit: "m"})
	if got := s.String(); got == "" || got == "<nil>" {
		t.Errorf("got %q", got)
	}

	var nilScale *Scale
	if got := nilScale.String(); got != "<nil>" {
		t.Errorf("got %q, want <nil>", got)
	}
}
