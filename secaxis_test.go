package unitscale

import (
	"errors"
	"testing"
)

func TestSecondaryAxisSpec(t *testing.T) {
	sa, err := (&SecondaryAxis{
		Name:    "speed [km/h]",
		Formula: func(x float64) float64 { return 3.6 * x },
	}).secondaryAxis()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sa.Formula(10); !equal64(got, 36) {
		t.Errorf("got %g, want 36", got)
	}
}

func TestSecondaryAxisMissingFormula(t *testing.T) {
	var nilAxis *SecondaryAxis
	for i, spec := range []SecAxisSpec{
		nilAxis,
		&SecondaryAxis{Name: "broken"},
		SecFormula(nil),
	} {
		if _, err := spec.secondaryAxis(); !errors.Is(err, ErrSecAxis) {
			t.Errorf("%d: got %v, want ErrSecAxis", i, err)
		}
	}
}

func TestSecondaryAxisBreaksLabels(t *testing.T) {
	sa := &SecondaryAxis{
		Formula: func(x float64) float64 { return x },
		Breaks:  []float64{1, 2, 3},
		Labels:  []string{"one"},
	}
	if _, err := sa.secondaryAxis(); !errors.Is(err, ErrBreaksLabels) {
		t.Errorf("got %v, want ErrBreaksLabels", err)
	}

	sa.Labels = []string{"one", "two", "three"}
	if _, err := sa.secondaryAxis(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestDuplicate(t *testing.T) {
	sa, err := Duplicate().secondaryAxis()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, x := range []float64{-3, 0, 42.5} {
		if got := sa.Formula(x); got != x {
			t.Errorf("got %g, want %g", got, x)
		}
	}
}
