package unitscale

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalEqualTests = []struct {
	i, j Interval
	want bool
}{
	{Interval{1, 2}, Interval{1, 2}, true},
	{Interval{1, 2}, Interval{1, 3}, false},
	{Interval{nan, nan}, Interval{nan, nan}, true},
	{Interval{nan, 5}, Interval{nan, 5}, true},
	{Interval{nan, 5}, Interval{nan, 7}, false},
	{Interval{nan, 5}, Interval{1, 5}, false},
}

func TestIntervalEqual(t *testing.T) {
	for i, tc := range intervalEqualTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.i.Equal(tc.j); got != tc.want {
				t.Errorf("%v equal %v = %t, want %t",
					tc.i, tc.j, got, tc.want)
			}
		})
	}
}

func TestIntervalValid(t *testing.T) {
	if UnsetInterval().Valid() {
		t.Error("unset interval reported valid")
	}
	if (Interval{nan, 2}).Valid() {
		t.Error("half set interval reported valid")
	}
	if !(Interval{1, 2}).Valid() {
		t.Error("set interval reported invalid")
	}
}

func TestIntervalContains(t *testing.T) {
	i := Interval{2, 4}
	for _, x := range []float64{2, 3, 4} {
		if !i.Contains(x) {
			t.Errorf("%v does not contain %v", i, x)
		}
	}
	for _, x := range []float64{1.99, 4.01, nan} {
		if i.Contains(x) {
			t.Errorf("%v contains %v", i, x)
		}
	}
}
