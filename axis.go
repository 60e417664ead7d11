package unitscale

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"

	"github.com/vdobler/unitscale/unit"
)

// ErrLogRange is returned when a log transformed scale ends up with a
// non-positive range.
var ErrLogRange = errors.New("unitscale: log scale requires a positive range")

// ----------------------------------------------------------------------------
// Axis

// Axis is the drawable outcome of a scale: the decorated title, the
// displayed range and the breaks, plus the secondary axis decorations
// if the scale has one. It contains everything a gonum/plot axis needs
// to be set up.
type Axis struct {
	// Title is the axis title including the unit symbol.
	Title string

	// Position is the plot edge the axis is drawn on.
	Position Position

	// Range is the displayed range in the scale's unit.
	Range Interval

	// Ticks are the axis breaks inside Range.
	Ticks []plot.Tick

	// SecTitle and SecTicks describe the secondary axis. SecTicks is
	// nil when the scale has none.
	SecTitle string
	SecTicks []plot.Tick
}

// BuildAxis runs the full scale pipeline on data: every series is
// trained, the displayed range is autoscaled and each series is mapped
// to [0,1]-normalized coordinates relative to that range. It returns
// the axis decorations and the mapped series, in the order of data.
//
// Mapping may adopt a unit on a scale without one, so the title and
// the ticks are derived after all series are mapped.
func BuildAxis(s *Scale, data ...unit.Series) (Axis, [][]float64, error) {
	for _, d := range data {
		if err := s.Train(d); err != nil {
			return Axis{}, nil, err
		}
	}

	s.Autoscale()
	if s.trans().LogDomain && s.Range.Min <= 0 {
		return Axis{}, nil, fmt.Errorf("%w, got [%g:%g]",
			ErrLogRange, s.Range.Min, s.Range.Max)
	}

	mapped := make([][]float64, len(data))
	for i, d := range data {
		m, err := s.Map(d, s.Range)
		if err != nil {
			return Axis{}, nil, err
		}
		mapped[i] = m
	}

	ax := Axis{
		Title:    s.MakeTitle(s.Name),
		Position: s.Position,
		Range:    s.Range,
		Ticks:    s.Ticks(),
	}
	if s.SecAxis != nil {
		ax.SecTitle = s.SecAxis.Name
		ax.SecTicks = secTicks(s.SecAxis, ax.Ticks, s.Range)
	}
	return ax, mapped, nil
}

// secTicks relabels the primary axis through the secondary formula. The
// secondary breaks sit at their primary axis positions, only the labels
// show converted values.
func secTicks(sa *SecondaryAxis, primary []plot.Tick, lim Interval) []plot.Tick {
	if sa.Breaks != nil {
		ticks := make([]plot.Tick, 0, len(sa.Breaks))
		for i, b := range sa.Breaks {
			if !lim.Contains(b) {
				continue
			}
			label := formatTick(sa.Formula(b))
			if sa.Labels != nil {
				label = sa.Labels[i]
			}
			ticks = append(ticks, plot.Tick{Value: b, Label: label})
		}
		return ticks
	}

	ticks := make([]plot.Tick, 0, len(primary))
	for _, t := range primary {
		if t.IsMinor() {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: t.Value,
			Label: formatTick(sa.Formula(t.Value)),
		})
	}
	return ticks
}
