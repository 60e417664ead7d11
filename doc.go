// Package unitscale provides continuous position scales which are aware
// of measurement units.
//
// It follows the scale concept from ggplot2 on top of
// gonum.org/v1/plot: a scale is trained on the data of all layers, maps
// the data to normalized plot coordinates and generates the axis
// decorations. The unit algebra is delegated to github.com/bcicen/go-units.
//
// Units
//
// Every value in package unitscale travels as a unit.Series, a slice of
// float64 optionally tagged with the unit it is measured in. A scale
// may be constructed with a unit, in which case tagged series are
// converted before training and mapping and incompatible series are
// rejected. A scale constructed without a unit treats everything as
// plain numbers until the first tagged series is mapped; it then adopts
// that series' unit and converts everything after.
//
// The axis title always shows the scale's unit in square brackets, an
// empty pair of brackets for a scale which never saw a unit.
//
// Scales
//
// NewX and NewY construct the x- and y-scale of a plot. Both cover a
// whole family of aesthetics: an x-scale governs x, xmin, xmax, xend
// and friends. The scales are drawn as axes, not as guides. The usual
// continuous scale machinery is available:
//   - fixed limits and out-of-bounds handling (censor, squish, keep)
//   - range expansion and autoscaling
//   - transformations such as Log10Trans with matching tickers
//   - explicit breaks, minor breaks and labels
//   - a secondary axis derived from the primary one by a formula
//
// BuildAxis runs the whole pipeline, train, autoscale, map, and returns
// the Axis decorations together with the mapped data.
package unitscale
