package chartkit

import "math"

const (
	// minRangeSpan is the smallest span a Range may have. Ranges that would
	// collapse below this are widened around their center so coordinate
	// transforms never divide by zero.
	minRangeSpan = 1e-280
	// maxRangeMagnitude bounds the absolute value of either end of a Range.
	maxRangeMagnitude = 1e280
)

// Range describes the closed interval of a data dimension that is currently
// visible along one axis.
type Range struct {
	Lower, Upper float64
}

func (r Range) Size() float64 {
	return r.Upper - r.Lower
}

func (r Range) Center() float64 {
	return (r.Lower + r.Upper) / 2
}

func (r Range) Contains(value float64) bool {
	return value >= r.Lower && value <= r.Upper
}

// Normalized returns r with the bounds swapped if they are inverted.
func (r Range) Normalized() Range {
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	return r
}

// Expanded returns the smallest range containing both r and other.
func (r Range) Expanded(other Range) Range {
	if other.Lower < r.Lower {
		r.Lower = other.Lower
	}
	if other.Upper > r.Upper {
		r.Upper = other.Upper
	}
	return r
}

// SanitizedForLinScale returns a normalized range guaranteed to be usable on
// a linear axis: NaN bounds are replaced by a minimal span around the valid
// bound (or around zero if both are NaN) and degenerate spans are widened
// around the center to minRangeSpan.
func (r Range) SanitizedForLinScale() Range {
	lowerNaN := math.IsNaN(r.Lower)
	upperNaN := math.IsNaN(r.Upper)
	switch {
	case lowerNaN && upperNaN:
		r.Lower, r.Upper = -minRangeSpan/2, minRangeSpan/2
	case lowerNaN:
		r.Lower = r.Upper - minRangeSpan
	case upperNaN:
		r.Upper = r.Lower + minRangeSpan
	}
	r = r.Normalized()
	if r.Size() < minRangeSpan {
		center := r.Center()
		r.Lower = center - minRangeSpan/2
		r.Upper = center + minRangeSpan/2
	}
	return r
}

// SanitizedForLogScale returns a normalized range whose bounds share one sign
// domain, as required by a logarithmic axis. A bound on the wrong side of
// zero is pulled to a small fraction of the other bound.
func (r Range) SanitizedForLogScale() Range {
	const rangeFac = 1e-3
	r = r.SanitizedForLinScale()
	switch {
	case r.Upper > 0 && r.Lower <= 0:
		if r.Upper*rangeFac > minRangeSpan {
			r.Lower = r.Upper * rangeFac
		} else {
			r.Lower = minRangeSpan
		}
	case r.Lower < 0 && r.Upper >= 0:
		if r.Lower*rangeFac < -minRangeSpan {
			r.Upper = r.Lower * rangeFac
		} else {
			r.Upper = -minRangeSpan
		}
	}
	return r
}

// ValidRange reports whether the interval [lower, upper] can become an axis
// range: finite, properly ordered, within magnitude bounds and wider than the
// minimal span.
func ValidRange(lower, upper float64) bool {
	return lower < upper &&
		!math.IsNaN(lower) && !math.IsNaN(upper) &&
		lower > -maxRangeMagnitude && upper < maxRangeMagnitude &&
		math.Abs(upper-lower) > minRangeSpan
}
