package chartkit

import (
	"math"
	"slices"
)

// StatisticalBox plots a five-number summary at a single key: whiskers from
// minimum to maximum, a box between the quartiles, a median line and
// optional outlier points beyond the whiskers.
type StatisticalBox struct {
	plottableBase

	key                          float64
	minimum, lowerQuartile       float64
	median                       float64
	upperQuartile, maximum       float64
	outliers                     []float64

	width        float64
	whiskerWidth float64

	whiskerPen   Pen
	medianPen    Pen
	outlierStyle ScatterStyle
	outlierSize  float64
}

func NewStatisticalBox(keyAxis, valueAxis *Axis) *StatisticalBox {
	base := newPlottableBase(keyAxis, valueAxis)
	return &StatisticalBox{
		plottableBase: base,
		width:         0.5,
		whiskerWidth:  0.2,
		whiskerPen:    Pen{Color: base.pen.Color, Width: 1, Dash: []float64{2, 2}},
		medianPen:     SolidPen(base.pen.Color, 3),
		outlierStyle:  ScatterCircle,
		outlierSize:   6,
	}
}

// SetSummary sets all five summary values at once. Values are expected in
// ascending order; no reordering is performed.
func (s *StatisticalBox) SetSummary(key, minimum, lowerQuartile, median, upperQuartile, maximum float64) {
	s.key = key
	s.minimum = minimum
	s.lowerQuartile = lowerQuartile
	s.median = median
	s.upperQuartile = upperQuartile
	s.maximum = maximum
}

func (s *StatisticalBox) SetKey(key float64)             { s.key = key }
func (s *StatisticalBox) SetMinimum(v float64)           { s.minimum = v }
func (s *StatisticalBox) SetLowerQuartile(v float64)     { s.lowerQuartile = v }
func (s *StatisticalBox) SetMedian(v float64)            { s.median = v }
func (s *StatisticalBox) SetUpperQuartile(v float64)     { s.upperQuartile = v }
func (s *StatisticalBox) SetMaximum(v float64)           { s.maximum = v }
func (s *StatisticalBox) SetOutliers(values []float64)   { s.outliers = slices.Clone(values) }
func (s *StatisticalBox) SetWidth(w float64)             { s.width = w }
func (s *StatisticalBox) SetWhiskerWidth(w float64)      { s.whiskerWidth = w }
func (s *StatisticalBox) SetWhiskerPen(p Pen)            { s.whiskerPen = p }
func (s *StatisticalBox) SetMedianPen(p Pen)             { s.medianPen = p }
func (s *StatisticalBox) SetOutlierStyle(st ScatterStyle) { s.outlierStyle = st }
func (s *StatisticalBox) SetOutlierSize(size float64)    { s.outlierSize = size }

func (s *StatisticalBox) ClearData() {
	s.key, s.minimum, s.lowerQuartile, s.median, s.upperQuartile, s.maximum = 0, 0, 0, 0, 0, 0
	s.outliers = s.outliers[:0]
}

func (s *StatisticalBox) KeyRange(sign SignDomain) (Range, bool) {
	lo, hi := s.key-s.width/2, s.key+s.width/2
	if !sign.admits(lo) && !sign.admits(hi) {
		return Range{}, false
	}
	return Range{Lower: lo, Upper: hi}, true
}

func (s *StatisticalBox) ValueRange(sign SignDomain) (Range, bool) {
	values := append([]float64{s.minimum, s.maximum}, s.outliers...)
	found := false
	var r Range
	for _, v := range values {
		if !sign.admits(v) {
			continue
		}
		if !found || v < r.Lower {
			r.Lower = v
		}
		if !found || v > r.Upper {
			r.Upper = v
		}
		found = true
	}
	return r, found
}

func (s *StatisticalBox) RescaleAxes(onlyEnlarge bool) {
	rescaleKeyAxis(s, onlyEnlarge)
	rescaleValueAxis(s, onlyEnlarge)
}

func (s *StatisticalBox) boxRect() Rect {
	lo := s.coordsToPixels(s.key-s.width/2, s.lowerQuartile)
	hi := s.coordsToPixels(s.key+s.width/2, s.upperQuartile)
	return Rect{
		Min: Pt(math.Min(lo.X, hi.X), math.Min(lo.Y, hi.Y)),
		Max: Pt(math.Max(lo.X, hi.X), math.Max(lo.Y, hi.Y)),
	}
}

func (s *StatisticalBox) Draw(p Painter) {
	if !s.axesUsable() {
		return
	}
	pen := s.mainPen()
	brush := s.mainBrush()

	// quartile box and median
	p.Rect(s.boxRect(), pen, brush)
	medLo := s.coordsToPixels(s.key-s.width/2, s.median)
	medHi := s.coordsToPixels(s.key+s.width/2, s.median)
	p.Line(medLo, medHi, s.medianPen)

	// whiskers with end caps
	minPt := s.coordsToPixels(s.key, s.minimum)
	maxPt := s.coordsToPixels(s.key, s.maximum)
	lowerBox := s.coordsToPixels(s.key, s.lowerQuartile)
	upperBox := s.coordsToPixels(s.key, s.upperQuartile)
	p.Line(lowerBox, minPt, s.whiskerPen)
	p.Line(upperBox, maxPt, s.whiskerPen)
	capLo := s.coordsToPixels(s.key-s.whiskerWidth/2, 0)
	capHi := s.coordsToPixels(s.key+s.whiskerWidth/2, 0)
	if s.keyAxis.horizontal() {
		p.Line(Pt(capLo.X, minPt.Y), Pt(capHi.X, minPt.Y), pen)
		p.Line(Pt(capLo.X, maxPt.Y), Pt(capHi.X, maxPt.Y), pen)
	} else {
		p.Line(Pt(minPt.X, capLo.Y), Pt(minPt.X, capHi.Y), pen)
		p.Line(Pt(maxPt.X, capLo.Y), Pt(maxPt.X, capHi.Y), pen)
	}

	for _, v := range s.outliers {
		DrawScatter(p, s.coordsToPixels(s.key, v), s.outlierSize, s.outlierStyle, pen)
	}
}

// SelectTest tests against the quartile box; positions inside report just
// under the tolerance so the box wins over nearby line plottables.
func (s *StatisticalBox) SelectTest(pos Point) float64 {
	if !s.visible || !s.selectable || !s.axesUsable() {
		return -1
	}
	tolerance := s.selectTolerance()
	d := rectSelectTest(s.boxRect(), pos, true, tolerance)
	if d < 0 || d > tolerance {
		return -1
	}
	return d
}

func (s *StatisticalBox) DrawLegendIcon(p Painter, rect Rect) {
	inset := rect.Expanded(-rect.Width() / 5)
	p.Rect(inset, s.pen, s.brush)
	midY := inset.Center().Y
	p.Line(Pt(inset.Min.X, midY), Pt(inset.Max.X, midY), s.medianPen)
}
