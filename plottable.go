package chartkit

import "image/color"

// Plottable is a data representation living on a key axis / value axis pair.
// Concrete plottables are Graph, Bars, Curve and StatisticalBox.
type Plottable interface {
	Layerable

	Name() string
	SetName(name string)
	KeyAxis() *Axis
	ValueAxis() *Axis

	// SelectTest returns the pixel distance from pos to the plottable's
	// visual representation, or a negative value when pos is beyond the
	// plot's selection tolerance or the plottable cannot be hit.
	SelectTest(pos Point) float64

	ClearData()
	KeyRange(sign SignDomain) (Range, bool)
	ValueRange(sign SignDomain) (Range, bool)
	RescaleAxes(onlyEnlarge bool)

	// DrawLegendIcon draws a compact representation into rect for legends.
	DrawLegendIcon(p Painter, rect Rect)

	Selectable() bool
	SetSelectable(on bool)
	Selected() bool
	SetSelected(on bool)

	setPlot(pl *Plot)
}

// plottableBase carries the state shared by all plottables. Concrete types
// embed it and implement the drawing and hit-testing specifics.
type plottableBase struct {
	plot               *Plot
	keyAxis, valueAxis *Axis

	name       string
	visible    bool
	selectable bool
	selected   bool

	pen, selectedPen     Pen
	brush, selectedBrush Brush
}

func newPlottableBase(keyAxis, valueAxis *Axis) plottableBase {
	return plottableBase{
		keyAxis:    keyAxis,
		valueAxis:  valueAxis,
		visible:    true,
		selectable: true,
		pen:        SolidPen(color.NRGBA{A: 255}, 1),
		selectedPen: SolidPen(color.NRGBA{R: 80, G: 80, B: 255, A: 255}, 2.5),
		selectedBrush: NoBrush,
	}
}

func (b *plottableBase) Name() string         { return b.name }
func (b *plottableBase) SetName(name string)  { b.name = name }
func (b *plottableBase) KeyAxis() *Axis       { return b.keyAxis }
func (b *plottableBase) ValueAxis() *Axis     { return b.valueAxis }
func (b *plottableBase) Visible() bool        { return b.visible }
func (b *plottableBase) SetVisible(v bool)    { b.visible = v }
func (b *plottableBase) Selectable() bool     { return b.selectable }
func (b *plottableBase) SetSelectable(on bool) { b.selectable = on }
func (b *plottableBase) Selected() bool       { return b.selected }
func (b *plottableBase) SetSelected(on bool)  { b.selected = on }

func (b *plottableBase) SetPen(p Pen)            { b.pen = p }
func (b *plottableBase) SetSelectedPen(p Pen)    { b.selectedPen = p }
func (b *plottableBase) SetBrush(br Brush)       { b.brush = br }
func (b *plottableBase) SetSelectedBrush(br Brush) { b.selectedBrush = br }

func (b *plottableBase) setPlot(pl *Plot) { b.plot = pl }

// SetAxes reassigns the plottable to a new axis pair. Nil axes are allowed;
// the plottable is then skipped during drawing and hit testing.
func (b *plottableBase) SetAxes(keyAxis, valueAxis *Axis) {
	b.keyAxis = keyAxis
	b.valueAxis = valueAxis
}

// axesUsable reports whether both axes are set and belong to the plot, the
// precondition for any coordinate transform.
func (b *plottableBase) axesUsable() bool {
	return b.keyAxis != nil && b.valueAxis != nil
}

func (b *plottableBase) mainPen() Pen {
	if b.selected {
		return b.selectedPen
	}
	return b.pen
}

func (b *plottableBase) mainBrush() Brush {
	if b.selected {
		return b.selectedBrush
	}
	return b.brush
}

// coordsToPixels maps a (key, value) pair to a pixel point, honoring the key
// axis orientation: a vertical key axis swaps the roles of x and y.
func (b *plottableBase) coordsToPixels(key, value float64) Point {
	if b.keyAxis.horizontal() {
		return Pt(b.keyAxis.CoordToPixel(key), b.valueAxis.CoordToPixel(value))
	}
	return Pt(b.valueAxis.CoordToPixel(value), b.keyAxis.CoordToPixel(key))
}

// pixelsToCoords is the inverse of coordsToPixels.
func (b *plottableBase) pixelsToCoords(pos Point) (key, value float64) {
	if b.keyAxis.horizontal() {
		return b.keyAxis.PixelToCoord(pos.X), b.valueAxis.PixelToCoord(pos.Y)
	}
	return b.keyAxis.PixelToCoord(pos.Y), b.valueAxis.PixelToCoord(pos.X)
}

// selectTolerance returns the plot's selection tolerance, or a default when
// the plottable is not registered with a plot.
func (b *plottableBase) selectTolerance() float64 {
	if b.plot != nil {
		return b.plot.SelectionTolerance()
	}
	return defaultSelectionTolerance
}

// signDomainFor returns the sign domain an auto-fit query must respect on
// axis: logarithmic axes can only represent one side of zero at a time.
func signDomainFor(axis *Axis) SignDomain {
	if axis.ScaleType() != ScaleLogarithmic {
		return SignBoth
	}
	if axis.Range().Upper < 0 {
		return SignNegative
	}
	return SignPositive
}

// rescaleKeyAxis fits the key axis to the plottable's key extent.
func rescaleKeyAxis(p Plottable, onlyEnlarge bool) {
	axis := p.KeyAxis()
	if axis == nil {
		return
	}
	r, ok := p.KeyRange(signDomainFor(axis))
	if !ok {
		return
	}
	if onlyEnlarge {
		r = r.Expanded(axis.Range())
	}
	if r.Lower == r.Upper {
		// a single key still deserves a usable range
		r.Lower -= 0.5
		r.Upper += 0.5
	}
	axis.SetRangeTo(r)
}

// rescaleValueAxis fits the value axis to the plottable's value extent.
func rescaleValueAxis(p Plottable, onlyEnlarge bool) {
	axis := p.ValueAxis()
	if axis == nil {
		return
	}
	r, ok := p.ValueRange(signDomainFor(axis))
	if !ok {
		return
	}
	if onlyEnlarge {
		r = r.Expanded(axis.Range())
	}
	if r.Lower == r.Upper {
		r.Lower -= 0.5
		r.Upper += 0.5
	}
	axis.SetRangeTo(r)
}
