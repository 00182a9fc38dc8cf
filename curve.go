package chartkit

import "math"

// Curve plots a parametric curve: points ordered by an independent parameter
// rather than by key, so the curve may loop and backtrack.
type Curve struct {
	plottableBase

	data *CurveData

	drawLine     bool
	scatterStyle ScatterStyle
	scatterSize  float64
}

func NewCurve(keyAxis, valueAxis *Axis) *Curve {
	return &Curve{
		plottableBase: newPlottableBase(keyAxis, valueAxis),
		data:          NewCurveData(),
		drawLine:      true,
		scatterSize:   6,
	}
}

func (c *Curve) Data() *CurveData { return c.data }

func (c *Curve) SetData(data *CurveData) {
	c.data.Clear()
	for i := 0; i < data.Len(); i++ {
		c.data.Add(data.At(i))
	}
}

func (c *Curve) AdoptData(data *CurveData) { c.data = data }

func (c *Curve) SetLineVisible(on bool)           { c.drawLine = on }
func (c *Curve) SetScatterStyle(s ScatterStyle)   { c.scatterStyle = s }
func (c *Curve) SetScatterSize(size float64)      { c.scatterSize = size }

func (c *Curve) ClearData() { c.data.Clear() }

func (c *Curve) KeyRange(sign SignDomain) (Range, bool) {
	return c.data.KeyRange(sign)
}

func (c *Curve) ValueRange(sign SignDomain) (Range, bool) {
	return c.data.ValueRange(sign)
}

func (c *Curve) RescaleAxes(onlyEnlarge bool) {
	rescaleKeyAxis(c, onlyEnlarge)
	rescaleValueAxis(c, onlyEnlarge)
}

// linePoints converts the whole curve to pixel space in parameter order.
// Unlike graphs, a key-range cut cannot be taken here because the curve may
// re-enter the visible region at any parameter.
func (c *Curve) linePoints() []Point {
	out := make([]Point, 0, c.data.Len())
	c.data.Each(func(pt CurvePoint) bool {
		out = append(out, c.coordsToPixels(pt.Key, pt.Value))
		return true
	})
	return out
}

func (c *Curve) Draw(p Painter) {
	if !c.axesUsable() || c.data.Len() == 0 {
		return
	}
	pen := c.mainPen()
	line := c.linePoints()
	if c.drawLine && len(line) > 1 && pen.Visible() {
		p.Polyline(line, pen)
	}
	if c.scatterStyle != ScatterNone {
		for _, pos := range line {
			DrawScatter(p, pos, c.scatterSize, c.scatterStyle, pen)
		}
	}
}

func (c *Curve) SelectTest(pos Point) float64 {
	if !c.visible || !c.selectable || !c.axesUsable() || c.data.Len() == 0 {
		return -1
	}
	tolerance := c.selectTolerance()
	line := c.linePoints()
	best := math.MaxFloat64
	if c.drawLine && len(line) > 1 {
		for i := 1; i < len(line); i++ {
			d := distSqrToLine(line[i-1], line[i], pos)
			if d < best {
				best = d
			}
		}
	} else {
		for _, pt := range line {
			d := pos.Sub(pt).lengthSquared()
			if d < best {
				best = d
			}
		}
	}
	dist := math.Sqrt(best)
	if dist > tolerance {
		return -1
	}
	return dist
}

func (c *Curve) DrawLegendIcon(p Painter, rect Rect) {
	center := rect.Center()
	if c.drawLine {
		p.Line(Pt(rect.Min.X, center.Y), Pt(rect.Max.X, center.Y), c.pen)
	}
	DrawScatter(p, center, c.scatterSize, c.scatterStyle, c.pen)
}
