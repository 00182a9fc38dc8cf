package chartkit

import "math"

// GraphLineStyle selects how consecutive graph points are connected.
type GraphLineStyle int

const (
	// LineNone draws no connecting lines, only scatters.
	LineNone GraphLineStyle = iota
	// LineDirect connects points with straight segments.
	LineDirect
	// LineStepLeft holds each value until the next key.
	LineStepLeft
	// LineStepRight jumps to the next value at the current key.
	LineStepRight
	// LineStepCenter switches value halfway between keys.
	LineStepCenter
	// LineImpulse draws a vertical stem from the zero line to each point.
	LineImpulse
)

// Graph plots sorted key/value data as lines, scatters, fills and error bars.
type Graph struct {
	plottableBase

	data *GraphData

	lineStyle    GraphLineStyle
	scatterStyle ScatterStyle
	scatterSize  float64

	errorPen Pen
	// errorBarSize is the width of the handle at each error bar end.
	errorBarSize float64

	fillTarget *Graph
}

// NewGraph creates a graph on the given axis pair with an empty data
// container. Register it with Plot.AddPlottable to draw it.
func NewGraph(keyAxis, valueAxis *Axis) *Graph {
	return &Graph{
		plottableBase: newPlottableBase(keyAxis, valueAxis),
		data:          NewGraphData(),
		lineStyle:     LineDirect,
		scatterSize:   6,
		errorPen:      NoPen,
		errorBarSize:  6,
	}
}

// Data returns the graph's data container for direct manipulation.
func (g *Graph) Data() *GraphData { return g.data }

// SetData copies the contents of data into the graph's own container.
func (g *Graph) SetData(data *GraphData) {
	g.data.Clear()
	for i := 0; i < data.Len(); i++ {
		g.data.Add(data.At(i))
	}
}

// AdoptData takes ownership of data without copying. The caller must not use
// data afterwards.
func (g *Graph) AdoptData(data *GraphData) {
	g.data = data
}

func (g *Graph) SetLineStyle(style GraphLineStyle)   { g.lineStyle = style }
func (g *Graph) SetScatterStyle(style ScatterStyle)  { g.scatterStyle = style }
func (g *Graph) SetScatterSize(size float64)         { g.scatterSize = size }
func (g *Graph) SetErrorPen(p Pen)                   { g.errorPen = p }
func (g *Graph) SetErrorBarSize(size float64)        { g.errorBarSize = size }

// SetChannelFill fills the area between this graph and target instead of the
// area down to the zero line. Passing nil restores the zero-line fill.
func (g *Graph) SetChannelFill(target *Graph) { g.fillTarget = target }

func (g *Graph) ClearData() { g.data.Clear() }

func (g *Graph) KeyRange(sign SignDomain) (Range, bool) {
	return g.data.KeyRange(sign)
}

func (g *Graph) ValueRange(sign SignDomain) (Range, bool) {
	return g.data.ValueRange(sign)
}

func (g *Graph) RescaleAxes(onlyEnlarge bool) {
	rescaleKeyAxis(g, onlyEnlarge)
	rescaleValueAxis(g, onlyEnlarge)
}

// visiblePoints collects the data points relevant to the current key range,
// widened by one point on each side so segments crossing the viewport edge
// still draw.
func (g *Graph) visiblePoints() []GraphPoint {
	r := g.keyAxis.Range()
	pts := make([]GraphPoint, 0, 64)
	g.data.EachInRange(r.Lower, r.Upper, func(pt GraphPoint) bool {
		pts = append(pts, pt)
		return true
	})
	return pts
}

// linePoints converts data points to the pixel polyline dictated by the line
// style. LineImpulse is handled separately in Draw.
func (g *Graph) linePoints(pts []GraphPoint) []Point {
	switch g.lineStyle {
	case LineDirect:
		out := make([]Point, len(pts))
		for i, pt := range pts {
			out[i] = g.coordsToPixels(pt.Key, pt.Value)
		}
		return out
	case LineStepLeft:
		out := make([]Point, 0, len(pts)*2)
		for i, pt := range pts {
			p := g.coordsToPixels(pt.Key, pt.Value)
			if i > 0 {
				prev := g.coordsToPixels(pts[i-1].Key, pts[i-1].Value)
				if g.keyAxis.horizontal() {
					out = append(out, Pt(p.X, prev.Y))
				} else {
					out = append(out, Pt(prev.X, p.Y))
				}
			}
			out = append(out, p)
		}
		return out
	case LineStepRight:
		out := make([]Point, 0, len(pts)*2)
		for i, pt := range pts {
			p := g.coordsToPixels(pt.Key, pt.Value)
			if i > 0 {
				prev := g.coordsToPixels(pts[i-1].Key, pts[i-1].Value)
				if g.keyAxis.horizontal() {
					out = append(out, Pt(prev.X, p.Y))
				} else {
					out = append(out, Pt(p.X, prev.Y))
				}
			}
			out = append(out, p)
		}
		return out
	case LineStepCenter:
		out := make([]Point, 0, len(pts)*3)
		for i, pt := range pts {
			p := g.coordsToPixels(pt.Key, pt.Value)
			if i > 0 {
				prev := g.coordsToPixels(pts[i-1].Key, pts[i-1].Value)
				mid := g.keyAxis.CoordToPixel((pts[i-1].Key + pt.Key) / 2)
				if g.keyAxis.horizontal() {
					out = append(out, Pt(mid, prev.Y), Pt(mid, p.Y))
				} else {
					out = append(out, Pt(prev.X, mid), Pt(p.X, mid))
				}
			}
			out = append(out, p)
		}
		return out
	}
	return nil
}

// zeroLinePixel returns the pixel position of value zero on the value axis,
// clamped to the axis rect so fills never extend outside the plot.
func (g *Graph) zeroLinePixel() float64 {
	zero := g.valueAxis.CoordToPixel(0)
	r := g.valueAxis.axisRect
	if g.valueAxis.horizontal() {
		return clamp(zero, r.Min.X, r.Max.X)
	}
	return clamp(zero, r.Min.Y, r.Max.Y)
}

func (g *Graph) Draw(p Painter) {
	if !g.axesUsable() || g.data.Len() == 0 {
		return
	}
	pts := g.visiblePoints()
	if len(pts) == 0 {
		return
	}
	pen := g.mainPen()
	brush := g.mainBrush()
	line := g.linePoints(pts)

	// fill first so the stroke stays on top
	if brush.Visible() && len(line) > 1 && g.lineStyle != LineNone && g.lineStyle != LineImpulse {
		g.drawFill(p, line)
	}

	switch {
	case g.lineStyle == LineImpulse && pen.Visible():
		zero := g.zeroLinePixel()
		for _, pt := range pts {
			pos := g.coordsToPixels(pt.Key, pt.Value)
			if g.keyAxis.horizontal() {
				p.Line(Pt(pos.X, zero), pos, pen)
			} else {
				p.Line(Pt(zero, pos.Y), pos, pen)
			}
		}
	case len(line) > 1 && pen.Visible():
		p.Polyline(line, pen)
	}

	if g.errorPen.Visible() {
		g.drawErrorBars(p, pts)
	}

	if g.scatterStyle != ScatterNone {
		scatterPen := pen
		if !scatterPen.Visible() {
			scatterPen = g.pen
		}
		for _, pt := range pts {
			DrawScatter(p, g.coordsToPixels(pt.Key, pt.Value), g.scatterSize, g.scatterStyle, scatterPen)
		}
	}
}

// drawFill closes the line polyline down to the zero line, or against the
// channel fill target's polyline when one is set.
func (g *Graph) drawFill(p Painter, line []Point) {
	brush := g.mainBrush()
	if g.fillTarget != nil && g.fillTarget.data.Len() > 0 && g.fillTarget.axesUsable() {
		other := g.fillTarget.linePoints(g.fillTarget.visiblePoints())
		if len(other) == 0 {
			return
		}
		poly := make([]Point, 0, len(line)+len(other))
		poly = append(poly, line...)
		for i := len(other) - 1; i >= 0; i-- {
			poly = append(poly, other[i])
		}
		p.Polygon(poly, NoPen, brush)
		return
	}
	zero := g.zeroLinePixel()
	poly := make([]Point, 0, len(line)+2)
	poly = append(poly, line...)
	last, first := line[len(line)-1], line[0]
	if g.keyAxis.horizontal() {
		poly = append(poly, Pt(last.X, zero), Pt(first.X, zero))
	} else {
		poly = append(poly, Pt(zero, last.Y), Pt(zero, first.Y))
	}
	p.Polygon(poly, NoPen, brush)
}

func (g *Graph) drawErrorBars(p Painter, pts []GraphPoint) {
	half := g.errorBarSize / 2
	for _, pt := range pts {
		center := g.coordsToPixels(pt.Key, pt.Value)
		if pt.KeyErrMinus != 0 || pt.KeyErrPlus != 0 {
			lo := g.coordsToPixels(pt.Key-pt.KeyErrMinus, pt.Value)
			hi := g.coordsToPixels(pt.Key+pt.KeyErrPlus, pt.Value)
			p.Line(lo, hi, g.errorPen)
			if g.keyAxis.horizontal() {
				p.Line(Pt(lo.X, center.Y-half), Pt(lo.X, center.Y+half), g.errorPen)
				p.Line(Pt(hi.X, center.Y-half), Pt(hi.X, center.Y+half), g.errorPen)
			} else {
				p.Line(Pt(center.X-half, lo.Y), Pt(center.X+half, lo.Y), g.errorPen)
				p.Line(Pt(center.X-half, hi.Y), Pt(center.X+half, hi.Y), g.errorPen)
			}
		}
		if pt.ValueErrMinus != 0 || pt.ValueErrPlus != 0 {
			lo := g.coordsToPixels(pt.Key, pt.Value-pt.ValueErrMinus)
			hi := g.coordsToPixels(pt.Key, pt.Value+pt.ValueErrPlus)
			p.Line(lo, hi, g.errorPen)
			if g.keyAxis.horizontal() {
				p.Line(Pt(center.X-half, lo.Y), Pt(center.X+half, lo.Y), g.errorPen)
				p.Line(Pt(center.X-half, hi.Y), Pt(center.X+half, hi.Y), g.errorPen)
			} else {
				p.Line(Pt(lo.X, center.Y-half), Pt(lo.X, center.Y+half), g.errorPen)
				p.Line(Pt(hi.X, center.Y-half), Pt(hi.X, center.Y+half), g.errorPen)
			}
		}
	}
}

// SelectTest measures the pixel distance from pos to the graph's line (or to
// its points when no line is drawn). It answers a negative value beyond the
// selection tolerance.
func (g *Graph) SelectTest(pos Point) float64 {
	if !g.visible || !g.selectable || !g.axesUsable() || g.data.Len() == 0 {
		return -1
	}
	tolerance := g.selectTolerance()
	pts := g.visiblePoints()
	if len(pts) == 0 {
		return -1
	}
	best := math.MaxFloat64
	if g.lineStyle == LineNone || g.lineStyle == LineImpulse {
		for _, pt := range pts {
			d := pos.Sub(g.coordsToPixels(pt.Key, pt.Value)).lengthSquared()
			if d < best {
				best = d
			}
		}
	} else {
		line := g.linePoints(pts)
		for i := 1; i < len(line); i++ {
			d := distSqrToLine(line[i-1], line[i], pos)
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

func (g *Graph) DrawLegendIcon(p Painter, rect Rect) {
	center := rect.Center()
	if g.brush.Visible() {
		p.Rect(rect, NoPen, g.brush)
	}
	if g.lineStyle != LineNone && g.pen.Visible() {
		p.Line(Pt(rect.Min.X, center.Y), Pt(rect.Max.X, center.Y), g.pen)
	}
	DrawScatter(p, center, g.scatterSize, g.scatterStyle, g.pen)
}
