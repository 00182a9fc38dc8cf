package chartkit

import "image/color"

// Grid draws lines across the axis rect at its axis's tick positions. Every
// axis owns one; grids live on the grid layer and draw before plottables.
type Grid struct {
	axis *Axis

	visible     bool
	subGrid     bool
	pen         Pen
	subGridPen  Pen
	zeroLinePen Pen
}

func newGrid(axis *Axis, lineColor color.NRGBA) *Grid {
	return &Grid{
		axis:    axis,
		visible: axis.side == AxisBottom || axis.side == AxisLeft,
		pen: Pen{
			Color: lineColor,
			Width: 1,
			Dash:  []float64{1, 2},
		},
		subGridPen: Pen{
			Color: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Width: 1,
			Dash:  []float64{1, 3},
		},
		zeroLinePen: SolidPen(color.NRGBA{R: 130, G: 130, B: 130, A: 255}, 1),
	}
}

func (g *Grid) Visible() bool        { return g.visible }
func (g *Grid) SetVisible(v bool)    { g.visible = v }
func (g *Grid) SetSubGrid(on bool)   { g.subGrid = on }
func (g *Grid) SetPen(p Pen)         { g.pen = p }
func (g *Grid) SetSubGridPen(p Pen)  { g.subGridPen = p }

// SetZeroLinePen sets the pen for the line at coordinate zero. An invisible
// pen makes zero draw like any other grid line.
func (g *Grid) SetZeroLinePen(p Pen) { g.zeroLinePen = p }

// Draw renders sub-grid lines, grid lines and the zero line, in that order.
func (g *Grid) Draw(p Painter) {
	a := g.axis
	if a.axisRect.Empty() || a.rng.Size() <= 0 {
		return
	}
	p.PushAntialiasing(false)
	defer p.PopAntialiasing()

	if g.subGrid && g.subGridPen.Visible() {
		for _, sub := range a.subTicks {
			g.line(p, a.CoordToPixel(sub), g.subGridPen)
		}
	}

	zeroLine := g.zeroLinePen.Visible() && a.scale == ScaleLinear && a.rng.Contains(0)
	for i := a.lowestTick; i <= a.highestTick && i < len(a.ticks); i++ {
		if i < 0 {
			continue
		}
		tick := a.ticks[i]
		// the zero line is drawn separately so it cannot double up
		if zeroLine && tick == 0 {
			continue
		}
		g.line(p, a.CoordToPixel(tick), g.pen)
	}
	if zeroLine {
		g.line(p, a.CoordToPixel(0), g.zeroLinePen)
	}
}

// line draws one grid line through pixel position t, perpendicular to the
// axis, spanning the full axis rect.
func (g *Grid) line(p Painter, t float64, pen Pen) {
	r := g.axis.axisRect
	if g.axis.horizontal() {
		p.Line(Pt(t, r.Min.Y), Pt(t, r.Max.Y), pen)
	} else {
		p.Line(Pt(r.Min.X, t), Pt(r.Max.X, t), pen)
	}
}
