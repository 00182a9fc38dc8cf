package chartkit

import (
	"image/color"
	"math"
)

// ItemLine is a line segment between two positions.
type ItemLine struct {
	itemBase

	Start, End *Position

	pen, selectedPen Pen
}

func NewItemLine() *ItemLine {
	l := &ItemLine{itemBase: newItemBase()}
	l.Start = l.createPosition("start")
	l.End = l.createPosition("end")
	l.pen = SolidPen(color.NRGBA{A: 255}, 1)
	l.selectedPen = SolidPen(color.NRGBA{R: 80, G: 80, B: 255, A: 255}, 2)
	return l
}

func (l *ItemLine) SetPen(p Pen)         { l.pen = p }
func (l *ItemLine) SetSelectedPen(p Pen) { l.selectedPen = p }

func (l *ItemLine) Draw(p Painter) {
	pen := l.pen
	if l.selected {
		pen = l.selectedPen
	}
	p.Line(l.Start.PixelPoint(), l.End.PixelPoint(), pen)
}

func (l *ItemLine) SelectTest(pos Point) float64 {
	if !l.visible || !l.selectable {
		return -1
	}
	return l.distWithinTolerance(distSqrToLine(l.Start.PixelPoint(), l.End.PixelPoint(), pos))
}

// ItemStraightLine is an infinite line through two positions, drawn clipped
// to the axis rect.
type ItemStraightLine struct {
	itemBase

	Point1, Point2 *Position

	pen, selectedPen Pen
}

func NewItemStraightLine() *ItemStraightLine {
	l := &ItemStraightLine{itemBase: newItemBase()}
	l.Point1 = l.createPosition("point1")
	l.Point2 = l.createPosition("point2")
	l.pen = SolidPen(color.NRGBA{A: 255}, 1)
	l.selectedPen = SolidPen(color.NRGBA{R: 80, G: 80, B: 255, A: 255}, 2)
	return l
}

func (l *ItemStraightLine) SetPen(p Pen)         { l.pen = p }
func (l *ItemStraightLine) SetSelectedPen(p Pen) { l.selectedPen = p }

// clipEndpoints extends the line through p1 and p2 to the border of rect.
// It reports false when the two positions coincide.
func (l *ItemStraightLine) clipEndpoints(p1, p2 Point, rect Rect) (Point, Point, bool) {
	d := p2.Sub(p1)
	if d.X == 0 && d.Y == 0 {
		return Point{}, Point{}, false
	}
	// extend far enough that both endpoints land outside any plausible rect
	scale := 2 * (rect.Width() + rect.Height()) / math.Sqrt(d.lengthSquared())
	a := Pt(p1.X-d.X*scale, p1.Y-d.Y*scale)
	b := Pt(p1.X+d.X*scale, p1.Y+d.Y*scale)
	return a, b, true
}

func (l *ItemStraightLine) Draw(p Painter) {
	pen := l.pen
	if l.selected {
		pen = l.selectedPen
	}
	rect := l.plot.AxisRect()
	a, b, ok := l.clipEndpoints(l.Point1.PixelPoint(), l.Point2.PixelPoint(), rect)
	if !ok {
		return
	}
	p.Line(a, b, pen)
}

func (l *ItemStraightLine) SelectTest(pos Point) float64 {
	if !l.visible || !l.selectable {
		return -1
	}
	a, b, ok := l.clipEndpoints(l.Point1.PixelPoint(), l.Point2.PixelPoint(), l.plot.AxisRect())
	if !ok {
		return -1
	}
	return l.distWithinTolerance(distSqrToLine(a, b, pos))
}

// ItemRect is a rectangle spanned by two positions, with anchors on its
// corners and edge midpoints.
type ItemRect struct {
	itemBase

	TopLeft, BottomRight *Position

	pen, selectedPen Pen
	brush            Brush
}

func NewItemRect() *ItemRect {
	r := &ItemRect{itemBase: newItemBase()}
	r.TopLeft = r.createPosition("topLeft")
	r.BottomRight = r.createPosition("bottomRight")
	r.pen = SolidPen(color.NRGBA{A: 255}, 1)
	r.selectedPen = SolidPen(color.NRGBA{R: 80, G: 80, B: 255, A: 255}, 2)
	r.createAnchor("top", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Center().X, rect.Min.Y)
	})
	r.createAnchor("bottom", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Center().X, rect.Max.Y)
	})
	r.createAnchor("left", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Min.X, rect.Center().Y)
	})
	r.createAnchor("right", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Max.X, rect.Center().Y)
	})
	r.createAnchor("topRight", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Max.X, rect.Min.Y)
	})
	r.createAnchor("bottomLeft", func() Point {
		rect := r.pixelRect()
		return Pt(rect.Min.X, rect.Max.Y)
	})
	return r
}

func (r *ItemRect) SetPen(p Pen)         { r.pen = p }
func (r *ItemRect) SetSelectedPen(p Pen) { r.selectedPen = p }
func (r *ItemRect) SetBrush(b Brush)     { r.brush = b }

func (r *ItemRect) pixelRect() Rect {
	a := r.TopLeft.PixelPoint()
	b := r.BottomRight.PixelPoint()
	return Rect{
		Min: Pt(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: Pt(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

func (r *ItemRect) Draw(p Painter) {
	pen := r.pen
	if r.selected {
		pen = r.selectedPen
	}
	p.Rect(r.pixelRect(), pen, r.brush)
}

func (r *ItemRect) SelectTest(pos Point) float64 {
	if !r.visible || !r.selectable {
		return -1
	}
	d := rectSelectTest(r.pixelRect(), pos, r.brush.Visible(), r.selectTolerance())
	if d < 0 || d > r.selectTolerance() {
		return -1
	}
	return d
}

// ItemText is a text label anchored at a position. The position refers to
// the center of the padded text box.
type ItemText struct {
	itemBase

	At *Position

	text    string
	font    Font
	color   color.NRGBA
	padding float64
	pen     Pen
	brush   Brush
}

func NewItemText() *ItemText {
	t := &ItemText{itemBase: newItemBase()}
	t.At = t.createPosition("position")
	t.font = Font{Size: 12}
	t.color = color.NRGBA{A: 255}
	return t
}

func (t *ItemText) SetText(text string)        { t.text = text }
func (t *ItemText) Text() string               { return t.text }
func (t *ItemText) SetFont(f Font)             { t.font = f }
func (t *ItemText) SetColor(c color.NRGBA)     { t.color = c }
func (t *ItemText) SetPadding(padding float64) { t.padding = padding }

// SetPen sets the frame pen drawn around the padded text box.
func (t *ItemText) SetPen(p Pen)     { t.pen = p }
func (t *ItemText) SetBrush(b Brush) { t.brush = b }

func (t *ItemText) box(size Point) Rect {
	center := t.At.PixelPoint()
	half := Pt(size.X/2+t.padding, size.Y/2+t.padding)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (t *ItemText) Draw(p Painter) {
	if t.text == "" {
		return
	}
	label := p.Label(t.font, t.text, t.color)
	box := t.box(label.Size())
	if t.pen.Visible() || t.brush.Visible() {
		p.Rect(box, t.pen, t.brush)
	}
	label.DrawAt(Pt(box.Min.X+t.padding, box.Min.Y+t.padding))
}

// SelectTest approximates the text box from the position and a nominal line
// height, since exact text metrics need a painter.
func (t *ItemText) SelectTest(pos Point) float64 {
	if !t.visible || !t.selectable || t.text == "" {
		return -1
	}
	approx := Pt(float64(len(t.text))*t.font.Size*0.55, t.font.Size*1.3)
	d := rectSelectTest(t.box(approx), pos, true, t.selectTolerance())
	if d < 0 || d > t.selectTolerance() {
		return -1
	}
	return d
}

// ItemTracer marks a point on a graph: given a key, it sits on the graph at
// that key, interpolating between the two neighboring data points.
type ItemTracer struct {
	itemBase

	At *Position

	graph    *Graph
	graphKey float64

	style ScatterStyle
	size  float64
	pen   Pen
}

func NewItemTracer() *ItemTracer {
	t := &ItemTracer{itemBase: newItemBase()}
	t.At = t.createPosition("position")
	t.At.SetMode(PosAbsolute)
	t.style = ScatterCrossCircle
	t.size = 12
	t.pen = SolidPen(color.NRGBA{A: 255}, 1)
	return t
}

// SetGraph attaches the tracer to graph; nil detaches it, leaving the
// position free for manual placement.
func (t *ItemTracer) SetGraph(g *Graph) { t.graph = g }

func (t *ItemTracer) SetGraphKey(key float64)    { t.graphKey = key }
func (t *ItemTracer) SetStyle(s ScatterStyle)    { t.style = s }
func (t *ItemTracer) SetSize(size float64)       { t.size = size }
func (t *ItemTracer) SetPen(p Pen)               { t.pen = p }

// updatePosition moves the position onto the attached graph at graphKey.
// Called during Draw, and callable directly after data changes.
func (t *ItemTracer) updatePosition() {
	if t.graph == nil || t.graph.data.Len() == 0 || !t.graph.axesUsable() {
		return
	}
	data := t.graph.data
	first, last := data.At(0), data.At(data.Len()-1)
	key := t.graphKey
	var value float64
	switch {
	case key <= first.Key:
		key, value = first.Key, first.Value
	case key >= last.Key:
		key, value = last.Key, last.Value
	default:
		var prev, next GraphPoint
		data.EachInRange(key, key, func(pt GraphPoint) bool {
			if pt.Key <= key {
				prev = pt
				return true
			}
			next = pt
			return false
		})
		if next.Key == prev.Key {
			value = prev.Value
		} else {
			frac := (key - prev.Key) / (next.Key - prev.Key)
			value = prev.Value + frac*(next.Value-prev.Value)
		}
	}
	pos := t.graph.coordsToPixels(key, value)
	t.At.SetMode(PosAbsolute)
	t.At.SetCoords(pos.X, pos.Y)
}

func (t *ItemTracer) Draw(p Painter) {
	t.updatePosition()
	DrawScatter(p, t.At.PixelPoint(), t.size, t.style, t.pen)
}

func (t *ItemTracer) SelectTest(pos Point) float64 {
	if !t.visible || !t.selectable {
		return -1
	}
	return t.distWithinTolerance(pos.Sub(t.At.PixelPoint()).lengthSquared())
}
