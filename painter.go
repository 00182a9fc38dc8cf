package chartkit

import (
	"image/color"
	"math"
)

// Pen describes how lines are stroked. A pen with zero alpha or zero width
// draws nothing.
type Pen struct {
	Color color.NRGBA
	Width float64
	// Dash is an on/off pattern in pixels. Empty means a solid stroke.
	Dash []float64
}

func SolidPen(c color.NRGBA, width float64) Pen {
	return Pen{Color: c, Width: width}
}

func (p Pen) Visible() bool {
	return p.Color.A != 0 && p.Width > 0
}

// Brush describes how closed shapes are filled. A brush with zero alpha
// fills nothing.
type Brush struct {
	Color color.NRGBA
}

func (b Brush) Visible() bool {
	return b.Color.A != 0
}

// NoPen and NoBrush are the invisible defaults.
var (
	NoPen   = Pen{}
	NoBrush = Brush{}
)

// Font selects a text style for labels. It is comparable and doubles as part
// of the label cache key, so it must stay a pure value type.
type Font struct {
	// Size in points.
	Size float64
	Bold bool
}

// ScatterStyle selects the symbol drawn at data points.
type ScatterStyle int

const (
	ScatterNone ScatterStyle = iota
	ScatterDot
	ScatterCross
	ScatterPlus
	ScatterCircle
	ScatterDisc
	ScatterSquare
	ScatterDiamond
	ScatterStar
	ScatterTriangle
	ScatterTriangleInverted
	ScatterCrossSquare
	ScatterPlusSquare
	ScatterCrossCircle
	ScatterPlusCircle
)

// Label is a piece of text rendered by a Painter, reusable across draw calls.
// Axis tick labels hold on to these through the label cache so the expensive
// rendering step happens once per (font, text) pair.
type Label interface {
	// Size is the pixel extent of the rendered text.
	Size() Point
	// DrawAt draws the text with its top-left corner at origin.
	DrawAt(origin Point)
	// DrawVertical draws the text rotated 90 degrees counter-clockwise,
	// reading bottom-to-top, with the top-left corner of the rotated
	// bounding box at origin.
	DrawVertical(origin Point)
}

// Painter is the drawing backend boundary. Implementations exist for Gio ops
// (gioplot), rasterx raster surfaces (rasterpaint) and SVG documents
// (svgpaint). All coordinates are in surface pixels.
//
// PushAntialiasing and PopAntialiasing must be balanced; elements that force
// a hint push before drawing and pop afterwards, including on early returns.
type Painter interface {
	Line(from, to Point, pen Pen)
	Polyline(pts []Point, pen Pen)
	// Polygon fills the closed polygon with brush, then strokes its outline
	// with pen, so strokes stay crisp on top of fills.
	Polygon(pts []Point, pen Pen, brush Brush)
	Rect(r Rect, pen Pen, brush Brush)
	Circle(center Point, radius float64, pen Pen, brush Brush)
	// Label renders text for later placement. Implementations should make
	// this cheap to draw repeatedly; callers cache the result.
	Label(font Font, text string, col color.NRGBA) Label
	PushAntialiasing(enabled bool)
	PopAntialiasing()
	// ExportMode reports whether output is destined for a scalable document,
	// in which case device-pixel alignment tricks must be skipped.
	ExportMode() bool
}

// AAStack implements the scoped antialiasing discipline shared by painter
// backends. The zero value reports antialiasing enabled.
type AAStack struct {
	stack []bool
}

func (s *AAStack) PushAntialiasing(enabled bool) {
	s.stack = append(s.stack, enabled)
}

func (s *AAStack) PopAntialiasing() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Antialiasing returns the current top of the hint stack.
func (s *AAStack) Antialiasing() bool {
	if len(s.stack) == 0 {
		return true
	}
	return s.stack[len(s.stack)-1]
}

// DrawScatter draws one scatter symbol centered on center using the painter's
// primitive operations. size is the full diameter of the symbol.
func DrawScatter(p Painter, center Point, size float64, style ScatterStyle, pen Pen) {
	if style == ScatterNone || !pen.Visible() {
		return
	}
	w := size / 2
	x, y := center.X, center.Y
	switch style {
	case ScatterDot:
		p.Circle(center, pen.Width/2, NoPen, Brush{Color: pen.Color})
	case ScatterCross:
		p.Line(Pt(x-w, y-w), Pt(x+w, y+w), pen)
		p.Line(Pt(x-w, y+w), Pt(x+w, y-w), pen)
	case ScatterPlus:
		p.Line(Pt(x-w, y), Pt(x+w, y), pen)
		p.Line(Pt(x, y-w), Pt(x, y+w), pen)
	case ScatterCircle:
		p.Circle(center, w, pen, NoBrush)
	case ScatterDisc:
		p.Circle(center, w, pen, Brush{Color: pen.Color})
	case ScatterSquare:
		p.Rect(Rect{Min: Pt(x-w, y-w), Max: Pt(x+w, y+w)}, pen, NoBrush)
	case ScatterDiamond:
		p.Polygon([]Point{
			{X: x - w, Y: y},
			{X: x, Y: y - w},
			{X: x + w, Y: y},
			{X: x, Y: y + w},
		}, pen, NoBrush)
	case ScatterStar:
		d := w * math.Sqrt2 / 2
		p.Line(Pt(x-w, y), Pt(x+w, y), pen)
		p.Line(Pt(x, y-w), Pt(x, y+w), pen)
		p.Line(Pt(x-d, y-d), Pt(x+d, y+d), pen)
		p.Line(Pt(x-d, y+d), Pt(x+d, y-d), pen)
	case ScatterTriangle:
		p.Polygon([]Point{
			{X: x - w, Y: y + 0.755 * w},
			{X: x + w, Y: y + 0.755 * w},
			{X: x, Y: y - 0.977 * w},
		}, pen, NoBrush)
	case ScatterTriangleInverted:
		p.Polygon([]Point{
			{X: x - w, Y: y - 0.755 * w},
			{X: x + w, Y: y - 0.755 * w},
			{X: x, Y: y + 0.977 * w},
		}, pen, NoBrush)
	case ScatterCrossSquare:
		d := w * 0.95
		p.Line(Pt(x-d, y-d), Pt(x+d, y+d), pen)
		p.Line(Pt(x-d, y+d), Pt(x+d, y-d), pen)
		p.Rect(Rect{Min: Pt(x-w, y-w), Max: Pt(x+w, y+w)}, pen, NoBrush)
	case ScatterPlusSquare:
		d := w * 0.95
		p.Line(Pt(x-d, y), Pt(x+d, y), pen)
		p.Line(Pt(x, y-d), Pt(x, y+d), pen)
		p.Rect(Rect{Min: Pt(x-w, y-w), Max: Pt(x+w, y+w)}, pen, NoBrush)
	case ScatterCrossCircle:
		d := w / math.Sqrt2
		p.Line(Pt(x-d, y-d), Pt(x+d, y+d), pen)
		p.Line(Pt(x-d, y+d), Pt(x+d, y-d), pen)
		p.Circle(center, w, pen, NoBrush)
	case ScatterPlusCircle:
		p.Line(Pt(x-w, y), Pt(x+w, y), pen)
		p.Line(Pt(x, y-w), Pt(x, y+w), pen)
		p.Circle(center, w, pen, NoBrush)
	}
}
