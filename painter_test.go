package chartkit

import (
	"fmt"
	"image/color"
	"testing"
)

type testLabel struct {
	size Point
	p    *recordPainter
}

func (l testLabel) Size() Point { return l.size }

func (l testLabel) DrawAt(Point) {
	if l.p != nil {
		l.p.flatLabels++
	}
}

func (l testLabel) DrawVertical(Point) {
	if l.p != nil {
		l.p.verticalLabels++
	}
}

// recordPainter records one string per primitive call so tests can compare
// whole draw sequences. Label sizes are derived from the text so margin
// calculations stay deterministic.
type recordPainter struct {
	AAStack
	ops            []string
	labelRenders   int
	flatLabels     int
	verticalLabels int
}

func (p *recordPainter) Line(from, to Point, pen Pen) {
	p.ops = append(p.ops, fmt.Sprintf("line %.1f,%.1f-%.1f,%.1f", from.X, from.Y, to.X, to.Y))
}

func (p *recordPainter) Polyline(pts []Point, pen Pen) {
	p.ops = append(p.ops, fmt.Sprintf("polyline n=%d", len(pts)))
}

func (p *recordPainter) Polygon(pts []Point, pen Pen, brush Brush) {
	p.ops = append(p.ops, fmt.Sprintf("polygon n=%d", len(pts)))
}

func (p *recordPainter) Rect(r Rect, pen Pen, brush Brush) {
	p.ops = append(p.ops, fmt.Sprintf("rect %.1f,%.1f-%.1f,%.1f", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y))
}

func (p *recordPainter) Circle(center Point, radius float64, pen Pen, brush Brush) {
	p.ops = append(p.ops, fmt.Sprintf("circle %.1f,%.1f r=%.1f", center.X, center.Y, radius))
}

func (p *recordPainter) Label(font Font, text string, col color.NRGBA) Label {
	p.labelRenders++
	return testLabel{size: Pt(float64(len([]rune(text)))*7, font.Size+2), p: p}
}

func (p *recordPainter) ExportMode() bool { return false }

func TestDrawScatterUsesPrimitives(t *testing.T) {
	cases := []struct {
		style ScatterStyle
		want  int
	}{
		{ScatterNone, 0},
		{ScatterDot, 1},
		{ScatterCross, 2},
		{ScatterPlus, 2},
		{ScatterCircle, 1},
		{ScatterStar, 4},
		{ScatterCrossSquare, 3},
		{ScatterPlusCircle, 3},
	}
	for _, c := range cases {
		p := &recordPainter{}
		DrawScatter(p, Pt(10, 10), 6, c.style, SolidPen(color.NRGBA{A: 255}, 1))
		if len(p.ops) != c.want {
			t.Errorf("style %d: got %d primitives, want %d", c.style, len(p.ops), c.want)
		}
	}
}

func TestDrawScatterInvisiblePen(t *testing.T) {
	p := &recordPainter{}
	DrawScatter(p, Pt(0, 0), 6, ScatterCircle, NoPen)
	if len(p.ops) != 0 {
		t.Fatalf("invisible pen drew %d primitives", len(p.ops))
	}
}

func TestAAStackDefaultEnabled(t *testing.T) {
	var s AAStack
	if !s.Antialiasing() {
		t.Fatal("empty stack should report antialiasing enabled")
	}
	s.PushAntialiasing(false)
	if s.Antialiasing() {
		t.Fatal("pushed hint not honored")
	}
	s.PopAntialiasing()
	if !s.Antialiasing() {
		t.Fatal("pop did not restore default")
	}
	// popping an empty stack must not panic
	s.PopAntialiasing()
}
