package chartkit

import (
	"math"
	"testing"
)

func itemPlot(t *testing.T) *Plot {
	t.Helper()
	pl := NewPlot()
	pl.SetViewport(RectXYWH(0, 0, 120, 120))
	pl.SetMargins(Margins{Left: 10, Right: 10, Top: 10, Bottom: 10})
	pl.AxisX().SetRange(0, 10)
	pl.AxisY().SetRange(0, 10)
	pl.Replot(&recordPainter{})
	return pl
}

func TestPositionModes(t *testing.T) {
	pl := itemPlot(t)
	line := NewItemLine()
	pl.AddItem(line)
	pos := line.Start

	pos.SetMode(PosAbsolute)
	pos.SetCoords(5, 6)
	if p := pos.PixelPoint(); p != Pt(5, 6) {
		t.Fatalf("absolute = %+v", p)
	}

	pos.SetMode(PosViewportRatio)
	pos.SetCoords(0.5, 0.5)
	if p := pos.PixelPoint(); p != Pt(60, 60) {
		t.Fatalf("viewport ratio = %+v", p)
	}

	pos.SetMode(PosAxisRectRatio)
	pos.SetCoords(0, 0)
	if p := pos.PixelPoint(); p != Pt(10, 10) {
		t.Fatalf("axis rect ratio = %+v", p)
	}

	pos.SetMode(PosPlotCoords)
	pos.SetCoords(5, 5)
	if p := pos.PixelPoint(); p != Pt(60, 60) {
		t.Fatalf("plot coords = %+v", p)
	}
	pos.SetCoords(0, 0)
	if p := pos.PixelPoint(); p != Pt(10, 110) {
		t.Fatalf("plot origin = %+v", p)
	}
}

func TestPositionParentAnchorOffset(t *testing.T) {
	pl := itemPlot(t)
	rect := NewItemRect()
	pl.AddItem(rect)
	rect.TopLeft.SetMode(PosAbsolute)
	rect.TopLeft.SetCoords(20, 30)
	rect.BottomRight.SetMode(PosAbsolute)
	rect.BottomRight.SetCoords(40, 50)

	line := NewItemLine()
	pl.AddItem(line)
	if !line.Start.SetParentAnchor(rect.AnchorByName("topRight")) {
		t.Fatal("anchor attach rejected")
	}
	line.Start.SetCoords(3, 4)
	if p := line.Start.PixelPoint(); p != Pt(43, 34) {
		t.Fatalf("anchored point = %+v, want offset from (40,30)", p)
	}
}

func TestPositionSelfParentRejected(t *testing.T) {
	line := NewItemLine()
	if line.Start.SetParentAnchor(line.Start) {
		t.Fatal("position accepted itself as parent")
	}
}

func TestPositionCycleResolvesToOrigin(t *testing.T) {
	pl := itemPlot(t)
	l1 := NewItemLine()
	l2 := NewItemLine()
	pl.AddItem(l1)
	pl.AddItem(l2)
	l1.Start.SetParentAnchor(l2.Start)
	l2.Start.SetParentAnchor(l1.Start)
	l1.Start.SetCoords(1, 1)
	l2.Start.SetCoords(2, 2)

	// must terminate and produce finite coordinates
	p := l1.Start.PixelPoint()
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		t.Fatalf("cycle resolved to %+v", p)
	}
	if p != Pt(3, 3) {
		t.Fatalf("cycle fallback = %+v, want (3,3)", p)
	}
}

func TestItemLineSelectTest(t *testing.T) {
	pl := itemPlot(t)
	line := NewItemLine()
	pl.AddItem(line)
	line.Start.SetMode(PosAbsolute)
	line.Start.SetCoords(10, 10)
	line.End.SetMode(PosAbsolute)
	line.End.SetCoords(110, 10)

	if d := line.SelectTest(Pt(60, 12)); math.Abs(d-2) > 1e-9 {
		t.Fatalf("distance = %v, want 2", d)
	}
	if d := line.SelectTest(Pt(60, 40)); d >= 0 {
		t.Fatalf("distant click hit: %v", d)
	}
}

func TestItemRectAnchors(t *testing.T) {
	pl := itemPlot(t)
	rect := NewItemRect()
	pl.AddItem(rect)
	rect.TopLeft.SetMode(PosAbsolute)
	rect.TopLeft.SetCoords(10, 20)
	rect.BottomRight.SetMode(PosAbsolute)
	rect.BottomRight.SetCoords(30, 60)

	cases := map[string]Point{
		"top":        Pt(20, 20),
		"bottom":     Pt(20, 60),
		"left":       Pt(10, 40),
		"right":      Pt(30, 40),
		"topRight":   Pt(30, 20),
		"bottomLeft": Pt(10, 60),
	}
	for name, want := range cases {
		anchor := rect.AnchorByName(name)
		if anchor == nil {
			t.Fatalf("missing anchor %q", name)
		}
		if got := anchor.PixelPoint(); got != want {
			t.Errorf("anchor %q = %+v, want %+v", name, got, want)
		}
	}
	if rect.AnchorByName("no-such-anchor") != nil {
		t.Fatal("unknown anchor name resolved")
	}
}

func TestItemTracerFollowsGraph(t *testing.T) {
	pl := itemPlot(t)
	g := NewGraph(pl.AxisX(), pl.AxisY())
	g.Data().AddKV(0, 0)
	g.Data().AddKV(10, 10)
	pl.AddPlottable(g)

	tracer := NewItemTracer()
	pl.AddItem(tracer)
	tracer.SetGraph(g)
	tracer.SetGraphKey(5)
	tracer.updatePosition()
	if p := tracer.At.PixelPoint(); p != Pt(60, 60) {
		t.Fatalf("tracer at %+v, want (60,60)", p)
	}

	// keys beyond the data clamp to the end points
	tracer.SetGraphKey(99)
	tracer.updatePosition()
	if p := tracer.At.PixelPoint(); p != Pt(110, 10) {
		t.Fatalf("clamped tracer at %+v, want (110,10)", p)
	}
}

func TestItemStraightLineSpansAxisRect(t *testing.T) {
	pl := itemPlot(t)
	sl := NewItemStraightLine()
	pl.AddItem(sl)
	sl.Point1.SetMode(PosAbsolute)
	sl.Point1.SetCoords(60, 10)
	sl.Point2.SetMode(PosAbsolute)
	sl.Point2.SetCoords(60, 20)

	// a vertical line through x=60 must be hittable far beyond its two
	// defining points
	if d := sl.SelectTest(Pt(60, 100)); d < 0 {
		t.Fatal("extended line not hit")
	}
	if d := sl.SelectTest(Pt(80, 60)); d >= 0 {
		t.Fatalf("parallel click hit: %v", d)
	}
}

func TestItemTextSelectTest(t *testing.T) {
	pl := itemPlot(t)
	txt := NewItemText()
	pl.AddItem(txt)
	txt.SetText("hello")
	txt.At.SetMode(PosAbsolute)
	txt.At.SetCoords(60, 60)

	if d := txt.SelectTest(Pt(60, 60)); d < 0 {
		t.Fatal("center click missed the text box")
	}
	if d := txt.SelectTest(Pt(60, 110)); d >= 0 {
		t.Fatalf("distant click hit: %v", d)
	}
}
