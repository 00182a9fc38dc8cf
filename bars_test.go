package chartkit

import (
	"math"
	"testing"
)

func barsFixture(t *testing.T) (*Plot, *Bars, *Bars) {
	t.Helper()
	pl := NewPlot()
	pl.SetViewport(RectXYWH(0, 0, 120, 120))
	pl.SetMargins(Margins{Left: 10, Right: 10, Top: 10, Bottom: 10})
	pl.AxisX().SetRange(0, 10)
	pl.AxisY().SetRange(0, 10)
	bottom := NewBars(pl.AxisX(), pl.AxisY())
	top := NewBars(pl.AxisX(), pl.AxisY())
	pl.AddPlottable(bottom)
	pl.AddPlottable(top)
	pl.Replot(&recordPainter{})
	return pl, bottom, top
}

func TestBarsStackingBaseline(t *testing.T) {
	_, bottom, top := barsFixture(t)
	bottom.Data().AddKV(1, 3)
	top.Data().AddKV(1, 5)
	top.MoveAbove(bottom)

	if base := top.baseValue(1); base != 3 {
		t.Fatalf("baseline = %v, want 3", base)
	}
	r, ok := top.ValueRange(SignBoth)
	if !ok || r.Lower != 3 || r.Upper != 8 {
		t.Fatalf("stacked value range = %+v ok=%v, want [3, 8]", r, ok)
	}
}

func TestBarsBaselineNeedsExactKey(t *testing.T) {
	_, bottom, top := barsFixture(t)
	bottom.Data().AddKV(1, 3)
	top.Data().AddKV(2, 5)
	top.MoveAbove(bottom)
	// no record below at key 2, so the bar starts at zero
	if base := top.baseValue(2); base != 0 {
		t.Fatalf("baseline = %v, want 0", base)
	}
}

func TestBarsStackInsertion(t *testing.T) {
	pl := NewPlot()
	a := NewBars(pl.AxisX(), pl.AxisY())
	b := NewBars(pl.AxisX(), pl.AxisY())
	c := NewBars(pl.AxisX(), pl.AxisY())
	b.MoveAbove(a)
	c.MoveAbove(b)
	if a.BarAbove() != b || b.BarAbove() != c || c.BarBelow() != b {
		t.Fatal("stack links broken after building a-b-c")
	}

	d := NewBars(pl.AxisX(), pl.AxisY())
	d.MoveAbove(a)
	if a.BarAbove() != d || d.BarAbove() != b || b.BarBelow() != d {
		t.Fatal("insertion between a and b broke links")
	}

	d.MoveAbove(nil)
	if a.BarAbove() != b || d.BarAbove() != nil || d.BarBelow() != nil {
		t.Fatal("detach did not restore the chain")
	}
}

func TestBarsMoveAboveSelfIgnored(t *testing.T) {
	pl := NewPlot()
	a := NewBars(pl.AxisX(), pl.AxisY())
	a.MoveAbove(a)
	if a.BarAbove() != nil || a.BarBelow() != nil {
		t.Fatal("self-stacking created links")
	}
}

func TestBarsKeyRangeIncludesWidth(t *testing.T) {
	pl := NewPlot()
	b := NewBars(pl.AxisX(), pl.AxisY())
	b.SetWidth(1)
	b.Data().AddKV(2, 4)
	b.Data().AddKV(6, 1)
	r, ok := b.KeyRange(SignBoth)
	if !ok || math.Abs(r.Lower-1.5) > 1e-9 || math.Abs(r.Upper-6.5) > 1e-9 {
		t.Fatalf("key range = %+v, want [1.5, 6.5]", r)
	}
}

func TestBarsSelectTestInside(t *testing.T) {
	_, bottom, _ := barsFixture(t)
	bottom.SetWidth(2)
	bottom.Data().AddKV(5, 6)
	// bar spans keys 4..6, values 0..6: pixels x 50..70, y 50..110
	d := bottom.SelectTest(Pt(60, 80))
	if d < 0 {
		t.Fatal("click inside the bar missed")
	}
	if d >= bottom.selectTolerance() {
		t.Fatalf("inside hit distance %v not under tolerance", d)
	}
	if d := bottom.SelectTest(Pt(60, 20)); d >= 0 {
		t.Fatalf("click above the bar hit: %v", d)
	}
}

func TestBarsDrawCount(t *testing.T) {
	pl, bottom, _ := barsFixture(t)
	bottom.Data().AddKV(2, 3)
	bottom.Data().AddKV(5, 1)
	p := &recordPainter{}
	pl.Replot(p)
	rects := 0
	for _, op := range p.ops {
		if len(op) >= 4 && op[:4] == "rect" {
			rects++
		}
	}
	// background plus one rect per bar
	if rects != 3 {
		t.Fatalf("%d rect ops, want 3: %v", rects, p.ops)
	}
}
