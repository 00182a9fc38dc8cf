package chartkit

import (
	"testing"
)

func TestNewPlotStandardLayers(t *testing.T) {
	pl := NewPlot()
	want := []string{LayerBackground, LayerGrid, LayerMain, LayerAxes, LayerOverlay}
	if pl.LayerCount() != len(want) {
		t.Fatalf("layer count = %d, want %d", pl.LayerCount(), len(want))
	}
	for i, name := range want {
		if pl.layers[i].Name() != name {
			t.Fatalf("layer %d = %q, want %q", i, pl.layers[i].Name(), name)
		}
	}
	// grids and axes are pre-registered
	if got := len(pl.LayerByName(LayerGrid).Children()); got != 4 {
		t.Fatalf("grid layer has %d children, want 4", got)
	}
	if got := len(pl.LayerByName(LayerAxes).Children()); got != 4 {
		t.Fatalf("axes layer has %d children, want 4", got)
	}
}

func TestAddRemoveLayer(t *testing.T) {
	pl := NewPlot()
	if err := pl.AddLayer("annotations", LayerMain); err != nil {
		t.Fatal(err)
	}
	if err := pl.AddLayer("annotations", ""); err == nil {
		t.Fatal("duplicate layer name accepted")
	}
	if err := pl.AddLayer("x", "no-such-layer"); err == nil {
		t.Fatal("insertion after unknown layer accepted")
	}
	// new layer sits directly above main
	var names []string
	for _, l := range pl.layers {
		names = append(names, l.Name())
	}
	for i, n := range names {
		if n == LayerMain && names[i+1] != "annotations" {
			t.Fatalf("layer order = %v", names)
		}
	}

	if err := pl.RemoveLayer("annotations"); err != nil {
		t.Fatal(err)
	}
	if err := pl.RemoveLayer(LayerBackground); err == nil {
		t.Fatal("bottom layer removal accepted")
	}
	if err := pl.RemoveLayer("no-such-layer"); err == nil {
		t.Fatal("unknown layer removal accepted")
	}
}

func TestRemoveLayerReparentsChildren(t *testing.T) {
	pl := NewPlot()
	if err := pl.AddLayer("extra", LayerMain); err != nil {
		t.Fatal(err)
	}
	g := NewGraph(pl.AxisX(), pl.AxisY())
	pl.AddPlottable(g)
	if err := pl.SetLayer(g, "extra"); err != nil {
		t.Fatal(err)
	}
	if err := pl.RemoveLayer("extra"); err != nil {
		t.Fatal(err)
	}
	// children fall to the layer below the removed one
	found := false
	for _, child := range pl.LayerByName(LayerMain).Children() {
		if child == Layerable(g) {
			found = true
		}
	}
	if !found {
		t.Fatal("orphaned child not moved to the layer below")
	}
}

func TestSetLayerErrors(t *testing.T) {
	pl := NewPlot()
	g := NewGraph(pl.AxisX(), pl.AxisY())
	if err := pl.SetLayer(g, LayerMain); err == nil {
		t.Fatal("unregistered layerable accepted")
	}
	pl.AddPlottable(g)
	if err := pl.SetLayer(g, "no-such-layer"); err == nil {
		t.Fatal("unknown layer accepted")
	}
	if err := pl.SetLayer(g, LayerOverlay); err != nil {
		t.Fatal(err)
	}
}

func TestPlottableCRUD(t *testing.T) {
	pl := NewPlot()
	g1 := NewGraph(pl.AxisX(), pl.AxisY())
	g2 := NewGraph(pl.AxisX(), pl.AxisY())
	if idx := pl.AddPlottable(g1); idx != 0 {
		t.Fatalf("first index = %d", idx)
	}
	if idx := pl.AddPlottable(g2); idx != 1 {
		t.Fatalf("second index = %d", idx)
	}
	if pl.PlottableAt(-1) != nil || pl.PlottableAt(2) != nil {
		t.Fatal("out-of-range index did not yield nil")
	}
	if pl.PlottableAt(0) != Plottable(g1) {
		t.Fatal("wrong plottable at index 0")
	}
	if !pl.RemovePlottable(g1) {
		t.Fatal("remove failed")
	}
	if pl.RemovePlottable(g1) {
		t.Fatal("double remove succeeded")
	}
	if n := pl.ClearPlottables(); n != 1 {
		t.Fatalf("cleared %d, want 1", n)
	}
	if pl.PlottableCount() != 0 {
		t.Fatalf("count = %d after clear", pl.PlottableCount())
	}
}

func TestItemCRUD(t *testing.T) {
	pl := NewPlot()
	l1 := NewItemLine()
	l2 := NewItemLine()
	pl.AddItem(l1)
	pl.AddItem(l2)
	if pl.ItemCount() != 2 {
		t.Fatalf("count = %d", pl.ItemCount())
	}
	if pl.ItemAt(5) != nil {
		t.Fatal("out-of-range item index did not yield nil")
	}
	if !pl.RemoveItem(l1) || pl.RemoveItem(l1) {
		t.Fatal("remove semantics broken")
	}
	if n := pl.ClearItems(); n != 1 {
		t.Fatalf("cleared %d, want 1", n)
	}
}

func TestReplotIdempotent(t *testing.T) {
	pl := NewPlot()
	pl.SetViewport(RectXYWH(0, 0, 200, 150))
	pl.AxisX().SetRange(0, 10)
	pl.AxisY().SetRange(-5, 5)
	g := NewGraph(pl.AxisX(), pl.AxisY())
	for k := 0; k <= 10; k++ {
		g.Data().AddKV(float64(k), float64(k%3))
	}
	pl.AddPlottable(g)

	p1 := &recordPainter{}
	pl.Replot(p1)
	p2 := &recordPainter{}
	pl.Replot(p2)

	if len(p1.ops) != len(p2.ops) {
		t.Fatalf("op counts differ: %d vs %d", len(p1.ops), len(p2.ops))
	}
	for i := range p1.ops {
		if p1.ops[i] != p2.ops[i] {
			t.Fatalf("op %d differs: %q vs %q", i, p1.ops[i], p2.ops[i])
		}
	}
}

func TestReplotRunsHooksInOrder(t *testing.T) {
	pl := NewPlot()
	var order []string
	pl.OnBeforeReplot(func() { order = append(order, "before") })
	pl.OnAfterReplot(func() { order = append(order, "after") })
	pl.Replot(&recordPainter{})
	if len(order) != 2 || order[0] != "before" || order[1] != "after" {
		t.Fatalf("hook order = %v", order)
	}
}

func TestReplotComputesAxisRect(t *testing.T) {
	pl := NewPlot()
	pl.SetViewport(RectXYWH(0, 0, 200, 150))
	pl.SetMargins(Margins{Left: 40, Right: 10, Top: 20, Bottom: 30})
	pl.Replot(&recordPainter{})
	want := Rect{Min: Pt(40, 20), Max: Pt(190, 120)}
	if pl.AxisRect() != want {
		t.Fatalf("axis rect = %+v, want %+v", pl.AxisRect(), want)
	}
}

func TestAutoMarginsReactToLabels(t *testing.T) {
	pl := NewPlot()
	pl.SetViewport(RectXYWH(0, 0, 200, 150))
	pl.AxisY().SetRange(0, 1000000)
	pl.Replot(&recordPainter{})
	small := pl.AxisRect()

	pl.AxisY().SetLabel("throughput [MB/s]")
	pl.Replot(&recordPainter{})
	if pl.AxisRect().Min.X <= small.Min.X {
		t.Fatal("axis label did not widen the left margin")
	}
}

func TestSelectAtPicksClosest(t *testing.T) {
	pl, g := diagonalGraph(t)
	other := NewGraph(pl.AxisX(), pl.AxisY())
	other.Data().AddKV(0, 8)
	other.Data().AddKV(10, 8)
	pl.AddPlottable(other)
	pl.Replot(&recordPainter{})

	notifications := 0
	pl.OnSelectionChanged(func() { notifications++ })

	// (60,60) lies on the diagonal, far from the horizontal graph
	if !pl.SelectAt(Pt(60, 60)) {
		t.Fatal("selection did not change")
	}
	if !g.Selected() || other.Selected() {
		t.Fatal("wrong plottable selected")
	}
	if notifications != 1 {
		t.Fatalf("notifications = %d", notifications)
	}

	// same click again changes nothing
	if pl.SelectAt(Pt(60, 60)) {
		t.Fatal("repeated selection reported a change")
	}
	if notifications != 1 {
		t.Fatalf("notifications after repeat = %d", notifications)
	}

	// a miss clears the selection
	if !pl.SelectAt(Pt(15, 15)) {
		t.Fatal("miss did not clear selection")
	}
	if g.Selected() {
		t.Fatal("selection survived a miss")
	}
}

func TestRescaleAxesUnion(t *testing.T) {
	pl := NewPlot()
	g1 := NewGraph(pl.AxisX(), pl.AxisY())
	g1.Data().AddKV(0, 2)
	g1.Data().AddKV(4, 3)
	g2 := NewGraph(pl.AxisX(), pl.AxisY())
	g2.Data().AddKV(2, -1)
	g2.Data().AddKV(9, 1)
	pl.AddPlottable(g1)
	pl.AddPlottable(g2)
	pl.RescaleAxes()
	if r := pl.AxisX().Range(); r.Lower != 0 || r.Upper != 9 {
		t.Fatalf("x range = %+v, want [0, 9]", r)
	}
	if r := pl.AxisY().Range(); r.Lower != -1 || r.Upper != 3 {
		t.Fatalf("y range = %+v, want [-1, 3]", r)
	}
}

func TestSelectionToleranceGuard(t *testing.T) {
	pl := NewPlot()
	pl.SetSelectionTolerance(-3)
	if pl.SelectionTolerance() != defaultSelectionTolerance {
		t.Fatal("negative tolerance accepted")
	}
	pl.SetSelectionTolerance(12)
	if pl.SelectionTolerance() != 12 {
		t.Fatal("tolerance not applied")
	}
}
