package chartkit

import (
	"fmt"
	"image/color"
	"slices"
)

const defaultSelectionTolerance = 8

// Margins are the pixel distances between the viewport and the axis rect.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Plot owns the axes, layers, plottables and items of one chart and runs the
// replot cycle that renders them through a Painter.
//
// A Plot is not safe for concurrent use; callers drive it from a single
// goroutine, typically a UI event loop.
type Plot struct {
	viewport Rect
	axisRect Rect

	autoMargins bool
	margins     Margins

	xAxis, yAxis, x2Axis, y2Axis *Axis

	layers  []*Layer
	layerOf map[Layerable]*Layer

	plottables []Plottable
	items      []Item

	background Brush

	selectionTolerance float64

	beforeReplot, afterReplot []func()
	selectionChanged          []func()

	lastPainter Painter
}

// NewPlot creates a plot with four axes (bottom, left, top, right), their
// grids, and the five standard layers. The bottom and left axes are visible;
// top and right start hidden.
func NewPlot() *Plot {
	pl := &Plot{
		viewport:           RectXYWH(0, 0, 640, 480),
		autoMargins:        true,
		background:         Brush{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		selectionTolerance: defaultSelectionTolerance,
		layerOf:            make(map[Layerable]*Layer),
	}
	pl.xAxis = newAxis(pl, AxisBottom)
	pl.yAxis = newAxis(pl, AxisLeft)
	pl.x2Axis = newAxis(pl, AxisTop)
	pl.y2Axis = newAxis(pl, AxisRight)
	pl.x2Axis.SetVisible(false)
	pl.y2Axis.SetVisible(false)

	for _, name := range []string{LayerBackground, LayerGrid, LayerMain, LayerAxes, LayerOverlay} {
		pl.layers = append(pl.layers, &Layer{name: name})
	}
	for _, a := range pl.axes() {
		pl.register(a.grid, LayerGrid)
		pl.register(a, LayerAxes)
	}
	return pl
}

func (pl *Plot) axes() [4]*Axis {
	return [4]*Axis{pl.xAxis, pl.yAxis, pl.x2Axis, pl.y2Axis}
}

// AxisX returns the bottom axis.
func (pl *Plot) AxisX() *Axis { return pl.xAxis }

// AxisY returns the left axis.
func (pl *Plot) AxisY() *Axis { return pl.yAxis }

// AxisX2 returns the top axis.
func (pl *Plot) AxisX2() *Axis { return pl.x2Axis }

// AxisY2 returns the right axis.
func (pl *Plot) AxisY2() *Axis { return pl.y2Axis }

func (pl *Plot) Viewport() Rect { return pl.viewport }

// SetViewport sets the full pixel area available to the plot, including
// axis margins.
func (pl *Plot) SetViewport(r Rect) { pl.viewport = r }

// AxisRect returns the inner plotting area computed by the last replot.
func (pl *Plot) AxisRect() Rect { return pl.axisRect }

func (pl *Plot) SetBackground(b Brush) { pl.background = b }

// SetMargins fixes the axis margins, disabling automatic calculation.
func (pl *Plot) SetMargins(m Margins) {
	pl.margins = m
	pl.autoMargins = false
}

// SetAutoMargins re-enables margin calculation from axis label extents.
func (pl *Plot) SetAutoMargins() { pl.autoMargins = true }

func (pl *Plot) SelectionTolerance() float64 { return pl.selectionTolerance }

// SetSelectionTolerance sets the maximum pixel distance at which hit tests
// succeed. Non-positive values are ignored.
func (pl *Plot) SetSelectionTolerance(tolerance float64) {
	if tolerance > 0 {
		pl.selectionTolerance = tolerance
	}
}

// Layer management.

// LayerByName returns the layer with the given name, or nil.
func (pl *Plot) LayerByName(name string) *Layer {
	for _, l := range pl.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

// LayerCount returns the number of layers.
func (pl *Plot) LayerCount() int { return len(pl.layers) }

// AddLayer inserts a new empty layer directly above the layer named after,
// or on top when after is empty. It fails when the name is already taken or
// the reference layer does not exist.
func (pl *Plot) AddLayer(name, after string) error {
	if pl.LayerByName(name) != nil {
		return fmt.Errorf("layer %q already exists", name)
	}
	layer := &Layer{name: name}
	if after == "" {
		pl.layers = append(pl.layers, layer)
		return nil
	}
	for i, l := range pl.layers {
		if l.name == after {
			pl.layers = slices.Insert(pl.layers, i+1, layer)
			return nil
		}
	}
	return fmt.Errorf("no layer %q to insert after", after)
}

// RemoveLayer deletes the named layer and moves its children to the layer
// below it. The bottom layer cannot be removed.
func (pl *Plot) RemoveLayer(name string) error {
	for i, l := range pl.layers {
		if l.name != name {
			continue
		}
		if i == 0 {
			return fmt.Errorf("cannot remove bottom layer %q", name)
		}
		below := pl.layers[i-1]
		for _, child := range l.children {
			below.add(child)
			pl.layerOf[child] = below
		}
		pl.layers = slices.Delete(pl.layers, i, i+1)
		return nil
	}
	return fmt.Errorf("no layer %q", name)
}

// SetLayer moves a registered layerable to the named layer.
func (pl *Plot) SetLayer(child Layerable, name string) error {
	target := pl.LayerByName(name)
	if target == nil {
		return fmt.Errorf("no layer %q", name)
	}
	current, ok := pl.layerOf[child]
	if !ok {
		return fmt.Errorf("layerable is not registered with this plot")
	}
	current.remove(child)
	target.add(child)
	pl.layerOf[child] = target
	return nil
}

func (pl *Plot) register(child Layerable, layerName string) {
	layer := pl.LayerByName(layerName)
	layer.add(child)
	pl.layerOf[child] = layer
}

func (pl *Plot) unregister(child Layerable) {
	if layer, ok := pl.layerOf[child]; ok {
		layer.remove(child)
		delete(pl.layerOf, child)
	}
}

// Plottable management.

// AddPlottable registers p on the main layer and returns its index.
func (pl *Plot) AddPlottable(p Plottable) int {
	p.setPlot(pl)
	pl.plottables = append(pl.plottables, p)
	pl.register(p, LayerMain)
	return len(pl.plottables) - 1
}

// RemovePlottable unregisters p. It reports false when p is not registered.
func (pl *Plot) RemovePlottable(p Plottable) bool {
	for i, candidate := range pl.plottables {
		if candidate == p {
			pl.plottables = slices.Delete(pl.plottables, i, i+1)
			pl.unregister(p)
			p.setPlot(nil)
			return true
		}
	}
	return false
}

// PlottableAt returns the i-th plottable in registration order, or nil for
// an out-of-range index.
func (pl *Plot) PlottableAt(i int) Plottable {
	if i < 0 || i >= len(pl.plottables) {
		return nil
	}
	return pl.plottables[i]
}

func (pl *Plot) PlottableCount() int { return len(pl.plottables) }

// ClearPlottables unregisters all plottables and returns how many there were.
func (pl *Plot) ClearPlottables() int {
	n := len(pl.plottables)
	for _, p := range pl.plottables {
		pl.unregister(p)
		p.setPlot(nil)
	}
	pl.plottables = pl.plottables[:0]
	return n
}

// Item management.

func (pl *Plot) AddItem(it Item) int {
	it.setPlot(pl)
	pl.items = append(pl.items, it)
	pl.register(it, LayerOverlay)
	return len(pl.items) - 1
}

func (pl *Plot) RemoveItem(it Item) bool {
	for i, candidate := range pl.items {
		if candidate == it {
			pl.items = slices.Delete(pl.items, i, i+1)
			pl.unregister(it)
			it.setPlot(nil)
			return true
		}
	}
	return false
}

func (pl *Plot) ItemAt(i int) Item {
	if i < 0 || i >= len(pl.items) {
		return nil
	}
	return pl.items[i]
}

func (pl *Plot) ItemCount() int { return len(pl.items) }

func (pl *Plot) ClearItems() int {
	n := len(pl.items)
	for _, it := range pl.items {
		pl.unregister(it)
		it.setPlot(nil)
	}
	pl.items = pl.items[:0]
	return n
}

// Hooks.

// OnBeforeReplot registers fn to run at the start of every replot, before
// margins and tick vectors are computed.
func (pl *Plot) OnBeforeReplot(fn func()) {
	pl.beforeReplot = append(pl.beforeReplot, fn)
}

// OnAfterReplot registers fn to run after all layers have drawn.
func (pl *Plot) OnAfterReplot(fn func()) {
	pl.afterReplot = append(pl.afterReplot, fn)
}

// OnSelectionChanged registers fn to run whenever SelectAt changes any
// selection state.
func (pl *Plot) OnSelectionChanged(fn func()) {
	pl.selectionChanged = append(pl.selectionChanged, fn)
}

// RescaleAxes fits all axes to the union of their plottables' data extents.
func (pl *Plot) RescaleAxes() {
	first := true
	for _, p := range pl.plottables {
		p.RescaleAxes(!first)
		first = false
	}
}

// Replot runs one full render cycle: hooks, tick generation, margin and
// axis rect layout, then the layers back to front. Calling it repeatedly
// with unchanged state produces identical output.
func (pl *Plot) Replot(p Painter) {
	for _, fn := range pl.beforeReplot {
		fn()
	}

	// label artifacts belong to the painter backend that made them
	if pl.lastPainter != p {
		for _, a := range pl.axes() {
			a.invalidateLabelCache()
		}
		pl.lastPainter = p
	}

	for _, a := range pl.axes() {
		if a.visible {
			a.setupTickVectors()
		}
	}

	margins := pl.margins
	if pl.autoMargins {
		margins = pl.calculateAutoMargins(p)
	}
	pl.axisRect = Rect{
		Min: Pt(pl.viewport.Min.X+margins.Left, pl.viewport.Min.Y+margins.Top),
		Max: Pt(pl.viewport.Max.X-margins.Right, pl.viewport.Max.Y-margins.Bottom),
	}
	for _, a := range pl.axes() {
		a.setAxisRect(pl.axisRect)
	}

	if pl.background.Visible() {
		p.Rect(pl.viewport, NoPen, pl.background)
	}
	for _, layer := range pl.layers {
		layer.draw(p)
	}

	for _, fn := range pl.afterReplot {
		fn()
	}
}

func (pl *Plot) calculateAutoMargins(p Painter) Margins {
	m := Margins{Left: 15, Right: 15, Top: 15, Bottom: 15}
	if pl.xAxis.visible {
		m.Bottom = pl.xAxis.calculateMargin(p)
	}
	if pl.yAxis.visible {
		m.Left = pl.yAxis.calculateMargin(p)
	}
	if pl.x2Axis.visible {
		m.Top = pl.x2Axis.calculateMargin(p)
	}
	if pl.y2Axis.visible {
		m.Right = pl.y2Axis.calculateMargin(p)
	}
	return m
}

// PlottableAtPos returns the closest plottable within the selection
// tolerance of pos, or nil.
func (pl *Plot) PlottableAtPos(pos Point) Plottable {
	var best Plottable
	bestDist := pl.selectionTolerance + 1
	for _, p := range pl.plottables {
		d := p.SelectTest(pos)
		if d >= 0 && d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// ItemAtPos returns the closest item within the selection tolerance of pos,
// or nil.
func (pl *Plot) ItemAtPos(pos Point) Item {
	var best Item
	bestDist := pl.selectionTolerance + 1
	for _, it := range pl.items {
		d := it.SelectTest(pos)
		if d >= 0 && d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}

// SelectAt performs a click selection: the closest hit plottable or item
// becomes the sole selection, a miss clears all selections. It reports
// whether any selection state changed, and notifies observers when so.
func (pl *Plot) SelectAt(pos Point) bool {
	type hit struct {
		dist       float64
		plottable  Plottable
		item       Item
	}
	best := hit{dist: pl.selectionTolerance + 1}
	for _, p := range pl.plottables {
		if d := p.SelectTest(pos); d >= 0 && d < best.dist {
			best = hit{dist: d, plottable: p}
		}
	}
	for _, it := range pl.items {
		if d := it.SelectTest(pos); d >= 0 && d < best.dist {
			best = hit{dist: d, item: it}
		}
	}

	changed := false
	for _, p := range pl.plottables {
		want := p == best.plottable
		if p.Selected() != want {
			p.SetSelected(want)
			changed = true
		}
	}
	for _, it := range pl.items {
		want := it == best.item
		if it.Selected() != want {
			it.SetSelected(want)
			changed = true
		}
	}
	if changed {
		for _, fn := range pl.selectionChanged {
			fn()
		}
	}
	return changed
}
