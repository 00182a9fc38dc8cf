package chartkit

import "slices"

// Layerable is anything that can be registered on a Layer and drawn during a
// replot: axes, grids, plottables and items.
type Layerable interface {
	Visible() bool
	Draw(p Painter)
}

// Layer is an ordered draw bucket. Layers are drawn back to front in the
// plot's layer order; within a layer, children draw in registration order.
// A layerable belongs to at most one layer at a time.
type Layer struct {
	name     string
	children []Layerable
}

func (l *Layer) Name() string {
	return l.name
}

// Children returns the layer's draw list in order. The returned slice is the
// layer's own storage; callers must not mutate it.
func (l *Layer) Children() []Layerable {
	return l.children
}

func (l *Layer) add(child Layerable) {
	l.children = append(l.children, child)
}

func (l *Layer) remove(child Layerable) bool {
	for i, c := range l.children {
		if c == child {
			l.children = slices.Delete(l.children, i, i+1)
			return true
		}
	}
	return false
}

func (l *Layer) draw(p Painter) {
	for _, child := range l.children {
		if child == nil || !child.Visible() {
			continue
		}
		child.Draw(p)
	}
}

// Standard layer names created by NewPlot, in draw order.
const (
	LayerBackground = "background"
	LayerGrid       = "grid"
	LayerMain       = "main"
	LayerAxes       = "axes"
	LayerOverlay    = "overlay"
)
