package chartkit

import "math"

// Anchor is a named point an item exposes for other items to attach to.
type Anchor interface {
	Name() string
	// PixelPoint resolves the anchor to surface pixels for the current
	// replot state.
	PixelPoint() Point
}

// anchorFunc adapts a closure to the Anchor interface; items use it to
// publish derived points such as rect corners.
type anchorFunc struct {
	name string
	fn   func() Point
}

func (a *anchorFunc) Name() string      { return a.name }
func (a *anchorFunc) PixelPoint() Point { return a.fn() }

// PositionMode selects the coordinate system a Position interprets its
// coordinates in.
type PositionMode int

const (
	// PosAbsolute interprets coordinates as surface pixels, offset from the
	// parent anchor when one is set.
	PosAbsolute PositionMode = iota
	// PosViewportRatio interprets coordinates as fractions of the viewport.
	PosViewportRatio
	// PosAxisRectRatio interprets coordinates as fractions of the axis rect.
	PosAxisRectRatio
	// PosPlotCoords interprets coordinates on a key/value axis pair.
	PosPlotCoords
)

// Position is an Anchor whose pixel point is computed from coordinates in a
// selectable coordinate system, optionally relative to a parent anchor.
type Position struct {
	plot *Plot
	name string

	mode               PositionMode
	keyAxis, valueAxis *Axis
	parent             Anchor
	coords             Point

	// resolving breaks anchor parentage cycles: a position asked for its
	// pixel point while already resolving answers the origin instead of
	// recursing forever.
	resolving bool
}

func (p *Position) Name() string { return p.name }

func (p *Position) Mode() PositionMode { return p.mode }

func (p *Position) SetMode(mode PositionMode) { p.mode = mode }

func (p *Position) SetCoords(x, y float64) {
	p.coords = Pt(x, y)
}

func (p *Position) Coords() Point { return p.coords }

// SetAxes sets the axis pair used by PosPlotCoords mode.
func (p *Position) SetAxes(keyAxis, valueAxis *Axis) {
	p.keyAxis = keyAxis
	p.valueAxis = valueAxis
}

// SetParentAnchor attaches the position to anchor and switches to
// PosAbsolute mode, making the coordinates a pixel offset from the anchor.
// Attaching a position to itself is rejected.
func (p *Position) SetParentAnchor(anchor Anchor) bool {
	if anchor == Anchor(p) {
		return false
	}
	p.parent = anchor
	if anchor != nil {
		p.mode = PosAbsolute
	}
	return true
}

func (p *Position) ParentAnchor() Anchor { return p.parent }

// PixelPoint resolves the position to surface pixels. Cyclic anchor chains
// resolve to the origin rather than recursing.
func (p *Position) PixelPoint() Point {
	if p.resolving {
		return Point{}
	}
	p.resolving = true
	defer func() { p.resolving = false }()

	switch p.mode {
	case PosViewportRatio:
		vp := p.plot.Viewport()
		return Pt(
			vp.Min.X+p.coords.X*vp.Width(),
			vp.Min.Y+p.coords.Y*vp.Height(),
		)
	case PosAxisRectRatio:
		ar := p.plot.AxisRect()
		return Pt(
			ar.Min.X+p.coords.X*ar.Width(),
			ar.Min.Y+p.coords.Y*ar.Height(),
		)
	case PosPlotCoords:
		keyAxis, valueAxis := p.keyAxis, p.valueAxis
		if keyAxis == nil {
			keyAxis = p.plot.AxisX()
		}
		if valueAxis == nil {
			valueAxis = p.plot.AxisY()
		}
		if keyAxis.horizontal() {
			return Pt(keyAxis.CoordToPixel(p.coords.X), valueAxis.CoordToPixel(p.coords.Y))
		}
		return Pt(valueAxis.CoordToPixel(p.coords.Y), keyAxis.CoordToPixel(p.coords.X))
	}
	result := p.coords
	if p.parent != nil {
		result = result.Add(p.parent.PixelPoint())
	}
	return result
}

// Item is a decoration positioned in one of the position coordinate systems:
// lines, rectangles, text and tracers. Items draw on top of plottables by
// default (the overlay layer).
type Item interface {
	Layerable

	// SelectTest returns the pixel distance from pos to the item, negative
	// when beyond the selection tolerance.
	SelectTest(pos Point) float64

	// Anchors lists the item's attachable points, positions included.
	Anchors() []Anchor
	// AnchorByName returns the anchor with the given name, or nil.
	AnchorByName(name string) Anchor

	Selectable() bool
	SetSelectable(on bool)
	Selected() bool
	SetSelected(on bool)

	setPlot(pl *Plot)
}

// itemBase carries the state shared by all items.
type itemBase struct {
	plot *Plot

	visible    bool
	selectable bool
	selected   bool

	positions []*Position
	anchors   []Anchor
}

func newItemBase() itemBase {
	return itemBase{visible: true, selectable: true}
}

func (b *itemBase) Visible() bool         { return b.visible }
func (b *itemBase) SetVisible(v bool)     { b.visible = v }
func (b *itemBase) Selectable() bool      { return b.selectable }
func (b *itemBase) SetSelectable(on bool) { b.selectable = on }
func (b *itemBase) Selected() bool        { return b.selected }
func (b *itemBase) SetSelected(on bool)   { b.selected = on }

func (b *itemBase) setPlot(pl *Plot) {
	b.plot = pl
	for _, pos := range b.positions {
		pos.plot = pl
	}
}

func (b *itemBase) Anchors() []Anchor { return b.anchors }

func (b *itemBase) AnchorByName(name string) Anchor {
	for _, a := range b.anchors {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// createPosition registers a new named position, which doubles as an anchor.
func (b *itemBase) createPosition(name string) *Position {
	pos := &Position{plot: b.plot, name: name, mode: PosPlotCoords}
	b.positions = append(b.positions, pos)
	b.anchors = append(b.anchors, pos)
	return pos
}

// createAnchor registers a derived, read-only anchor.
func (b *itemBase) createAnchor(name string, fn func() Point) Anchor {
	a := &anchorFunc{name: name, fn: fn}
	b.anchors = append(b.anchors, a)
	return a
}

func (b *itemBase) selectTolerance() float64 {
	if b.plot != nil {
		return b.plot.SelectionTolerance()
	}
	return defaultSelectionTolerance
}

// distWithinTolerance converts a squared distance into a SelectTest result.
func (b *itemBase) distWithinTolerance(sqrDist float64) float64 {
	dist := math.Sqrt(sqrDist)
	if dist > b.selectTolerance() {
		return -1
	}
	return dist
}
