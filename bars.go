package chartkit

import "math"

// Bars plots key/value data as rectangular bars. Multiple Bars plottables on
// the same axes can be stacked; each bar then starts where the bar below it
// at the same key ends.
type Bars struct {
	plottableBase

	data  *BarData
	width float64

	barBelow, barAbove *Bars
}

func NewBars(keyAxis, valueAxis *Axis) *Bars {
	return &Bars{
		plottableBase: newPlottableBase(keyAxis, valueAxis),
		data:          NewBarData(),
		width:         0.75,
	}
}

func (b *Bars) Data() *BarData { return b.data }

func (b *Bars) SetData(data *BarData) {
	b.data.Clear()
	for i := 0; i < data.Len(); i++ {
		b.data.Add(data.At(i))
	}
}

func (b *Bars) AdoptData(data *BarData) { b.data = data }

// SetWidth sets the bar width in key-axis coordinates.
func (b *Bars) SetWidth(width float64) {
	if width > 0 {
		b.width = width
	}
}

func (b *Bars) Width() float64 { return b.width }

// BarBelow returns the Bars this group is stacked on, or nil.
func (b *Bars) BarBelow() *Bars { return b.barBelow }

// BarAbove returns the Bars stacked on this group, or nil.
func (b *Bars) BarAbove() *Bars { return b.barAbove }

// MoveAbove stacks this group directly on top of other. Passing nil detaches
// the group from its stack.
func (b *Bars) MoveAbove(other *Bars) {
	if other == b {
		return
	}
	b.detach()
	if other == nil {
		return
	}
	// insert between other and whatever was above it
	if other.barAbove != nil {
		other.barAbove.barBelow = b
		b.barAbove = other.barAbove
	}
	b.barBelow = other
	other.barAbove = b
}

// MoveBelow stacks this group directly beneath other. Passing nil detaches
// the group from its stack.
func (b *Bars) MoveBelow(other *Bars) {
	if other == b {
		return
	}
	b.detach()
	if other == nil {
		return
	}
	if other.barBelow != nil {
		other.barBelow.barAbove = b
		b.barBelow = other.barBelow
	}
	b.barAbove = other
	other.barBelow = b
}

func (b *Bars) detach() {
	if b.barBelow != nil {
		b.barBelow.barAbove = b.barAbove
	}
	if b.barAbove != nil {
		b.barAbove.barBelow = b.barBelow
	}
	b.barBelow, b.barAbove = nil, nil
}

// baseValue returns the stacking baseline for a bar at key: the summed values
// of all groups below this one that have a record at exactly that key.
// Resolved at draw time, so stale baselines cannot occur.
func (b *Bars) baseValue(key float64) float64 {
	if b.barBelow == nil {
		return 0
	}
	base := b.barBelow.baseValue(key)
	if v, ok := b.barBelow.data.ValueAt(key); ok {
		base += v
	}
	return base
}

func (b *Bars) ClearData() { b.data.Clear() }

// KeyRange widens the data's key extent by half a bar width on each side so
// auto-fitted ranges show whole bars.
func (b *Bars) KeyRange(sign SignDomain) (Range, bool) {
	r, ok := b.data.KeyRange(sign)
	if !ok {
		return r, false
	}
	r.Lower -= b.width / 2
	r.Upper += b.width / 2
	return r, true
}

func (b *Bars) ValueRange(sign SignDomain) (Range, bool) {
	r, ok := scanRange(b.data.s.recs, sign, func(p BarPoint) (float64, float64) {
		base := b.baseValue(p.Key)
		return base, base + p.Value
	})
	return r, ok
}

func (b *Bars) RescaleAxes(onlyEnlarge bool) {
	rescaleKeyAxis(b, onlyEnlarge)
	rescaleValueAxis(b, onlyEnlarge)
}

// barRect returns the pixel rectangle of the bar at pt, spanning from the
// stacking baseline to baseline plus value.
func (b *Bars) barRect(pt BarPoint) Rect {
	base := b.baseValue(pt.Key)
	lo := b.coordsToPixels(pt.Key-b.width/2, base)
	hi := b.coordsToPixels(pt.Key+b.width/2, base+pt.Value)
	return Rect{
		Min: Pt(math.Min(lo.X, hi.X), math.Min(lo.Y, hi.Y)),
		Max: Pt(math.Max(lo.X, hi.X), math.Max(lo.Y, hi.Y)),
	}
}

func (b *Bars) Draw(p Painter) {
	if !b.axesUsable() || b.data.Len() == 0 {
		return
	}
	pen := b.mainPen()
	brush := b.mainBrush()
	r := b.keyAxis.Range()
	b.data.EachInRange(r.Lower-b.width/2, r.Upper+b.width/2, func(pt BarPoint) bool {
		p.Rect(b.barRect(pt), pen, brush)
		return true
	})
}

// SelectTest answers tolerance*0.99 for positions inside a bar so bars win
// against plottables that merely pass nearby, and the edge distance
// otherwise.
func (b *Bars) SelectTest(pos Point) float64 {
	if !b.visible || !b.selectable || !b.axesUsable() || b.data.Len() == 0 {
		return -1
	}
	tolerance := b.selectTolerance()
	best := -1.0
	r := b.keyAxis.Range()
	b.data.EachInRange(r.Lower-b.width/2, r.Upper+b.width/2, func(pt BarPoint) bool {
		d := rectSelectTest(b.barRect(pt), pos, true, tolerance)
		if d >= 0 && (best < 0 || d < best) {
			best = d
		}
		return true
	})
	if best < 0 || best > tolerance {
		return -1
	}
	return best
}

func (b *Bars) DrawLegendIcon(p Painter, rect Rect) {
	inset := rect.Expanded(-rect.Width() / 5)
	p.Rect(inset, b.pen, b.brush)
}
