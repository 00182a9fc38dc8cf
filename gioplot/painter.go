// Package gioplot renders chartkit plots inside Gio applications: a Painter
// backend over Gio's operation list and an interactive plot widget.
package gioplot

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/chartkit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Painter implements chartkit.Painter on top of a Gio operation list. It is
// valid for the duration of one frame; construct a new one per frame.
type Painter struct {
	chartkit.AAStack
	gtx C
	th  *material.Theme
}

func NewPainter(gtx C, th *material.Theme) *Painter {
	return &Painter{gtx: gtx, th: th}
}

func (p *Painter) ExportMode() bool { return false }

func f32Pt(pt chartkit.Point) f32.Point {
	return f32.Pt(float32(pt.X), float32(pt.Y))
}

func (p *Painter) strokePath(spec clip.PathSpec, pen chartkit.Pen) {
	paint.FillShape(p.gtx.Ops, pen.Color, clip.Stroke{
		Path:  spec,
		Width: float32(pen.Width),
	}.Op())
}

func (p *Painter) fillPath(spec clip.PathSpec, col color.NRGBA) {
	paint.FillShape(p.gtx.Ops, col, clip.Outline{Path: spec}.Op())
}

func (p *Painter) Line(from, to chartkit.Point, pen chartkit.Pen) {
	if !pen.Visible() {
		return
	}
	if len(pen.Dash) > 0 {
		p.dashedLine(from, to, pen)
		return
	}
	var path clip.Path
	path.Begin(p.gtx.Ops)
	path.MoveTo(f32Pt(from))
	path.LineTo(f32Pt(to))
	p.strokePath(path.End(), pen)
}

// dashedLine emits the dash pattern as individual sub-segments; Gio strokes
// have no native dash support.
func (p *Painter) dashedLine(from, to chartkit.Point, pen chartkit.Pen) {
	delta := to.Sub(from)
	length := math.Hypot(delta.X, delta.Y)
	if length == 0 {
		return
	}
	dir := chartkit.Pt(delta.X/length, delta.Y/length)

	var path clip.Path
	path.Begin(p.gtx.Ops)
	pos, patIndex := 0.0, 0
	drawing := true
	cursor := from
	path.MoveTo(f32Pt(cursor))
	for pos < length {
		seg := pen.Dash[patIndex%len(pen.Dash)]
		if pos+seg > length {
			seg = length - pos
		}
		next := chartkit.Pt(cursor.X+dir.X*seg, cursor.Y+dir.Y*seg)
		if drawing {
			path.LineTo(f32Pt(next))
		} else {
			path.MoveTo(f32Pt(next))
		}
		cursor = next
		pos += seg
		patIndex++
		drawing = !drawing
	}
	p.strokePath(path.End(), pen)
}

func (p *Painter) Polyline(pts []chartkit.Point, pen chartkit.Pen) {
	if !pen.Visible() || len(pts) < 2 {
		return
	}
	var path clip.Path
	path.Begin(p.gtx.Ops)
	path.MoveTo(f32Pt(pts[0]))
	for _, pt := range pts[1:] {
		path.LineTo(f32Pt(pt))
	}
	p.strokePath(path.End(), pen)
}

func (p *Painter) Polygon(pts []chartkit.Point, pen chartkit.Pen, brush chartkit.Brush) {
	if len(pts) < 3 {
		return
	}
	if brush.Visible() {
		var path clip.Path
		path.Begin(p.gtx.Ops)
		path.MoveTo(f32Pt(pts[0]))
		for _, pt := range pts[1:] {
			path.LineTo(f32Pt(pt))
		}
		path.Close()
		p.fillPath(path.End(), brush.Color)
	}
	if pen.Visible() {
		var path clip.Path
		path.Begin(p.gtx.Ops)
		path.MoveTo(f32Pt(pts[0]))
		for _, pt := range pts[1:] {
			path.LineTo(f32Pt(pt))
		}
		path.Close()
		p.strokePath(path.End(), pen)
	}
}

func (p *Painter) Rect(r chartkit.Rect, pen chartkit.Pen, brush chartkit.Brush) {
	p.Polygon([]chartkit.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}, pen, brush)
}

func (p *Painter) Circle(center chartkit.Point, radius float64, pen chartkit.Pen, brush chartkit.Brush) {
	if radius <= 0 {
		return
	}
	circle := func() clip.PathSpec {
		var path clip.Path
		path.Begin(p.gtx.Ops)
		path.MoveTo(f32.Pt(float32(center.X+radius), float32(center.Y)))
		path.ArcTo(f32Pt(center), f32Pt(center), 2*math.Pi)
		path.Close()
		return path.End()
	}
	if brush.Visible() {
		p.fillPath(circle(), brush.Color)
	}
	if pen.Visible() {
		p.strokePath(circle(), pen)
	}
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

type gioLabel struct {
	ops  *op.Ops
	call op.CallOp
	size chartkit.Point
}

func (l *gioLabel) Size() chartkit.Point { return l.size }

func (l *gioLabel) DrawAt(origin chartkit.Point) {
	defer op.Affine(f32.Affine2D{}.Offset(f32Pt(origin))).Push(l.ops).Pop()
	l.call.Add(l.ops)
}

func (l *gioLabel) DrawVertical(origin chartkit.Point) {
	defer op.Affine(
		f32.Affine2D{}.
			Rotate(f32.Pt(0, 0), -math.Pi/2).
			Offset(f32.Pt(float32(origin.X), float32(origin.Y+l.size.X))),
	).Push(l.ops).Pop()
	l.call.Add(l.ops)
}

func (p *Painter) Label(f chartkit.Font, text string, col color.NRGBA) chartkit.Label {
	l := material.Body1(p.th, text)
	l.TextSize = unit.Sp(f.Size)
	l.Color = col
	l.MaxLines = 1
	if f.Bold {
		l.Font.Weight = font.Bold
	}
	gtx := p.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(1e6, 1e6)}
	dims, call := rec(gtx, l.Layout)
	return &gioLabel{
		ops:  p.gtx.Ops,
		call: call,
		size: chartkit.Pt(float64(dims.Size.X), float64(dims.Size.Y)),
	}
}
