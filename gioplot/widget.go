package gioplot

import (
	"image"
	"math"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/chartkit"
)

// PlotWidget embeds a chartkit.Plot in a Gio layout. Vertical scrolling zooms
// both primary axes around the cursor, horizontal scrolling pans the key
// axis, and clicks drive the plot's selection.
type PlotWidget struct {
	Plot *chartkit.Plot

	zoom   gesture.Scroll
	pan    gesture.Scroll
	click  gesture.Click
	cursor chartkit.Point
}

func NewPlotWidget(pl *chartkit.Plot) *PlotWidget {
	return &PlotWidget{Plot: pl}
}

func (w *PlotWidget) Layout(gtx C, th *material.Theme) D {
	size := gtx.Constraints.Max
	w.Plot.SetViewport(chartkit.RectXYWH(0, 0, float64(size.X), float64(size.Y)))

	w.update(gtx)

	stack := clip.Rect{Max: size}.Push(gtx.Ops)
	w.pan.Add(gtx.Ops)
	w.zoom.Add(gtx.Ops)
	w.click.Add(gtx.Ops)
	event.Op(gtx.Ops, w)

	painter := NewPainter(gtx, th)
	w.Plot.Replot(painter)
	stack.Pop()

	return D{Size: size}
}

func (w *PlotWidget) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Move | pointer.Drag,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.cursor = chartkit.Pt(float64(pe.Position.X), float64(pe.Position.Y))
		}
	}

	dist := w.zoom.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical, image.Rect(0, -1e6, 0, 1e6))
	if dist != 0 {
		factor := 1 + float64(dist)/float64(max(gtx.Constraints.Max.Y, 1))
		w.zoomAxes(factor)
	}
	dist = w.pan.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Horizontal, image.Rect(-1e6, 0, 1e6, 0))
	if dist != 0 {
		w.panKeyAxis(float64(dist))
	}

	for {
		ev, ok := w.click.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind == gesture.KindClick {
			w.Plot.SelectAt(chartkit.Pt(float64(ev.Position.X), float64(ev.Position.Y)))
		}
	}
}

// zoomAxes scales both primary axes, keeping the coordinate under the cursor
// fixed when the cursor lies inside the axis rect.
func (w *PlotWidget) zoomAxes(factor float64) {
	ar := w.Plot.AxisRect()
	x, y := w.Plot.AxisX(), w.Plot.AxisY()
	centerX := x.Range().Center()
	centerY := y.Range().Center()
	if !ar.Empty() && ar.Contains(w.cursor) {
		centerX = x.PixelToCoord(w.cursor.X)
		centerY = y.PixelToCoord(w.cursor.Y)
	}
	x.ScaleRange(factor, centerX)
	y.ScaleRange(factor, centerY)
}

// panKeyAxis shifts the bottom axis by a pixel distance converted into
// coordinates.
func (w *PlotWidget) panKeyAxis(pixels float64) {
	ar := w.Plot.AxisRect()
	if ar.Width() <= 0 {
		return
	}
	x := w.Plot.AxisX()
	if x.ScaleType() == chartkit.ScaleLogarithmic {
		// a pixel step corresponds to a constant range ratio on log scales
		ratio := x.Range().Upper / x.Range().Lower
		x.MoveRange(powClamped(ratio, pixels/ar.Width()))
		return
	}
	x.MoveRange(pixels / ar.Width() * x.Range().Size())
}

func powClamped(base, exp float64) float64 {
	v := math.Pow(base, exp)
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	return v
}
