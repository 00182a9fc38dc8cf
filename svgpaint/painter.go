// Package svgpaint exports chartkit plots as SVG documents.
package svgpaint

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"git.sr.ht/~whereswaldon/chartkit"
)

// Painter implements chartkit.Painter on an svgo canvas. Shapes are emitted
// as path elements so coordinates keep their sub-pixel precision.
type Painter struct {
	chartkit.AAStack
	canvas *svg.SVG
}

func NewPainter(canvas *svg.SVG) *Painter {
	return &Painter{canvas: canvas}
}

// ExportMode reports true: SVG output is scalable, so device-pixel alignment
// must not be applied.
func (p *Painter) ExportMode() bool { return true }

func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(a uint8) string {
	return fmt.Sprintf("%.3f", float64(a)/255)
}

func penStyle(pen chartkit.Pen) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%g",
		cssColor(pen.Color), opacity(pen.Color.A), pen.Width)
	if len(pen.Dash) > 0 {
		b.WriteString(";stroke-dasharray:")
		for i, d := range pen.Dash {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%g", d)
		}
	}
	return b.String()
}

func shapeStyle(pen chartkit.Pen, brush chartkit.Brush) string {
	var b strings.Builder
	if brush.Visible() {
		fmt.Fprintf(&b, "fill:%s;fill-opacity:%s", cssColor(brush.Color), opacity(brush.Color.A))
	} else {
		b.WriteString("fill:none")
	}
	if pen.Visible() {
		fmt.Fprintf(&b, ";stroke:%s;stroke-opacity:%s;stroke-width:%g",
			cssColor(pen.Color), opacity(pen.Color.A), pen.Width)
	}
	return b.String()
}

func pathData(pts []chartkit.Point, closed bool) string {
	var b strings.Builder
	for i, pt := range pts {
		if i == 0 {
			fmt.Fprintf(&b, "M%g %g", pt.X, pt.Y)
		} else {
			fmt.Fprintf(&b, "L%g %g", pt.X, pt.Y)
		}
	}
	if closed {
		b.WriteByte('Z')
	}
	return b.String()
}

func (p *Painter) Line(from, to chartkit.Point, pen chartkit.Pen) {
	if !pen.Visible() {
		return
	}
	p.canvas.Path(pathData([]chartkit.Point{from, to}, false), penStyle(pen))
}

func (p *Painter) Polyline(pts []chartkit.Point, pen chartkit.Pen) {
	if !pen.Visible() || len(pts) < 2 {
		return
	}
	p.canvas.Path(pathData(pts, false), penStyle(pen))
}

func (p *Painter) Polygon(pts []chartkit.Point, pen chartkit.Pen, brush chartkit.Brush) {
	if len(pts) < 3 || (!pen.Visible() && !brush.Visible()) {
		return
	}
	p.canvas.Path(pathData(pts, true), shapeStyle(pen, brush))
}

func (p *Painter) Rect(r chartkit.Rect, pen chartkit.Pen, brush chartkit.Brush) {
	p.Polygon([]chartkit.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}, pen, brush)
}

// Circle emits two half-circle arcs as a path so fractional radii survive;
// svgo's circle primitive only takes integer coordinates.
func (p *Painter) Circle(center chartkit.Point, radius float64, pen chartkit.Pen, brush chartkit.Brush) {
	if radius <= 0 || (!pen.Visible() && !brush.Visible()) {
		return
	}
	d := fmt.Sprintf("M%g %gA%g %g 0 1 0 %g %gA%g %g 0 1 0 %g %gZ",
		center.X-radius, center.Y,
		radius, radius, center.X+radius, center.Y,
		radius, radius, center.X-radius, center.Y)
	p.canvas.Path(d, shapeStyle(pen, brush))
}

type svgLabel struct {
	p    *Painter
	text string
	font chartkit.Font
	col  color.NRGBA
	size chartkit.Point
}

// Label measures with a nominal glyph aspect since SVG defers font layout to
// the viewer.
func (p *Painter) Label(f chartkit.Font, text string, col color.NRGBA) chartkit.Label {
	return &svgLabel{
		p:    p,
		text: text,
		font: f,
		col:  col,
		size: chartkit.Pt(float64(len([]rune(text)))*f.Size*0.6, f.Size*1.25),
	}
}

func (l *svgLabel) Size() chartkit.Point { return l.size }

func (l *svgLabel) style() string {
	weight := "normal"
	if l.font.Bold {
		weight = "bold"
	}
	return fmt.Sprintf("font-family:sans-serif;font-size:%gpx;font-weight:%s;fill:%s;fill-opacity:%s",
		l.font.Size, weight, cssColor(l.col), opacity(l.col.A))
}

func (l *svgLabel) DrawAt(origin chartkit.Point) {
	// the text baseline sits one em-ascent below the box's top edge
	l.p.canvas.Gtransform(fmt.Sprintf("translate(%g,%g)", origin.X, origin.Y+l.font.Size))
	l.p.canvas.Text(0, 0, l.text, l.style())
	l.p.canvas.Gend()
}

func (l *svgLabel) DrawVertical(origin chartkit.Point) {
	l.p.canvas.Gtransform(fmt.Sprintf("translate(%g,%g) rotate(-90)", origin.X+l.font.Size, origin.Y+l.size.X))
	l.p.canvas.Text(0, 0, l.text, l.style())
	l.p.canvas.Gend()
}

// Render lays the plot out for a width x height viewport and writes it to w
// as a complete SVG document.
func Render(w io.Writer, pl *chartkit.Plot, width, height int) error {
	canvas := svg.New(w)
	canvas.Start(width, height)
	pl.SetViewport(chartkit.RectXYWH(0, 0, float64(width), float64(height)))
	pl.Replot(NewPainter(canvas))
	canvas.End()
	return nil
}
