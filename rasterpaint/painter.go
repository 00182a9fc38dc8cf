// Package rasterpaint renders chartkit plots into in-memory RGBA images
// using the rasterx rasterizer, for PNG export and headless rendering.
package rasterpaint

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"git.sr.ht/~whereswaldon/chartkit"
)

// Painter implements chartkit.Painter on an RGBA image. All plot coordinates
// are multiplied by scale, so a plot laid out for a w x h viewport renders
// crisply into a (w*scale) x (h*scale) image.
type Painter struct {
	chartkit.AAStack

	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	scale  float64

	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

var regularFont, boldFont *opentype.Font

func init() {
	regularFont, _ = opentype.Parse(goregular.TTF)
	boldFont, _ = opentype.Parse(gobold.TTF)
}

func NewPainter(img *image.RGBA, scale float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, bounds)
	return &Painter{
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
		scale:  scale,
		faces:  make(map[faceKey]font.Face),
	}
}

func (p *Painter) ExportMode() bool { return false }

func (p *Painter) fixedPt(pt chartkit.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(pt.X * p.scale * 64),
		Y: fixed.Int26_6(pt.Y * p.scale * 64),
	}
}

func (p *Painter) setStroke(pen chartkit.Pen) {
	dash := make([]float64, len(pen.Dash))
	for i, d := range pen.Dash {
		dash[i] = d * p.scale
	}
	p.dasher.SetStroke(
		fixed.Int26_6(pen.Width*p.scale*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		dash, 0,
	)
	p.dasher.SetColor(pen.Color)
}

func (p *Painter) strokePolyline(pts []chartkit.Point, pen chartkit.Pen, closed bool) {
	if !pen.Visible() || len(pts) < 2 {
		return
	}
	p.setStroke(pen)
	p.dasher.Start(p.fixedPt(pts[0]))
	for _, pt := range pts[1:] {
		p.dasher.Line(p.fixedPt(pt))
	}
	p.dasher.Stop(closed)
	p.dasher.Draw()
	p.dasher.Clear()
}

func (p *Painter) fillPolygon(pts []chartkit.Point, brush chartkit.Brush) {
	if !brush.Visible() || len(pts) < 3 {
		return
	}
	p.filler.SetColor(brush.Color)
	p.filler.Start(p.fixedPt(pts[0]))
	for _, pt := range pts[1:] {
		p.filler.Line(p.fixedPt(pt))
	}
	p.filler.Stop(true)
	p.filler.Draw()
	p.filler.Clear()
}

func (p *Painter) Line(from, to chartkit.Point, pen chartkit.Pen) {
	p.strokePolyline([]chartkit.Point{from, to}, pen, false)
}

func (p *Painter) Polyline(pts []chartkit.Point, pen chartkit.Pen) {
	p.strokePolyline(pts, pen, false)
}

func (p *Painter) Polygon(pts []chartkit.Point, pen chartkit.Pen, brush chartkit.Brush) {
	p.fillPolygon(pts, brush)
	p.strokePolyline(pts, pen, true)
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
	cx, cy, r := center.X*p.scale, center.Y*p.scale, radius*p.scale
	if brush.Visible() {
		p.filler.SetColor(brush.Color)
		rasterx.AddCircle(cx, cy, r, p.filler)
		p.filler.Draw()
		p.filler.Clear()
	}
	if pen.Visible() {
		p.setStroke(pen)
		rasterx.AddCircle(cx, cy, r, p.dasher)
		p.dasher.Draw()
		p.dasher.Clear()
	}
}

func (p *Painter) face(f chartkit.Font) font.Face {
	key := faceKey{size: f.Size, bold: f.Bold}
	if face, ok := p.faces[key]; ok {
		return face
	}
	src := regularFont
	if f.Bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size * p.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = nil
	}
	p.faces[key] = face
	return face
}

type rasterLabel struct {
	p     *Painter
	face  font.Face
	text  string
	col   color.NRGBA
	size  chartkit.Point
	ascent float64
}

func (p *Painter) Label(f chartkit.Font, text string, col color.NRGBA) chartkit.Label {
	face := p.face(f)
	if face == nil {
		return &rasterLabel{p: p, text: text, col: col}
	}
	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	return &rasterLabel{
		p:      p,
		face:   face,
		text:   text,
		col:    col,
		ascent: float64(metrics.Ascent) / 64 / p.scale,
		size: chartkit.Pt(
			float64(width)/64/p.scale,
			float64(metrics.Ascent+metrics.Descent)/64/p.scale,
		),
	}
}

func (l *rasterLabel) Size() chartkit.Point { return l.size }

func (l *rasterLabel) DrawAt(origin chartkit.Point) {
	if l.face == nil {
		return
	}
	drawer := font.Drawer{
		Dst:  l.p.img,
		Src:  image.NewUniform(l.col),
		Face: l.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(origin.X * l.p.scale * 64),
			Y: fixed.Int26_6((origin.Y + l.ascent) * l.p.scale * 64),
		},
	}
	drawer.DrawString(l.text)
}

// DrawVertical renders the text into a scratch image and transposes the
// pixels 90 degrees counter-clockwise into the destination.
func (l *rasterLabel) DrawVertical(origin chartkit.Point) {
	if l.face == nil {
		return
	}
	w := int(math.Ceil(l.size.X * l.p.scale))
	h := int(math.Ceil(l.size.Y * l.p.scale))
	if w <= 0 || h <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(l.col),
		Face: l.face,
		Dot: fixed.Point26_6{
			Y: fixed.Int26_6(l.ascent * l.p.scale * 64),
		},
	}
	drawer.DrawString(l.text)

	dstX := int(math.Round(origin.X * l.p.scale))
	dstY := int(math.Round(origin.Y * l.p.scale))
	bounds := l.p.img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := scratch.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			// (x, y) in text space lands at (y, w-1-x) after rotation
			tx, ty := dstX+y, dstY+w-1-x
			if tx < bounds.Min.X || tx >= bounds.Max.X || ty < bounds.Min.Y || ty >= bounds.Max.Y {
				continue
			}
			l.p.img.SetRGBA(tx, ty, c)
		}
	}
}
