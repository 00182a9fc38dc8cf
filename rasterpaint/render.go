package rasterpaint

import (
	"image"
	"image/png"
	"io"

	"git.sr.ht/~whereswaldon/chartkit"
)

// Render lays the plot out for a width x height viewport and rasterizes it
// at the given supersampling scale. The returned image measures
// width*scale x height*scale pixels.
func Render(pl *chartkit.Plot, width, height int, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	p := NewPainter(img, scale)
	pl.SetViewport(chartkit.RectXYWH(0, 0, float64(width), float64(height)))
	pl.Replot(p)
	return img
}

// WritePNG renders the plot and encodes it as PNG.
func WritePNG(w io.Writer, pl *chartkit.Plot, width, height int, scale float64) error {
	return png.Encode(w, Render(pl, width, height, scale))
}
