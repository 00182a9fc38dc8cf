package rasterpaint

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"git.sr.ht/~whereswaldon/chartkit"
)

func samplePlot() *chartkit.Plot {
	pl := chartkit.NewPlot()
	pl.AxisX().SetRange(0, 10)
	pl.AxisY().SetRange(0, 10)
	g := chartkit.NewGraph(pl.AxisX(), pl.AxisY())
	for k := 0; k <= 10; k++ {
		g.Data().AddKV(float64(k), float64((k*3)%7))
	}
	g.SetBrush(chartkit.Brush{Color: color.NRGBA{B: 180, A: 90}})
	pl.AddPlottable(g)
	return pl
}

func TestRenderDimensionsFollowScale(t *testing.T) {
	pl := samplePlot()
	img := Render(pl, 300, 200, 1)
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	img = Render(pl, 300, 200, 2)
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 400 {
		t.Fatalf("scaled bounds = %v", img.Bounds())
	}
	// the layout viewport is unaffected by the raster scale
	if vp := pl.Viewport(); vp.Width() != 300 || vp.Height() != 200 {
		t.Fatalf("viewport = %+v", vp)
	}
}

func TestRenderProducesInk(t *testing.T) {
	img := Render(samplePlot(), 300, 200, 1)
	nonWhite := 0
	for y := 0; y < 200; y += 2 {
		for x := 0; x < 300; x += 2 {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				nonWhite++
			}
		}
	}
	if nonWhite == 0 {
		t.Fatal("rendered image is entirely white")
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, samplePlot(), 120, 90, 1); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 120 || cfg.Height != 90 {
		t.Fatalf("decoded size %dx%d", cfg.Width, cfg.Height)
	}
}
