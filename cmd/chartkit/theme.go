package main

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"git.sr.ht/~whereswaldon/chartkit"
)

// Theme controls the colors and line styles applied to rendered plots. It is
// loaded from a TOML file so that chart styling lives outside the code.
type Theme struct {
	Background string   `toml:"background"`
	Foreground string   `toml:"foreground"`
	Palette    []string `toml:"palette"`
	LineWidth  float64  `toml:"line_width"`
	FillAlpha  uint8    `toml:"fill_alpha"`
	Grid       bool     `toml:"grid"`
	SubGrid    bool     `toml:"subgrid"`
	FontSize   float64  `toml:"font_size"`
	TickCount  int      `toml:"tick_count"`
	Margin     float64  `toml:"margin"`
}

func defaultTheme() Theme {
	return Theme{
		Background: "#ffffff",
		Foreground: "#000000",
		Palette: []string{
			"#1f77b4",
			"#d62728",
			"#2ca02c",
			"#9467bd",
			"#ff7f0e",
			"#17becf",
		},
		LineWidth: 1.5,
		FillAlpha: 0,
		Grid:      true,
		SubGrid:   false,
		FontSize:  12,
	}
}

// loadTheme reads a TOML theme from path, filling unset fields from the
// default theme. An empty path yields the default theme unchanged.
func loadTheme(path string) (Theme, error) {
	th := defaultTheme()
	if path == "" {
		return th, nil
	}
	meta, err := toml.DecodeFile(path, &th)
	if err != nil {
		return th, fmt.Errorf("loading theme %q: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warn("unknown theme key", "key", key.String())
	}
	if err := th.validate(); err != nil {
		return th, fmt.Errorf("theme %q: %w", path, err)
	}
	return th, nil
}

func (th Theme) validate() error {
	if _, err := parseColor(th.Background); err != nil {
		return err
	}
	if _, err := parseColor(th.Foreground); err != nil {
		return err
	}
	for _, c := range th.Palette {
		if _, err := parseColor(c); err != nil {
			return err
		}
	}
	if th.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %g", th.LineWidth)
	}
	if th.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", th.FontSize)
	}
	return nil
}

// parseColor accepts #rgb, #rrggbb, and #rrggbbaa hex notation.
func parseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("expected #rgb, #rrggbb, or #rrggbbaa")
	}
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

func (th Theme) background() color.NRGBA {
	c, _ := parseColor(th.Background)
	return c
}

func (th Theme) foreground() color.NRGBA {
	c, _ := parseColor(th.Foreground)
	return c
}

func (th Theme) seriesColor(i int) color.NRGBA {
	if len(th.Palette) == 0 {
		return th.foreground()
	}
	c, _ := parseColor(th.Palette[i%len(th.Palette)])
	return c
}

func (th Theme) seriesPen(i int) chartkit.Pen {
	return chartkit.SolidPen(th.seriesColor(i), th.LineWidth)
}

func (th Theme) seriesBrush(i int) chartkit.Brush {
	if th.FillAlpha == 0 {
		return chartkit.NoBrush
	}
	c := th.seriesColor(i)
	c.A = th.FillAlpha
	return chartkit.Brush{Color: c}
}

// apply styles the plot frame: background, axis colors, fonts, and grids.
func (th Theme) apply(pl *chartkit.Plot) {
	pl.SetBackground(chartkit.Brush{Color: th.background()})
	fg := th.foreground()
	font := chartkit.Font{Size: th.FontSize}
	labelFont := chartkit.Font{Size: th.FontSize + 1, Bold: true}
	for _, axis := range []*chartkit.Axis{pl.AxisX(), pl.AxisY(), pl.AxisX2(), pl.AxisY2()} {
		axis.SetBasePen(chartkit.SolidPen(fg, 1))
		axis.SetTickPen(chartkit.SolidPen(fg, 1))
		axis.SetSubTickPen(chartkit.SolidPen(fg, 1))
		axis.SetTickLabelColor(fg)
		axis.SetTickLabelFont(font)
		axis.SetLabelFont(labelFont)
		axis.SetLabelColor(fg)
		axis.Grid().SetVisible(false)
	}
	if th.Grid {
		pl.AxisX().Grid().SetVisible(true)
		pl.AxisY().Grid().SetVisible(true)
		pl.AxisX().Grid().SetSubGrid(th.SubGrid)
		pl.AxisY().Grid().SetSubGrid(th.SubGrid)
	}
	if th.TickCount > 0 {
		pl.AxisX().SetTickCount(th.TickCount)
		pl.AxisY().SetTickCount(th.TickCount)
	}
	if th.Margin > 0 {
		pl.SetMargins(chartkit.Margins{
			Left: th.Margin, Right: th.Margin, Top: th.Margin, Bottom: th.Margin,
		})
	}
}
