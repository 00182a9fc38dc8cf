package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.sr.ht/~whereswaldon/chartkit/csvsource"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		bad  bool
	}{
		{in: "#000000", want: color.NRGBA{A: 255}},
		{in: "#ff0000", want: color.NRGBA{R: 255, A: 255}},
		{in: "#1f77b4", want: color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}},
		{in: "#abc", want: color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}},
		{in: "#10203040", want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: "red", bad: true},
		{in: "#12345", bad: true},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if c.bad {
			if err == nil {
				t.Errorf("parseColor(%q) accepted invalid input", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColor(%q): %v", c.in, err)
		} else if got != c.want {
			t.Errorf("parseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadThemeDefaults(t *testing.T) {
	th, err := loadTheme("")
	if err != nil {
		t.Fatal(err)
	}
	if th.LineWidth != defaultTheme().LineWidth {
		t.Fatalf("default line width = %g", th.LineWidth)
	}
}

func TestLoadThemeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
background = "#101010"
line_width = 3.0
tick_count = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := loadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.background() != (color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 255}) {
		t.Fatalf("background = %v", th.background())
	}
	if th.LineWidth != 3 {
		t.Fatalf("line width = %g", th.LineWidth)
	}
	if th.TickCount != 8 {
		t.Fatalf("tick count = %d", th.TickCount)
	}
	// unset keys keep defaults
	if th.FontSize != defaultTheme().FontSize {
		t.Fatalf("font size = %g", th.FontSize)
	}
}

func TestLoadThemeRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`line_width = -1.0`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadTheme(path); err == nil {
		t.Fatal("negative line width accepted")
	}
}

func TestSeriesColorWrapsPalette(t *testing.T) {
	th := defaultTheme()
	n := len(th.Palette)
	if th.seriesColor(0) != th.seriesColor(n) {
		t.Fatal("palette did not wrap")
	}
}

func loadTestTable(t *testing.T, csv string) *csvsource.Table {
	t.Helper()
	table, err := csvsource.Load(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestBuildPlotAllSeries(t *testing.T) {
	table := loadTestTable(t, "t, a, b\n0, 1, 2\n1, 3, 4\n")
	pl, err := buildPlot(table, defaultTheme(), plotOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if pl.PlottableCount() != 2 {
		t.Fatalf("plottables = %d", pl.PlottableCount())
	}
	if got := pl.AxisX().LabelText(); got != "t" {
		t.Fatalf("key axis label = %q", got)
	}
}

func TestBuildPlotSeriesSelection(t *testing.T) {
	table := loadTestTable(t, "t, a, b\n0, 1, 2\n")
	pl, err := buildPlot(table, defaultTheme(), plotOptions{series: []string{"b"}})
	if err != nil {
		t.Fatal(err)
	}
	if pl.PlottableCount() != 1 {
		t.Fatalf("plottables = %d", pl.PlottableCount())
	}
	if got := pl.PlottableAt(0).Name(); got != "b" {
		t.Fatalf("series = %q", got)
	}
	if _, err := buildPlot(table, defaultTheme(), plotOptions{series: []string{"missing"}}); err == nil {
		t.Fatal("unknown series accepted")
	}
}

func TestBuildPlotKinds(t *testing.T) {
	table := loadTestTable(t, "t, a\n0, 1\n1, 2\n")
	for _, kind := range []string{"line", "step", "scatter", "bars", ""} {
		if _, err := buildPlot(table, defaultTheme(), plotOptions{kind: kind}); err != nil {
			t.Errorf("kind %q: %v", kind, err)
		}
	}
	if _, err := buildPlot(table, defaultTheme(), plotOptions{kind: "pie"}); err == nil {
		t.Fatal("unknown kind accepted")
	}
}

func TestBuildPlotTitleItem(t *testing.T) {
	table := loadTestTable(t, "t, a\n0, 1\n")
	pl, err := buildPlot(table, defaultTheme(), plotOptions{title: "Power"})
	if err != nil {
		t.Fatal(err)
	}
	if pl.ItemCount() != 1 {
		t.Fatalf("items = %d", pl.ItemCount())
	}
}
