package main

import (
	"fmt"

	"git.sr.ht/~whereswaldon/chartkit"
	"git.sr.ht/~whereswaldon/chartkit/csvsource"
)

// plotOptions selects which series are drawn and how.
type plotOptions struct {
	title  string
	series []string // empty means all
	kind   string   // line, step, scatter, or bars
	logY   bool
}

// buildPlot assembles a styled plot from a parsed table. Graph plottables
// share their data containers with the table; bars copy into their own
// container because bar records carry stacking state.
func buildPlot(table *csvsource.Table, th Theme, opts plotOptions) (*chartkit.Plot, error) {
	pl := chartkit.NewPlot()
	th.apply(pl)
	pl.AxisX().SetLabel(table.KeyLabel)
	if opts.logY {
		pl.AxisY().SetScaleType(chartkit.ScaleLogarithmic)
	}

	selected := table.Series
	if len(opts.series) > 0 {
		selected = selected[:0:0]
		for _, name := range opts.series {
			s := table.SeriesByName(name)
			if s == nil {
				return nil, fmt.Errorf("no series named %q in input", name)
			}
			selected = append(selected, *s)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("input has no data series")
	}

	var prevBars *chartkit.Bars
	for i, s := range selected {
		switch opts.kind {
		case "bars":
			b := chartkit.NewBars(pl.AxisX(), pl.AxisY())
			b.SetName(s.Name)
			b.SetPen(th.seriesPen(i))
			brush := th.seriesBrush(i)
			if !brush.Visible() {
				c := th.seriesColor(i)
				c.A = 128
				brush = chartkit.Brush{Color: c}
			}
			b.SetBrush(brush)
			data := chartkit.NewBarData()
			for j := 0; j < s.Data.Len(); j++ {
				pt := s.Data.At(j)
				data.AddKV(pt.Key, pt.Value)
			}
			b.AdoptData(data)
			if prevBars != nil {
				b.MoveAbove(prevBars)
			}
			prevBars = b
			pl.AddPlottable(b)
		default:
			g := chartkit.NewGraph(pl.AxisX(), pl.AxisY())
			g.SetName(s.Name)
			g.SetPen(th.seriesPen(i))
			g.SetBrush(th.seriesBrush(i))
			g.AdoptData(s.Data)
			switch opts.kind {
			case "line", "":
			case "step":
				g.SetLineStyle(chartkit.LineStepLeft)
			case "scatter":
				g.SetLineStyle(chartkit.LineNone)
				g.SetScatterStyle(chartkit.ScatterCircle)
			default:
				return nil, fmt.Errorf("unknown chart kind %q", opts.kind)
			}
			pl.AddPlottable(g)
		}
	}
	pl.RescaleAxes()

	if opts.title != "" {
		title := chartkit.NewItemText()
		title.SetText(opts.title)
		title.SetFont(chartkit.Font{Size: th.FontSize + 4, Bold: true})
		title.SetColor(th.foreground())
		title.At.SetMode(chartkit.PosViewportRatio)
		title.At.SetCoords(0.5, 0.04)
		pl.AddItem(title)
	}
	return pl, nil
}
