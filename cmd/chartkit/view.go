package main

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/chartkit/csvsource"
	"git.sr.ht/~whereswaldon/chartkit/gioplot"
	"git.sr.ht/~whereswaldon/chartkit/rasterpaint"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

var exportIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFileDownload)
	return icon
}()

type viewOpts struct {
	theme string
	plot  plotOptions
}

func viewCommand() *cobra.Command {
	var seriesStr string
	var opts viewOpts
	cmd := &cobra.Command{
		Use:   "view [file.csv]",
		Short: "Plot a CSV file in a window, following it as it grows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seriesStr != "" {
				opts.plot.series = strings.Split(seriesStr, ",")
			}
			return runView(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.plot.title, "title", "", "chart title")
	cmd.Flags().StringVarP(&seriesStr, "series", "s", "", "comma-separated series names to plot (default all)")
	cmd.Flags().StringVarP(&opts.plot.kind, "kind", "k", "line", "chart kind: line, step, scatter, or bars")
	cmd.Flags().BoolVar(&opts.plot.logY, "logy", false, "logarithmic value axis")
	return cmd
}

func runView(ctx context.Context, input string, opts viewOpts) error {
	theme, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}
	w := app.NewWindow(app.Title("chartkit: " + filepath.Base(input)))
	go func() {
		if err := loop(ctx, w, input, theme, opts.plot); err != nil {
			logger.Fatal("window closed", "err", err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func loop(ctx context.Context, w *app.Window, input string, theme Theme, opts plotOptions) error {
	controller := stream.NewController(ctx, w.Invalidate)
	tables := stream.New(controller, func(ctx context.Context) <-chan *csvsource.Table {
		ch, err := csvsource.Watch(ctx, input)
		if err != nil {
			logger.Error("following input", "file", input, "err", err)
			closed := make(chan *csvsource.Table)
			close(closed)
			return closed
		}
		return ch
	})

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())

	view := &plotView{
		theme: theme,
		opts:  opts,
		expl:  explorer.NewExplorer(w),
	}
	var ops op.Ops
	for {
		ev := w.NextEvent()
		view.expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			if table, isNew := tables.ReadNew(gtx); isNew && table != nil {
				view.setTable(table)
			}
			view.Layout(gtx, th)
			ev.Frame(gtx.Ops)
		}
	}
}

// plotView holds the window's UI state: the live plot, pause/export controls,
// and the most recent table held back while paused.
type plotView struct {
	theme Theme
	opts  plotOptions
	expl  *explorer.Explorer

	widget    *gioplot.PlotWidget
	pauseBtn  widget.Clickable
	exportBtn widget.Clickable
	paused    bool
	pending   *csvsource.Table
	status    string
}

func (v *plotView) setTable(table *csvsource.Table) {
	if v.paused {
		v.pending = table
		return
	}
	pl, err := buildPlot(table, v.theme, v.opts)
	if err != nil {
		v.status = err.Error()
		return
	}
	v.status = ""
	if v.widget == nil {
		v.widget = gioplot.NewPlotWidget(pl)
	} else {
		// reassigning the plot keeps gesture state across data refreshes
		v.widget.Plot = pl
	}
}

func (v *plotView) update(gtx C) {
	if v.pauseBtn.Clicked(gtx) {
		v.paused = !v.paused
		if !v.paused && v.pending != nil {
			table := v.pending
			v.pending = nil
			v.setTable(table)
		}
	}
	if v.exportBtn.Clicked(gtx) && v.widget != nil {
		v.exportPNG()
	}
}

func (v *plotView) exportPNG() {
	f, err := v.expl.CreateFile("chart.png")
	if err != nil {
		logger.Error("creating export file", "err", err)
		return
	}
	defer f.Close()
	viewport := v.widget.Plot.Viewport()
	err = rasterpaint.WritePNG(f, v.widget.Plot, int(viewport.Width()), int(viewport.Height()), 2)
	if err != nil {
		logger.Error("exporting chart", "err", err)
		return
	}
	logger.Info("exported chart")
}

func (v *plotView) Layout(gtx C, th *material.Theme) D {
	v.update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						icon := pauseIcon
						if v.paused {
							icon = playIcon
						}
						return iconButton(gtx, th, &v.pauseBtn, icon)
					}),
					layout.Rigid(func(gtx C) D {
						return iconButton(gtx, th, &v.exportBtn, exportIcon)
					}),
					layout.Rigid(func(gtx C) D {
						if v.status == "" {
							return D{}
						}
						label := material.Body1(th, v.status)
						label.Color = th.Palette.Fg
						return label.Layout(gtx)
					}),
				)
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			if v.widget == nil {
				return layout.Center.Layout(gtx, material.Body1(th, "waiting for data").Layout)
			}
			return v.widget.Layout(gtx, th)
		}),
	)
}

func iconButton(gtx C, th *material.Theme, btn *widget.Clickable, icon *widget.Icon) D {
	side := gtx.Dp(28)
	gtx.Constraints = layout.Exact(image.Point{X: side, Y: side})
	return material.Clickable(gtx, btn, func(gtx C) D {
		return layout.Center.Layout(gtx, func(gtx C) D {
			return icon.Layout(gtx, th.Fg)
		})
	})
}
