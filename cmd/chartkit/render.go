package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/chartkit/csvsource"
	"git.sr.ht/~whereswaldon/chartkit/rasterpaint"
	"git.sr.ht/~whereswaldon/chartkit/svgpaint"
)

type renderOpts struct {
	output string
	width  int
	height int
	scale  float64
	theme  string
	plot   plotOptions
}

func renderCommand() *cobra.Command {
	var seriesStr string
	opts := renderOpts{
		width:  800,
		height: 600,
		scale:  1,
	}
	cmd := &cobra.Command{
		Use:   "render [file.csv]",
		Short: "Render a CSV file to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seriesStr != "" {
				opts.plot.series = strings.Split(seriesStr, ",")
			}
			return runRender(args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; format follows the extension (default input name with .png)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster supersampling factor (PNG only)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.plot.title, "title", "", "chart title")
	cmd.Flags().StringVarP(&seriesStr, "series", "s", "", "comma-separated series names to plot (default all)")
	cmd.Flags().StringVarP(&opts.plot.kind, "kind", "k", "line", "chart kind: line, step, scatter, or bars")
	cmd.Flags().BoolVar(&opts.plot.logY, "logy", false, "logarithmic value axis")
	return cmd
}

func runRender(input string, opts renderOpts) error {
	start := time.Now()
	table, err := csvsource.LoadFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded input", "file", input, "series", len(table.Series))

	theme, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}
	pl, err := buildPlot(table, theme, opts.plot)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		err = rasterpaint.WritePNG(f, pl, opts.width, opts.height, opts.scale)
	case ".svg":
		err = svgpaint.Render(f, pl, opts.width, opts.height)
	default:
		return fmt.Errorf("unsupported output format %q, use .png or .svg", ext)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("rendered chart", "output", output, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
