package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/linechart"
	"github.com/midbel/linechart/config"
	"github.com/midbel/linechart/raster"
	"github.com/midbel/linechart/vector"
)

const stdout = "-"

type options struct {
	width   float64
	height  float64
	padding float64
	xs      []float64
	ys      []float64
	outputs []string
	debug   bool
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "linechart",
		Short:        "Draw line charts",
		SilenceUsage: true,
	}
	render := &cobra.Command{
		Use:   "render [definition]",
		Short: "Render a chart to SVG or PNG files",
		Long: `render draws the chart described by a definition file (.chart, .toml, .yaml)
and by the flags given on the command line. Flags take precedence over the
definition. The format of every output is chosen by its extension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.debug)
			def, err := loadDefinition(cmd, args, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), def)
		},
	}
	flags := render.Flags()
	flags.Float64Var(&opts.width, "width", linechart.DefaultWidth, "chart width")
	flags.Float64Var(&opts.height, "height", linechart.DefaultHeight, "chart height")
	flags.Float64Var(&opts.padding, "padding", linechart.DefaultPadding, "margin around the chart")
	flags.Float64SliceVar(&opts.xs, "x", nil, "x values")
	flags.Float64SliceVar(&opts.ys, "y", nil, "y values")
	flags.StringSliceVarP(&opts.outputs, "output", "o", nil, "output files (.svg, .png or - for SVG on stdout)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(render)
	return cmd
}

func setupLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	linechart.SetLogger(slog.New(h))
}

func loadDefinition(cmd *cobra.Command, args []string, opts options) (config.File, error) {
	def := config.Default()
	if len(args) > 0 {
		var err error
		if def, err = config.Load(args[0]); err != nil {
			return def, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		def.Width = opts.width
	}
	if flags.Changed("height") {
		def.Height = opts.height
	}
	if flags.Changed("padding") {
		def.Padding = opts.padding
	}
	if flags.Changed("x") {
		def.X = opts.xs
	}
	if flags.Changed("y") {
		def.Y = opts.ys
	}
	if flags.Changed("output") {
		def.Output = opts.outputs
	}
	if len(def.Output) == 0 {
		def.Output = []string{stdout}
	}
	def.Output = uniqueOutputs(def.Output)
	return def, nil
}

// uniqueOutputs drops repeated targets so that no file, and not stdout, is
// written by two goroutines.
func uniqueOutputs(files []string) []string {
	var (
		seen = make(map[string]struct{})
		list []string
	)
	for _, f := range files {
		key := f
		if f != stdout {
			key = filepath.Clean(f)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		list = append(list, f)
	}
	return list
}

// run renders every output of the definition in its own goroutine, each with
// its own surface.
func run(ctx context.Context, w io.Writer, def config.File) error {
	series, err := def.Series()
	if err != nil {
		return err
	}
	var (
		cfg    = def.Chart()
		grp, _ = errgroup.WithContext(ctx)
	)
	for _, file := range def.Output {
		grp.Go(func() error {
			err := renderFile(w, file, cfg, series)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			linechart.Logger().Info("chart rendered", slog.String("file", file))
			return nil
		})
	}
	return grp.Wait()
}

func renderFile(w io.Writer, file string, cfg linechart.Config, series linechart.Series) error {
	if file == stdout {
		return renderSVG(w, cfg, series)
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".svg":
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		return renderSVG(f, cfg, series)
	case ".png":
		return renderPNG(file, cfg, series)
	default:
		return fmt.Errorf("%q: unsupported output format", ext)
	}
}

func renderSVG(w io.Writer, cfg linechart.Config, series linechart.Series) error {
	surface := vector.New(cfg.Width, cfg.Height)
	if err := linechart.Render(surface, cfg, series); err != nil {
		return err
	}
	_, err := surface.WriteTo(w)
	return err
}

func renderPNG(file string, cfg linechart.Config, series linechart.Series) error {
	if _, err := cfg.ContentArea(); err != nil {
		return err
	}
	surface := raster.New(int(cfg.Width), int(cfg.Height))
	defer surface.Close()
	if err := linechart.Render(surface, cfg, series); err != nil {
		return err
	}
	return surface.SavePNG(file)
}
