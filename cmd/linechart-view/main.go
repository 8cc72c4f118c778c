package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/midbel/linechart"
	"github.com/midbel/linechart/config"
	"github.com/midbel/linechart/raster"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	linechart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	def := config.Default()
	if flag.NArg() > 0 {
		var err error
		if def, err = config.Load(flag.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	series, err := def.Series()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.NewWithID("org.midbel.linechart")
	w := a.NewWindow("linechart")
	w.SetContent(canvas.NewRaster(drawer(def.Chart(), series)))
	w.Resize(fyne.NewSize(float32(def.Width), float32(def.Height)))
	w.ShowAndRun()
}

// drawer returns the function fyne calls on every redraw of the window. The
// chart is rendered again from scratch at the size of the window.
func drawer(cfg linechart.Config, series linechart.Series) func(int, int) image.Image {
	return func(w, h int) image.Image {
		if w <= 0 || h <= 0 {
			return image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		cfg.Width, cfg.Height = float64(w), float64(h)

		surface := raster.New(w, h)
		defer surface.Close()
		if err := linechart.Render(surface, cfg, series); err != nil {
			linechart.Logger().Error("chart not rendered",
				slog.Int("width", w),
				slog.Int("height", h),
				slog.String("err", err.Error()),
			)
		}
		return surface.Image()
	}
}
