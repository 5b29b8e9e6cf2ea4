// Command pxlscript renders a Lua drawing script onto a canvas.
//
// Usage:
//
//	pxlscript [flags] scene.lua
//
// The script is run once and the canvas saved to -o. With -watch the script
// is re-run whenever it changes; with -view the result is shown in a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pxlforge/pxl"
	"github.com/pxlforge/pxl/internal/script"
	"github.com/pxlforge/pxl/internal/viewer"
	"github.com/pxlforge/pxl/internal/watch"
)

type options struct {
	script  string
	output  string
	width   int
	height  int
	bits    int
	scale   int
	watch   bool
	view    bool
	verbose bool
	legacy  bool
}

func main() {
	var o options
	flag.StringVar(&o.output, "o", "", "output image (.png, .jpg, .bmp, .tif); empty to skip saving")
	flag.IntVar(&o.width, "w", 320, "canvas width")
	flag.IntVar(&o.height, "h", 200, "canvas height")
	flag.IntVar(&o.bits, "bits", 32, "pixel format: 16, 24 or 32")
	flag.IntVar(&o.scale, "scale", 2, "window and export scale")
	flag.BoolVar(&o.watch, "watch", false, "re-run the script when it changes")
	flag.BoolVar(&o.view, "view", false, "show the canvas in a window")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.BoolVar(&o.legacy, "legacy-lines", false, "leave out endpoints of x-major lines")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.lua\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	o.script = flag.Arg(0)

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pxl.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("pxlscript failed", "err", err)
		os.Exit(1)
	}
}

func formatFor(bits int) (pxl.PixelFormat, error) {
	switch bits {
	case 16:
		return pxl.Format16, nil
	case 24:
		return pxl.Format24, nil
	case 32:
		return pxl.Format32, nil
	default:
		return pxl.FormatNone, fmt.Errorf("unsupported bit depth %d", bits)
	}
}

func run(ctx context.Context, o options, log *slog.Logger) error {
	format, err := formatFor(o.bits)
	if err != nil {
		return err
	}

	var canvasOpts []pxl.CanvasOption
	if o.legacy {
		canvasOpts = append(canvasOpts, pxl.WithLineEndpoints(pxl.EndpointsLegacy))
	}
	c := pxl.NewCanvas(canvasOpts...)
	if err := c.Allocate(o.width, o.height, format); err != nil {
		return err
	}
	defer c.Close()

	r := &renderer{canvas: c, opts: o, log: log}
	if o.view {
		r.view = viewer.New(viewer.Config{Title: "pxlscript - " + o.script, Scale: o.scale}, o.width, o.height)
	}

	if err := r.render(); err != nil {
		if !o.watch {
			return err
		}
		log.Warn("render failed", "err", err)
	}

	if !o.watch && r.view == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	if o.watch {
		w, err := watch.New(o.script, 0, log)
		if err != nil {
			return err
		}
		log.Info("watching", "path", w.Path())
		go func() { errc <- w.Run(ctx, r.render) }()
	}

	if r.view != nil {
		// The window owns the main goroutine until it is closed.
		err := r.view.Run(ctx)
		cancel()
		return err
	}
	return <-errc
}

// renderer runs the script against one canvas, once per call to render.
type renderer struct {
	canvas *pxl.Canvas
	opts   options
	view   *viewer.Viewer
	log    *slog.Logger
}

// render starts every run from the same state: a black canvas with empty
// clip and pen stacks, the initial pen and a fresh Lua state.
func (r *renderer) render() error {
	c := r.canvas
	c.ResetState()
	if err := c.ClearColor(pxl.Black); err != nil {
		return err
	}

	rt, err := script.New(c, script.DefaultConfig())
	if err != nil {
		return err
	}
	defer rt.Close()
	if err := rt.ExecuteFile(r.opts.script); err != nil {
		return err
	}

	if r.opts.output != "" {
		img, err := c.Export(pxl.ScaledExporter{Scale: r.opts.scale})
		if err != nil {
			return err
		}
		if err := pxl.SaveImage(r.opts.output, img); err != nil {
			return err
		}
		r.log.Info("rendered", "script", r.opts.script, "output", r.opts.output)
	}
	if r.view != nil {
		img, err := c.Export(nil)
		if err != nil {
			return err
		}
		r.view.SetFrame(img)
	}
	return nil
}
