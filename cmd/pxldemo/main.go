// Command pxldemo demonstrates the pxl rasterizer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/pxlforge/pxl"
	"github.com/pxlforge/pxl/memory"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "demo.png", "output file (.png, .jpg, .bmp, .tif)")
		bits    = flag.Int("bits", 32, "pixel format: 16, 24 or 32")
		scale   = flag.Int("scale", 1, "integer upscale of the saved image")
		alloc   = flag.String("alloc", "heap", "pixel memory: heap, pool or mmap")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pxl.SetLogger(log)

	a, err := allocatorFor(*alloc)
	if err != nil {
		log.Error("demo failed", "err", err)
		os.Exit(2)
	}
	if err := run(a, *width, *height, *bits, *scale, *output); err != nil {
		log.Error("demo failed", "err", err)
		os.Exit(1)
	}
	log.Info("demo saved", "path", *output, "width", *width, "height", *height)
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

func allocatorFor(name string) (pxl.Allocator, error) {
	switch name {
	case "heap":
		return memory.Heap{}, nil
	case "pool":
		return memory.NewPool(1), nil
	case "mmap":
		return memory.Mmap{}, nil
	default:
		return nil, fmt.Errorf("unknown allocator %q", name)
	}
}

func run(a pxl.Allocator, w, h, bits, scale int, output string) error {
	format, err := formatFor(bits)
	if err != nil {
		return err
	}
	c := pxl.NewCanvas(pxl.WithAllocator(a))
	if err := c.Allocate(w, h, format); err != nil {
		return err
	}
	defer c.Close()

	drawBackground(c, w, h)
	drawShapesDemo(c)
	drawFrameDemo(c)
	drawStarDemo(c)

	img, err := c.Export(pxl.ScaledExporter{Scale: scale})
	if err != nil {
		return err
	}
	return pxl.SaveImage(output, img)
}

// drawBackground fills horizontal bands from dark to light blue.
func drawBackground(c *pxl.Canvas, w, h int) {
	const steps = 50
	base := pxl.RGBColor(20, 40, 90)
	band := max(h/steps, 1)
	for i := range steps {
		col := base.Lighten(float64(i) / steps * 0.4)
		_ = c.RectFillColor(pxl.RectWH(0, i*band, w, band), col)
	}
}

func drawShapesDemo(c *pxl.Canvas) {
	c.PushPenColor(pxl.Yellow)
	defer c.PopPenColor()

	for r := 10; r <= 60; r += 10 {
		_ = c.CircleOutline(pxl.Pt(120, 120), r)
	}
	_ = c.EllipseOutline(320, 120, 90, 40, pxl.RGBColor(255, 128, 0))
	_ = c.EllipseOutlineBox(250, 60, 390, 180)

	// Fan of lines clipped to a box
	c.PushClipRect(pxl.R(440, 40, 600, 200))
	for x := 440; x <= 600; x += 8 {
		_ = c.LineColor(pxl.Pt(520, 220), pxl.Pt(x, 20), pxl.White)
	}
	c.PopClipRect()
	_ = c.RectOutlineColor(pxl.R(440, 40, 600, 200), pxl.White)
}

func drawFrameDemo(c *pxl.Canvas) {
	_ = c.Frame3DFill(pxl.RectWH(40, 250, 160, 40), pxl.White, pxl.ButtonShadow, pxl.ButtonFace, true)
	_ = c.TextOutColor(60, 275, "Raised", pxl.Black)

	_ = c.Frame3DFill(pxl.RectWH(220, 250, 160, 40), pxl.White, pxl.ButtonShadow, pxl.ButtonFace, false)
	_ = c.TextOutColor(240, 275, "Sunken", pxl.Black)
}

func drawStarDemo(c *pxl.Canvas) {
	const (
		points = 5
		outerR = 60.0
		innerR = 25.0
	)
	cx, cy := 510.0, 300.0

	pts := make([]pxl.Point, 0, points*2+1)
	for i := range points * 2 {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := cx + r*math.Cos(angle-math.Pi/2)
		y := cy + r*math.Sin(angle-math.Pi/2)
		pts = append(pts, pxl.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	pts = append(pts, pts[0])
	_ = c.PolyOutlineColor(pts, pxl.RGBColor(255, 220, 0))
}
