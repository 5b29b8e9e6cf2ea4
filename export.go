package pxl

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/pxlforge/pxl/internal/pixel"
)

// Exporter turns a raw pixel block into an image.Image.
//
// buf holds height rows of stride bytes each, pixels stored in format.
// Implementations must not keep buf after returning.
type Exporter interface {
	Export(buf []byte, width, height, stride int, format PixelFormat) (image.Image, error)
}

// RGBAExporter copies the pixel block into a new *image.RGBA.
type RGBAExporter struct{}

// Export implements Exporter.
func (RGBAExporter) Export(buf []byte, width, height, stride int, format PixelFormat) (image.Image, error) {
	return toRGBA(buf, width, height, stride, format)
}

// ScaledExporter copies the pixel block and enlarges it Scale times with
// nearest-neighbour sampling, so every canvas pixel becomes a square.
// A Scale below 1 behaves like 1.
type ScaledExporter struct {
	Scale int
}

// Export implements Exporter.
func (e ScaledExporter) Export(buf []byte, width, height, stride int, format PixelFormat) (image.Image, error) {
	src, err := toRGBA(buf, width, height, stride, format)
	if err != nil {
		return nil, err
	}
	if e.Scale <= 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*e.Scale, height*e.Scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func toRGBA(buf []byte, width, height, stride int, format PixelFormat) (*image.RGBA, error) {
	w, err := pixel.WriterFor(format)
	if err != nil {
		return nil, fmt.Errorf("pxl: export: %w: %w", ErrInvalidArgument, err)
	}
	size := w.Size()
	if width <= 0 || height <= 0 || stride < width*size || len(buf) < stride*(height-1)+width*size {
		return nil, invalidArg("export of %dx%d with stride %d from %d bytes", width, height, stride, len(buf))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := buf[y*stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			c := w.Read(row[x*size:])
			o := out[x*4 : x*4+4 : x*4+4]
			o[0] = c.R
			o[1] = c.G
			o[2] = c.B
			o[3] = 0xff
		}
	}
	return img, nil
}

// Export converts the canvas into an image using e.
// A nil e uses RGBAExporter.
func (c *Canvas) Export(e Exporter) (image.Image, error) {
	if c.Empty() {
		return nil, ErrInvalidState
	}
	if e == nil {
		e = RGBAExporter{}
	}
	return e.Export(c.block, c.width, c.height, c.stride, c.format)
}
