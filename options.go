package pxl

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/pxlforge/pxl/memory"
)

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default heap memory, black pen
//	c := pxl.NewCanvas()
//
//	// Shared pool of blocks and a white pen
//	pool := memory.NewPool(4)
//	c := pxl.NewCanvas(pxl.WithAllocator(pool), pxl.WithPen(pxl.White))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	allocator Allocator
	pen       Color
	endpoints EndpointMode
	font      tinyfont.Fonter
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		allocator: memory.Heap{},
		pen:       Black,
		endpoints: EndpointsClosed,
		font:      &proggy.TinySZ8pt7b,
	}
}

// WithAllocator sets the memory provider the canvas allocates its pixel block from.
// A nil allocator keeps the default heap allocator.
func WithAllocator(a Allocator) CanvasOption {
	return func(o *canvasOptions) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithPen sets the initial pen color. The pen survives Release and Allocate.
func WithPen(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.pen = c
	}
}

// WithLineEndpoints selects how Line treats the endpoints of x-major lines.
// See EndpointMode.
func WithLineEndpoints(m EndpointMode) CanvasOption {
	return func(o *canvasOptions) {
		o.endpoints = m
	}
}

// WithFont sets the bitmap font used by TextOut. A nil font keeps the default.
func WithFont(f tinyfont.Fonter) CanvasOption {
	return func(o *canvasOptions) {
		if f != nil {
			o.font = f
		}
	}
}
