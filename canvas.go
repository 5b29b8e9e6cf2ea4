package pxl

import (
	"log/slog"
	"math"

	"tinygo.org/x/tinyfont"

	"github.com/pxlforge/pxl/internal/pixel"
	"github.com/pxlforge/pxl/internal/stack"
)

// PixelFormat identifies how pixels are stored in a canvas.
type PixelFormat = pixel.Format

// Supported pixel formats.
const (
	FormatNone = pixel.FormatNone // sentinel of an empty canvas
	Format16   = pixel.Format16   // RGB565, 2 bytes
	Format24   = pixel.Format24   // [R, G, B], 3 bytes
	Format32   = pixel.Format32   // [pad, R, G, B], 4 bytes
)

// strideAlign is the row alignment of every canvas, in bytes.
const strideAlign = 4

// Allocator provides the memory block behind a canvas.
//
// Alloc returns a block of at least size bytes; its contents are
// unspecified. Free receives exactly the block Alloc returned.
// Implementations live in package memory.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(block []byte) error
}

// Canvas owns a block of raw pixel memory and draws into it.
//
// A Canvas starts empty. Allocate gives it memory and a pixel format;
// Release returns the memory and makes it empty again. Drawing on an
// empty canvas fails with ErrInvalidState, while drawing outside the
// clip rectangle is silently ignored.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	block     []byte
	raw       []byte // as returned by Alloc, handed back to Free
	width     int
	height    int
	stride    int
	pixelSize int
	format    PixelFormat
	writer    pixel.Writer

	bounds   Rect
	clipRect Rect
	pen      Color
	basePen  Color
	cursor   Point

	clipStack *stack.Stack[Rect]
	penStack  *stack.Stack[Color]

	allocator Allocator
	endpoints EndpointMode
	font      tinyfont.Fonter
}

// NewCanvas creates an empty canvas.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		bounds:    EmptyRect,
		clipRect:  EmptyRect,
		pen:       o.pen,
		basePen:   o.pen,
		clipStack: stack.New[Rect](8),
		penStack:  stack.New[Color](8),
		allocator: o.allocator,
		endpoints: o.endpoints,
		font:      o.font,
	}
}

// Allocate gives the canvas a width x height pixel block in the given format.
//
// Invalid dimensions or formats, including sizes whose byte count does not
// fit in an int, fail with ErrInvalidArgument before anything changes.
// Otherwise any block the canvas already holds is released first.
// If the allocator fails, the canvas is left empty and the returned
// *AllocationError wraps the allocator's error.
func (c *Canvas) Allocate(width, height int, format PixelFormat) error {
	if width <= 0 || height <= 0 {
		return invalidArg("dimensions %dx%d", width, height)
	}
	writer, err := pixel.WriterFor(format)
	if err != nil {
		return invalidArg("pixel format %v", format)
	}
	size := writer.Size()
	if width > (math.MaxInt-strideAlign)/size {
		return invalidArg("width %d too large for %v", width, format)
	}
	stride := pixel.Stride(width, size, strideAlign)
	if height > math.MaxInt/stride {
		return invalidArg("dimensions %dx%d too large for %v", width, height, format)
	}
	total := stride * height

	if !c.Empty() {
		if err := c.Release(); err != nil {
			Logger().Warn("pxl: releasing previous block before allocate", "err", err)
		}
	}

	block, err := c.allocator.Alloc(total)
	if err != nil {
		c.reset()
		return &AllocationError{Size: total, Err: err}
	}
	if len(block) < total {
		if ferr := c.allocator.Free(block); ferr != nil {
			Logger().Warn("pxl: freeing short block failed", slog.Int("bytes", len(block)), slog.Any("err", ferr))
		}
		c.reset()
		return &AllocationError{Size: total, Err: invalidArg("allocator returned %d bytes", len(block))}
	}

	c.raw = block
	c.block = block[:total]
	c.width = width
	c.height = height
	c.stride = stride
	c.pixelSize = size
	c.format = format
	c.writer = writer
	c.bounds = Rect{Left: 0, Top: 0, Right: width - 1, Bottom: height - 1}
	c.clipRect = c.bounds
	c.cursor = Point{}

	Logger().Debug("pxl: canvas allocated",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("stride", stride),
		slog.String("format", format.String()))
	return nil
}

// Release returns the pixel block to the allocator and makes the canvas empty.
// Releasing an empty canvas does nothing.
//
// If the allocator fails to free the block, Release still resets the canvas
// and returns a *ReleaseError.
func (c *Canvas) Release() error {
	if c.Empty() {
		return nil
	}
	err := c.allocator.Free(c.raw)
	size := len(c.block)
	c.reset()

	if err != nil {
		Logger().Warn("pxl: canvas release failed", slog.Int("bytes", size), slog.Any("err", err))
		return &ReleaseError{Err: err}
	}
	Logger().Debug("pxl: canvas released", slog.Int("bytes", size))
	return nil
}

// Close implements io.Closer by calling Release.
//
//	c := pxl.NewCanvas()
//	if err := c.Allocate(640, 480, pxl.Format32); err != nil {
//	    return err
//	}
//	defer c.Close()
func (c *Canvas) Close() error {
	return c.Release()
}

// reset puts every field back to the empty state. The pen and options are kept.
func (c *Canvas) reset() {
	c.block = nil
	c.raw = nil
	c.width = 0
	c.height = 0
	c.stride = 0
	c.pixelSize = 0
	c.format = FormatNone
	c.writer = nil
	c.bounds = EmptyRect
	c.clipRect = EmptyRect
	c.cursor = Point{}
	c.clipStack.Reset()
	c.penStack.Reset()
}

// ResetState restores the drawing state of a freshly allocated canvas
// without touching the pixels. Both stacks are emptied, the clip rectangle
// goes back to the bounds, the pen to its initial color and the cursor to
// the origin.
func (c *Canvas) ResetState() {
	c.clipStack.Reset()
	c.penStack.Reset()
	c.clipRect = c.bounds
	c.pen = c.basePen
	c.cursor = Point{}
}

// Empty reports whether the canvas has no pixel block.
func (c *Canvas) Empty() bool {
	return c.block == nil
}

// Width returns the width in pixels, or 0 when empty.
func (c *Canvas) Width() int { return c.width }

// Height returns the height in pixels, or 0 when empty.
func (c *Canvas) Height() int { return c.height }

// Stride returns the number of bytes per row, including alignment padding.
func (c *Canvas) Stride() int { return c.stride }

// PixelSize returns the number of bytes per pixel.
func (c *Canvas) PixelSize() int { return c.pixelSize }

// Format returns the pixel format, or FormatNone when empty.
func (c *Canvas) Format() PixelFormat { return c.format }

// Bounds returns (0, 0, Width-1, Height-1), or EmptyRect when empty.
func (c *Canvas) Bounds() Rect { return c.bounds }

// ClipRect returns the current clip rectangle.
func (c *Canvas) ClipRect() Rect { return c.clipRect }

// Pen returns the current pen color.
func (c *Canvas) Pen() Color { return c.pen }

// SetPen replaces the current pen color without touching the pen stack.
func (c *Canvas) SetPen(col Color) { c.pen = col }

// Cursor returns the position of the last pixel set or the last MoveTo.
func (c *Canvas) Cursor() Point { return c.cursor }

// Bytes returns the pixel block. It is nil when the canvas is empty.
// The slice aliases the canvas memory and is only valid until Release.
func (c *Canvas) Bytes() []byte { return c.block }

// PixelOffset returns the byte offset of pixel (x, y) in the block.
func (c *Canvas) PixelOffset(x, y int) (int, error) {
	if c.Empty() {
		return 0, ErrInvalidState
	}
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, invalidArg("position (%d,%d) outside %dx%d", x, y, c.width, c.height)
	}
	return y*c.stride + x*c.pixelSize, nil
}

// ScanLine returns the bytes of row, stride long, padding included.
func (c *Canvas) ScanLine(row int) ([]byte, error) {
	if c.Empty() {
		return nil, ErrInvalidState
	}
	if row < 0 || row >= c.height {
		return nil, invalidArg("scanline row %d, expected 0..%d", row, c.height-1)
	}
	start := row * c.stride
	return c.block[start : start+c.stride : start+c.stride], nil
}

// PixelAddr returns the PixelSize bytes that store pixel (col, row).
func (c *Canvas) PixelAddr(col, row int) ([]byte, error) {
	off, err := c.PixelOffset(col, row)
	if err != nil {
		return nil, err
	}
	return c.block[off : off+c.pixelSize : off+c.pixelSize], nil
}

// AdjustToBounds clamps r into the canvas bounds.
// The result is EmptyRect if the canvas is empty or nothing of r remains.
func (c *Canvas) AdjustToBounds(r Rect) Rect {
	return clampTo(r, c.bounds)
}

// AdjustToClipRect clamps r into the current clip rectangle.
// The result is EmptyRect if the clip rectangle is empty or nothing of r remains.
func (c *Canvas) AdjustToClipRect(r Rect) Rect {
	return clampTo(r, c.clipRect)
}

// offset returns the byte offset of a pixel already known to be in bounds.
func (c *Canvas) offset(x, y int) int {
	return y*c.stride + x*c.pixelSize
}
