// Package pxl provides a small software rasterizer that draws into raw
// pixel memory.
//
// # Overview
//
// A Canvas owns one block of pixel memory obtained from an Allocator and
// draws into it with integer algorithms: Bresenham lines, midpoint circles
// and ellipses, filled and outlined rectangles, beveled 3D frames, polylines
// and 1-bit bitmap text. There is no anti-aliasing and no blending; a pixel
// is either written with the pen color or left alone.
//
// # Quick Start
//
//	import "github.com/pxlforge/pxl"
//
//	c := pxl.NewCanvas()
//	if err := c.Allocate(320, 200, pxl.Format32); err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.ClearColor(pxl.White)
//	c.PushPenColor(pxl.Red)
//	c.CircleOutline(pxl.Pt(160, 100), 60)
//	c.PopPenColor()
//
//	c.Save("out.png")
//
// # Memory layout
//
// Rows are stride bytes apart, with stride rounded up to a multiple of four.
// Pixel formats:
//   - Format16: RGB565, low byte first
//   - Format24: bytes R, G, B
//   - Format32: a pad byte followed by R, G, B
//
// Bytes, ScanLine and PixelAddr expose the memory directly for blitting.
//
// # Coordinate System
//
// The origin (0,0) is the top-left pixel; X grows right and Y grows down.
// Rect edges are inclusive, so RectWH(0, 0, 4, 4) is R(0, 0, 3, 3).
//
// # Clipping and state
//
// Every drawing operation writes only inside the current clip rectangle.
// PushClipRect and PopClipRect, PushPenColor and PopPenColor save and
// restore state in LIFO order. Drawing outside the clip rectangle is not an
// error; drawing on a canvas with no memory returns ErrInvalidState.
package pxl

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
