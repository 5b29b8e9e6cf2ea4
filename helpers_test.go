package pxl

import (
	"errors"
	"testing"
)

// newTestCanvas allocates a canvas and releases it when the test ends.
func newTestCanvas(t *testing.T, width, height int, format PixelFormat, opts ...CanvasOption) *Canvas {
	t.Helper()
	c := NewCanvas(opts...)
	if err := c.Allocate(width, height, format); err != nil {
		t.Fatalf("Allocate(%d, %d, %v) = %v", width, height, format, err)
	}
	t.Cleanup(func() { _ = c.Release() })
	return c
}

// litPixels returns every position in the canvas bounds holding col.
func litPixels(t *testing.T, c *Canvas, col Color) map[Point]bool {
	t.Helper()
	lit := make(map[Point]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			got, err := c.Pixel(x, y)
			if err != nil {
				t.Fatalf("Pixel(%d, %d) = %v", x, y, err)
			}
			if got == col {
				lit[Pt(x, y)] = true
			}
		}
	}
	return lit
}

// wantPixel fails the test if (x, y) does not hold want.
func wantPixel(t *testing.T, c *Canvas, x, y int, want Color) {
	t.Helper()
	got, err := c.Pixel(x, y)
	if err != nil {
		t.Fatalf("Pixel(%d, %d) = %v", x, y, err)
	}
	if got != want {
		t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
	}
}

var errBoom = errors.New("boom")

// stubAllocator fails Alloc or Free on request and counts calls.
type stubAllocator struct {
	failAlloc bool
	failFree  bool
	short     bool
	extra     int // bytes handed out beyond the requested size
	allocs    int
	frees     int
	freed     []byte
}

func (a *stubAllocator) Alloc(size int) ([]byte, error) {
	a.allocs++
	if a.failAlloc {
		return nil, errBoom
	}
	if a.short {
		return make([]byte, size/2), nil
	}
	return make([]byte, size+a.extra), nil
}

func (a *stubAllocator) Free(block []byte) error {
	a.frees++
	a.freed = block
	if a.failFree {
		return errBoom
	}
	return nil
}
