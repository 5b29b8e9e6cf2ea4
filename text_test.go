package pxl

import (
	"image/color"
	"math"
	"testing"
)

func TestTextOut(t *testing.T) {
	c := newTestCanvas(t, 40, 16, Format32, WithPen(White))
	if err := c.TextOut(2, 10, "Hi"); err != nil {
		t.Fatal(err)
	}
	lit := litPixels(t, c, White)
	if len(lit) == 0 {
		t.Fatal("TextOut drew nothing")
	}
	maxX := 2 + c.TextWidth("Hi")
	for p := range lit {
		if p.X < 1 || p.X > maxX {
			t.Errorf("pixel %v outside the text advance (2..%d)", p, maxX)
		}
		if p.Y > 10+2 {
			t.Errorf("pixel %v far below the baseline", p)
		}
	}
}

func TestTextOutClipped(t *testing.T) {
	c := newTestCanvas(t, 40, 16, Format24)
	clip := R(0, 0, 4, 15)
	c.PushClipRect(clip)
	if err := c.TextOutColor(1, 10, "MMMM", Red); err != nil {
		t.Fatal(err)
	}
	for p := range litPixels(t, c, Red) {
		if !clip.Contains(p.X, p.Y) {
			t.Errorf("glyph pixel %v outside clip rectangle", p)
		}
	}
}

func TestTextOutOutsideCoordinateRange(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"x wraps onto canvas", 1<<16 + 2, 10},
		{"y wraps onto canvas", 2, 1<<16 + 10},
		{"negative x wraps", -(1 << 16) + 2, 10},
		{"just past int16", math.MaxInt16 + 1, 10},
		{"right of canvas", 200, 10},
		{"above canvas", 2, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 64, 16, Format32)
			if err := c.TextOutColor(tt.x, tt.y, "HI", White); err != nil {
				t.Fatal(err)
			}
			if n := len(litPixels(t, c, White)); n != 0 {
				t.Errorf("TextOutColor(%d, %d) lit %d pixels, want 0", tt.x, tt.y, n)
			}
		})
	}
}

func TestTextOutPartlyVisible(t *testing.T) {
	c := newTestCanvas(t, 64, 16, Format32)
	w := c.TextWidth("HIHI")
	if err := c.TextOutColor(-w/2, 10, "HIHI", White); err != nil {
		t.Fatal(err)
	}
	if len(litPixels(t, c, White)) == 0 {
		t.Error("text straddling the left edge drew nothing")
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"same", R(0, 0, 3, 3), R(0, 0, 3, 3), true},
		{"shared corner", R(0, 0, 3, 3), R(3, 3, 5, 5), true},
		{"disjoint x", R(0, 0, 3, 3), R(4, 0, 5, 3), false},
		{"disjoint y", R(0, 0, 3, 3), R(0, 4, 3, 5), false},
		{"contained", R(0, 0, 9, 9), R(2, 2, 3, 3), true},
		{"empty", EmptyRect, R(-1, -1, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestDisplayerSizeSaturates(t *testing.T) {
	c := newTestCanvas(t, math.MaxInt16+10, 1, Format16)
	if w, h := c.Displayer().Size(); w != math.MaxInt16 || h != 1 {
		t.Errorf("Size() = %d,%d, want %d,1", w, h, math.MaxInt16)
	}
}

func TestTextOutEmptyString(t *testing.T) {
	c := newTestCanvas(t, 8, 8, Format32)
	if err := c.TextOutColor(0, 7, "", White); err != nil {
		t.Fatal(err)
	}
	if n := len(litPixels(t, c, White)); n != 0 {
		t.Errorf("empty string lit %d pixels", n)
	}
}

func TestTextWidth(t *testing.T) {
	c := NewCanvas()
	a := c.TextWidth("A")
	ab := c.TextWidth("AB")
	if a <= 0 || ab <= a {
		t.Errorf("TextWidth(A) = %d, TextWidth(AB) = %d", a, ab)
	}
	if c.TextWidth("e\u0301") != c.TextWidth("\u00e9") {
		t.Error("decomposed and precomposed strings measure differently")
	}
}

func TestDisplayer(t *testing.T) {
	c := newTestCanvas(t, 6, 4, Format16)
	d := c.Displayer()
	if w, h := d.Size(); w != 6 || h != 4 {
		t.Errorf("Size() = %d,%d, want 6,4", w, h)
	}
	d.SetPixel(2, 1, color.RGBA{R: 255, A: 255})
	wantPixel(t, c, 2, 1, Red)

	c.PushClipRect(R(0, 0, 1, 1))
	d.SetPixel(3, 3, color.RGBA{G: 255, A: 255})
	wantPixel(t, c, 3, 3, Black)
	if err := d.Display(); err != nil {
		t.Errorf("Display() = %v", err)
	}

	empty := NewCanvas().Displayer()
	empty.SetPixel(0, 0, color.RGBA{A: 255})
	if w, h := empty.Size(); w != 0 || h != 0 {
		t.Errorf("empty Size() = %d,%d", w, h)
	}
}
