package pxl

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func paintedCanvas(t *testing.T, format PixelFormat) *Canvas {
	t.Helper()
	c := newTestCanvas(t, 4, 3, format)
	if err := c.ClearColor(Blue); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixelColor(1, 2, Red); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixelColor(3, 0, White); err != nil {
		t.Fatal(err)
	}
	return c
}

func sameRGBA(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestExportRGBA(t *testing.T) {
	for _, f := range []PixelFormat{Format16, Format24, Format32} {
		t.Run(f.String(), func(t *testing.T) {
			c := paintedCanvas(t, f)
			img, err := c.Export(RGBAExporter{})
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds() != image.Rect(0, 0, 4, 3) {
				t.Fatalf("Bounds() = %v", img.Bounds())
			}
			checks := map[image.Point]color.RGBA{
				{1, 2}: {R: 255, A: 255},
				{3, 0}: {R: 255, G: 255, B: 255, A: 255},
				{0, 0}: {B: 255, A: 255},
			}
			for p, want := range checks {
				if got := img.At(p.X, p.Y); !sameRGBA(got, want) {
					t.Errorf("At(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestExportNilUsesRGBA(t *testing.T) {
	c := paintedCanvas(t, Format32)
	img, err := c.Export(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := img.(*image.RGBA); !ok {
		t.Errorf("Export(nil) = %T, want *image.RGBA", img)
	}
}

func TestScaledExporter(t *testing.T) {
	c := paintedCanvas(t, Format24)
	img, err := c.Export(ScaledExporter{Scale: 3})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 12, 9) {
		t.Fatalf("Bounds() = %v, want 12x9", img.Bounds())
	}
	red := color.RGBA{R: 255, A: 255}
	for y := 6; y < 9; y++ {
		for x := 3; x < 6; x++ {
			if got := img.At(x, y); !sameRGBA(got, red) {
				t.Errorf("At(%d,%d) = %v, want red block", x, y, got)
			}
		}
	}

	same, err := c.Export(ScaledExporter{Scale: 0})
	if err != nil {
		t.Fatal(err)
	}
	if same.Bounds().Dx() != 4 {
		t.Errorf("Scale 0 width = %d, want 4", same.Bounds().Dx())
	}
}

func TestExporterRejectsBadLayout(t *testing.T) {
	buf := make([]byte, 16)
	tests := []struct {
		name                  string
		width, height, stride int
		format                PixelFormat
	}{
		{"short buffer", 4, 2, 16, Format32},
		{"stride too small", 4, 1, 8, Format32},
		{"zero width", 0, 1, 16, Format32},
		{"no format", 2, 2, 8, FormatNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RGBAExporter{}.Export(buf, tt.width, tt.height, tt.stride, tt.format)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Export = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	c := paintedCanvas(t, Format32)
	img, err := c.Export(nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, ImagePNG); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !sameRGBA(decoded.At(1, 2), color.RGBA{R: 255, A: 255}) {
		t.Errorf("decoded At(1,2) = %v, want red", decoded.At(1, 2))
	}

	if err := Encode(&buf, img, ImageKind(42)); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Encode(unknown kind) = %v, want ErrUnsupportedImage", err)
	}
}

func TestSaveImage(t *testing.T) {
	c := paintedCanvas(t, Format24)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := c.Save(path); err != nil {
				t.Fatalf("Save(%s) = %v", name, err)
			}
			info, err := os.Stat(path)
			if err != nil || info.Size() == 0 {
				t.Fatalf("file %s missing or empty: %v", name, err)
			}
		})
	}

	decoders := map[string]func(*os.File) (image.Image, error){
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for name, decode := range decoders {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if !sameRGBA(img.At(3, 0), color.White) {
			t.Errorf("%s At(3,0) = %v, want white", name, img.At(3, 0))
		}
	}

	if err := c.Save(filepath.Join(dir, "out.gif")); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Save(.gif) = %v, want ErrUnsupportedImage", err)
	}
}

func TestKindFromPath(t *testing.T) {
	tests := map[string]ImageKind{
		"a.png":      ImagePNG,
		"b.JPG":      ImageJPEG,
		"c.jpeg":     ImageJPEG,
		"d.bmp":      ImageBMP,
		"dir/e.tif":  ImageTIFF,
		"dir/f.TIFF": ImageTIFF,
	}
	for path, want := range tests {
		got, err := KindFromPath(path)
		if err != nil || got != want {
			t.Errorf("KindFromPath(%q) = %v, %v, want %v", path, got, err, want)
		}
	}
	if _, err := KindFromPath("noext"); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("KindFromPath(noext) = %v", err)
	}
}
