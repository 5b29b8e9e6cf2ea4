package main

import (
	"context"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pxlforge/pxl"
)

func TestRunOnce(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scene.lua")
	out := filepath.Join(dir, "scene.png")
	code := `fill(0, 0, width() - 1, height() - 1, rgb(255, 0, 0))`
	if err := os.WriteFile(src, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	o := options{script: src, output: out, width: 8, height: 4, bits: 24, scale: 2}
	if err := run(context.Background(), o, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("image size = %v, want 16x8", b)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("pixel = (%d,%d,%d), want red", r, g, b)
	}
}

func TestRunScriptError(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(src, []byte(`line(`), 0o644); err != nil {
		t.Fatal(err)
	}
	o := options{script: src, width: 4, height: 4, bits: 32, scale: 1}
	if err := run(context.Background(), o, slog.New(slog.DiscardHandler)); err == nil {
		t.Error("run with a broken script succeeded")
	}
}

func TestRenderStartsFromCleanState(t *testing.T) {
	src := filepath.Join(t.TempDir(), "leaky.lua")
	code := `
fill(0, 0, width() - 1, height() - 1, rgb(0, 0, 255))
pixel(1, 1)
pen(rgb(255, 0, 0))
push_pen(rgb(0, 255, 0))
push_clip(0, 0, 0, 0)
`
	if err := os.WriteFile(src, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	c := pxl.NewCanvas()
	if err := c.Allocate(4, 3, pxl.Format32); err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	r := &renderer{canvas: c, opts: options{script: src}, log: slog.New(slog.DiscardHandler)}
	for run := 1; run <= 2; run++ {
		if err := r.render(); err != nil {
			t.Fatalf("render #%d: %v", run, err)
		}
		if got, _ := c.Pixel(3, 2); got != pxl.Blue {
			t.Errorf("render #%d: pixel (3,2) = %v, want %v", run, got, pxl.Blue)
		}
		if got, _ := c.Pixel(1, 1); got != pxl.Black {
			t.Errorf("render #%d: pixel (1,1) = %v, want %v", run, got, pxl.Black)
		}
	}
}
