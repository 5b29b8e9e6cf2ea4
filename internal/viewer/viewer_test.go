//go:build !noebiten

package viewer

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewClampsScale(t *testing.T) {
	v := New(Config{Title: "t", Scale: 0}, 4, 3)
	if v.config.Scale != 1 {
		t.Errorf("Scale = %d, want 1", v.config.Scale)
	}
	if w, h := v.Layout(800, 600); w != 4 || h != 3 {
		t.Errorf("Layout() = %d,%d, want 4,3", w, h)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "pxl" || cfg.Scale != 2 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestSetFrameCopies(t *testing.T) {
	v := New(DefaultConfig(), 2, 2)
	v.dirty = false

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(1, 1, color.RGBA{R: 255, A: 255})
	v.SetFrame(src)
	src.Set(1, 1, color.RGBA{G: 255, A: 255})

	if !v.dirty {
		t.Error("SetFrame did not mark the frame dirty")
	}
	if got := v.frame.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("frame pixel = %v, want red copy", got)
	}
}

func TestUpdateTerminatesOnCancel(t *testing.T) {
	v := New(DefaultConfig(), 1, 1)
	if err := v.Update(); err != nil {
		t.Errorf("Update() without context = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	v.ctx = ctx
	if err := v.Update(); err != nil {
		t.Errorf("Update() = %v before cancel", err)
	}
	cancel()
	if err := v.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v after cancel, want ebiten.Termination", err)
	}
}
