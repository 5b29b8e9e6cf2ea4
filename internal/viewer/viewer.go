// Package viewer shows canvas frames in a desktop window.
package viewer

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config configures the viewer window.
type Config struct {
	Title string
	Scale int // window pixels per canvas pixel, at least 1
}

// DefaultConfig returns a window titled "pxl" at scale 2.
func DefaultConfig() Config {
	return Config{Title: "pxl", Scale: 2}
}

// Viewer implements ebiten.Game and displays the most recent frame.
// SetFrame may be called from any goroutine while Run is active.
type Viewer struct {
	config Config
	width  int
	height int

	mu    sync.Mutex
	frame *image.RGBA
	dirty bool
	image *ebiten.Image
	ctx   context.Context
}

// New creates a viewer for frames of width x height pixels.
func New(config Config, width, height int) *Viewer {
	if config.Scale < 1 {
		config.Scale = 1
	}
	return &Viewer{
		config: config,
		width:  width,
		height: height,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		dirty:  true,
	}
}

// SetFrame copies img into the viewer. It is drawn on the next frame.
func (v *Viewer) SetFrame(img image.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()
	draw.Draw(v.frame, v.frame.Bounds(), img, img.Bounds().Min, draw.Src)
	v.dirty = true
}

// Update implements ebiten.Game.Update. It ends the game once the
// context passed to Run is done.
func (v *Viewer) Update() error {
	v.mu.Lock()
	ctx := v.ctx
	v.mu.Unlock()
	if ctx != nil {
		select {
		case <-ctx.Done():
			return ebiten.Termination
		default:
		}
	}
	return nil
}

// Draw implements ebiten.Game.Draw.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	if v.dirty || v.image == nil {
		if v.image == nil {
			v.image = ebiten.NewImage(v.width, v.height)
		}
		v.image.WritePixels(v.frame.Pix)
		v.dirty = false
	}
	img := v.image
	v.mu.Unlock()

	screen.DrawImage(img, nil)
}

// Layout implements ebiten.Game.Layout. The logical screen is the frame size;
// ebiten scales it to the window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

// Run opens the window and blocks until it is closed or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	v.mu.Lock()
	v.ctx = ctx
	v.mu.Unlock()

	ebiten.SetWindowSize(v.width*v.config.Scale, v.height*v.config.Scale)
	ebiten.SetWindowTitle(v.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
