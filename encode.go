package pxl

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedImage is returned when an image kind or file extension is not supported.
var ErrUnsupportedImage = errors.New("pxl: unsupported image format")

// ImageKind is a file format Encode can write.
type ImageKind uint8

// Supported image kinds.
const (
	ImagePNG ImageKind = iota
	ImageJPEG
	ImageBMP
	ImageTIFF
)

// String returns the kind name.
func (k ImageKind) String() string {
	switch k {
	case ImagePNG:
		return "png"
	case ImageJPEG:
		return "jpeg"
	case ImageBMP:
		return "bmp"
	case ImageTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// KindFromPath picks the image kind from the extension of path.
func KindFromPath(path string) (ImageKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ImagePNG, nil
	case ".jpg", ".jpeg":
		return ImageJPEG, nil
	case ".bmp":
		return ImageBMP, nil
	case ".tif", ".tiff":
		return ImageTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedImage, filepath.Ext(path))
	}
}

// Encode writes img to w in the given format. JPEG uses quality 95.
func Encode(w io.Writer, img image.Image, kind ImageKind) error {
	var err error
	switch kind {
	case ImagePNG:
		err = png.Encode(w, img)
	case ImageJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ImageBMP:
		err = bmp.Encode(w, img)
	case ImageTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: kind %d", ErrUnsupportedImage, kind)
	}
	if err != nil {
		return fmt.Errorf("pxl: encode %s: %w", kind, err)
	}
	return nil
}

// SaveImage writes img to path, choosing the format from the extension.
func SaveImage(path string, img image.Image) error {
	kind, err := KindFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pxl: create file: %w", err)
	}
	if err := Encode(f, img, kind); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Save exports the canvas with RGBAExporter and writes it to path.
func (c *Canvas) Save(path string) error {
	img, err := c.Export(nil)
	if err != nil {
		return err
	}
	return SaveImage(path, img)
}
