package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output file format.
type Format string

const (
	PNG     Format = "png"
	WebP    Format = "webp"
	TGA     Format = "tga"
	BMP     Format = "bmp"
	TIFF    Format = "tiff"
	PPM     Format = "ppm"
	PPMZstd Format = "ppm.zst"
)

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{PNG, WebP, TGA, BMP, TIFF, PPM, PPMZstd}
}

// FormatFor picks the format from a file name's extension.
func FormatFor(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".ppm.zst") {
		return PPMZstd, nil
	}
	switch filepath.Ext(name) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".ppm":
		return PPM, nil
	}
	return "", fmt.Errorf("output: %w: %s", ErrUnknownFormat, path)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PPM:
		err = EncodePPM(w, img)
	case PPMZstd:
		err = EncodePPMZstd(w, img)
	default:
		return fmt.Errorf("output: %w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("output: %s encode: %w", format, err)
	}
	return nil
}

// Save encodes img into path, creating parent directories as needed.
func Save(path string, img image.Image) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	return nil
}

// ThumbnailPath derives "<name>_thumb.<ext>" from an output path.
func ThumbnailPath(path string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if strings.HasSuffix(strings.ToLower(base), ".ppm.zst") {
		ext = base[len(base)-len(".ppm.zst"):]
	}
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"_thumb"+ext)
}
