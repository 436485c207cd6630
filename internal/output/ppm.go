package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zstd"
)

// EncodePPM writes a binary (P6) portable pixmap. Alpha is dropped.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	row := make([]byte, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if n, ok := img.(*image.NRGBA); ok {
			off := n.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				copy(row[x*3:x*3+3], n.Pix[off+x*4:off+x*4+3])
			}
		} else {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, y)).(color.NRGBA)
				row[x*3], row[x*3+1], row[x*3+2] = c.R, c.G, c.B
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodePPMZstd writes a P6 pixmap wrapped in a zstd frame.
func EncodePPMZstd(w io.Writer, img image.Image) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if err := EncodePPM(enc, img); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
