package render

// Pixel is an 8-bit RGB triplet.
type Pixel [3]uint8

// Frame is the render target: Width*Height pixels, row-major, top row first.
type Frame struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewFrame allocates a zeroed (black) frame.
func NewFrame(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]Pixel, w*h),
	}
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) Pixel {
	return f.Pix[y*f.Width+x]
}

// rows returns the sub-slice holding rows [start, start+n).
func (f *Frame) rows(start, n int) []Pixel {
	return f.Pix[start*f.Width : (start+n)*f.Width]
}

// clamp255 clamps v to [0,255] and truncates toward zero. NaN maps to 0.
func clamp255(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
