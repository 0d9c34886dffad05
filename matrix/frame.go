package matrix

import (
	"github.com/go-stack/stack"
)

const (
	// Width is the number of LED columns on the matrix.
	Width = 18
	// Height is the number of LED rows on the matrix.
	Height = 11
	// NumPixels is the number of brightness samples held by a Frame.
	NumPixels = Width * Height
)

// Index converts a column/row pair to an offset into Frame.Brightness.
func Index(x, y int) int {
	return y*Width + x
}

// Contains reports whether x, y addresses an LED on the matrix.
func Contains(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Frame represents one snapshot of per-LED brightness on the 11x18 matrix.
type Frame struct {
	// Brightness is stored row-major, row 0 at the top and column 0 at the left.
	Brightness [NumPixels]uint8
	// FrameNumber is the position of this frame within its animation.
	FrameNumber uint8
	// NumPixels counts the lit LEDs as recorded by the table author. The
	// renderer never reads it.
	NumPixels uint8
}

// NewFrame creates a new, fully dark Frame instance.
func NewFrame(frameNumber uint8) *Frame {
	f := new(Frame)
	f.FrameNumber = frameNumber
	return f
}

// At returns the brightness of the LED at column x, row y.
func (f *Frame) At(x, y int) (uint8, error) {
	if f == nil {
		return 0, Fail(InvalidFrame, "nil frame").With("stack", stack.Trace().TrimRuntime())
	}
	if !Contains(x, y) {
		return 0, Fail(InvalidFrame, "coordinate outside the matrix").
			With("x", x).With("y", y).With("stack", stack.Trace().TrimRuntime())
	}
	return f.Brightness[Index(x, y)], nil
}

// Set stores the brightness of the LED at column x, row y.
func (f *Frame) Set(x, y int, brightness uint8) error {
	if !Contains(x, y) {
		return Fail(InvalidFrame, "coordinate outside the matrix").
			With("x", x).With("y", y).With("stack", stack.Trace().TrimRuntime())
	}
	f.Brightness[Index(x, y)] = brightness
	return nil
}
