package render

import (
	"fmt"
	"strings"

	"github.com/matt-g-everett/ledview/matrix"
)

// RenderFrame formats a single frame as a block of ASCII lines headed by
// label. Each LED occupies a three character cell so the glyphs line up
// under the two digit column numbers.
func RenderFrame(f *matrix.Frame, label string) (string, error) {
	if f == nil {
		return "", matrix.Fail(matrix.InvalidFrame, "nil frame").With("label", label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s (%dx%d LED Matrix) ===\n", label, matrix.Height, matrix.Width)
	fmt.Fprintf(&b, "Frame Index: %d\n", f.FrameNumber)
	b.WriteString(matrix.Legend)
	b.WriteString("\n\n")

	b.WriteString("    ")
	for col := 0; col < matrix.Width; col++ {
		fmt.Fprintf(&b, "%2d ", col)
	}
	b.WriteString("\n")

	for row := 0; row < matrix.Height; row++ {
		fmt.Fprintf(&b, "%2d: ", row)
		for col := 0; col < matrix.Width; col++ {
			brightness, err := f.At(col, row)
			if err != nil {
				return "", err
			}
			b.WriteByte(' ')
			b.WriteByte(matrix.Glyph(brightness))
			b.WriteByte(' ')
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n=== End of %s ===\n\n", label)
	return b.String(), nil
}
