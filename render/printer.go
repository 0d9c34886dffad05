package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/karlmutch/errors"

	"github.com/matt-g-everett/ledview/matrix"
)

const ruleWidth = 40

// Printer writes rendered frames to a text stream.
type Printer struct {
	w io.Writer
}

// NewPrinter creates an instance of a Printer.
func NewPrinter(w io.Writer) *Printer {
	p := new(Printer)
	p.w = w
	return p
}

// PrintFrame renders one frame and writes it out.
func (p *Printer) PrintFrame(f *matrix.Frame, label string) error {
	text, err := RenderFrame(f, label)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, text); err != nil {
		return errors.Wrap(err, "writing frame").With("label", label)
	}
	return nil
}

// PrintAnimation writes a banner followed by the first count frames, each
// labelled with the animation name and its index. count is checked before
// anything is written.
func (p *Printer) PrintAnimation(frames []matrix.Frame, count int, name string) error {
	if count < 1 {
		return matrix.Fail(matrix.InvalidCount, "frame count must be at least one").
			With("animation", name).With("count", count)
	}
	if count > len(frames) {
		return matrix.Fail(matrix.InvalidCount, "frame count exceeds animation length").
			With("animation", name).With("count", count).With("length", len(frames))
	}

	banner := fmt.Sprintf("Testing %s Animation Frames Display\n%s\n", name, strings.Repeat("=", ruleWidth))
	if _, err := io.WriteString(p.w, banner); err != nil {
		return errors.Wrap(err, "writing banner").With("animation", name)
	}

	for i := 0; i < count; i++ {
		if err := p.PrintFrame(&frames[i], fmt.Sprintf("%s Frame %d", name, i)); err != nil {
			return err
		}
	}
	return nil
}
