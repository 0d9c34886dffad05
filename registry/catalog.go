package registry

import (
	"embed"
	"io"
	"path"
	"sort"

	"github.com/karlmutch/errors"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledview/matrix"
)

//go:embed animations/*.yaml
var catalog embed.FS

const catalogDir = "animations"

// Decode reads one catalog document and converts it to an Animation.
func Decode(r io.Reader) (*matrix.Animation, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, matrix.Wrap(matrix.InvalidFrame, err, "decoding animation")
	}
	return doc.Animation()
}

// Animation validates the document and builds the frames it describes.
func (d *Document) Animation() (*matrix.Animation, error) {
	if d.Name == "" {
		return nil, matrix.Fail(matrix.InvalidFrame, "animation has no name")
	}
	if len(d.Frames) == 0 {
		return nil, matrix.Fail(matrix.InvalidCount, "animation has no frames").With("animation", d.Name)
	}

	frames := make([]matrix.Frame, len(d.Frames))
	for i, spec := range d.Frames {
		if spec.FrameNumber < 0 || spec.FrameNumber > 255 {
			return nil, matrix.Fail(matrix.InvalidFrame, "frame number does not fit in 8 bits").
				With("animation", d.Name).With("frame", i).With("frame_number", spec.FrameNumber)
		}
		if spec.NumPixels < 0 || spec.NumPixels > 255 {
			return nil, matrix.Fail(matrix.InvalidFrame, "pixel count does not fit in 8 bits").
				With("animation", d.Name).With("frame", i).With("num_pixels", spec.NumPixels)
		}

		f := &frames[i]
		f.FrameNumber = uint8(spec.FrameNumber)
		f.NumPixels = uint8(spec.NumPixels)

		for _, p := range spec.Pixels {
			if len(p) != 3 {
				return nil, matrix.Fail(matrix.InvalidFrame, "pixel must be [row, column, brightness]").
					With("animation", d.Name).With("frame", i).With("pixel", p)
			}
			row, col, brightness := p[0], p[1], p[2]
			if brightness < 0 || brightness > 255 {
				return nil, matrix.Fail(matrix.InvalidFrame, "brightness out of range").
					With("animation", d.Name).With("frame", i).With("pixel", p)
			}
			// Later entries overwrite earlier ones for the same LED.
			if err := f.Set(col, row, uint8(brightness)); err != nil {
				return nil, matrix.Wrap(matrix.InvalidFrame, err).With("animation", d.Name).With("frame", i)
			}
		}

		stats := f.Stats()
		if stats.Active != spec.NumPixels {
			logger.Warn("num_pixels disagrees with lit LEDs", "animation", d.Name, "frame", i,
				"num_pixels", spec.NumPixels, "active", stats.Active)
		}
	}

	a := matrix.NewAnimation(d.Name, frames)
	if logger.IsDebug() {
		active := 0
		for i := range a.Frames {
			active += a.Frames[i].Stats().Active
		}
		logger.Debug("decoded animation", "animation", a.Name, "frames", a.Len(), "active", active)
	}
	return a, nil
}

// Load decodes every document in the embedded catalog and builds the
// registry from them.
func Load() (*Registry, error) {
	entries, err := catalog.ReadDir(catalogDir)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalog")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	animations := make([]*matrix.Animation, 0, len(names))
	for _, name := range names {
		f, err := catalog.Open(path.Join(catalogDir, name))
		if err != nil {
			return nil, errors.Wrap(err, "opening catalog entry").With("file", name)
		}
		a, err := Decode(f)
		f.Close()
		if err != nil {
			kind := matrix.KindOf(err)
			if kind == "" {
				kind = matrix.InvalidFrame
			}
			return nil, matrix.Wrap(kind, err).With("file", name)
		}
		animations = append(animations, a)
	}

	return New(animations...)
}
