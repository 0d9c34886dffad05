package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"

	log "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledview/matrix"
	"github.com/matt-g-everett/ledview/registry"
	"github.com/matt-g-everett/ledview/render"
)

var logger = log.NewLogger(log.NewConcurrentWriter(os.Stderr), "ledview")

type app struct {
	Registry *registry.Registry
	Stdout   io.Writer
	Stderr   io.Writer
}

func newApp(r *registry.Registry, stdout io.Writer, stderr io.Writer) *app {
	a := new(app)
	a.Registry = r
	a.Stdout = stdout
	a.Stderr = stderr
	return a
}

func (a *app) usage() {
	fmt.Fprintln(a.Stderr, "usage: ", path.Base(os.Args[0]), "<animation_name> [<display_label>]")
	fmt.Fprintln(a.Stderr, "")
	fmt.Fprintln(a.Stderr, "Prints every frame of a built-in 11x18 LED matrix animation as ASCII art.")
	fmt.Fprintln(a.Stderr, "")
	fmt.Fprintln(a.Stderr, "Available animations:")
	for _, name := range a.Registry.Names() {
		fmt.Fprintln(a.Stderr, "  ", name)
	}
}

// selectAndRender looks up the animation named by args and prints all of
// its frames. Output is buffered so that a failure leaves stdout untouched.
func (a *app) selectAndRender(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return matrix.Fail(matrix.BadArguments, "expected an animation name and an optional label").
			With("count", len(args))
	}

	name := args[0]
	label := name
	if len(args) == 2 {
		label = args[1]
	}

	animation, err := a.Registry.Lookup(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.NewPrinter(&buf).PrintAnimation(animation.Frames, animation.Len(), label); err != nil {
		return err
	}

	_, err = buf.WriteTo(a.Stdout)
	return err
}

// run returns the process exit status.
func (a *app) run(args []string) int {
	err := a.selectAndRender(args)
	if err == nil {
		return 0
	}

	logger.Debug("selection failed", "args", args, "err", err)

	switch matrix.KindOf(err) {
	case matrix.BadArguments:
		a.usage()
	case matrix.UnknownAnimation:
		fmt.Fprintf(a.Stderr, "Error: Unknown struct name '%s'\n", args[0])
		a.usage()
	default:
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
	}
	return 1
}

func main() {
	r, err := registry.Load()
	if err != nil {
		logger.Error("animation catalog is unusable", "err", err)
		os.Exit(1)
	}

	a := newApp(r, os.Stdout, os.Stderr)
	os.Exit(a.run(os.Args[1:]))
}
