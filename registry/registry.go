package registry

import (
	"os"
	"sort"

	"github.com/go-stack/stack"
	log "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledview/matrix"
)

var logger = log.NewLogger(log.NewConcurrentWriter(os.Stderr), "registry")

// Registry maps animation names to their frames. It is read-only once built.
type Registry struct {
	animations map[string]*matrix.Animation
	names      []string
}

// New builds a registry from the given animations. Two animations with the
// same name are rejected rather than one silently shadowing the other.
func New(animations ...*matrix.Animation) (*Registry, error) {
	r := new(Registry)
	r.animations = make(map[string]*matrix.Animation, len(animations))
	r.names = make([]string, 0, len(animations))

	for i, a := range animations {
		if a == nil || a.Name == "" {
			return nil, matrix.Fail(matrix.InvalidFrame, "registry entry has no name").
				With("entry", i).With("stack", stack.Trace().TrimRuntime())
		}
		if a.Len() < 1 {
			return nil, matrix.Fail(matrix.InvalidCount, "animation has no frames").With("animation", a.Name)
		}
		if _, found := r.animations[a.Name]; found {
			return nil, matrix.Fail(matrix.DuplicateAnimation, "animation registered twice").With("animation", a.Name)
		}
		r.animations[a.Name] = a
		r.names = append(r.names, a.Name)
	}
	sort.Strings(r.names)

	return r, nil
}

// Lookup finds an animation by exact name.
func (r *Registry) Lookup(name string) (*matrix.Animation, error) {
	a, found := r.animations[name]
	if !found {
		return nil, matrix.Fail(matrix.UnknownAnimation, "unknown animation").With("name", name)
	}
	return a, nil
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len is the number of registered animations.
func (r *Registry) Len() int {
	return len(r.names)
}
