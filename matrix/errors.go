package matrix

import (
	goerrors "errors"

	"github.com/karlmutch/errors"
)

// Kind classifies the failures that can reach the command line.
type Kind string

const (
	// BadArguments means the wrong number of positional tokens was given.
	BadArguments Kind = "bad arguments"
	// UnknownAnimation means a name is absent from the registry.
	UnknownAnimation Kind = "unknown animation"
	// InvalidCount means a frame count is below one or larger than the
	// animation it refers to.
	InvalidCount Kind = "invalid count"
	// InvalidFrame signals malformed frame data or an out of range read.
	// Well-formed tables never produce it.
	InvalidFrame Kind = "invalid frame"
	// DuplicateAnimation means two registry entries share a name.
	DuplicateAnimation Kind = "duplicate animation"
)

// Failure is a classified error. Err carries the message along with any
// key/value context attached while the failure travelled up.
type Failure struct {
	Kind Kind
	Err  errors.Error
}

// Fail creates a new Failure of the given kind.
func Fail(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Err: errors.New(msg)}
}

// Wrap classifies an existing error, keeping it as the cause.
func Wrap(kind Kind, err error, msg ...string) *Failure {
	if err == nil {
		return nil
	}
	return &Failure{Kind: kind, Err: errors.Wrap(err, msg...)}
}

// With returns a copy of the failure with extra key/value context.
func (f *Failure) With(keyvals ...interface{}) *Failure {
	return &Failure{Kind: f.Kind, Err: f.Err.With(keyvals...)}
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf returns the kind of the first Failure in err's chain, or an empty
// Kind when err was never classified.
func KindOf(err error) Kind {
	var f *Failure
	if goerrors.As(err, &f) {
		return f.Kind
	}
	return ""
}
