package matrix

// An Animation is a named, ordered run of frames.
type Animation struct {
	Name   string
	Frames []Frame
}

// NewAnimation creates an instance of an Animation object.
func NewAnimation(name string, frames []Frame) *Animation {
	a := new(Animation)
	a.Name = name
	a.Frames = frames
	return a
}

// Len is the number of frames in the animation.
func (a *Animation) Len() int {
	return len(a.Frames)
}
