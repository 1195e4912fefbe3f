// Package loop runs an ordered list of systems once per frame and keeps
// timing statistics for each of them.
package loop

// System is one step of a frame. Systems keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Named lets a system report a name other than its type name in stats.
type Named interface {
	Name() string
}

// SystemFunc adapts a function to a System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
