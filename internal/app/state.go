package app

// State is a step of the application lifecycle. States only move forward.
type State int

const (
	Uninitialized State = iota
	WindowReady
	ContextReady
	GeometryUploaded
	ShaderLinked
	Rendering
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case WindowReady:
		return "window-ready"
	case ContextReady:
		return "context-ready"
	case GeometryUploaded:
		return "geometry-uploaded"
	case ShaderLinked:
		return "shader-linked"
	case Rendering:
		return "rendering"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
