// Package window owns the GLFW window and its OpenGL context.
// GLFW requires every call here to happen on the main thread.
package window

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrCreate is wrapped when GLFW cannot be initialised or the window cannot be created.
var ErrCreate = errors.New("window creation failed")

// Options describes the window and the context requested for it
type Options struct {
	Width, Height int
	Title         string
	ContextMajor  int
	ContextMinor  int
	Samples       int
	// SwapInterval 1 syncs buffer swaps to the refresh rate, 0 disables vsync.
	SwapInterval int
}

// Window is a GLFW window whose context is current on the calling thread
type Window struct {
	win    *glfw.Window
	closed bool
}

// Open initialises GLFW, creates the window and makes its context current.
// On failure GLFW is terminated again.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %w", ErrCreate, err)
	}

	glfw.WindowHint(glfw.Samples, opts.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.ContextMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	// Keep a short escape press visible to the next poll
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)

	return &Window{win: win}, nil
}

// ShouldClose reports whether the user asked the window to close
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// EscapeHeld reports whether the escape key is down (or was pressed since the last poll)
func (w *Window) EscapeHeld() bool {
	return w.win.GetKey(glfw.KeyEscape) == glfw.Press
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW. It is safe to call twice.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}
