package graphics

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
)

// ErrGL is wrapped by every error Check reports.
var ErrGL = errors.New("opengl error")

// Bounds the drain loops; a lost context can report errors forever.
const maxPendingErrors = 32

// Context pairs a Backend with the post-call error check every wrapper
// in this package runs after talking to the GPU.
type Context struct {
	Backend

	// DebugBreak panics on the first reported error instead of only logging it.
	DebugBreak bool

	reported int
}

// NewContext wraps b
func NewContext(b Backend, debugBreak bool) *Context {
	return &Context{Backend: b, DebugBreak: debugBreak}
}

// Version returns the GL_VERSION string of the current context
func (c *Context) Version() string {
	return c.GetString(VERSION)
}

// ClearErrors discards errors raised before the call about to be checked
func (c *Context) ClearErrors() {
	for i := 0; i < maxPendingErrors && c.GetError() != NO_ERROR; i++ {
	}
}

// Check drains pending GL errors, logs each one with the label and the
// calling site, and returns the first as an ErrGL.
func (c *Context) Check(label string) error {
	return c.check(label, 2)
}

// Call runs fn between ClearErrors and Check
func (c *Context) Call(label string, fn func()) error {
	c.ClearErrors()
	fn()
	return c.check(label, 2)
}

// Reported returns how many GL errors have been logged so far
func (c *Context) Reported() int {
	return c.reported
}

func (c *Context) check(label string, skip int) error {
	var first uint32
	for i := 0; i < maxPendingErrors; i++ {
		code := c.GetError()
		if code == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = code
		}
		c.reported++
		_, file, line, _ := runtime.Caller(skip)
		log.Printf("OpenGL Error: (0x%x) %s\nFUNCTION: %s\nFILE: %s\nLINE: %d",
			code, errorName(code), label, filepath.Base(file), line)
	}
	if first == NO_ERROR {
		return nil
	}
	err := fmt.Errorf("%w 0x%x in %s", ErrGL, first, label)
	if c.DebugBreak {
		panic(err)
	}
	return err
}

func errorName(code uint32) string {
	switch code {
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	}
	return "unknown"
}
