// Package glbackend implements graphics.Backend on top of go-gl.
// All methods must be called from the thread that owns the current context.
package glbackend

import (
	"strings"

	"glquad/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend forwards to the OpenGL 4.1 core bindings
type Backend struct{}

var _ graphics.Backend = (*Backend)(nil)

// New loads the GL function pointers for the context current on this thread
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Backend{}, nil
}

func (*Backend) GetError() uint32 { return gl.GetError() }

func (*Backend) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (*Backend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Backend) DeleteBuffer(id uint32)       { gl.DeleteBuffers(1, &id) }
func (*Backend) BindBuffer(target, id uint32) { gl.BindBuffer(target, id) }

func (*Backend) BufferData(target uint32, size int, data any, usage uint32) {
	if size == 0 {
		// gl.Ptr panics on an empty slice
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, size, gl.Ptr(data), usage)
}

func (*Backend) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Backend) DeleteVertexArray(id uint32)         { gl.DeleteVertexArrays(1, &id) }
func (*Backend) BindVertexArray(id uint32)           { gl.BindVertexArray(id) }
func (*Backend) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*Backend) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (*Backend) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (*Backend) CompileShader(id uint32) { gl.CompileShader(id) }

func (*Backend) GetShaderiv(id, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(id, pname, &v)
	return v
}

func (*Backend) GetShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Backend) DeleteShader(id uint32)              { gl.DeleteShader(id) }
func (*Backend) CreateProgram() uint32               { return gl.CreateProgram() }
func (*Backend) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*Backend) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (*Backend) ValidateProgram(program uint32)      { gl.ValidateProgram(program) }

func (*Backend) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*Backend) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*Backend) UseProgram(program uint32)    { gl.UseProgram(program) }
func (*Backend) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*Backend) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Backend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (*Backend) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (*Backend) Clear(mask uint32)             { gl.Clear(mask) }

func (*Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}
