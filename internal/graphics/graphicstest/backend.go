// Package graphicstest provides a recording graphics.Backend for tests
// that have no GL context.
package graphicstest

import (
	"fmt"
	"strings"

	"glquad/internal/graphics"
)

// Call is one recorded backend invocation
type Call struct {
	Name string
	Args []any
}

// Draw records a DrawElements call together with the state bound at the time
type Draw struct {
	Mode        uint32
	Count       int32
	Type        uint32
	Program     uint32
	VertexArray uint32
	IndexBuffer uint32
}

type shaderObject struct {
	kind     uint32
	source   string
	compiled bool
}

type programObject struct {
	attached []uint32
	linked   bool
	valid    bool
}

// Backend is an in-memory graphics.Backend. Object names come from a single
// counter and are never reused, so leaks show up in the Live* counts.
type Backend struct {
	// CompileFails decides whether a shader fails to compile. When nil, a
	// source fails if it lacks "void main" or contains "syntax error".
	CompileFails func(kind uint32, source string) bool
	// LinkFails forces every link to fail.
	LinkFails bool
	// Uniforms lists the active uniforms of every linked program; the
	// location of a name is its index.
	Uniforms []string
	// Version is returned for GL_VERSION.
	Version string

	Calls   []Call
	Draws   []Draw
	Pending []uint32

	nextID       uint32
	buffers      map[uint32]int
	vertexArrays map[uint32]bool
	shaders      map[uint32]*shaderObject
	programs     map[uint32]*programObject
	bound        map[uint32]uint32
	boundVAO     uint32
	program      uint32
	uniformVals  map[int32][]float32
	generated    int
}

var _ graphics.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		Uniforms:     []string{"u_Color"},
		Version:      "4.1 graphicstest",
		buffers:      make(map[uint32]int),
		vertexArrays: make(map[uint32]bool),
		shaders:      make(map[uint32]*shaderObject),
		programs:     make(map[uint32]*programObject),
		bound:        make(map[uint32]uint32),
		uniformVals:  make(map[int32][]float32),
	}
}

// Fail queues a GL error code to be returned by the next GetError calls
func (b *Backend) Fail(code uint32) {
	b.Pending = append(b.Pending, code)
}

// LiveBuffers returns how many buffers are allocated and not yet deleted
func (b *Backend) LiveBuffers() int { return len(b.buffers) }

func (b *Backend) LiveVertexArrays() int { return len(b.vertexArrays) }

func (b *Backend) LiveShaders() int { return len(b.shaders) }

func (b *Backend) LivePrograms() int { return len(b.programs) }

// Generated returns the number of objects ever created
func (b *Backend) Generated() int { return b.generated }

// BufferSize returns the uploaded size of a live buffer
func (b *Backend) BufferSize(id uint32) (int, bool) {
	size, ok := b.buffers[id]
	return size, ok
}

// Bound returns the buffer currently bound to target
func (b *Backend) Bound(target uint32) uint32 { return b.bound[target] }

func (b *Backend) BoundVertexArray() uint32 { return b.boundVAO }

func (b *Backend) CurrentProgram() uint32 { return b.program }

// Attached returns the shaders attached to program
func (b *Backend) Attached(program uint32) []uint32 {
	if p, ok := b.programs[program]; ok {
		return p.attached
	}
	return nil
}

// Uniform returns the last values written to the uniform location
func (b *Backend) Uniform(location int32) []float32 { return b.uniformVals[location] }

// CallCount returns how many times the named method was invoked
func (b *Backend) CallCount(name string) int {
	n := 0
	for _, c := range b.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the recorded method names in call order, skipping GetError
func (b *Backend) Names() []string {
	names := make([]string, 0, len(b.Calls))
	for _, c := range b.Calls {
		if c.Name != "GetError" {
			names = append(names, c.Name)
		}
	}
	return names
}

func (b *Backend) record(name string, args ...any) {
	b.Calls = append(b.Calls, Call{Name: name, Args: args})
}

func (b *Backend) newID() uint32 {
	b.nextID++
	b.generated++
	return b.nextID
}

func (b *Backend) GetError() uint32 {
	b.record("GetError")
	if len(b.Pending) == 0 {
		return graphics.NO_ERROR
	}
	code := b.Pending[0]
	b.Pending = b.Pending[1:]
	return code
}

func (b *Backend) GetString(name uint32) string {
	b.record("GetString", name)
	if name == graphics.VERSION {
		return b.Version
	}
	return ""
}

func (b *Backend) GenBuffer() uint32 {
	id := b.newID()
	b.buffers[id] = 0
	b.record("GenBuffer", id)
	return id
}

func (b *Backend) DeleteBuffer(id uint32) {
	b.record("DeleteBuffer", id)
	if _, ok := b.buffers[id]; !ok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	delete(b.buffers, id)
	for target, bound := range b.bound {
		if bound == id {
			b.bound[target] = 0
		}
	}
}

func (b *Backend) BindBuffer(target, id uint32) {
	b.record("BindBuffer", target, id)
	if _, ok := b.buffers[id]; id != 0 && !ok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	b.bound[target] = id
}

func (b *Backend) BufferData(target uint32, size int, data any, usage uint32) {
	b.record("BufferData", target, size, data, usage)
	id := b.bound[target]
	if id == 0 {
		b.Fail(graphics.INVALID_OPERATION)
		return
	}
	b.buffers[id] = size
}

func (b *Backend) GenVertexArray() uint32 {
	id := b.newID()
	b.vertexArrays[id] = true
	b.record("GenVertexArray", id)
	return id
}

func (b *Backend) DeleteVertexArray(id uint32) {
	b.record("DeleteVertexArray", id)
	delete(b.vertexArrays, id)
	if b.boundVAO == id {
		b.boundVAO = 0
	}
}

func (b *Backend) BindVertexArray(id uint32) {
	b.record("BindVertexArray", id)
	if id != 0 && !b.vertexArrays[id] {
		b.Fail(graphics.INVALID_OPERATION)
		return
	}
	b.boundVAO = id
}

func (b *Backend) EnableVertexAttribArray(index uint32) {
	b.record("EnableVertexAttribArray", index)
}

func (b *Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	b.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	if b.boundVAO == 0 || b.bound[graphics.ARRAY_BUFFER] == 0 {
		b.Fail(graphics.INVALID_OPERATION)
	}
}

func (b *Backend) CreateShader(kind uint32) uint32 {
	id := b.newID()
	b.shaders[id] = &shaderObject{kind: kind}
	b.record("CreateShader", kind, id)
	return id
}

func (b *Backend) ShaderSource(id uint32, source string) {
	b.record("ShaderSource", id, source)
	if s, ok := b.shaders[id]; ok {
		s.source = source
	}
}

func (b *Backend) CompileShader(id uint32) {
	b.record("CompileShader", id)
	s, ok := b.shaders[id]
	if !ok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	fails := b.CompileFails
	if fails == nil {
		fails = defaultCompileFails
	}
	s.compiled = !fails(s.kind, s.source)
}

func defaultCompileFails(_ uint32, source string) bool {
	return !strings.Contains(source, "void main") || strings.Contains(source, "syntax error")
}

func (b *Backend) GetShaderiv(id, pname uint32) int32 {
	b.record("GetShaderiv", id, pname)
	s, ok := b.shaders[id]
	if !ok {
		b.Fail(graphics.INVALID_VALUE)
		return 0
	}
	switch pname {
	case graphics.COMPILE_STATUS:
		if s.compiled {
			return graphics.TRUE
		}
		return graphics.FALSE
	case graphics.INFO_LOG_LENGTH:
		return int32(len(b.shaderLog(s)))
	}
	return 0
}

func (b *Backend) shaderLog(s *shaderObject) string {
	if s.compiled {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: %d-byte source rejected", len(s.source))
}

func (b *Backend) GetShaderInfoLog(id uint32) string {
	b.record("GetShaderInfoLog", id)
	if s, ok := b.shaders[id]; ok {
		return b.shaderLog(s)
	}
	return ""
}

func (b *Backend) DeleteShader(id uint32) {
	b.record("DeleteShader", id)
	if _, ok := b.shaders[id]; !ok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	delete(b.shaders, id)
}

func (b *Backend) CreateProgram() uint32 {
	id := b.newID()
	b.programs[id] = &programObject{}
	b.record("CreateProgram", id)
	return id
}

func (b *Backend) AttachShader(program, shader uint32) {
	b.record("AttachShader", program, shader)
	p, ok := b.programs[program]
	if _, sok := b.shaders[shader]; !ok || !sok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	p.attached = append(p.attached, shader)
}

func (b *Backend) LinkProgram(program uint32) {
	b.record("LinkProgram", program)
	p, ok := b.programs[program]
	if !ok {
		b.Fail(graphics.INVALID_VALUE)
		return
	}
	kinds := map[uint32]bool{}
	for _, id := range p.attached {
		if s, ok := b.shaders[id]; ok && s.compiled {
			kinds[s.kind] = true
		}
	}
	p.linked = !b.LinkFails && kinds[graphics.VERTEX_SHADER] && kinds[graphics.FRAGMENT_SHADER]
}

func (b *Backend) ValidateProgram(program uint32) {
	b.record("ValidateProgram", program)
	if p, ok := b.programs[program]; ok {
		p.valid = p.linked
	}
}

func (b *Backend) GetProgramiv(program, pname uint32) int32 {
	b.record("GetProgramiv", program, pname)
	p, ok := b.programs[program]
	if !ok {
		b.Fail(graphics.INVALID_VALUE)
		return 0
	}
	var v bool
	switch pname {
	case graphics.LINK_STATUS:
		v = p.linked
	case graphics.VALIDATE_STATUS:
		v = p.valid
	case graphics.INFO_LOG_LENGTH:
		return int32(len(b.programLog(p)))
	}
	if v {
		return graphics.TRUE
	}
	return graphics.FALSE
}

func (b *Backend) programLog(p *programObject) string {
	if p.linked {
		return ""
	}
	return "error: linking with uncompiled/unspecialized shader"
}

func (b *Backend) GetProgramInfoLog(program uint32) string {
	b.record("GetProgramInfoLog", program)
	if p, ok := b.programs[program]; ok {
		return b.programLog(p)
	}
	return ""
}

func (b *Backend) UseProgram(program uint32) {
	b.record("UseProgram", program)
	if program == 0 {
		b.program = 0
		return
	}
	p, ok := b.programs[program]
	if !ok || !p.linked {
		b.Fail(graphics.INVALID_OPERATION)
		return
	}
	b.program = program
}

func (b *Backend) DeleteProgram(program uint32) {
	b.record("DeleteProgram", program)
	delete(b.programs, program)
	if b.program == program {
		b.program = 0
	}
}

func (b *Backend) GetUniformLocation(program uint32, name string) int32 {
	b.record("GetUniformLocation", program, name)
	p, ok := b.programs[program]
	if !ok || !p.linked {
		return -1
	}
	for i, u := range b.Uniforms {
		if u == name {
			return int32(i)
		}
	}
	return -1
}

func (b *Backend) setUniform(location int32, vals ...float32) {
	if location == -1 {
		// silently ignored, as GL does
		return
	}
	if b.program == 0 {
		b.Fail(graphics.INVALID_OPERATION)
		return
	}
	b.uniformVals[location] = vals
}

func (b *Backend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	b.record("Uniform4f", location, v0, v1, v2, v3)
	b.setUniform(location, v0, v1, v2, v3)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.record("ClearColor", r, g, bl, a)
}

func (b *Backend) Clear(mask uint32) {
	b.record("Clear", mask)
}

func (b *Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	b.record("DrawElements", mode, count, xtype, offset)
	if b.boundVAO == 0 {
		b.Fail(graphics.INVALID_OPERATION)
		return
	}
	b.Draws = append(b.Draws, Draw{
		Mode:        mode,
		Count:       count,
		Type:        xtype,
		Program:     b.program,
		VertexArray: b.boundVAO,
		IndexBuffer: b.bound[graphics.ELEMENT_ARRAY_BUFFER],
	})
}
