package graphics

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMissingUniform is the panic value when a uniform lookup fails under DebugBreak.
var ErrMissingUniform = errors.New("uniform not found")

// Shader represents a linked OpenGL shader program.
// A program whose link failed is kept: draws with it render nothing useful
// but never abort the frame loop.
type Shader struct {
	ctx      *Context
	ID       uint32
	Linked   bool
	uniforms map[string]int32
}

// NewShader compiles both stages of src and links them
func NewShader(ctx *Context, src ProgramSource) *Shader {
	vs := CompileShader(ctx, StageVertex.Kind(), src.Vertex)
	fs := CompileShader(ctx, StageFragment.Kind(), src.Fragment)
	program, linked := LinkProgram(ctx, vs, fs)
	return &Shader{
		ctx:      ctx,
		ID:       program,
		Linked:   linked,
		uniforms: make(map[string]int32),
	}
}

// CompileShader compiles source as a shader of the given kind.
// On failure the info log is reported, the shader object released and 0 returned.
func CompileShader(ctx *Context, kind uint32, source string) uint32 {
	ctx.ClearErrors()
	id := ctx.CreateShader(kind)
	ctx.ShaderSource(id, source)
	ctx.CompileShader(id)
	_ = ctx.Check("CompileShader")

	if ctx.GetShaderiv(id, COMPILE_STATUS) == FALSE {
		log.Printf("failed to compile %s shader:\n%s", kindName(kind), strings.TrimSpace(ctx.GetShaderInfoLog(id)))
		_ = ctx.Call("DeleteShader", func() { ctx.DeleteShader(id) })
		return 0
	}
	return id
}

// LinkProgram attaches vs and fs to a new program, links and validates it, then
// deletes both shaders. Link failures are reported but the program is still
// returned; linked tells the caller whether it is usable.
func LinkProgram(ctx *Context, vs, fs uint32) (program uint32, linked bool) {
	ctx.ClearErrors()
	program = ctx.CreateProgram()
	for _, s := range []uint32{vs, fs} {
		if s == 0 {
			log.Printf("program %d: skipping attach of a shader that failed to compile", program)
			continue
		}
		ctx.AttachShader(program, s)
	}
	ctx.LinkProgram(program)
	_ = ctx.Check("LinkProgram")

	linked = ctx.GetProgramiv(program, LINK_STATUS) == TRUE
	if !linked {
		log.Printf("failed to link program %d:\n%s", program, strings.TrimSpace(ctx.GetProgramInfoLog(program)))
	}

	_ = ctx.Call("ValidateProgram", func() { ctx.ValidateProgram(program) })
	if linked && ctx.GetProgramiv(program, VALIDATE_STATUS) == FALSE {
		log.Printf("program %d failed validation:\n%s", program, strings.TrimSpace(ctx.GetProgramInfoLog(program)))
	}

	// shaders can be deleted after linking
	_ = ctx.Call("DeleteShader", func() {
		if vs != 0 {
			ctx.DeleteShader(vs)
		}
		if fs != 0 {
			ctx.DeleteShader(fs)
		}
	})
	return program, linked
}

// Use activates the shader program
func (s *Shader) Use() {
	_ = s.ctx.Call("Shader.Use", func() { s.ctx.UseProgram(s.ID) })
}

func (s *Shader) Unuse() {
	_ = s.ctx.Call("Shader.Unuse", func() { s.ctx.UseProgram(0) })
}

// UniformLocation looks up and caches the location of name; -1 when the
// program has no active uniform of that name. A miss panics under DebugBreak.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	var loc int32
	_ = s.ctx.Call("Shader.UniformLocation", func() { loc = s.ctx.GetUniformLocation(s.ID, name) })
	s.uniforms[name] = loc
	if loc == -1 {
		log.Printf("uniform %q not found in program %d", name, s.ID)
		if s.ctx.DebugBreak {
			panic(fmt.Errorf("%w: %q in program %d", ErrMissingUniform, name, s.ID))
		}
	}
	return loc
}

// SetVec4 sets a vec4 uniform
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	loc := s.UniformLocation(name)
	_ = s.ctx.Call("Shader.SetVec4", func() { s.ctx.Uniform4f(loc, v[0], v[1], v[2], v[3]) })
}

// Delete releases the program once
func (s *Shader) Delete() {
	if s.ID == 0 {
		return
	}
	id := s.ID
	s.ID = 0
	_ = s.ctx.Call("Shader.Delete", func() { s.ctx.DeleteProgram(id) })
}

func kindName(kind uint32) string {
	for _, st := range []ShaderStage{StageVertex, StageFragment} {
		if st.Kind() == kind {
			return st.String()
		}
	}
	return "unknown"
}
