package graphics

import "github.com/go-gl/mathgl/mgl32"

// Renderer issues the per-frame clear and draw calls
type Renderer struct {
	ctx *Context
}

func NewRenderer(ctx *Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// SetClearColor sets the color Clear fills the framebuffer with
func (r *Renderer) SetClearColor(c mgl32.Vec4) {
	_ = r.ctx.Call("Renderer.SetClearColor", func() { r.ctx.ClearColor(c[0], c[1], c[2], c[3]) })
}

func (r *Renderer) Clear() {
	_ = r.ctx.Call("Renderer.Clear", func() { r.ctx.Clear(COLOR_BUFFER_BIT) })
}

// Draw binds the vertex array and index buffer, then draws every index in
// ib as triangles. The caller binds the program, usually before setting
// its uniforms for the frame.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer) {
	va.Bind()
	ib.Bind()
	_ = r.ctx.Call("Renderer.Draw", func() {
		r.ctx.DrawElements(TRIANGLES, int32(ib.Count()), UNSIGNED_INT, 0)
	})
}
