package graphics

// VertexBuffer owns one GL_ARRAY_BUFFER object holding static vertex data.
// The data is uploaded once; use a new buffer for different contents.
type VertexBuffer struct {
	ctx  *Context
	id   uint32
	size int
}

// NewVertexBuffer allocates a buffer, binds it and uploads data with a static usage hint
func NewVertexBuffer(ctx *Context, data []float32) *VertexBuffer {
	vb := &VertexBuffer{ctx: ctx, size: len(data) * sizeOf(FLOAT)}
	ctx.ClearErrors()
	vb.id = ctx.GenBuffer()
	ctx.BindBuffer(ARRAY_BUFFER, vb.id)
	ctx.BufferData(ARRAY_BUFFER, vb.size, data, STATIC_DRAW)
	_ = ctx.Check("VertexBuffer.New")
	return vb
}

// ID returns the GL buffer name, 0 after Delete
func (vb *VertexBuffer) ID() uint32 { return vb.id }

// Size returns the uploaded size in bytes
func (vb *VertexBuffer) Size() int { return vb.size }

func (vb *VertexBuffer) Bind() {
	_ = vb.ctx.Call("VertexBuffer.Bind", func() { vb.ctx.BindBuffer(ARRAY_BUFFER, vb.id) })
}

func (vb *VertexBuffer) Unbind() {
	_ = vb.ctx.Call("VertexBuffer.Unbind", func() { vb.ctx.BindBuffer(ARRAY_BUFFER, 0) })
}

// Delete releases the GL buffer. Calling it again is a no-op.
func (vb *VertexBuffer) Delete() {
	if vb.id == 0 {
		return
	}
	id := vb.id
	vb.id = 0
	_ = vb.ctx.Call("VertexBuffer.Delete", func() { vb.ctx.DeleteBuffer(id) })
}

// IndexBuffer owns one GL_ELEMENT_ARRAY_BUFFER object of uint32 indices
type IndexBuffer struct {
	ctx   *Context
	id    uint32
	count int
}

// NewIndexBuffer allocates a buffer, binds it and uploads indices with a static usage hint
func NewIndexBuffer(ctx *Context, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{ctx: ctx, count: len(indices)}
	ctx.ClearErrors()
	ib.id = ctx.GenBuffer()
	ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.id)
	ctx.BufferData(ELEMENT_ARRAY_BUFFER, ib.count*sizeOf(UNSIGNED_INT), indices, STATIC_DRAW)
	_ = ctx.Check("IndexBuffer.New")
	return ib
}

// ID returns the GL buffer name, 0 after Delete
func (ib *IndexBuffer) ID() uint32 { return ib.id }

// Count returns the number of indices
func (ib *IndexBuffer) Count() int { return ib.count }

func (ib *IndexBuffer) Bind() {
	_ = ib.ctx.Call("IndexBuffer.Bind", func() { ib.ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.id) })
}

func (ib *IndexBuffer) Unbind() {
	_ = ib.ctx.Call("IndexBuffer.Unbind", func() { ib.ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) })
}

// Delete releases the GL buffer. Calling it again is a no-op.
func (ib *IndexBuffer) Delete() {
	if ib.id == 0 {
		return
	}
	id := ib.id
	ib.id = 0
	_ = ib.ctx.Call("IndexBuffer.Delete", func() { ib.ctx.DeleteBuffer(id) })
}
