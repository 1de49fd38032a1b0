package graphics

// LayoutElement describes one vertex attribute
type LayoutElement struct {
	Type       uint32
	Count      int32
	Normalized bool
}

// BufferLayout lists the attributes interleaved in a vertex buffer, in attribute-index order
type BufferLayout struct {
	elements []LayoutElement
	stride   int32
}

// PushFloat appends an attribute of count float components
func (l *BufferLayout) PushFloat(count int32) {
	l.elements = append(l.elements, LayoutElement{Type: FLOAT, Count: count})
	l.stride += count * int32(sizeOf(FLOAT))
}

func (l *BufferLayout) Elements() []LayoutElement { return l.elements }

// Stride is the byte distance between consecutive vertices
func (l *BufferLayout) Stride() int32 { return l.stride }

// VertexArray owns a vertex array object recording how buffers feed shader inputs.
// The core profile refuses draws without one bound.
type VertexArray struct {
	ctx *Context
	id  uint32
}

func NewVertexArray(ctx *Context) *VertexArray {
	va := &VertexArray{ctx: ctx}
	_ = ctx.Call("VertexArray.New", func() {
		va.id = ctx.GenVertexArray()
		ctx.BindVertexArray(va.id)
	})
	return va
}

// AddBuffer binds vb into the array and enables one attribute per layout element
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout BufferLayout) {
	va.Bind()
	vb.Bind()
	var offset uintptr
	_ = va.ctx.Call("VertexArray.AddBuffer", func() {
		for i, e := range layout.elements {
			va.ctx.EnableVertexAttribArray(uint32(i))
			va.ctx.VertexAttribPointer(uint32(i), e.Count, e.Type, e.Normalized, layout.stride, offset)
			offset += uintptr(int(e.Count) * sizeOf(e.Type))
		}
	})
}

func (va *VertexArray) ID() uint32 { return va.id }

func (va *VertexArray) Bind() {
	_ = va.ctx.Call("VertexArray.Bind", func() { va.ctx.BindVertexArray(va.id) })
}

func (va *VertexArray) Unbind() {
	_ = va.ctx.Call("VertexArray.Unbind", func() { va.ctx.BindVertexArray(0) })
}

// Delete releases the vertex array object once
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	id := va.id
	va.id = 0
	_ = va.ctx.Call("VertexArray.Delete", func() { va.ctx.DeleteVertexArray(id) })
}
