package graphics_test

import (
	"testing"

	"glquad/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	quadPositions = []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}
	quadIndices = []uint32{0, 1, 2, 2, 3, 0}
)

func TestVertexBufferLifecycle(t *testing.T) {
	ctx, b := newContext()

	vb := graphics.NewVertexBuffer(ctx, quadPositions)
	require.NotZero(t, vb.ID())
	assert.Equal(t, 32, vb.Size())
	size, ok := b.BufferSize(vb.ID())
	require.True(t, ok)
	assert.Equal(t, 32, size)
	assert.Equal(t, vb.ID(), b.Bound(graphics.ARRAY_BUFFER))

	vb.Unbind()
	assert.Zero(t, b.Bound(graphics.ARRAY_BUFFER))
	vb.Bind()
	assert.Equal(t, vb.ID(), b.Bound(graphics.ARRAY_BUFFER))

	vb.Delete()
	vb.Delete()
	assert.Zero(t, vb.ID())
	assert.Zero(t, b.LiveBuffers())
	assert.Equal(t, 1, b.CallCount("DeleteBuffer"), "released exactly once")
	assert.Zero(t, ctx.Reported())
}

func TestIndexBufferLifecycle(t *testing.T) {
	ctx, b := newContext()

	ib := graphics.NewIndexBuffer(ctx, quadIndices)
	require.NotZero(t, ib.ID())
	assert.Equal(t, 6, ib.Count())
	size, _ := b.BufferSize(ib.ID())
	assert.Equal(t, 24, size)
	assert.Equal(t, ib.ID(), b.Bound(graphics.ELEMENT_ARRAY_BUFFER))

	ib.Unbind()
	assert.Zero(t, b.Bound(graphics.ELEMENT_ARRAY_BUFFER))

	ib.Delete()
	ib.Delete()
	assert.Zero(t, b.LiveBuffers())
	assert.Equal(t, 1, b.CallCount("DeleteBuffer"))
}

func TestBuffersDoNotLeak(t *testing.T) {
	ctx, b := newContext()

	for i := 0; i < 10; i++ {
		vb := graphics.NewVertexBuffer(ctx, quadPositions)
		ib := graphics.NewIndexBuffer(ctx, quadIndices)
		assert.Equal(t, 2, b.LiveBuffers())
		ib.Delete()
		vb.Delete()
		assert.Zero(t, b.LiveBuffers())
	}
	assert.Equal(t, 20, b.Generated())
}

func TestVertexArrayLayout(t *testing.T) {
	ctx, b := newContext()

	var layout graphics.BufferLayout
	layout.PushFloat(2)
	assert.Equal(t, int32(8), layout.Stride())
	require.Len(t, layout.Elements(), 1)

	va := graphics.NewVertexArray(ctx)
	vb := graphics.NewVertexBuffer(ctx, quadPositions)
	va.AddBuffer(vb, layout)

	assert.Equal(t, va.ID(), b.BoundVertexArray())
	assert.Equal(t, 1, b.CallCount("EnableVertexAttribArray"))
	var args []any
	for _, c := range b.Calls {
		if c.Name == "VertexAttribPointer" {
			args = c.Args
		}
	}
	assert.Equal(t, []any{uint32(0), int32(2), uint32(graphics.FLOAT), false, int32(8), uintptr(0)}, args)
	assert.Zero(t, ctx.Reported())

	va.Delete()
	va.Delete()
	assert.Zero(t, b.LiveVertexArrays())
	assert.Equal(t, 1, b.CallCount("DeleteVertexArray"))
}

func TestVertexArrayOffsets(t *testing.T) {
	ctx, b := newContext()

	var layout graphics.BufferLayout
	layout.PushFloat(2)
	layout.PushFloat(3)
	assert.Equal(t, int32(20), layout.Stride())

	va := graphics.NewVertexArray(ctx)
	vb := graphics.NewVertexBuffer(ctx, make([]float32, 20))
	va.AddBuffer(vb, layout)

	var offsets []uintptr
	for _, c := range b.Calls {
		if c.Name == "VertexAttribPointer" {
			offsets = append(offsets, c.Args[5].(uintptr))
		}
	}
	assert.Equal(t, []uintptr{0, 8}, offsets)
}
