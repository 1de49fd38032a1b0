package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"glquad/internal/config"
	"glquad/internal/graphics"
	"glquad/internal/graphics/graphicstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicShader = `#shader vertex
#version 330 core

layout(location = 0) in vec4 position;

void main()
{
    gl_Position = position;
}

#shader fragment
#version 330 core

layout(location = 0) out vec4 color;

uniform vec4 u_Color;

void main()
{
    color = u_Color;
}
`

// fakeSurface requests close after closeAfter polls and holds escape from escapeAfter polls on
type fakeSurface struct {
	closeAfter  int
	escapeAfter int
	polls       int
	swaps       int
	closed      int
}

func (s *fakeSurface) ShouldClose() bool { return s.closeAfter > 0 && s.polls >= s.closeAfter }
func (s *fakeSurface) EscapeHeld() bool  { return s.escapeAfter > 0 && s.polls >= s.escapeAfter }
func (s *fakeSurface) SwapBuffers()      { s.swaps++ }
func (s *fakeSurface) PollEvents()       { s.polls++ }
func (s *fakeSurface) Close()            { s.closed++ }

type fakePlatform struct {
	surface    *fakeSurface
	backend    *graphicstest.Backend
	windowErr  error
	backendErr error
	opened     config.WindowSettings
}

func (p *fakePlatform) OpenWindow(s config.WindowSettings) (Surface, error) {
	p.opened = s
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	return p.surface, nil
}

func (p *fakePlatform) LoadBackend() (graphics.Backend, error) {
	if p.backendErr != nil {
		return nil, p.backendErr
	}
	return p.backend, nil
}

func newTestApp(t *testing.T, shader string, surface *fakeSurface) (*App, *fakePlatform) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Basic.shader")
	require.NoError(t, os.WriteFile(path, []byte(shader), 0o644))

	s := config.Default()
	s.Shader.Path = path
	s.Shader.EchoSource = false
	s.Debug.LogFPS = false
	s.Debug.SlowFrameMillis = 0

	p := &fakePlatform{surface: surface, backend: graphicstest.New()}
	return New(s, p), p
}

func TestSetupReachesShaderLinked(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{})

	require.NoError(t, a.Setup())
	assert.Equal(t, ShaderLinked, a.State())
	assert.Equal(t, 1024, p.opened.Width)
	assert.True(t, a.Shader().Linked)

	b := p.backend
	assert.Equal(t, 2, b.LiveBuffers())
	assert.Equal(t, 1, b.LiveVertexArrays())
	assert.Equal(t, 1, b.LivePrograms())
	assert.Zero(t, b.LiveShaders())
	assert.Equal(t, []float32{0.8, 0.3, 0.8, 1.0}, b.Uniform(0), "initial color is set before the loop")
	assert.Zero(t, b.BoundVertexArray())
	assert.Zero(t, b.CurrentProgram())

	require.Error(t, a.Setup(), "setup runs once")
}

func TestRunDrawsUntilWindowCloses(t *testing.T) {
	surface := &fakeSurface{closeAfter: 3}
	a, p := newTestApp(t, basicShader, surface)

	require.NoError(t, a.Run())
	assert.Equal(t, Terminated, a.State())
	assert.Equal(t, 3, a.Frames())
	assert.Equal(t, 3, surface.swaps)
	assert.Equal(t, 1, surface.closed)

	b := p.backend
	require.Len(t, b.Draws, 3)
	for _, d := range b.Draws {
		assert.Equal(t, int32(6), d.Count)
		assert.Equal(t, uint32(graphics.TRIANGLES), d.Mode)
		assert.NotZero(t, d.VertexArray)
		assert.NotZero(t, d.IndexBuffer)
	}
	assert.Equal(t, 3, b.CallCount("Clear"))

	assert.Zero(t, b.LiveBuffers(), "teardown releases every GPU object")
	assert.Zero(t, b.LiveVertexArrays())
	assert.Zero(t, b.LivePrograms())
}

func TestRunSingleFrameIssuesOneDraw(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{closeAfter: 1})

	require.NoError(t, a.Run())
	require.Len(t, p.backend.Draws, 1)
	assert.Equal(t, int32(6), p.backend.Draws[0].Count)
	assert.Equal(t, 1, p.backend.CallCount("DrawElements"))
}

func TestFrameBindsProgramOnce(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{closeAfter: 3})
	require.NoError(t, a.Run())

	binds := 0
	for _, c := range p.backend.Calls {
		if c.Name == "UseProgram" && c.Args[0].(uint32) != 0 {
			binds++
		}
	}
	assert.Equal(t, 1+3, binds, "one bind in setup, one per frame")
	require.Len(t, p.backend.Draws, 3)
	for _, d := range p.backend.Draws {
		assert.NotZero(t, d.Program)
		assert.Equal(t, p.backend.Draws[0].Program, d.Program)
	}
}

func TestRunAnimatesRedChannel(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{closeAfter: 3})
	require.NoError(t, a.Run())

	var reds []float32
	for _, c := range p.backend.Calls {
		if c.Name == "Uniform4f" {
			reds = append(reds, c.Args[1].(float32))
		}
	}
	// initial color, then one write per frame
	require.Len(t, reds, 4)
	assert.InDelta(t, 0.8, reds[0], 1e-6)
	assert.InDelta(t, 0.0, reds[1], 1e-6)
	assert.InDelta(t, 0.05, reds[2], 1e-6)
	assert.InDelta(t, 0.10, reds[3], 1e-6)
}

func TestRunStopsOnEscape(t *testing.T) {
	surface := &fakeSurface{escapeAfter: 2}
	a, _ := newTestApp(t, basicShader, surface)

	require.NoError(t, a.Run())
	assert.Equal(t, 2, a.Frames())
}

func TestRunOrPolicyNeedsBothSignals(t *testing.T) {
	surface := &fakeSurface{closeAfter: 1, escapeAfter: 4}
	a, _ := newTestApp(t, basicShader, surface)
	a.settings.ExitPolicy = config.ExitPolicyOr

	require.NoError(t, a.Run())
	assert.Equal(t, 4, a.Frames())
}

func TestWindowFailureIsFatal(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{})
	p.windowErr = errors.New("no display")

	err := a.Run()
	require.Error(t, err)
	assert.Equal(t, Terminated, a.State())
	assert.Zero(t, p.backend.Generated())
}

func TestContextFailureClosesWindow(t *testing.T) {
	surface := &fakeSurface{}
	a, p := newTestApp(t, basicShader, surface)
	p.backendErr = errors.New("no GL 4.1")

	err := a.Run()
	require.ErrorIs(t, err, ErrContext)
	assert.Equal(t, Terminated, a.State())
	assert.Equal(t, 1, surface.closed)
}

func TestBrokenShaderKeepsRendering(t *testing.T) {
	broken := "#shader vertex\nvoid main() { syntax error }\n#shader fragment\nvoid main() {}\n"
	a, p := newTestApp(t, broken, &fakeSurface{closeAfter: 2})

	require.NoError(t, a.Run())
	assert.Equal(t, 2, a.Frames())
	assert.False(t, a.Shader().Linked)
	assert.Zero(t, p.backend.LivePrograms())
}

func TestMissingShaderFileKeepsRendering(t *testing.T) {
	a, p := newTestApp(t, basicShader, &fakeSurface{closeAfter: 1})
	a.settings.Shader.Path = filepath.Join(t.TempDir(), "missing.shader")

	require.NoError(t, a.Run())
	assert.Equal(t, 1, a.Frames())
	assert.False(t, a.Shader().Linked)
	assert.Equal(t, 2, p.backend.CallCount("CompileShader"))
}

func TestCloseIsIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	a, p := newTestApp(t, basicShader, surface)
	require.NoError(t, a.Setup())

	a.Close()
	a.Close()
	assert.Equal(t, 1, surface.closed)
	assert.Equal(t, 2, p.backend.CallCount("DeleteBuffer"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "geometry-uploaded", GeometryUploaded.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestShippedShaderBuilds(t *testing.T) {
	path := filepath.Join("..", "..", config.Default().Shader.Path)
	src, err := graphics.ParseShaderFile(path)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "gl_Position")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")

	s := graphics.NewShader(graphics.NewContext(graphicstest.New(), false), src)
	assert.True(t, s.Linked)
}
