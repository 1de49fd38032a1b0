package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"glquad/internal/config"
	"glquad/internal/graphics"
	"glquad/internal/profiling"
)

const colorUniform = "u_Color"

// ErrContext is wrapped when the graphics API cannot be loaded for the new window.
var ErrContext = errors.New("graphics context unavailable")

// Surface is the window the app draws into
type Surface interface {
	ShouldClose() bool
	EscapeHeld() bool
	SwapBuffers()
	PollEvents()
	Close()
}

// Platform opens the window and loads the graphics API for its context
type Platform interface {
	OpenWindow(s config.WindowSettings) (Surface, error)
	LoadBackend() (graphics.Backend, error)
}

// App draws the animated quad until the exit policy says stop
type App struct {
	settings config.Settings
	platform Platform
	state    State

	surface  Surface
	ctx      *graphics.Context
	renderer *graphics.Renderer
	va       *graphics.VertexArray
	vb       *graphics.VertexBuffer
	ib       *graphics.IndexBuffer
	shader   *graphics.Shader

	osc       *Oscillator
	limiter   *FrameLimiter
	fps       *fpsCounter
	slowFrame time.Duration
	frames    int
	now       func() time.Time
}

func New(settings config.Settings, platform Platform) *App {
	return &App{
		settings:  settings,
		platform:  platform,
		osc:       NewOscillator(settings.Render.ColorStep),
		limiter:   NewFrameLimiter(settings.Render.MaxFPS),
		slowFrame: time.Duration(settings.Debug.SlowFrameMillis) * time.Millisecond,
		now:       time.Now,
	}
}

// State returns the current lifecycle state
func (a *App) State() State { return a.state }

// Frames returns how many frames have been drawn
func (a *App) Frames() int { return a.frames }

// Shader returns the program built during Setup, nil before that
func (a *App) Shader() *graphics.Shader { return a.shader }

func (a *App) advance(to State) {
	if to != a.state+1 {
		panic(fmt.Sprintf("app: invalid transition %s -> %s", a.state, to))
	}
	a.state = to
}

// Setup opens the window, loads the graphics API, uploads the quad and
// builds the shader. Only window and context failures are returned; shader
// problems are logged and leave a program that draws nothing useful.
func (a *App) Setup() error {
	if a.state != Uninitialized {
		return fmt.Errorf("app: setup in state %s", a.state)
	}

	surface, err := a.platform.OpenWindow(a.settings.Window)
	if err != nil {
		a.state = Terminated
		return err
	}
	a.surface = surface
	a.advance(WindowReady)

	backend, err := a.platform.LoadBackend()
	if err != nil {
		a.Close()
		return fmt.Errorf("%w: %w", ErrContext, err)
	}
	a.ctx = graphics.NewContext(backend, a.settings.Debug.Break)
	a.renderer = graphics.NewRenderer(a.ctx)
	fmt.Println(a.ctx.Version())
	a.advance(ContextReady)

	a.va = graphics.NewVertexArray(a.ctx)
	a.vb = graphics.NewVertexBuffer(a.ctx, QuadPositions)
	var layout graphics.BufferLayout
	layout.PushFloat(quadComponents)
	a.va.AddBuffer(a.vb, layout)
	a.ib = graphics.NewIndexBuffer(a.ctx, QuadIndices)
	a.advance(GeometryUploaded)

	a.shader = a.buildShader()
	a.shader.Use()
	a.shader.SetVec4(colorUniform, a.settings.Render.InitialColor)

	// the vertex array keeps its index buffer binding, so unbind it first
	a.va.Unbind()
	a.shader.Unuse()
	a.vb.Unbind()
	a.ib.Unbind()
	a.renderer.SetClearColor(a.settings.Render.ClearColor)
	a.advance(ShaderLinked)
	return nil
}

func (a *App) buildShader() *graphics.Shader {
	src, err := graphics.ParseShaderFile(a.settings.Shader.Path)
	if err != nil {
		log.Printf("could not load shader: %v", err)
	}
	if a.settings.Shader.EchoSource {
		fmt.Printf("VERTEX\n%s\nFRAGMENT\n%s\n", src.Vertex, src.Fragment)
	}
	return graphics.NewShader(a.ctx, src)
}

// Run sets up, renders until the exit policy stops the loop and tears down.
// The returned error is always a setup failure.
func (a *App) Run() error {
	if err := a.Setup(); err != nil {
		return err
	}
	defer a.Close()

	a.advance(Rendering)
	for a.keepRunning() {
		a.Frame()
	}
	return nil
}

func (a *App) keepRunning() bool {
	return a.settings.ExitPolicy.KeepRunning(a.surface.ShouldClose(), a.surface.EscapeHeld())
}

// Frame draws one frame: clear, animate u_Color, draw the quad, swap and poll
func (a *App) Frame() {
	if a.state != Rendering {
		panic(fmt.Sprintf("app: frame in state %s", a.state))
	}
	profiling.ResetFrame()
	start := a.now()

	func() { defer profiling.Track("gl.Clear")(); a.renderer.Clear() }()
	func() {
		defer profiling.Track("gl.Uniform")()
		color := a.settings.Render.Color
		color[0] = a.osc.Next()
		a.shader.Use()
		a.shader.SetVec4(colorUniform, color)
	}()
	func() { defer profiling.Track("gl.DrawElements")(); a.renderer.Draw(a.va, a.ib) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.surface.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); a.surface.PollEvents() }()

	end := a.now()
	if a.slowFrame > 0 && end.Sub(start) > a.slowFrame {
		log.Printf("Slow frame: %v (gl %v, glfw %v). Top phases: %s", end.Sub(start),
			profiling.SumWithPrefix("gl."), profiling.SumWithPrefix("glfw."), profiling.TopN(3))
	}

	a.limiter.Wait()
	a.frames++

	if !a.settings.Debug.LogFPS {
		return
	}
	if a.fps == nil {
		a.fps = newFPSCounter(start)
	}
	if fps, ok := a.fps.Frame(a.now()); ok {
		fmt.Printf("FPS: %d\n", fps)
	}
}

// Close releases GPU objects in reverse order of creation, then the window.
// It is safe to call more than once.
func (a *App) Close() {
	if a.state == Terminated {
		return
	}
	if a.ib != nil {
		a.ib.Delete()
	}
	if a.vb != nil {
		a.vb.Delete()
	}
	if a.va != nil {
		a.va.Delete()
	}
	if a.shader != nil {
		a.shader.Delete()
	}
	if a.surface != nil {
		a.surface.Close()
	}
	a.state = Terminated
}
