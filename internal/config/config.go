package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
)

// EnvPath names the environment variable that overrides the settings file location.
const EnvPath = "GLQUAD_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "glquad.toml"

const maxFPSLimit = 1000

// WindowSettings describes the window and the GL context requested for it
type WindowSettings struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	ContextMajor int    `toml:"context_major"`
	ContextMinor int    `toml:"context_minor"`
	Samples      int    `toml:"samples"`
	SwapInterval int    `toml:"swap_interval"`
}

// ShaderSettings locates the shader asset
type ShaderSettings struct {
	Path       string `toml:"path"`
	EchoSource bool   `toml:"echo_source"`
}

// RenderSettings holds per-frame render parameters
type RenderSettings struct {
	ClearColor mgl32.Vec4 `toml:"clear_color"`
	// InitialColor is pushed into u_Color once before the first frame.
	InitialColor mgl32.Vec4 `toml:"initial_color"`
	// Color supplies the g, b and a channels each frame; r is animated.
	Color     mgl32.Vec4 `toml:"color"`
	ColorStep float32    `toml:"color_step"`
	MaxFPS    int        `toml:"max_fps"`
}

// DebugSettings controls diagnostics
type DebugSettings struct {
	// Break panics on the first reported GL error.
	Break           bool `toml:"break"`
	LogFPS          bool `toml:"log_fps"`
	SlowFrameMillis int  `toml:"slow_frame_ms"`
}

// Settings is the complete program configuration
type Settings struct {
	Window     WindowSettings `toml:"window"`
	Shader     ShaderSettings `toml:"shader"`
	Render     RenderSettings `toml:"render"`
	Debug      DebugSettings  `toml:"debug"`
	ExitPolicy ExitPolicy     `toml:"exit_policy"`
}

// Default returns the settings the program runs with when no file is present
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:        1024,
			Height:       768,
			Title:        "You Little Monkey",
			ContextMajor: 4,
			ContextMinor: 1,
			Samples:      4,
			SwapInterval: 1,
		},
		Shader: ShaderSettings{
			Path:       "res/shader/Basic.shader",
			EchoSource: true,
		},
		Render: RenderSettings{
			ClearColor:   mgl32.Vec4{0, 0, 0, 1},
			InitialColor: mgl32.Vec4{0.8, 0.3, 0.8, 1.0},
			Color:        mgl32.Vec4{0, 0.3, 0.8, 1.0},
			ColorStep:    0.05,
		},
		Debug: DebugSettings{
			LogFPS:          true,
			SlowFrameMillis: 100,
		},
		ExitPolicy: ExitPolicyAnd,
	}
}

// Path returns the settings file location, honouring EnvPath
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load decodes the TOML file at path over the defaults.
// A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}
	s.Render.MaxFPS = clampFPS(s.Render.MaxFPS)
	return s, nil
}

// Validate reports the first setting that cannot be used
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case s.Window.ContextMajor <= 0:
		return fmt.Errorf("context version %d.%d is not valid", s.Window.ContextMajor, s.Window.ContextMinor)
	case s.Shader.Path == "":
		return errors.New("shader path is empty")
	case s.Render.ColorStep <= 0 || s.Render.ColorStep >= 1:
		return fmt.Errorf("color step %v must be in (0, 1)", s.Render.ColorStep)
	case s.Debug.SlowFrameMillis < 0:
		return fmt.Errorf("slow frame threshold %dms is negative", s.Debug.SlowFrameMillis)
	}
	return s.ExitPolicy.Validate()
}

// Clamp to what a frame limiter can reasonably hit; 0 means unlimited.
func clampFPS(fps int) int {
	if fps < 0 {
		return 0
	}
	if fps > maxFPSLimit {
		return maxFPSLimit
	}
	return fps
}
