package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glquad.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
exit_policy = "or"

[window]
width = 640
title = "quad"

[render]
color_step = 0.1
initial_color = [1.0, 0.0, 0.0, 1.0]
max_fps = 5000

[debug]
break = true
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, 768, s.Window.Height, "unset keys keep their default")
	assert.Equal(t, "quad", s.Window.Title)
	assert.Equal(t, ExitPolicyOr, s.ExitPolicy)
	assert.InDelta(t, 0.1, s.Render.ColorStep, 1e-6)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, s.Render.InitialColor)
	assert.Equal(t, maxFPSLimit, s.Render.MaxFPS)
	assert.True(t, s.Debug.Break)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0\n"},
		{"bad step", "[render]\ncolor_step = 1.5\n"},
		{"empty shader path", "[shader]\npath = \"\"\n"},
		{"unknown policy", "exit_policy = \"xor\"\n"},
		{"malformed", "[window\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, Default(), s)
		})
	}
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(EnvPath, "/etc/glquad.toml")
	assert.Equal(t, "/etc/glquad.toml", Path())
}

func TestExitPolicyKeepRunning(t *testing.T) {
	tests := []struct {
		policy         ExitPolicy
		closeRequested bool
		escapeHeld     bool
		want           bool
	}{
		{ExitPolicyAnd, false, false, true},
		{ExitPolicyAnd, true, false, false},
		{ExitPolicyAnd, false, true, false},
		{ExitPolicyAnd, true, true, false},
		{ExitPolicyOr, false, false, true},
		{ExitPolicyOr, true, false, true},
		{ExitPolicyOr, false, true, true},
		{ExitPolicyOr, true, true, false},
	}
	for _, tt := range tests {
		got := tt.policy.KeepRunning(tt.closeRequested, tt.escapeHeld)
		assert.Equal(t, tt.want, got, "%s close=%v escape=%v", tt.policy, tt.closeRequested, tt.escapeHeld)
	}
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "glquad.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
