package main

import (
	"glquad/internal/app"
	"glquad/internal/config"
	"glquad/internal/graphics"
	"glquad/internal/graphics/glbackend"
	"glquad/internal/window"
)

// glfwPlatform opens a GLFW window and loads go-gl for its context
type glfwPlatform struct{}

func (glfwPlatform) OpenWindow(s config.WindowSettings) (app.Surface, error) {
	w, err := window.Open(window.Options{
		Width:        s.Width,
		Height:       s.Height,
		Title:        s.Title,
		ContextMajor: s.ContextMajor,
		ContextMinor: s.ContextMinor,
		Samples:      s.Samples,
		SwapInterval: s.SwapInterval,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (glfwPlatform) LoadBackend() (graphics.Backend, error) {
	b, err := glbackend.New()
	if err != nil {
		return nil, err
	}
	return b, nil
}
