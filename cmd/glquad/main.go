package main

import (
	"log"
	"os"
	"runtime"

	"glquad/internal/app"
	"glquad/internal/config"
)

// exitSetupFailure is returned when the window or its context cannot be created
const exitSetupFailure = -1

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Load(config.Path())
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	a := app.New(settings, glfwPlatform{})
	if err := a.Run(); err != nil {
		log.Printf("glquad: %v", err)
		os.Exit(exitSetupFailure)
	}
}
