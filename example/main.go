// Example opens a window and draws a single static square.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config square.yml
//
// The frame is drawn once at startup; the window then only waits for events
// until it is closed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/square"
	"github.com/go-theft-auto/square/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := square.LoadConfig(configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, version := opengl.Version()
	logger.Info("context ready", "renderer", renderer, "version", version)

	dev := opengl.NewDevice(window)
	defer dev.Delete()

	scene, err := square.New(dev,
		square.WithLogger(logger),
		square.WithClearColor(cfg.Color()),
	)
	if err != nil {
		return err
	}
	defer scene.Delete()

	opengl.Present(window, scene)

	for !window.ShouldClose() {
		glfw.WaitEvents()
	}

	return nil
}
