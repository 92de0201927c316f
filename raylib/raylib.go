// Package raylib implements a window.Platform using raylib.
package raylib

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/oliverbestmann/firstwindow/scene"
	"github.com/oliverbestmann/firstwindow/window"
)

var errNotReady = errors.New("raylib could not create a window")

type Platform struct{}

func (Platform) Open(config window.Config) (window.Surface, error) {
	if config.Width > math.MaxInt32 || config.Height > math.MaxInt32 {
		return nil, fmt.Errorf("window size %dx%d out of range", config.Width, config.Height)
	}

	rl.SetTraceLogCallback(traceLog)

	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)
	if !rl.IsWindowReady() {
		return nil, errNotReady
	}

	return surface{}, nil
}

// surface forwards to the window managed by raylib. raylib keeps a single
// window in global state, the surface holds no state of its own.
type surface struct{}

func (surface) SetTargetFPS(fps int) {
	rl.SetTargetFPS(int32(min(fps, math.MaxInt32)))
}

func (surface) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (surface) BeginFrame() scene.Canvas {
	rl.BeginDrawing()
	return canvas{}
}

func (surface) EndFrame() {
	rl.EndDrawing()
}

func (surface) Close() {
	rl.CloseWindow()
}

type canvas struct{}

func (canvas) Clear(color color.RGBA) {
	rl.ClearBackground(color)
}

func (canvas) DrawText(label scene.Label) {
	rl.DrawText(label.Text, label.X, label.Y, label.Size, label.Color)
}

// traceLog forwards raylib log messages to slog.
func traceLog(level int, text string) {
	attr := slog.String("source", "raylib")

	switch rl.TraceLogLevel(level) {
	case rl.LogTrace, rl.LogDebug:
		slog.Debug(text, attr)
	case rl.LogWarning:
		slog.Warn(text, attr)
	case rl.LogError, rl.LogFatal:
		slog.Error(text, attr)
	default:
		slog.Info(text, attr)
	}
}
