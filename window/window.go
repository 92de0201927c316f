package window

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/firstwindow/scene"
)

var ErrClosed = errors.New("window is closed")
var ErrNotOpen = errors.New("window is not open")

// Window owns a single native window from Open until Close.
type Window struct {
	surface Surface
	config  Config
	state   State

	// fires if the process was asked to terminate
	interrupt <-chan struct{}

	times FrameTimes
}

// Open creates a new window on the given platform.
func Open(platform Platform, config Config) (*Window, error) {
	if platform == nil {
		return nil, errors.New("platform must not be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Open window",
		slog.Int("width", config.Width),
		slog.Int("height", config.Height),
		slog.String("title", config.Title),
	)

	surface, err := platform.Open(config)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	win := &Window{
		surface: surface,
		config:  config,
		state:   StateOpen,
	}

	return win, nil
}

func (w *Window) State() State {
	return w.state
}

func (w *Window) Config() Config {
	return w.config
}

// FrameTimes returns statistics about the frames rendered so far.
func (w *Window) FrameTimes() FrameTimes {
	return w.times
}

// SetTargetFPS asks the platform to cap rendering at the given
// number of frames per second. Values below one are ignored.
func (w *Window) SetTargetFPS(fps int) {
	if w.state != StateOpen {
		return
	}

	if fps <= 0 {
		slog.Warn("Ignore invalid target fps", slog.Int("fps", fps))
		return
	}

	w.config.TargetFPS = fps
	w.surface.SetTargetFPS(fps)
}

// ShouldClose reports whether a close was requested, either by the
// platform or by the interrupt channel. A window that is not open
// always reports true.
func (w *Window) ShouldClose() bool {
	if w.state != StateOpen {
		return true
	}

	select {
	case <-w.interrupt:
		slog.Info("Close requested by interrupt")
		return true
	default:
	}

	return w.surface.ShouldClose()
}

// Frame renders a single frame. draw receives the canvas of the frame.
func (w *Window) Frame(draw func(canvas scene.Canvas)) error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	canvas := w.surface.BeginFrame()
	draw(canvas)
	w.surface.EndFrame()

	if w.times.Tick(time.Now()) {
		slog.Debug("Frame times",
			slog.Uint64("frames", w.times.FrameCount),
			slog.Duration("average", w.times.AverageDuration),
			slog.Duration("max", w.times.MaxDuration),
			slog.Float64("fps", w.times.FPS()),
		)
	}

	return nil
}

// Loop renders frames until a close is requested.
func (w *Window) Loop(draw func(canvas scene.Canvas)) error {
	for !w.ShouldClose() {
		if err := w.Frame(draw); err != nil {
			return err
		}
	}

	return nil
}

// Close releases the native window. Only the first call reaches the
// platform, every further call returns ErrClosed.
func (w *Window) Close() error {
	if err := w.requireOpen(); err != nil {
		return err
	}

	w.state = StateClosed

	w.surface.Close()
	w.surface = nil

	slog.Info("Window closed", slog.Uint64("frames", w.times.FrameCount))

	return nil
}

func (w *Window) requireOpen() error {
	switch w.state {
	case StateOpen:
		return nil
	case StateClosed:
		return ErrClosed
	default:
		return ErrNotOpen
	}
}
