package window

import (
	"errors"

	"github.com/oliverbestmann/firstwindow/scene"
)

type RunOptions struct {
	// platform to open the window on. This is the only field that is required
	Platform Platform

	// zero fields are taken from DefaultConfig
	Config Config

	// scene to draw every frame, defaults to scene.Default
	Scene *scene.Scene

	// closing or sending on this channel requests the window to close
	Interrupt <-chan struct{}
}

// Run opens a window, draws the scene every frame until a close is
// requested and releases the window again.
func Run(opts RunOptions) error {
	if opts.Platform == nil {
		return errors.New("Platform must not be nil")
	}

	config := opts.Config.withDefaults()

	sc := scene.Default()
	if opts.Scene != nil {
		sc = *opts.Scene
	}

	win, err := Open(opts.Platform, config)
	if err != nil {
		return err
	}

	defer win.Close()

	win.interrupt = opts.Interrupt
	win.SetTargetFPS(config.TargetFPS)

	return win.Loop(sc.Draw)
}
