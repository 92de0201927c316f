// Package orion implements a window.Platform on top of a glfw window
// and a webgpu surface.
package orion

import (
	"fmt"

	"github.com/oliverbestmann/firstwindow/glimpse"
	"github.com/oliverbestmann/firstwindow/pulse"
	"github.com/oliverbestmann/firstwindow/typeset"
	"github.com/oliverbestmann/firstwindow/window"
)

type Platform struct {
	// WGPU configures the webgpu device
	WGPU pulse.Options
}

func (p Platform) Open(config window.Config) (_ window.Surface, err error) {
	// create a new window
	win, err := glimpse.NewWindow(config.Width, config.Height, config.Title)
	if err != nil {
		return nil, err
	}

	s := &surface{
		win:   win,
		pacer: window.NewPacer(config.TargetFPS),
	}

	// release everything acquired so far if we fail later on
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	// initialize the webgpu device
	s.ctx, err = pulse.New(win.SurfaceDescriptor(), p.WGPU)
	if err != nil {
		return nil, fmt.Errorf("initializing wgpu: %w", err)
	}

	s.rasterizer, err = typeset.NewRasterizer()
	if err != nil {
		return nil, fmt.Errorf("create rasterizer: %w", err)
	}

	s.text, err = pulse.NewTextCommand(s.ctx, s.rasterizer)
	if err != nil {
		return nil, fmt.Errorf("create text command: %w", err)
	}

	s.view = pulse.NewView(s.ctx)
	s.clear = pulse.NewClear(s.ctx)

	return s, nil
}
