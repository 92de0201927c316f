package orion

import (
	"image/color"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/oliverbestmann/firstwindow/glimpse"
	"github.com/oliverbestmann/firstwindow/pulse"
	"github.com/oliverbestmann/firstwindow/scene"
	"github.com/oliverbestmann/firstwindow/typeset"
	"github.com/oliverbestmann/firstwindow/window"
)

type surface struct {
	win        *glimpse.Window
	ctx        *pulse.Context
	view       *pulse.View
	clear      *pulse.ClearCommand
	text       *pulse.TextCommand
	rasterizer *typeset.Rasterizer
	pacer      *window.Pacer

	// size the surface is currently configured for
	surfaceWidth  uint32
	surfaceHeight uint32

	// state of the frame between BeginFrame and EndFrame
	frame *frame
}

type frame struct {
	texture *wgpu.Texture
	target  pulse.RenderTarget
}

func (s *surface) SetTargetFPS(fps int) {
	s.pacer.SetTargetFPS(fps)
}

func (s *surface) ShouldClose() bool {
	return s.win.ShouldClose()
}

func (s *surface) BeginFrame() scene.Canvas {
	s.win.PollEvents()

	// get surface size for next frame
	surfaceWidth, surfaceHeight := s.win.GetSize()
	if surfaceWidth == 0 || surfaceHeight == 0 {
		// minimized, nothing to draw to
		return discard{}
	}

	// reconfigure surface if needed
	if s.surfaceWidth != surfaceWidth || s.surfaceHeight != surfaceHeight {
		s.view.Configure(surfaceWidth, surfaceHeight)

		s.surfaceWidth = surfaceWidth
		s.surfaceHeight = surfaceHeight
	}

	// get the surface texture (the actual screen)
	texture, err := s.ctx.Surface.GetCurrentTexture()
	if err != nil {
		slog.Warn("Skip frame, surface texture not available", slog.Any("err", err))

		// force a reconfigure on the next frame
		s.surfaceWidth, s.surfaceHeight = 0, 0
		return discard{}
	}

	s.frame = &frame{
		texture: texture,
		target: pulse.RenderTarget{
			View:   texture.CreateView(nil),
			Format: s.view.Format(),
			Width:  surfaceWidth,
			Height: surfaceHeight,
			Scale:  s.win.Scale(),
		},
	}

	return &canvas{surface: s, target: &s.frame.target}
}

func (s *surface) EndFrame() {
	if s.frame != nil {
		// present the rendered image
		s.ctx.Surface.Present()

		s.frame.target.View.Release()
		s.frame.texture.Release()
		s.frame = nil
	}

	s.pacer.Wait()
}

func (s *surface) Close() {
	if s.text != nil {
		s.text.Release()
		s.text = nil
	}

	if s.rasterizer != nil {
		s.rasterizer.Close()
		s.rasterizer = nil
	}

	if s.ctx != nil {
		s.ctx.Release()
		s.ctx = nil
	}

	s.win.Terminate()
}

type canvas struct {
	surface *surface
	target  *pulse.RenderTarget
}

func (c *canvas) Clear(color color.RGBA) {
	c.surface.clear.Clear(c.target, color)
}

func (c *canvas) DrawText(label scene.Label) {
	if err := c.surface.text.DrawText(c.target, label); err != nil {
		slog.Warn("Draw text", slog.String("text", label.Text), slog.Any("err", err))
	}
}

// discard is the canvas of a frame that is not presented.
type discard struct{}

func (discard) Clear(color.RGBA) {}
func (discard) DrawText(scene.Label) {}
