package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

// Window is a native window without a client api. Rendering happens
// through a webgpu surface created from SurfaceDescriptor.
type Window struct {
	win *glfw.Window
}

// NewWindow opens a window of fixed size. Pressing Escape requests the window to close.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{win: window}

	window.SetKeyCallback(w.onKey)

	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press || key != glfw.KeyEscape {
		return
	}

	slog.Info("Exit key pressed", slog.Int("key", int(key)))
	w.win.SetShouldClose(true)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents processes pending window events. Must be called once per frame.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// GetSize returns the size of the framebuffer in pixels. On high dpi displays
// this is larger than the window size the window was created with, see Scale.
func (w *Window) GetSize() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

// Scale returns the number of framebuffer pixels per window coordinate.
func (w *Window) Scale() float32 {
	windowWidth, _ := w.win.GetSize()
	framebufferWidth, _ := w.win.GetFramebufferSize()
	return framebufferScale(windowWidth, framebufferWidth)
}

func framebufferScale(windowWidth, framebufferWidth int) float32 {
	if windowWidth <= 0 || framebufferWidth <= 0 {
		return 1
	}

	return float32(framebufferWidth) / float32(windowWidth)
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}
