package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// For a window this is the texture of the current frame.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	// Framebuffer pixels per window coordinate, 1 unless on a high dpi display
	Scale float32
}
