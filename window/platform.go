package window

import "github.com/oliverbestmann/firstwindow/scene"

// Platform creates native windows with a drawing surface.
type Platform interface {
	Open(config Config) (Surface, error)
}

// Surface is a native window as seen by the frame loop. All methods
// are called from the thread that called Platform.Open.
type Surface interface {
	// SetTargetFPS caps the rate at which frames are presented.
	SetTargetFPS(fps int)

	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool

	// BeginFrame acquires the draw target of the next frame.
	BeginFrame() scene.Canvas

	// EndFrame presents the frame started by BeginFrame.
	EndFrame()

	// Close releases the window and all its resources.
	Close()
}
