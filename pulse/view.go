package pulse

import (
	"log/slog"
	"slices"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View holds the configuration of the surface the window presents.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(ctx *Context) *View {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := pickFormat(caps.Formats)
	alphaMode := pickAlphaMode(caps.AlphaModes)

	return &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   alphaMode,

			// try to reduce input latency
			DesiredMaximumFrameLatency: 1,
		},
	}
}

// pickFormat prefers BGRA8Unorm, as the colors of the scene are given
// without gamma correction. Falls back to the first supported format.
func pickFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	preferred := wgpu.TextureFormatBGRA8Unorm
	if len(formats) == 0 || slices.Contains(formats, preferred) {
		return preferred
	}

	return formats[0]
}

// pickAlphaMode returns the first supported alpha mode, or lets
// the implementation decide if the surface does not report any.
func pickAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(modes) == 0 {
		return wgpu.CompositeAlphaModeAuto
	}

	return modes[0]
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Configure(width, height uint32) {
	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)
}
