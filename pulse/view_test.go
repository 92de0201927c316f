package pulse

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestPickFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			name: "nothing reported",
			want: wgpu.TextureFormatBGRA8Unorm,
		},
		{
			name:    "preferred available",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatBGRA8Unorm,
		},
		{
			name:    "fallback to first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
			want:    wgpu.TextureFormatRGBA8UnormSrgb,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickFormat(tt.formats); got != tt.want {
				t.Errorf("pickFormat(%v) = %v, want %v", tt.formats, got, tt.want)
			}
		})
	}
}

func TestPickAlphaMode(t *testing.T) {
	tests := []struct {
		name  string
		modes []wgpu.CompositeAlphaMode
		want  wgpu.CompositeAlphaMode
	}{
		{
			name: "nil",
			want: wgpu.CompositeAlphaModeAuto,
		},
		{
			name:  "empty",
			modes: []wgpu.CompositeAlphaMode{},
			want:  wgpu.CompositeAlphaModeAuto,
		},
		{
			name:  "first reported",
			modes: []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModePremultiplied},
			want:  wgpu.CompositeAlphaModeOpaque,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickAlphaMode(tt.modes); got != tt.want {
				t.Errorf("pickAlphaMode(%v) = %v, want %v", tt.modes, got, tt.want)
			}
		})
	}
}
