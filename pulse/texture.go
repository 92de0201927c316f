package pulse

import (
	"fmt"
	"image"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	width  uint32
	height uint32
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

func NewTexture(ctx *Context, opts NewTextureOptions) *Texture {
	texture := ctx.CreateTexture(&wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})

	return &Texture{
		texture:     texture,
		textureView: texture.CreateView(nil),
		width:       opts.Width,
		height:      opts.Height,
	}
}

// NewTextureFromImage uploads the image into a new rgba texture.
func NewTextureFromImage(ctx *Context, label string, img *image.NRGBA) (*Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image %q is empty", label)
	}

	t := NewTexture(ctx, NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Label:  label,
	})

	t.writePixels(ctx, img.Pix, uint32(img.Stride))

	return t, nil
}

func (t *Texture) writePixels(ctx *Context, pixels []byte, stride uint32) {
	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  stride,
		RowsPerImage: t.height,
	}

	size := &wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Aspect:   wgpu.TextureAspectAll,
	}

	// send data to the gpu
	ctx.WriteTexture(dest, pixels, layout, size)
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

// Release releases the texture and its view. The texture must not be used afterwards.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}
