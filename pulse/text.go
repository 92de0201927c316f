package pulse

import (
	_ "embed"
	"fmt"
	"image"
	"log/slog"
	"math"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/oliverbestmann/firstwindow/scene"
	"github.com/oliverbestmann/firstwindow/typeset"
)

//go:embed text.wgsl
var textShaderCode string

// number of rasterized labels kept on the gpu
const maxLabelTextures = 64

type textUniforms struct {
	targetSize [2]float32
	_          [2]float32
	dest       [4]float32
}

// TextCommand draws labels by rasterizing them on the cpu and
// blitting the resulting texture onto the render target.
type TextCommand struct {
	ctx        *Context
	rasterizer *typeset.Rasterizer

	pipelineCache *PipelineCache[textPipelineConfig]
	samplers      *SamplerCache
	textures      *ResourceCache[scene.Label, *labelTexture]

	bufUniforms *wgpu.Buffer
}

// labelTexture is a rasterized label. bounds is the area of the texture relative
// to the position of the label.
type labelTexture struct {
	*Texture
	bounds image.Rectangle
}

func NewTextCommand(ctx *Context, rasterizer *typeset.Rasterizer) (*TextCommand, error) {
	bufUniforms := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Text.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(textUniforms{})),
	})

	t := &TextCommand{
		ctx:           ctx,
		rasterizer:    rasterizer,
		pipelineCache: NewPipelineCache[textPipelineConfig](ctx),
		samplers:      NewSamplerCache(ctx.Device),
		bufUniforms:   bufUniforms,
	}

	t.textures = NewResourceCache(maxLabelTextures, t.upload)

	return t, nil
}

// DrawText draws the label with its top left corner at the labels position.
// The position and size of the label are in window coordinates and are scaled
// by the scale of the render target.
func (t *TextCommand) DrawText(dest *RenderTarget, label scene.Label) error {
	if label.Text == "" {
		return nil
	}

	label = scaleLabel(label, dest.Scale)

	// the texture does not depend on the position of the label
	key := label
	key.X, key.Y = 0, 0

	texture, err := t.textures.Get(key)
	if err != nil {
		return err
	}

	sampler, err := t.samplers.Get(wgpu.SamplerDescriptor{
		Label:         "Text.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})

	if err != nil {
		return fmt.Errorf("create sampler: %w", err)
	}

	pc := t.pipelineCache.Get(textPipelineConfig{TargetFormat: dest.Format})

	bindGroup := t.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Text.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: texture.View(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
			{
				Binding: 2,
				Buffer:  t.bufUniforms,
				Size:    wgpu.WholeSize,
			},
		},
	})

	defer bindGroup.Release()

	uniforms := textUniforms{
		targetSize: [2]float32{float32(dest.Width), float32(dest.Height)},
		dest:       labelRect(label, texture.bounds),
	}

	t.ctx.WriteBuffer(t.bufUniforms, 0, wgpu.ToBytes([]textUniforms{uniforms}))

	encoder := t.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Text"})
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassText",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    dest.View,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Draw(6, 1, 0, 0)
	pass.End()

	cmdBuffer := encoder.Finish(nil)
	defer cmdBuffer.Release()

	t.ctx.Submit(cmdBuffer)

	return nil
}

// upload rasterizes the label and uploads it into a new texture.
func (t *TextCommand) upload(label scene.Label) (*labelTexture, error) {
	img, err := t.rasterizer.Rasterize(label)
	if err != nil {
		return nil, fmt.Errorf("rasterize %q: %w", label.Text, err)
	}

	texture, err := NewTextureFromImage(t.ctx, "Text."+label.Text, img)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", label.Text, err)
	}

	slog.Debug("Upload label texture",
		slog.String("text", label.Text),
		slog.Int("width", int(texture.Width())),
		slog.Int("height", int(texture.Height())),
	)

	return &labelTexture{Texture: texture, bounds: img.Bounds()}, nil
}

// scaleLabel converts a label from window coordinates into framebuffer pixels.
func scaleLabel(label scene.Label, scale float32) scene.Label {
	if scale <= 0 || scale == 1 {
		return label
	}

	scaled := func(value int32) int32 {
		return int32(math.Round(float64(value) * float64(scale)))
	}

	label.X = scaled(label.X)
	label.Y = scaled(label.Y)
	label.Size = max(1, scaled(label.Size))

	return label
}

// labelRect returns x, y, width and height of the area covered by a
// rasterized label with the given bounds.
func labelRect(label scene.Label, bounds image.Rectangle) [4]float32 {
	return [4]float32{
		float32(label.X + int32(bounds.Min.X)),
		float32(label.Y + int32(bounds.Min.Y)),
		float32(bounds.Dx()),
		float32(bounds.Dy()),
	}
}

func (t *TextCommand) Release() {
	t.textures.Release()
	t.samplers.Release()
	t.pipelineCache.Release()
	t.bufUniforms.Release()
}

type textPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf textPipelineConfig) Specialize(dev *wgpu.Device) *wgpu.RenderPipeline {
	slog.Info("Create RenderPipeline for text", slog.Any("format", conf.TargetFormat))

	shader := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Text.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: textShaderCode},
	})

	defer shader.Release()

	blend := wgpu.BlendStateAlphaBlending

	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Text.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}
