package pulse

import (
	"image/color"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type ClearCommand struct {
	ctx *Context
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

// Clear fills the whole target with the given color.
func (c *ClearCommand) Clear(target *RenderTarget, color color.RGBA) {
	enc := c.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ClearTexture"})
	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearTexture",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: ClearValue(color, target.Format),
			},
		},
	})

	pass.End()

	// encode into a command buffer
	buf := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearTexture"})
	defer buf.Release()

	c.ctx.Submit(buf)
}
