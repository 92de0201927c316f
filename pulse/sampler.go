package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// SamplerCache holds the samplers of a single device. Samplers returned by
// Get are owned by the cache, you must not call wgpu.Sampler.Release() on them.
type SamplerCache = ResourceCache[wgpu.SamplerDescriptor, *wgpu.Sampler]

func NewSamplerCache(dev *wgpu.Device) *SamplerCache {
	return NewResourceCache(16, func(desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
		return dev.CreateSampler(&desc), nil
	})
}
