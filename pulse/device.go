package pulse

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Options configure the creation of a Context.
type Options struct {
	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool

	// LogLevel of the native wgpu library: off, error, warn, info, debug or trace.
	// Empty keeps the library default.
	LogLevel string
}

var logLevels = map[string]wgpu.LogLevel{
	"off":   wgpu.LogLevelOff,
	"error": wgpu.LogLevelError,
	"warn":  wgpu.LogLevelWarn,
	"info":  wgpu.LogLevelInfo,
	"debug": wgpu.LogLevelDebug,
	"trace": wgpu.LogLevelTrace,
}

// logLevelOf maps the name of a log level to the wgpu log level.
func logLevelOf(name string) (wgpu.LogLevel, bool) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

func New(sd *wgpu.SurfaceDescriptor, opts Options) (st *Context, err error) {
	if opts.LogLevel != "" {
		level, ok := logLevelOf(opts.LogLevel)
		if !ok {
			return nil, fmt.Errorf("unknown wgpu log level %q", opts.LogLevel)
		}

		wgpu.SetLogLevel(level)
	}

	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("Initialized webgpu", slog.Bool("fallbackAdapter", opts.ForceFallbackAdapter))

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
