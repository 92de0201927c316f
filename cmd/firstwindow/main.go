package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/profile"

	"github.com/oliverbestmann/firstwindow/config"
	"github.com/oliverbestmann/firstwindow/orion"
	"github.com/oliverbestmann/firstwindow/pulse"
	"github.com/oliverbestmann/firstwindow/raylib"
	"github.com/oliverbestmann/firstwindow/window"
)

func init() {
	// windowing and rendering must happen on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Window failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load()

	// configure logging even if the config is invalid, to report the error
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: conf.LogLevel,
	})))

	if err != nil {
		return err
	}

	if prof := startProfile(conf.Profile); prof != nil {
		defer prof.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	platform, err := newPlatform(conf)
	if err != nil {
		return err
	}

	slog.Info("Starting", slog.String("backend", string(conf.Backend)))

	return window.Run(window.RunOptions{
		Platform:  platform,
		Config:    window.DefaultConfig(),
		Interrupt: ctx.Done(),
	})
}

func newPlatform(conf config.Config) (window.Platform, error) {
	switch conf.Backend {
	case config.BackendRaylib:
		return raylib.Platform{}, nil
	case config.BackendWGPU:
		return orion.Platform{
			WGPU: pulse.Options{
				ForceFallbackAdapter: conf.WGPUForceFallbackAdapter,
				LogLevel:             conf.WGPULogLevel,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", conf.Backend)
	}
}

func startProfile(kind config.Profile) interface{ Stop() } {
	switch kind {
	case config.ProfileCPU:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case config.ProfileMem:
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}
}
