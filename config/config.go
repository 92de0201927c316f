// Package config reads the process settings from the environment.
// The window itself is not configurable.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
)

const (
	EnvBackend  = "FIRSTWINDOW_BACKEND"
	EnvLogLevel = "FIRSTWINDOW_LOG_LEVEL"
	EnvProfile  = "FIRSTWINDOW_PROFILE"

	EnvWGPUForceFallbackAdapter = "WGPU_FORCE_FALLBACK_ADAPTER"
	EnvWGPULogLevel             = "WGPU_LOG_LEVEL"
)

// log levels understood by the native wgpu library
var wgpuLogLevels = []string{"off", "error", "warn", "info", "debug", "trace"}

var ErrInvalid = errors.New("invalid configuration")

type Backend string

const (
	BackendRaylib Backend = "raylib"
	BackendWGPU   Backend = "wgpu"
)

type Profile string

const (
	ProfileNone Profile = ""
	ProfileCPU  Profile = "cpu"
	ProfileMem  Profile = "mem"
)

type Config struct {
	Backend  Backend
	LogLevel slog.Level
	Profile  Profile

	// settings of the wgpu backend
	WGPUForceFallbackAdapter bool
	WGPULogLevel             string
}

func Default() Config {
	return Config{
		Backend:  BackendRaylib,
		LogLevel: slog.LevelInfo,
		Profile:  ProfileNone,
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration using getenv. Unset variables keep their default.
func LoadFrom(getenv func(key string) string) (Config, error) {
	conf := Default()

	if value := normalize(getenv(EnvBackend)); value != "" {
		switch backend := Backend(value); backend {
		case BackendRaylib, BackendWGPU:
			conf.Backend = backend
		default:
			return conf, fmt.Errorf("%w: %s=%q, expected %q or %q",
				ErrInvalid, EnvBackend, value, BackendRaylib, BackendWGPU)
		}
	}

	if value := normalize(getenv(EnvLogLevel)); value != "" {
		if err := conf.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return conf, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvLogLevel, err)
		}
	}

	if value := normalize(getenv(EnvProfile)); value != "" {
		switch profile := Profile(value); profile {
		case ProfileCPU, ProfileMem:
			conf.Profile = profile
		default:
			return conf, fmt.Errorf("%w: %s=%q, expected %q or %q",
				ErrInvalid, EnvProfile, value, ProfileCPU, ProfileMem)
		}
	}

	if value := normalize(getenv(EnvWGPUForceFallbackAdapter)); value != "" {
		force, err := strconv.ParseBool(value)
		if err != nil {
			return conf, fmt.Errorf("%w: %s=%q, expected a boolean", ErrInvalid, EnvWGPUForceFallbackAdapter, value)
		}

		conf.WGPUForceFallbackAdapter = force
	}

	if value := normalize(getenv(EnvWGPULogLevel)); value != "" {
		if !slices.Contains(wgpuLogLevels, value) {
			return conf, fmt.Errorf("%w: %s=%q, expected one of %s",
				ErrInvalid, EnvWGPULogLevel, value, strings.Join(wgpuLogLevels, ", "))
		}

		conf.WGPULogLevel = value
	}

	return conf, nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
