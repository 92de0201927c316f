package window

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	want := Config{Width: 1280, Height: 720, Title: "Raylib Window", TargetFPS: 60}
	if config != want {
		t.Errorf("got %+v, want %+v", config, want)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config must be valid: %v", err)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	got := Config{Width: 800, Title: "Other"}.withDefaults()

	want := Config{Width: 800, Height: 720, Title: "Other", TargetFPS: 60}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// negative values are kept so that validation can reject them
	got = Config{Height: -1}.withDefaults()
	if got.Height != -1 {
		t.Errorf("negative height must be kept, got %d", got.Height)
	}

	if err := got.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
