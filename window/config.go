package window

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrInvalidConfig = errors.New("invalid window config")

// Config holds the fixed properties of a window.
type Config struct {
	Width  int
	Height int
	Title  string

	// frames per second the platform should cap rendering at
	TargetFPS int
}

func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Title:     "Raylib Window",
		TargetFPS: 60,
	}
}

// withDefaults fills every zero field with the value from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Width == 0 {
		c.Width = def.Width
	}

	if c.Height == 0 {
		c.Height = def.Height
	}

	if c.Title == "" {
		c.Title = def.Title
	}

	if c.TargetFPS == 0 {
		c.TargetFPS = def.TargetFPS
	}

	return c
}

func (c Config) Validate() error {
	if err := requirePositive("width", c.Width); err != nil {
		return err
	}

	if err := requirePositive("height", c.Height); err != nil {
		return err
	}

	if err := requirePositive("target fps", c.TargetFPS); err != nil {
		return err
	}

	if c.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidConfig)
	}

	return nil
}

func requirePositive[T constraints.Integer](name string, value T) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, value)
	}

	return nil
}
