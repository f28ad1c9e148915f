package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gabe/togglebar/internal/anim"
)

var (
	// ErrNoValues is returned when the toggle has no options
	ErrNoValues = errors.New("toggle.values must not be empty")

	// ErrInvalidColor is returned when a theme colour is not a #rrggbb hex value
	ErrInvalidColor = errors.New("invalid theme color")
)

// Config holds the togglebar configuration
type Config struct {
	Toggle  ToggleConfig  `toml:"toggle"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
}

type ToggleConfig struct {
	Values   []string `toml:"values"`
	Duration string   `toml:"duration"`
	Easing   string   `toml:"easing"`
	Height   int      `toml:"height"`
	InsetX   int      `toml:"inset_x"`
	InsetY   int      `toml:"inset_y"`
	FPS      int      `toml:"fps"`
}

// ThemeConfig colours are #rrggbb. An empty text colour is derived from its
// background.
type ThemeConfig struct {
	ContainerBackground string `toml:"container_background"`
	HighlightBackground string `toml:"highlight_background"`
	HighlightText       string `toml:"highlight_text"`
	InactiveBackground  string `toml:"inactive_background"`
	InactiveText        string `toml:"inactive_text"`
	Bold                bool   `toml:"bold"`
	Padding             int    `toml:"padding"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// AnimationDuration parses Toggle.Duration
func (t ToggleConfig) AnimationDuration() (time.Duration, error) {
	d, err := time.ParseDuration(t.Duration)
	if err != nil {
		return 0, fmt.Errorf("toggle.duration: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("toggle.duration: negative duration %s", d)
	}
	return d, nil
}

// Validate checks the config for values the toggle cannot use
func (c *Config) Validate() error {
	if len(c.Toggle.Values) == 0 {
		return ErrNoValues
	}
	if _, err := c.Toggle.AnimationDuration(); err != nil {
		return err
	}
	if _, err := anim.ParseEasing(c.Toggle.Easing); err != nil {
		return fmt.Errorf("toggle.easing: %w", err)
	}
	if c.Toggle.Height < 1 {
		return fmt.Errorf("toggle.height: must be at least 1, got %d", c.Toggle.Height)
	}
	if c.Toggle.InsetX < 0 || c.Toggle.InsetY < 0 {
		return fmt.Errorf("toggle.inset: must not be negative")
	}
	if c.Theme.Padding < 0 {
		return fmt.Errorf("theme.padding: must not be negative")
	}

	colors := []struct {
		key      string
		value    string
		optional bool
	}{
		{"theme.container_background", c.Theme.ContainerBackground, false},
		{"theme.highlight_background", c.Theme.HighlightBackground, false},
		{"theme.highlight_text", c.Theme.HighlightText, true},
		{"theme.inactive_background", c.Theme.InactiveBackground, false},
		{"theme.inactive_text", c.Theme.InactiveText, true},
	}
	for _, col := range colors {
		if col.value == "" && col.optional {
			continue
		}
		if _, err := colorful.Hex(col.value); err != nil {
			return fmt.Errorf("%w: %s = %q", ErrInvalidColor, col.key, col.value)
		}
	}
	return nil
}
