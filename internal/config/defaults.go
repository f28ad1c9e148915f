package config

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Toggle: ToggleConfig{
			Values:   []string{"Day", "Week", "Month"},
			Duration: "300ms",
			Easing:   "ease-in-out",
			Height:   3,
			InsetX:   1,
			InsetY:   1,
			FPS:      60,
		},
		Theme: ThemeConfig{
			ContainerBackground: "#0a0a0a",
			HighlightBackground: "#fab283",
			HighlightText:       "#0a0a0a",
			InactiveBackground:  "#1e1e1e",
			InactiveText:        "#808080",
			Bold:                true,
			Padding:             2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "",
		},
	}
}
