// Package theme turns configured colours into toggle group styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/togglegroup"
)

// FromConfig builds toggle styles from a validated theme. Text colours left
// empty are derived from their background.
func FromConfig(t config.ThemeConfig) togglegroup.Styles {
	highlightText := t.HighlightText
	if highlightText == "" {
		highlightText = ContrastText(t.HighlightBackground)
	}
	inactiveText := t.InactiveText
	if inactiveText == "" {
		inactiveText = ContrastText(t.InactiveBackground)
	}

	text := lipgloss.NewStyle().Bold(t.Bold).Padding(0, t.Padding)

	return togglegroup.Styles{
		Container:           lipgloss.NewStyle().Background(lipgloss.Color(t.ContainerBackground)),
		HighlightBackground: lipgloss.Color(t.HighlightBackground),
		HighlightText:       lipgloss.Color(highlightText),
		InactiveBackground:  lipgloss.Color(t.InactiveBackground),
		InactiveText:        lipgloss.Color(inactiveText),
		Text:                text,
	}
}

// Default returns the styles of the default configuration.
func Default() togglegroup.Styles {
	return FromConfig(config.DefaultConfig().Theme)
}

// ContrastText picks black or white text for a #rrggbb background,
// whichever reads better. Unparseable backgrounds get white.
func ContrastText(background string) string {
	bg, err := colorful.Hex(background)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Muted blends a colour toward the background, for secondary text such as
// the demo's help and status lines.
func Muted(fg, bg string, amount float64) lipgloss.Color {
	f, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	return lipgloss.Color(f.BlendLab(b, amount).Clamped().Hex())
}
