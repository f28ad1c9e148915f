package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/theme"
)

// OpenCode theme colors (dark mode)
var (
	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
	successColor   = lipgloss.Color("#7fd88f")
)

// chromeStyles are the demo's own styles around the toggle group.
type chromeStyles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Toast  lipgloss.Style
	Muted  lipgloss.Style
	Screen lipgloss.Style
}

// newChromeStyles derives the surrounding styles from the configured theme
// so a hot-reloaded palette restyles the whole screen.
func newChromeStyles(t config.ThemeConfig) chromeStyles {
	bg := lipgloss.Color(t.ContainerBackground)
	base := lipgloss.NewStyle().Background(bg)
	accent := lipgloss.Color(t.HighlightBackground)

	return chromeStyles{
		Title:  base.Foreground(textColor).Bold(true),
		Label:  base.Foreground(accent).Bold(true),
		Value:  base.Foreground(textColor),
		Toast:  base.Foreground(successColor),
		Muted:  base.Foreground(theme.Muted(string(textMutedColor), t.ContainerBackground, 0.2)),
		Screen: base.Padding(screenPadTop, screenPadLeft),
	}
}

func (s chromeStyles) help() help.Styles {
	st := help.New().Styles
	st.ShortKey = s.Value.Bold(true)
	st.ShortDesc = s.Muted
	st.ShortSeparator = s.Muted
	st.FullKey = st.ShortKey
	st.FullDesc = st.ShortDesc
	st.FullSeparator = st.ShortSeparator
	return st
}
