package togglegroup

import "github.com/charmbracelet/lipgloss"

// Styles are the cosmetic overrides of a toggle group. Each is applied
// as given to its layer.
type Styles struct {
	// Container wraps the whole bar. Its background fills cells that no
	// layer covers.
	Container lipgloss.Style

	HighlightBackground lipgloss.TerminalColor
	HighlightText       lipgloss.TerminalColor
	InactiveBackground  lipgloss.TerminalColor
	InactiveText        lipgloss.TerminalColor

	// Text is shared by both layers. Horizontal padding is reserved around
	// each label; other attributes (bold, italic...) are applied to it.
	Text lipgloss.Style
}

// DefaultStyles returns a dark palette with a peach highlight.
func DefaultStyles() Styles {
	return Styles{
		Container:           lipgloss.NewStyle().Background(lipgloss.Color("#0a0a0a")),
		HighlightBackground: lipgloss.Color("#fab283"),
		HighlightText:       lipgloss.Color("#0a0a0a"),
		InactiveBackground:  lipgloss.Color("#1e1e1e"),
		InactiveText:        lipgloss.Color("#808080"),
		Text:                lipgloss.NewStyle().Bold(true).Padding(0, 2),
	}
}

func (s Styles) highlight() lipgloss.Style {
	return s.button(s.HighlightText, s.HighlightBackground)
}

func (s Styles) inactive() lipgloss.Style {
	return s.button(s.InactiveText, s.InactiveBackground)
}

func (s Styles) button(fg, bg lipgloss.TerminalColor) lipgloss.Style {
	st := s.Text.UnsetPadding().UnsetWidth().UnsetMaxWidth()
	if fg != nil {
		st = st.Foreground(fg)
	}
	if bg != nil {
		st = st.Background(bg)
	}
	return st
}

func (s Styles) blank() lipgloss.Style {
	st := lipgloss.NewStyle()
	if bg := s.Container.GetBackground(); bg != nil {
		st = st.Background(bg)
	}
	return st
}

func (s Styles) padding() int {
	return s.Text.GetPaddingLeft() + s.Text.GetPaddingRight()
}
