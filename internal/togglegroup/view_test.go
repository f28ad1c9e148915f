package togglegroup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutBounds(t *testing.T) {
	l := newLayout(3, 10, 3, DefaultInset, 0, 0, 0)

	assert.Equal(t, []int{0, 3, 7, 10}, l.bounds)
	assert.Equal(t, 0, l.region(0))
	assert.Equal(t, 1, l.region(3))
	assert.Equal(t, 1, l.region(6))
	assert.Equal(t, 2, l.region(9))
	assert.Equal(t, -1, l.region(10))
	assert.Equal(t, -1, l.region(-1))
}

func TestLayoutPanelFollowsOffset(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		offset    float64
		wantLeft  int
		wantRight int
	}{
		{"first of three", 3, 0, 0, 10},
		{"second of three", 3, 100.0 / 3, 10, 20},
		{"last of three", 3, 200.0 / 3, 20, 30},
		{"midway", 3, 50, 15, 25},
		{"single option spans all", 1, 0, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(tt.n, 30, 3, DefaultInset, tt.offset, 0, 0)
			assert.Equal(t, tt.wantLeft, l.panelLeft)
			assert.Equal(t, tt.wantRight, l.panelRight)
		})
	}
}

func TestLayoutSourceAtRest(t *testing.T) {
	// Option 1 of 3 selected and settled: only button 1 sits beneath the panel.
	l := newLayout(3, 30, 3, Inset{X: 1, Y: 1}, 100.0/3, 1, 1)

	tests := []struct {
		name string
		r, c int
		want source
	}{
		{"selected button shows highlight", 1, 15, sourceHighlight},
		{"other button covers", 1, 5, sourceInactive},
		{"top strip under panel", 0, 15, sourceHighlight},
		{"top strip outside panel", 0, 5, sourceBlank},
		{"bottom inset row of selected button", 3, 15, sourceInactive},
		{"left inset column", 2, 0, sourceBlank},
		{"right inset column", 2, 30, sourceInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.source(tt.r, tt.c))
		})
	}
}

func TestLayoutSourceDuringTransition(t *testing.T) {
	// Moving from 0 to 2, halfway: panel spans columns 15..25.
	l := newLayout(3, 30, 3, Inset{}, 50, 0, 2)

	assert.Equal(t, sourceInactive, l.source(1, 5), "lowered button outside the panel")
	assert.Equal(t, sourceHighlight, l.source(1, 16), "panel passes over button 1")
	assert.Equal(t, sourceHighlight, l.source(1, 22), "panel passes over button 2")
	assert.Equal(t, sourceInactive, l.source(1, 27))
}

func TestLayoutRaisedButtonHidesPanel(t *testing.T) {
	// Interrupted transition: panel still over button 2, span is 0..1.
	l := newLayout(3, 30, 3, Inset{}, 55, 0, 1)

	assert.Equal(t, sourceInactive, l.source(1, 22))
	assert.Equal(t, sourceHighlight, l.source(1, 18))
}

func TestViewDimensions(t *testing.T) {
	m, _, _ := newTestGroup([]string{"Day", "Week", "Month"})
	m.SetWidth(31)

	lines := strings.Split(ansi.Strip(m.View()), "\n")

	require.Len(t, lines, m.Height())
	for i, line := range lines {
		assert.Equal(t, 31, ansi.StringWidth(line), "line %d", i)
	}
	assert.Equal(t, 31, m.Width())
}

func TestViewShowsEveryLabel(t *testing.T) {
	m, clock, _ := newTestGroup([]string{"Day", "Week", "Month"})
	m.SetWidth(31)

	for _, sel := range []int{0, 1, 2} {
		m.Select(sel)
		clock.Advance(DefaultDuration / 2)

		out := ansi.Strip(m.View())
		for _, v := range []string{"Day", "Week", "Month"} {
			assert.Contains(t, out, v, "selection %d", sel)
		}
	}
}

func TestViewNaturalWidth(t *testing.T) {
	m := New([]string{"A", "Longer"}, WithInset(Inset{}))

	// widest label plus default padding, per region
	assert.Equal(t, (6+4)*2, m.Width())
	assert.Equal(t, DefaultHeight, m.Height())

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	assert.Equal(t, "    A       Longer  ", lines[1])
}

func TestViewSingleOption(t *testing.T) {
	m := New([]string{"Only"}, WithInset(Inset{}))
	m.SetWidth(12)

	lines := strings.Split(ansi.Strip(m.View()), "\n")

	require.Len(t, lines, DefaultHeight)
	assert.Equal(t, "    Only    ", lines[1])
}

func TestViewAlignsLabelsAcrossLayers(t *testing.T) {
	m, clock, _ := newTestGroup([]string{"Day", "Week", "Month"})
	m.SetWidth(31)
	m.Select(2)
	clock.Advance(DefaultDuration / 3)

	lines := strings.Split(ansi.Strip(m.View()), "\n")

	// the inset shifts backgrounds only; text stays on one row
	assert.Equal(t, "   Day       Week     Month   ", lines[1][:30])
	for _, i := range []int{0, 2, 3} {
		assert.Empty(t, strings.TrimSpace(lines[i]), "line %d", i)
	}
}

func TestPlace(t *testing.T) {
	assert.Equal(t, "  ab  ", place("ab", 6, 0))
	assert.Equal(t, " ab   ", place("ab", 6, 1))
	assert.Equal(t, "ab    ", place("ab", 6, 5))
	assert.Equal(t, "abc", place("abcdef", 3, 0))
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		width int
		pad   int
		want  string
	}{
		{"fits", "Day", 10, 4, "Day"},
		{"truncated with ellipsis", "Monthly", 7, 4, "Mo…"},
		{"padding dropped when too narrow", "Monthly", 3, 4, "Mo…"},
		{"newlines flattened", "a\nb", 10, 0, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitLabel(tt.label, tt.width, tt.pad))
		})
	}
}
