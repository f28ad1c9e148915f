package togglegroup

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type source int

const (
	sourceBlank source = iota
	sourceHighlight
	sourceInactive
)

// layout is the geometry of one rendered frame. Columns and rows are in
// canvas coordinates: the highlight layer sits at the origin, the inactive
// layer at the inset.
type layout struct {
	width  int // bar width, inset excluded
	height int // bar height, inset excluded
	inset  Inset

	bounds []int // bounds[i]..bounds[i+1] is region i

	panelLeft  int
	panelRight int

	lo, hi int // lowered span
}

func newLayout(n, width, height int, inset Inset, offset float64, lo, hi int) layout {
	l := layout{
		width:  width,
		height: height,
		inset:  inset,
		bounds: make([]int, n+1),
		lo:     lo,
		hi:     hi,
	}
	for i := range l.bounds {
		l.bounds[i] = roundDiv(i*width, n)
	}
	l.panelLeft = l.column(offset)
	l.panelRight = l.column(offset + 100/float64(n))
	return l
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}

// column converts a percentage of the bar width to a clamped column.
func (l layout) column(pct float64) int {
	c := int(math.Round(pct * float64(l.width) / 100))
	return min(max(c, 0), l.width)
}

// region returns the region containing bar column c, or -1.
func (l layout) region(c int) int {
	if c < 0 || c >= l.width {
		return -1
	}
	for i := 0; i+1 < len(l.bounds); i++ {
		if c >= l.bounds[i] && c < l.bounds[i+1] {
			return i
		}
	}
	return -1
}

func (l layout) canvasWidth() int {
	return l.width + l.inset.X
}

func (l layout) canvasHeight() int {
	return l.height + l.inset.Y
}

// source decides which layer is visible at canvas cell (r, c). A raised
// inactive button covers the highlight; a lowered one shows through only
// where the highlight panel does not reach.
func (l layout) source(r, c int) source {
	button := -1
	if r >= l.inset.Y && r < l.inset.Y+l.height {
		button = l.region(c - l.inset.X)
	}
	lowered := button >= 0 && l.lo <= button && button <= l.hi

	if button >= 0 && !lowered {
		return sourceInactive
	}
	if r < l.height && c >= l.panelLeft && c < l.panelRight {
		return sourceHighlight
	}
	if button >= 0 {
		return sourceInactive
	}
	return sourceBlank
}

// View renders the bar.
func (m Model) View() string {
	n := len(m.values)
	if n == 0 {
		return ""
	}

	lo, hi := m.Span()
	l := newLayout(n, m.barWidth(), m.height, m.inset, m.Offset(), lo, hi)

	highlight := m.layer(l, m.styles.highlight(), Inset{})
	inactive := m.layer(l, m.styles.inactive(), m.inset)
	blank := m.styles.blank()

	rows := make([]string, l.canvasHeight())
	for r := range rows {
		var b strings.Builder
		c := 0
		for c < l.canvasWidth() {
			src := l.source(r, c)
			end := c + 1
			for end < l.canvasWidth() && l.source(r, end) == src {
				end++
			}
			switch src {
			case sourceHighlight:
				b.WriteString(ansi.Cut(highlight[r], c, end))
			case sourceInactive:
				row := r - l.inset.Y
				b.WriteString(ansi.Cut(inactive[row], c-l.inset.X, end-l.inset.X))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", end-c)))
			}
			c = end
		}
		rows[r] = b.String()
	}

	canvas := strings.Join(rows, "\n")
	if m.zones != nil {
		canvas = m.zones.Mark(m.ZoneID(), canvas)
	}
	return m.styles.Container.Render(canvas)
}

// layer renders every label across the full bar width, one line per row.
// Labels are placed against the layer's shift so that both layers draw
// text in the same canvas cells; only the backgrounds are offset.
func (m Model) layer(l layout, st lipgloss.Style, shift Inset) []string {
	labelRow := min(max((l.height-1)/2-shift.Y, 0), l.height-1)
	pad := m.styles.padding()

	lines := make([]string, l.height)
	for r := range lines {
		var b strings.Builder
		for i, v := range m.values {
			w := l.bounds[i+1] - l.bounds[i]
			if w <= 0 {
				continue
			}
			text := ""
			if r == labelRow {
				text = fitLabel(v, w, pad)
			}
			b.WriteString(st.Render(place(text, w, shift.X)))
		}
		lines[r] = b.String()
	}
	return lines
}

// fitLabel truncates v to a single line that leaves room for padding.
func fitLabel(v string, w, pad int) string {
	v = strings.ReplaceAll(v, "\n", " ")
	room := w - pad
	if room < 1 {
		room = w
	}
	if ansi.StringWidth(v) <= room {
		return v
	}
	return ansi.Truncate(v, room, "…")
}

// place centres s in w columns, moved shift columns to the left.
func place(s string, w, shift int) string {
	sw := ansi.StringWidth(s)
	if sw >= w {
		return ansi.Truncate(s, w, "")
	}
	left := max((w-sw)/2-shift, 0)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// barWidth is the width of one layer, inset and container frame excluded.
func (m Model) barWidth() int {
	n := len(m.values)
	if m.width > 0 {
		w := m.width - m.inset.X - m.styles.Container.GetHorizontalFrameSize()
		return max(w, n)
	}

	widest := 1
	for _, v := range m.values {
		widest = max(widest, ansi.StringWidth(v))
	}
	return (widest + m.styles.padding()) * n
}

// RegionAt returns the option under canvas cell (x, y), or -1. The canvas is
// the bar inside its container, with the highlight layer's top-left cell at
// (0, 0). The inactive layer is tested first since it sits on top.
func (m Model) RegionAt(x, y int) int {
	n := len(m.values)
	if n == 0 {
		return -1
	}

	l := newLayout(n, m.barWidth(), m.height, m.inset, 0, 0, 0)
	if y >= m.inset.Y && y < m.inset.Y+m.height {
		if i := l.region(x - m.inset.X); i >= 0 {
			return i
		}
	}
	if y >= 0 && y < m.height {
		return l.region(x)
	}
	return -1
}
