package togglegroup

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances a running transition. Frames from a superseded
// transition are ignored.
type FrameMsg struct {
	id  int
	gen int
}

// SettledMsg is sent once the highlight has come to rest on Index.
type SettledMsg struct {
	ID    int
	Index int
	Value string
}

// Select handles a tap on option i: it selects i, reports values[i] to the
// callback and starts moving the highlight from wherever it currently is.
// Tapping the selected option reports it again and restarts toward the same
// target. Out-of-range indices are ignored.
func (m *Model) Select(i int) tea.Cmd {
	if i < 0 || i >= len(m.values) {
		return nil
	}

	m.selected = i
	if m.onSelect != nil {
		m.onSelect(m.values[i])
	}

	m.offset.Retarget(m.target(i), m.now(), m.duration)
	m.gen++
	return m.frame()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse presses, key presses and animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != m.id || msg.gen != m.gen {
			return m, nil
		}
		if !m.offset.Done(m.now()) {
			return m, m.frame()
		}
		m.previous = m.selected
		return m, m.settled()

	case tea.MouseMsg:
		if m.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		z := m.zones.Get(m.ZoneID())
		if z == nil {
			return m, nil
		}
		x, y := z.Pos(msg)
		if i := m.RegionAt(x, y); i >= 0 {
			cmd := m.Select(i)
			return m, cmd
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.selected > 0 {
			cmd = m.Select(m.selected - 1)
		}
	case key.Matches(msg, m.keys.Next):
		if m.selected < len(m.values)-1 {
			cmd = m.Select(m.selected + 1)
		}
	case key.Matches(msg, m.keys.Jump):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			cmd = m.Select(n - 1)
		}
	}
	return m, cmd
}

func (m Model) frame() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return FrameMsg{id: id, gen: gen}
	})
}

func (m Model) settled() tea.Cmd {
	msg := SettledMsg{ID: m.id, Index: m.selected, Value: m.Value()}
	return func() tea.Msg {
		return msg
	}
}
