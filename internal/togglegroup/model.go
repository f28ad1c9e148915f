// Package togglegroup implements a segmented toggle bar: a row of mutually
// exclusive text options with a highlight panel that slides between them.
//
// The bar is drawn as two layers. The highlight layer renders every label in
// the highlight colours and is masked to a panel one region wide whose left
// edge is an animated offset. The inactive layer renders every label in the
// inactive colours, is shifted by a small inset and receives input. Buttons
// inside the span between the previous and the current selection are drawn
// beneath the highlight layer so the panel passes over them while it moves.
//
// Previous only advances when a transition completes. When a new tap
// interrupts a transition, the span still starts at the option the
// interrupted transition came from, so the option it was heading to is
// raised again and covers the panel while the panel slides back across it.
//
// Mouse input is resolved through a bubblezone manager: the bar marks its
// canvas in View and the host scans the final frame. Without a manager the
// bar ignores mouse messages.
//
// The option set must not be empty. An empty set renders nothing and ignores
// input.
package togglegroup

import (
	"fmt"
	"sync/atomic"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"github.com/gabe/togglebar/internal/anim"
)

const (
	// DefaultDuration is how long the highlight takes to reach a new option.
	DefaultDuration = 300 * time.Millisecond

	// DefaultHeight is the bar height in rows, inset excluded.
	DefaultHeight = 3

	// DefaultFPS is the frame rate of the highlight animation.
	DefaultFPS = 60
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Inset is the offset of the inactive layer relative to the highlight layer.
type Inset struct {
	X int
	Y int
}

// DefaultInset mirrors the small top-left shift that gives the bar its
// border.
var DefaultInset = Inset{X: 1, Y: 1}

// Model is a toggle group. Selection and animation state are only mutated by
// Select and Update.
type Model struct {
	id     int
	values []string

	selected int
	previous int
	offset   anim.Timing
	gen      int

	duration time.Duration
	interval time.Duration
	now      func() time.Time

	onSelect func(value string)
	styles   Styles
	keys     KeyMap

	width  int
	height int
	inset  Inset

	zones *zone.Manager
}

// Option configures a Model.
type Option func(*Model)

// WithOnSelect sets the callback invoked with the tapped value.
func WithOnSelect(fn func(value string)) Option {
	return func(m *Model) {
		m.onSelect = fn
	}
}

// WithStyles overrides the default colours and text style.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithDuration sets the transition length.
func WithDuration(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.duration = d
		}
	}
}

// WithEasing sets the transition curve.
func WithEasing(e anim.Easing) Option {
	return func(m *Model) {
		m.offset.SetEasing(e)
	}
}

// WithHeight sets the bar height in rows.
func WithHeight(h int) Option {
	return func(m *Model) {
		if h > 0 {
			m.height = h
		}
	}
}

// WithInset sets the inactive layer offset.
func WithInset(in Inset) Option {
	return func(m *Model) {
		if in.X >= 0 && in.Y >= 0 {
			m.inset = in
		}
	}
}

// WithFPS sets how often animation frames are scheduled.
func WithFPS(fps int) Option {
	return func(m *Model) {
		if fps > 0 {
			m.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithClock replaces the time source used to sample the animation.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithZones enables mouse input. The host must pass its final view through
// zones.Scan.
func WithZones(zones *zone.Manager) Option {
	return func(m *Model) {
		m.zones = zones
	}
}

// WithKeyMap replaces the keyboard bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// New creates a toggle group over values with the first option selected.
// values is copied.
func New(values []string, opts ...Option) Model {
	m := Model{
		id:       nextID(),
		values:   append([]string(nil), values...),
		offset:   anim.NewTiming(0, anim.EaseInOut),
		duration: DefaultDuration,
		interval: time.Second / DefaultFPS,
		now:      time.Now,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		height:   DefaultHeight,
		inset:    DefaultInset,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID identifies this instance in frame and settle messages.
func (m Model) ID() int {
	return m.id
}

// ZoneID is the bubblezone id the bar's canvas is marked with.
func (m Model) ZoneID() string {
	return fmt.Sprintf("togglegroup-%d", m.id)
}

// Values returns a copy of the option labels.
func (m Model) Values() []string {
	return append([]string(nil), m.values...)
}

// Selected returns the selected index.
func (m Model) Selected() int {
	return m.selected
}

// Previous returns the index the highlight is moving from. It equals
// Selected once the transition has finished.
func (m Model) Previous() int {
	return m.previous
}

// Value returns the selected label, or "" for an empty option set.
func (m Model) Value() string {
	if len(m.values) == 0 {
		return ""
	}
	return m.values[m.selected]
}

// Offset samples the highlight's left edge, in percent of the bar width.
func (m Model) Offset() float64 {
	return m.offset.Value(m.now())
}

// Target returns the offset the highlight is moving toward.
func (m Model) Target() float64 {
	return m.offset.Target()
}

// Animating reports whether a transition is in flight.
func (m Model) Animating() bool {
	return !m.offset.Done(m.now())
}

// Span returns the lowest and highest of the previous and selected indices.
func (m Model) Span() (lo, hi int) {
	lo, hi = m.previous, m.selected
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Lowered reports whether button i is drawn beneath the highlight layer.
func (m Model) Lowered(i int) bool {
	lo, hi := m.Span()
	return lo <= i && i <= hi
}

// SetWidth sets the total width available to the bar, inset and container
// frame included.
// Zero sizes the bar to its labels.
func (m *Model) SetWidth(w int) {
	m.width = max(w, 0)
}

// SetStyles restyles the bar without touching selection or animation.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// Styles returns the current styles.
func (m Model) Styles() Styles {
	return m.styles
}

// KeyMap returns the keyboard bindings, for use with bubbles/help.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Height returns the rendered height in rows, inset and container frame
// included.
func (m Model) Height() int {
	return m.height + m.inset.Y + m.styles.Container.GetVerticalFrameSize()
}

// Width returns the rendered width in columns, inset and container frame
// included.
func (m Model) Width() int {
	if len(m.values) == 0 {
		return 0
	}
	return m.barWidth() + m.inset.X + m.styles.Container.GetHorizontalFrameSize()
}

func (m Model) target(i int) float64 {
	return float64(i) * 100 / float64(len(m.values))
}
