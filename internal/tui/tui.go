package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/logging"
	"github.com/gabe/togglebar/internal/theme"
	"github.com/gabe/togglebar/internal/togglegroup"
)

const (
	screenPadTop  = 1
	screenPadLeft = 2
	maxToasts     = 3
)

// toastExpiredMsg fires toastLifetime after a push.
type toastExpiredMsg struct {
	at time.Time
}

// configReloadedMsg carries a config picked up by the file watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

type keyMap struct {
	group togglegroup.KeyMap
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.group.ShortHelp(), k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the demo screen hosting a single toggle group
type Model struct {
	group  togglegroup.Model
	help   help.Model
	keys   keyMap
	styles chromeStyles
	toasts *ToastQueue
	zones  *zone.Manager

	updates <-chan *config.Config
	log     zerolog.Logger

	width  int
	height int
}

// New creates the demo model from cfg. updates may be nil; when set, each
// config received restyles the bar.
func New(cfg *config.Config, updates <-chan *config.Config) (Model, error) {
	opts, err := theme.GroupOptions(cfg)
	if err != nil {
		return Model{}, err
	}

	log := logging.Component("tui")
	toasts := NewToastQueue(maxToasts)
	zones := zone.New()
	opts = append(opts,
		togglegroup.WithZones(zones),
		togglegroup.WithOnSelect(func(value string) {
			toasts.Push(Toast{Value: value, At: time.Now()})
			log.Info().Str("value", value).Msg("selected")
		}),
	)
	group := togglegroup.New(cfg.Toggle.Values, opts...)

	styles := newChromeStyles(cfg.Theme)
	h := help.New()
	h.Styles = styles.help()

	return Model{
		group:  group,
		help:   h,
		styles: styles,
		toasts: toasts,
		zones:  zones,
		keys: keyMap{
			group: group.KeyMap(),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		updates: updates,
		log:     log,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return waitForConfig(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.group.SetWidth(msg.Width - 2*screenPadLeft)
		m.help.Width = msg.Width - 2*screenPadLeft
		return m, nil

	case toastExpiredMsg:
		m.toasts.Expire(msg.at)
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, waitForConfig(m.updates)

	case togglegroup.SettledMsg:
		m.log.Debug().Int("index", msg.Index).Str("value", msg.Value).Msg("highlight settled")
		return m, nil
	}

	before := m.toasts.Pushed()
	var cmd tea.Cmd
	m.group, cmd = m.group.Update(msg)
	if m.toasts.Pushed() != before {
		cmd = tea.Batch(cmd, expireToast())
	}
	return m, cmd
}

// applyConfig restyles the bar. The option set is fixed for the lifetime of
// the group, so changed values only take effect on restart.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.group.SetStyles(theme.FromConfig(cfg.Theme))
	m.styles = newChromeStyles(cfg.Theme)
	m.help.Styles = m.styles.help()

	if strings.Join(cfg.Toggle.Values, "\x00") != strings.Join(m.group.Values(), "\x00") {
		m.log.Warn().Strs("values", cfg.Toggle.Values).Msg("toggle values changed; restart to apply")
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("togglebar"))
	b.WriteString("\n\n")
	b.WriteString(m.group.View())
	b.WriteString("\n\n")

	status := m.styles.Label.Render("selected ") + m.styles.Value.Render(m.group.Value())
	if m.group.Animating() {
		status += m.styles.Muted.Render(fmt.Sprintf("  (%.1f%%)", m.group.Offset()))
	}
	b.WriteString(status)
	b.WriteString("\n")

	for _, t := range m.toasts.Items() {
		b.WriteString("\n")
		b.WriteString(m.styles.Toast.Render(fmt.Sprintf("onSelect(%q)", t.Value)))
	}
	b.WriteString(strings.Repeat("\n", maxToasts-m.toasts.Len()+1))
	b.WriteString(m.help.View(m.keys))

	screen := m.styles.Screen
	if m.width > 0 && m.height > 0 {
		screen = screen.Width(m.width).Height(m.height)
	}
	return m.zones.Scan(screen.Render(lipgloss.JoinVertical(lipgloss.Left, b.String())))
}

func expireToast() tea.Cmd {
	return tea.Tick(toastLifetime, func(t time.Time) tea.Msg {
		return toastExpiredMsg{at: t}
	})
}

func waitForConfig(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

var startProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Run starts the interactive demo
func Run(cfg *config.Config, updates <-chan *config.Config) error {
	m, err := New(cfg, updates)
	if err != nil {
		return err
	}
	defer m.zones.Close()
	return startProgram(m)
}
