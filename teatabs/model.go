package teatabs

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabkit/core"
	"github.com/jask/tabkit/widgets"
)

// Model is a tab list plus the panel matching the current selection.
type Model struct {
	id       string
	prefixes core.Prefixes
	set      core.Set[string]
	sel      *core.Selection
	nav      *core.Navigator[string]
	keys     KeyMap
	theme    widgets.Theme
	logger   *slog.Logger

	zones     *zone.Manager
	ownsZones bool

	// focusedTab is the key of the tab control holding input focus.
	focusedTab string
	active     bool

	width  int
	height int
}

// tabControl is the mounted control for one tab.
type tabControl struct {
	key string
	m   *Model
}

func (c *tabControl) Focus() { c.m.focusedTab = c.key }

func New(slots []core.Slot[string], opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		id:       uuid.NewString(),
		prefixes: o.prefixes,
		set:      core.Partition(o.prefixes, slots),
		keys:     o.keys,
		theme:    o.theme,
		zones:    o.zones,
		active:   true,
		width:    o.width,
		height:   o.height,
	}
	m.logger = logger.With("tabs", m.id)
	if m.zones == nil {
		m.zones = zone.New()
		m.ownsZones = true
	}

	m.sel = core.NewSelection(m.set.FirstPanelID(),
		core.WithSharedStore(o.sharedStore),
		core.WithOnChange(func(prev, next string) {
			m.logger.Debug("tab selected", "from", prev, "to", next)
		}),
	)

	focus := core.NewFocusRegistry()
	focus.OnMiss = func(key string) {
		m.logger.Debug("focus skipped, control not mounted", "tab", key)
	}
	m.nav = core.NewNavigator(m.set, m.sel, focus, o.policy)
	m.mount()
	return m
}

func (m *Model) mount() {
	for _, t := range m.set.Tabs {
		m.nav.Focus().Register(t.Key, &tabControl{key: t.Key, m: m})
	}
}

// Close unmounts every tab control. Later focus commands become no-ops.
func (m *Model) Close() {
	for _, t := range m.set.Tabs {
		m.nav.Focus().Unregister(t.Key)
	}
	if m.ownsZones {
		m.zones.Close()
	}
}

func (m *Model) ID() string              { return m.id }
func (m *Model) Selected() string        { return m.sel.Get() }
func (m *Model) Select(id string)        { m.sel.Set(id) }
func (m *Model) FocusedTab() string      { return m.focusedTab }
func (m *Model) Focused() bool           { return m.active }
func (m *Model) Focus()                  { m.active = true }
func (m *Model) Blur()                   { m.active = false }
func (m *Model) KeyMap() KeyMap          { return m.keys }
func (m *Model) SharedStore() string     { return m.sel.SharedStore() }
func (m *Model) Slots() core.Set[string] { return m.set }

func (m *Model) Tree() core.Tree[string] {
	return core.BuildTree(m.prefixes, m.set, m.sel.Get())
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Prev):
			m.nav.Move(core.Prev)
		case key.Matches(msg, m.keys.Next):
			m.nav.Move(core.Next)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, t := range m.set.Tabs {
			if m.zones.Get(m.zoneID(t.Key)).InBounds(msg) {
				m.click(t.Key)
				break
			}
		}
	}
	return m, nil
}

// click selects the tab and, like a pointer press on any control, gives it
// focus without going through the focus registry.
func (m *Model) click(tabKey string) {
	if m.nav.Select(tabKey) {
		m.active = true
		m.focusedTab = tabKey
	}
}

func (m *Model) zoneID(tabKey string) string {
	return m.id + ":" + tabKey
}

func (m *Model) View() string {
	out := m.render()
	if m.ownsZones {
		return m.zones.Scan(out)
	}
	return out
}

func (m *Model) render() string {
	tree := m.Tree()
	labels := make([]widgets.TabLabel, 0, len(tree.List.Tabs))
	titles := make(map[string]string, len(tree.List.Tabs))
	for _, t := range tree.List.Tabs {
		labels = append(labels, widgets.TabLabel{
			ID:       t.ID,
			Label:    t.Content,
			Selected: t.Selected,
			Focused:  m.active && t.ID == m.focusedTab,
		})
		titles[t.ID] = t.Content
	}
	bar := widgets.TabBar{
		Tabs:  labels,
		Theme: m.theme,
		Mark: func(id, rendered string) string {
			return m.zones.Mark(m.zoneID(id), rendered)
		},
	}.Render(m.width, 1)

	panel, ok := tree.Visible()
	if !ok || m.height-1 < 3 {
		return bar
	}
	title, found := titles[panel.LabelledBy]
	if !found {
		title = panel.BaseID
	}
	body := widgets.Pane{
		Title:   strings.TrimSpace(title),
		Content: panel.Content,
		Focused: m.active,
		Theme:   m.theme,
	}.Render(m.width, m.height-1)
	if body == "" {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, body)
}
