// Package picker is the Bubble Tea list that coordinates entity rows: it
// owns the selection, applies the intents rows emit and filters the list.
package picker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/drake/stixpick/entity"
	"github.com/drake/stixpick/ui/layout"
	"github.com/drake/stixpick/ui/row"
	"github.com/drake/stixpick/ui/style"
)

// rowsTop is the screen line of the first row: filter bar, then header.
const rowsTop = 2

// chromeHeight counts the filter bar, header and status lines.
const chromeHeight = 3

// EntitiesLoadedMsg delivers the entities to list, in display order.
type EntitiesLoadedMsg struct {
	Entities []entity.Entity
}

// LoadFailedMsg reports that the entities could not be loaded.
type LoadFailedMsg struct {
	Err error
}

type copiedMsg struct {
	id  string
	err error
}

// Config sizes the picker.
type Config struct {
	VisibleRows  int // rows shown before the first WindowSizeMsg
	Placeholders int // loading rows
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copy = write }
}

// WithLoad sets the command that fetches the entities on Init.
func WithLoad(cmd tea.Cmd) Option {
	return func(m *Model) { m.load = cmd }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// intent is a request emitted by a row, applied after the event is handled.
type intent struct {
	toggle *entity.Entity
	label  string
}

// Model is the entity picker.
type Model struct {
	renderer *row.Renderer
	sum      *entity.Summarizer
	styles   style.Styles
	keys     KeyMap
	help     help.Model
	filter   textinput.Model
	header   *layout.Header
	config   Config
	copy     func(string) error
	load     tea.Cmd
	log      zerolog.Logger

	// Data
	loading bool
	loadErr error
	items   []entity.Entity
	visible []entity.Entity
	labels  map[string]bool // active label filters

	// Selection is written only by apply.
	selection *Selection
	intents   []intent

	// View state
	cursor    int
	scrollOff int
	width     int
	height    int
	filtering bool
	status    string
	done      bool
	cancelled bool
}

// New creates a picker in the loading state.
func New(r *row.Renderer, sum *entity.Summarizer, styles style.Styles, cfg Config, opts ...Option) *Model {
	if cfg.VisibleRows <= 0 {
		cfg.VisibleRows = 15
	}
	if cfg.Placeholders <= 0 {
		cfg.Placeholders = 5
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter entities"
	ti.CharLimit = 0
	ti.Width = r.Width() - 2

	m := &Model{
		renderer:  r,
		sum:       sum,
		styles:    styles,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		filter:    ti,
		header:    layout.NewHeader(r.Columns(), styles.Header),
		config:    cfg,
		copy:      clipboard.WriteAll,
		log:       zerolog.Nop(),
		loading:   true,
		labels:    make(map[string]bool),
		selection: NewSelection(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.load
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.adjustScroll()

	case EntitiesLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.items = msg.Entities
		m.refilter()
		m.log.Debug().Int("count", len(msg.Entities)).Msg("entities loaded")

	case LoadFailedMsg:
		m.loading = false
		m.loadErr = msg.Err
		m.log.Error().Err(msg.Err).Msg("load failed")

	case copiedMsg:
		if msg.err != nil {
			m.status = m.styles.Error.Render("copy failed: " + msg.err.Error())
		} else {
			m.status = "copied " + msg.id
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.apply()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		switch msg.String() {
		case "esc", "enter":
			m.filtering = false
			m.filter.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		m.selection.Clear()
		return tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.done = true
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(msg, m.keys.Toggle):
		if e, ok := m.Focused(); ok {
			m.handlers().OnToggle(e, msg)
		}
	case key.Matches(msg, m.keys.Label):
		if i, ok := m.cursorRow(); ok {
			n := int(msg.String()[0] - '1')
			if !m.render(i).ClickLabel(n, msg) {
				m.status = fmt.Sprintf("no label %d on this row", n+1)
			}
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m.filter.Focus()
	case key.Matches(msg, m.keys.ClearFilters):
		m.filter.SetValue("")
		m.labels = make(map[string]bool)
		m.refilter()
	case key.Matches(msg, m.keys.Copy):
		if e, ok := m.Focused(); ok {
			write, id := m.copy, e.ID
			return func() tea.Msg {
				return copiedMsg{id: id, err: write(id)}
			}
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.loading {
		return
	}
	i := m.scrollOff + msg.Y - rowsTop
	if msg.Y < rowsTop || i >= m.scrollOff+m.visibleRows() || i < 0 || i >= len(m.visible) {
		return
	}
	m.cursor = i
	m.render(i).Click(msg.X, msg)
}

// handlers returns the row callbacks. They only record intents.
func (m *Model) handlers() row.Handlers {
	return row.Handlers{
		OnToggle: func(e entity.Entity, _ tea.Msg) {
			m.intents = append(m.intents, intent{toggle: &e})
		},
		OnLabelClick: func(_, _ string, value string, _ tea.Msg) {
			m.intents = append(m.intents, intent{label: value})
		},
	}
}

// apply is the single writer of the selection and label filters.
func (m *Model) apply() {
	if len(m.intents) == 0 {
		return
	}
	refilter := false
	for _, in := range m.intents {
		switch {
		case in.toggle != nil:
			on := m.selection.Toggle(*in.toggle)
			m.log.Debug().Str("id", in.toggle.ID).Bool("selected", on).Msg("toggle")
		case in.label != "":
			if m.labels[in.label] {
				delete(m.labels, in.label)
			} else {
				m.labels[in.label] = true
			}
			refilter = true
			m.log.Debug().Str("label", in.label).Bool("active", m.labels[in.label]).Msg("label filter")
		}
	}
	m.intents = m.intents[:0]
	if refilter {
		m.refilter()
	}
}

// refilter recomputes the visible entities, keeping caller order.
func (m *Model) refilter() {
	candidates := make([]entity.Entity, 0, len(m.items))
	for _, e := range m.items {
		if m.hasLabels(e) {
			candidates = append(candidates, e)
		}
	}

	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.visible = candidates
	} else {
		targets := make([]string, len(candidates))
		for i, e := range candidates {
			targets[i] = m.sum.DisplayValue(e) + " " + m.sum.TypeLabel(e)
		}
		matches := fuzzy.Find(query, targets)
		sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
		m.visible = make([]entity.Entity, len(matches))
		for i, match := range matches {
			m.visible[i] = candidates[match.Index]
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.adjustScroll()
}

func (m *Model) hasLabels(e entity.Entity) bool {
	if len(m.labels) == 0 {
		return true
	}
	found := 0
	for _, l := range entity.Labels(e) {
		if m.labels[l.Value] {
			found++
		}
	}
	return found == len(m.labels)
}

func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.adjustScroll()
}

func (m *Model) adjustScroll() {
	n := m.visibleRows()
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	} else if m.cursor >= m.scrollOff+n {
		m.scrollOff = m.cursor - n + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}
}

func (m *Model) visibleRows() int {
	if m.height == 0 {
		return m.config.VisibleRows
	}
	return max(1, m.height-chromeHeight)
}

func (m *Model) cursorRow() (int, bool) {
	if m.loading || m.cursor < 0 || m.cursor >= len(m.visible) {
		return 0, false
	}
	return m.cursor, true
}

func (m *Model) render(i int) row.Row {
	return m.renderer.Render(m.visible[i], m.selection, m.handlers())
}

// Focused returns the entity under the cursor.
func (m *Model) Focused() (entity.Entity, bool) {
	i, ok := m.cursorRow()
	if !ok {
		return entity.Entity{}, false
	}
	return m.visible[i], true
}

// Visible returns the entities that pass the current filters.
func (m *Model) Visible() []entity.Entity {
	return m.visible
}

// Selection exposes the current selection read-only.
func (m *Model) Selection() row.Selection {
	return m.selection
}

// ActiveLabels returns the label values currently filtering the list.
func (m *Model) ActiveLabels() []string {
	out := make([]string, 0, len(m.labels))
	for l := range m.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Result returns the chosen entities. ok is false when the picker was
// cancelled or is still open.
func (m *Model) Result() ([]entity.Entity, bool) {
	if !m.done || m.cancelled {
		return nil, false
	}
	return m.selection.Entities(), true
}

// View implements tea.Model.
func (m *Model) View() string {
	stack := layout.Stack{Renderers: []layout.Renderer{
		&block{lines: []string{m.filterLine()}},
		m.header,
		&block{lines: m.rowLines()},
		&block{lines: []string{m.statusLine()}},
	}}
	stack.SetWidth(m.width)
	return stack.View()
}

// block is a fixed list of lines clipped to the terminal width.
type block struct {
	lines []string
	width int
}

func (b *block) SetWidth(w int) { b.width = w }

func (b *block) Height() int { return len(b.lines) }

func (b *block) View() string {
	if b.width <= 0 {
		return strings.Join(b.lines, "\n")
	}
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = ansi.Truncate(l, b.width, "")
	}
	return strings.Join(out, "\n")
}

func (m *Model) filterLine() string {
	line := m.filter.View()
	if !m.filtering && m.filter.Value() == "" {
		line = m.styles.Muted.Render("/ to filter")
	}
	if active := m.ActiveLabels(); len(active) > 0 {
		chips := make([]string, len(active))
		for i, l := range active {
			chips[i] = m.styles.ActiveChip.Render(l)
		}
		line += m.styles.FilterBar.Render("  labels: ") + strings.Join(chips, " ")
	}
	return line
}

func (m *Model) rowLines() []string {
	n := m.visibleRows()
	if m.loading {
		p := m.renderer.Placeholder().View()
		lines := make([]string, min(n, m.config.Placeholders))
		for i := range lines {
			lines[i] = p
		}
		return lines
	}
	if m.loadErr != nil {
		return []string{m.styles.Error.Render("  " + m.loadErr.Error())}
	}
	if len(m.visible) == 0 {
		return []string{m.styles.Muted.Render("  No matches")}
	}

	end := min(m.scrollOff+n, len(m.visible))
	lines := make([]string, 0, end-m.scrollOff)
	for i := m.scrollOff; i < end; i++ {
		st := m.styles.Row
		if i == m.cursor {
			st = m.styles.RowFocused
		}
		lines = append(lines, st.Render(m.render(i).View()))
	}
	return lines
}

func (m *Model) statusLine() string {
	left := fmt.Sprintf("%d selected · %d/%d", m.selection.Len(), len(m.visible), len(m.items))
	if m.status != "" {
		left += " · " + m.status
	}
	return m.styles.StatusBar.Render(left) + "  " + m.help.View(m.keys)
}
