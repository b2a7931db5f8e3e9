package picker

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/stixpick/entity"
	"github.com/drake/stixpick/ui/layout"
	"github.com/drake/stixpick/ui/row"
	"github.com/drake/stixpick/ui/style"
)

func fixtures() []entity.Entity {
	return []entity.Entity{
		{
			ID: "r1", Type: entity.TypeReport, Name: "Weekly Brief",
			Labels: []entity.Label{{Value: "apt28"}, {Value: "phishing"}},
		},
		{
			ID: "m1", Type: entity.TypeMalware, Name: "Emotet",
			Labels: []entity.Label{{Value: "phishing"}},
		},
		{ID: "ip", Type: entity.TypeIPv4Addr, ObservableValue: "10.0.0.1"},
	}
}

func newModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	sum := entity.NewSummarizer(nil, nil)
	r, err := row.NewRenderer(layout.DefaultColumns(), sum, style.DefaultStyles(), row.Options{})
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return New(r, sum, style.DefaultStyles(), Config{}, opts...)
}

func loaded(t *testing.T, opts ...Option) *Model {
	t.Helper()
	m := newModel(t, opts...)
	m.Update(EntitiesLoadedMsg{Entities: fixtures()})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func ids(items []entity.Entity) string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.ID
	}
	return strings.Join(out, ",")
}

func TestLoadingShowsPlaceholders(t *testing.T) {
	m := newModel(t)
	view := m.View()
	if got := strings.Count(view, "◌"); got != 5 {
		t.Errorf("expected 5 placeholder rows, got %d", got)
	}

	// Input is ignored while loading.
	m.Update(space)
	m.Update(click(6, rowsTop))
	if m.selection.Len() != 0 {
		t.Error("selection changed while loading")
	}

	m.Update(EntitiesLoadedMsg{Entities: fixtures()})
	if strings.Contains(m.View(), "◌") {
		t.Error("placeholders remain after load")
	}
	if ids(m.Visible()) != "r1,m1,ip" {
		t.Errorf("unexpected order %s", ids(m.Visible()))
	}
}

func TestPlaceholderAndRowLinesHaveSameWidth(t *testing.T) {
	m := newModel(t)
	waiting := strings.Split(m.View(), "\n")[rowsTop]
	m.Update(EntitiesLoadedMsg{Entities: fixtures()})
	ready := strings.Split(m.View(), "\n")[rowsTop]
	if ansi.StringWidth(waiting) != ansi.StringWidth(ready) {
		t.Errorf("placeholder width %d, row width %d", ansi.StringWidth(waiting), ansi.StringWidth(ready))
	}
}

func TestLoadFailed(t *testing.T) {
	m := newModel(t)
	m.Update(LoadFailedMsg{Err: errors.New("boom")})
	if !strings.Contains(m.View(), "boom") {
		t.Error("expected the load error in the view")
	}
}

func TestToggleWithKeyboard(t *testing.T) {
	m := loaded(t)
	m.Update(space)
	if !m.Selection().Contains("r1") || m.selection.Len() != 1 {
		t.Fatalf("expected r1 selected, got %d", m.selection.Len())
	}
	m.Update(space)
	if m.Selection().Contains("r1") {
		t.Error("second toggle should deselect")
	}

	m.Update(runes("j"))
	m.Update(space)
	if !m.Selection().Contains("m1") {
		t.Error("expected m1 selected after moving down")
	}
}

func TestToggleWithMouse(t *testing.T) {
	m := loaded(t)
	m.Update(click(0, rowsTop+2))
	if !m.Selection().Contains("ip") || m.selection.Len() != 1 {
		t.Fatal("expected exactly ip selected")
	}
	if e, _ := m.Focused(); e.ID != "ip" {
		t.Errorf("click should focus the row, got %s", e.ID)
	}

	// Outside the rows.
	m.Update(click(0, 0))
	m.Update(click(0, rowsTop+10))
	if m.selection.Len() != 1 {
		t.Error("clicks outside rows changed the selection")
	}

	// Releases do not toggle.
	m.Update(tea.MouseMsg{X: 0, Y: rowsTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Selection().Contains("r1") {
		t.Error("release toggled a row")
	}
}

func TestLabelClickFiltersWithoutToggling(t *testing.T) {
	m := loaded(t)
	r := m.render(0)
	var phishing row.Zone
	for _, z := range r.Zones() {
		if z.Label.Value == "phishing" {
			phishing = z
		}
	}
	m.Update(click(phishing.Start, rowsTop))

	if m.selection.Len() != 0 {
		t.Error("label click toggled the row")
	}
	if got := m.ActiveLabels(); len(got) != 1 || got[0] != "phishing" {
		t.Fatalf("unexpected active labels %v", got)
	}
	if ids(m.Visible()) != "r1,m1" {
		t.Errorf("unexpected visible %s", ids(m.Visible()))
	}

	// Same label again clears the filter.
	m.Update(runes("2"))
	if len(m.ActiveLabels()) != 0 {
		t.Errorf("expected filter cleared, got %v", m.ActiveLabels())
	}
	if len(m.Visible()) != 3 {
		t.Errorf("expected all entities, got %s", ids(m.Visible()))
	}
}

func TestLabelFiltersCombine(t *testing.T) {
	m := loaded(t)
	m.Update(runes("1")) // apt28 on r1
	if ids(m.Visible()) != "r1" {
		t.Fatalf("unexpected visible %s", ids(m.Visible()))
	}
	m.Update(runes("2")) // phishing on r1
	if ids(m.Visible()) != "r1" || len(m.ActiveLabels()) != 2 {
		t.Errorf("expected both filters on r1, got %s %v", ids(m.Visible()), m.ActiveLabels())
	}
	m.Update(runes("c"))
	if len(m.Visible()) != 3 || len(m.ActiveLabels()) != 0 {
		t.Error("clear did not reset filters")
	}
}

func TestMissingLabelKey(t *testing.T) {
	m := loaded(t)
	m.Update(runes("j"))
	m.Update(runes("2"))
	if !strings.Contains(m.View(), "no label 2") {
		t.Error("expected status for a missing label")
	}
}

func TestFuzzyFilter(t *testing.T) {
	m := loaded(t)
	m.Update(runes("/"))
	for _, r := range "emo" {
		m.Update(runes(string(r)))
	}
	if ids(m.Visible()) != "m1" {
		t.Fatalf("unexpected visible %s", ids(m.Visible()))
	}

	// Keys go to the filter, not the list.
	if m.selection.Len() != 0 {
		t.Error("typing selected entities")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filtering {
		t.Error("enter should leave the filter")
	}
	m.Update(space)
	if !m.Selection().Contains("m1") {
		t.Error("expected filtered m1 selected")
	}
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	m := loaded(t)
	m.Update(space)
	m.Update(runes("2")) // phishing
	m.Update(runes("c"))
	if !m.Selection().Contains("r1") {
		t.Error("selection lost across filters")
	}
}

func TestSubmitAndCancel(t *testing.T) {
	m := loaded(t)
	m.Update(space)
	m.Update(runes("j"))
	m.Update(runes("j"))
	m.Update(space)
	if _, ok := m.Result(); ok {
		t.Fatal("result before submit")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	got, ok := m.Result()
	if !ok || ids(got) != "r1,ip" {
		t.Errorf("unexpected result %s (%v)", ids(got), ok)
	}

	c := loaded(t)
	c.Update(space)
	c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got, ok := c.Result(); ok || got != nil {
		t.Errorf("cancelled picker returned %v", got)
	}
}

func TestCopyFocusedID(t *testing.T) {
	var copied string
	m := loaded(t, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	_, cmd := m.Update(runes("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	m.Update(cmd())
	if copied != "r1" {
		t.Errorf("copied %q", copied)
	}
	if !strings.Contains(m.View(), "copied r1") {
		t.Error("expected copy status")
	}

	f := loaded(t, WithClipboard(func(string) error { return errors.New("no display") }))
	_, cmd = f.Update(runes("y"))
	f.Update(cmd())
	if !strings.Contains(f.View(), "copy failed") {
		t.Error("expected failure status")
	}
}

func TestScrolling(t *testing.T) {
	m := newModel(t)
	var items []entity.Entity
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		items = append(items, entity.Entity{ID: id, Type: entity.TypeReport, Name: id})
	}
	m.Update(EntitiesLoadedMsg{Entities: items})
	m.Update(tea.WindowSizeMsg{Width: 200, Height: chromeHeight + 2})

	for range 4 {
		m.Update(runes("j"))
	}
	if m.scrollOff != 3 {
		t.Errorf("expected scroll offset 3, got %d", m.scrollOff)
	}
	m.Update(click(0, rowsTop))
	if !m.Selection().Contains("d") {
		t.Error("click should hit the first visible row")
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != chromeHeight+2 {
		t.Errorf("expected %d lines, got %d", chromeHeight+2, len(lines))
	}
}

func TestViewClipsToWidth(t *testing.T) {
	m := loaded(t)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	for _, l := range strings.Split(m.View(), "\n") {
		if w := ansi.StringWidth(l); w > 40 {
			t.Errorf("line wider than terminal: %d", w)
		}
	}
}

func TestLoadCmd(t *testing.T) {
	msg := LoadCmd("testdata/entities.yaml")()
	got, ok := msg.(EntitiesLoadedMsg)
	if !ok {
		t.Fatalf("expected EntitiesLoadedMsg, got %T", msg)
	}
	if len(got.Entities) == 0 {
		t.Error("expected entities")
	}
	if _, ok := LoadCmd("testdata/missing.yaml")().(LoadFailedMsg); !ok {
		t.Error("expected LoadFailedMsg for a missing file")
	}
}

func TestSelection(t *testing.T) {
	s := NewSelection()
	a := entity.Entity{ID: "a"}
	b := entity.Entity{ID: "b"}
	if !s.Toggle(b) || !s.Toggle(a) {
		t.Fatal("toggle should select")
	}
	if ids(s.Entities()) != "b,a" {
		t.Errorf("expected insertion order, got %s", ids(s.Entities()))
	}
	if s.Toggle(b) {
		t.Error("second toggle should deselect")
	}
	if ids(s.Entities()) != "a" || s.Len() != 1 {
		t.Errorf("unexpected selection %s", ids(s.Entities()))
	}
	s.Clear()
	if s.Len() != 0 || s.Contains("a") {
		t.Error("clear left entries")
	}
	var nilSel *Selection
	if nilSel.Contains("a") {
		t.Error("nil selection contains nothing")
	}
}
