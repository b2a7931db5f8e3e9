package row

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/stixpick/entity"
	"github.com/drake/stixpick/ui/layout"
	"github.com/drake/stixpick/ui/style"
)

type fakeSelection map[string]bool

func (f fakeSelection) Contains(id string) bool { return f[id] }

type recorder struct {
	toggles []string
	labels  []string
	columns []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnToggle: func(e entity.Entity, _ tea.Msg) {
			r.toggles = append(r.toggles, e.ID)
		},
		OnLabelClick: func(column, id, value string, _ tea.Msg) {
			r.columns = append(r.columns, column)
			r.labels = append(r.labels, id+":"+value)
		},
	}
}

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(layout.DefaultColumns(), entity.NewSummarizer(nil, nil), style.DefaultStyles(), opts)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func report() entity.Entity {
	return entity.Entity{
		ID:        "r1",
		Type:      entity.TypeReport,
		Name:      "Weekly Brief",
		CreatedBy: &entity.CreatorRef{ID: "i1", Name: "CERT-EU"},
		Labels: []entity.Label{
			{ID: "l1", Value: "apt28", Color: "#ff0000"},
			{ID: "l2", Value: "phishing", Color: "#00ff00"},
		},
		Markings: []entity.Marking{
			{ID: "m1", Definition: "TLP:AMBER", Color: "#ffc000"},
		},
	}
}

func TestPlaceholderMatchesRowGeometry(t *testing.T) {
	r := newRenderer(t, Options{})
	entities := []entity.Entity{
		report(),
		{ID: "bare", Type: entity.TypeNote},
		{ID: "odd", Type: "FutureKind", Name: strings.Repeat("long ", 40)},
	}

	p := r.Placeholder()
	if !p.Placeholder {
		t.Fatal("expected placeholder flag")
	}
	for _, e := range entities {
		row := r.Render(e, nil, Handlers{})
		if row.Width() != p.Width() || row.Height() != p.Height() {
			t.Errorf("%s: size %dx%d, placeholder %dx%d", e.ID, row.Width(), row.Height(), p.Width(), p.Height())
		}
		if len(row.Cells()) != len(p.Cells()) {
			t.Fatalf("%s: %d cells, placeholder has %d", e.ID, len(row.Cells()), len(p.Cells()))
		}
		for i := range row.Cells() {
			if row.Cells()[i] != p.Cells()[i] {
				t.Errorf("%s: cell %d is %+v, placeholder %+v", e.ID, i, row.Cells()[i], p.Cells()[i])
			}
		}
		if w := ansi.StringWidth(row.View()); w != r.Width() {
			t.Errorf("%s: rendered width %d, want %d", e.ID, w, r.Width())
		}
	}
	if w := ansi.StringWidth(p.View()); w != r.Width() {
		t.Errorf("placeholder rendered width %d, want %d", w, r.Width())
	}
	if p.Height() != 1 {
		t.Errorf("expected one line, got %d", p.Height())
	}
}

func TestNewRendererRejectsMissingColumn(t *testing.T) {
	cols := layout.MustColumns(
		layout.Column{Key: layout.KeyEntityType, Width: 10},
		layout.Column{Key: layout.KeyValue, Width: 10},
		layout.Column{Key: layout.KeyCreatedBy, Width: 10},
		layout.Column{Key: layout.KeyObjectLabel, Width: 10},
	)
	_, err := NewRenderer(cols, entity.NewSummarizer(nil, nil), style.DefaultStyles(), Options{})
	if !errors.Is(err, layout.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), layout.KeyObjectMarking) {
		t.Errorf("error should name the column: %v", err)
	}
}

func TestLabelClickDoesNotToggle(t *testing.T) {
	r := newRenderer(t, Options{})
	rec := &recorder{}
	row := r.Render(report(), nil, rec.handlers())

	zones := row.Zones()
	if len(zones) != 2 {
		t.Fatalf("expected 2 label zones, got %d", len(zones))
	}
	row.Click(zones[1].Start, tea.MouseMsg{})
	if len(rec.toggles) != 0 {
		t.Errorf("label click toggled: %v", rec.toggles)
	}
	if len(rec.labels) != 1 || rec.labels[0] != "r1:phishing" {
		t.Errorf("unexpected label clicks %v", rec.labels)
	}
	if rec.columns[0] != layout.KeyObjectLabel {
		t.Errorf("unexpected column %q", rec.columns[0])
	}

	// The gap between chips belongs to the row.
	row.Click(zones[0].End, tea.MouseMsg{})
	row.Click(0, tea.MouseMsg{})
	if len(rec.toggles) != 2 || len(rec.labels) != 1 {
		t.Errorf("expected 2 toggles and 1 label click, got %v / %v", rec.toggles, rec.labels)
	}
}

func TestZonesLieInLabelCell(t *testing.T) {
	r := newRenderer(t, Options{})
	e := report()
	e.Labels = append(e.Labels, entity.Label{Value: "a-very-long-label-name"})
	row := r.Render(e, nil, Handlers{})

	var start, end int
	for _, s := range row.Cells() {
		if s.Key == layout.KeyObjectLabel {
			start, end = s.Start, s.Start+s.Width-1
		}
	}
	if len(row.Zones()) == 0 {
		t.Fatal("expected label zones")
	}
	for _, z := range row.Zones() {
		if z.Start < start || z.End > end || z.Start >= z.End {
			t.Errorf("zone %+v outside label cell [%d,%d)", z, start, end)
		}
	}
}

func TestClickLabelByIndex(t *testing.T) {
	r := newRenderer(t, Options{})
	rec := &recorder{}
	row := r.Render(report(), nil, rec.handlers())

	if !row.ClickLabel(0, tea.KeyMsg{}) {
		t.Fatal("expected label 0")
	}
	if row.ClickLabel(2, tea.KeyMsg{}) || row.ClickLabel(-1, tea.KeyMsg{}) {
		t.Error("expected out of range labels to be rejected")
	}
	if len(rec.labels) != 1 || rec.labels[0] != "r1:apt28" || len(rec.toggles) != 0 {
		t.Errorf("unexpected calls %v / %v", rec.labels, rec.toggles)
	}
}

func TestNilHandlers(t *testing.T) {
	r := newRenderer(t, Options{})
	row := r.Render(report(), nil, Handlers{})
	row.Click(0, tea.MouseMsg{})
	row.Click(row.Zones()[0].Start, tea.MouseMsg{})
	row.ClickLabel(0, tea.KeyMsg{})
}

func TestPlaceholderIgnoresClicks(t *testing.T) {
	r := newRenderer(t, Options{})
	p := r.Placeholder()
	p.Click(0, tea.MouseMsg{})
	if p.ClickLabel(0, tea.KeyMsg{}) {
		t.Error("placeholder should have no labels")
	}
	if len(p.Zones()) != 0 {
		t.Error("placeholder should have no zones")
	}
}

func TestLabelLimit(t *testing.T) {
	e := report()
	e.Labels = nil
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		e.Labels = append(e.Labels, entity.Label{Value: v})
	}

	tests := []struct {
		limit int
		want  string
	}{
		{0, "a,b,c"},
		{2, "a,b"},
		{10, "a,b,c,d,e"},
	}
	for _, tt := range tests {
		r := newRenderer(t, Options{LabelLimit: tt.limit})
		var got []string
		for _, l := range r.Render(e, nil, Handlers{}).Labels() {
			got = append(got, l.Value)
		}
		if strings.Join(got, ",") != tt.want {
			t.Errorf("limit %d: got %v, want %s", tt.limit, got, tt.want)
		}
	}

	e.Labels = e.Labels[:1]
	if got := newRenderer(t, Options{}).Render(e, nil, Handlers{}).Labels(); len(got) != 1 {
		t.Errorf("expected 1 label, got %d", len(got))
	}
}

func TestSingleMarking(t *testing.T) {
	r := newRenderer(t, Options{})
	e := report()
	e.Markings = []entity.Marking{
		{Definition: "TLP:RED"},
		{Definition: "PAP:GREEN"},
		{Definition: "TLP:CLEAR"},
	}
	row := r.Render(e, nil, Handlers{})
	if m := row.Markings(); len(m) != 1 || m[0].Definition != "TLP:RED" {
		t.Errorf("expected only TLP:RED, got %+v", m)
	}
	if strings.Contains(row.View(), "PAP:GREEN") {
		t.Error("second marking rendered")
	}

	e.Markings = nil
	if m := r.Render(e, nil, Handlers{}).Markings(); len(m) != 0 {
		t.Errorf("expected no markings, got %+v", m)
	}
}

func TestSelectedIndicator(t *testing.T) {
	r := newRenderer(t, Options{})
	e := report()

	on := r.Render(e, fakeSelection{"r1": true}, Handlers{})
	off := r.Render(e, fakeSelection{"other": true}, Handlers{})
	none := r.Render(e, nil, Handlers{})

	if !on.Selected || !strings.Contains(on.View(), "●") {
		t.Error("selected row should show the checked indicator")
	}
	if off.Selected || strings.Contains(off.View(), "●") || !strings.Contains(off.View(), "○") {
		t.Error("unselected row should show the empty indicator")
	}
	if none.Selected {
		t.Error("nil selection should select nothing")
	}
}

func TestCellContent(t *testing.T) {
	r := newRenderer(t, Options{})
	view := ansi.Strip(r.Render(report(), nil, Handlers{}).View())
	for _, want := range []string{"REPORT", "Weekly Brief", "CERT-EU", "apt28", "phishing", "TLP:AMBER"} {
		if !strings.Contains(view, want) {
			t.Errorf("row %q lacks %q", view, want)
		}
	}

	bare := ansi.Strip(r.Render(entity.Entity{ID: "x", Type: entity.TypeIPv4Addr}, nil, Handlers{}).View())
	if !strings.Contains(bare, "IPV4-ADDR") {
		t.Errorf("expected type chip in %q", bare)
	}
}

func TestIcon(t *testing.T) {
	for _, typ := range entity.Catalog() {
		if w := ansi.StringWidth(Icon(typ)); w != 1 {
			t.Errorf("%s: icon width %d", typ, w)
		}
	}
	if Icon(entity.TypeIPv4Addr) != "◇" || Icon("FutureKind") != "◆" {
		t.Error("unexpected fallback icons")
	}
}
