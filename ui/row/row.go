// Package row renders one entity as a fixed-height, column-aligned list row
// with a two-state selection indicator and clickable label chips.
package row

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/drake/stixpick/entity"
	"github.com/drake/stixpick/ui/layout"
	"github.com/drake/stixpick/ui/style"
)

const (
	// DefaultLabelLimit is the number of label chips shown per row.
	DefaultLabelLimit = 3

	// MarkingLimit is the number of markings shown per row.
	MarkingLimit = 1
)

// required lists the columns every entity row draws.
var required = []string{
	layout.KeyEntityType,
	layout.KeyValue,
	layout.KeyCreatedBy,
	layout.KeyObjectLabel,
	layout.KeyObjectMarking,
}

// Selection is the read-only view of the chosen entities.
type Selection interface {
	Contains(id string) bool
}

// Handlers are the outbound intents of a row. Either may be nil.
type Handlers struct {
	OnToggle     func(e entity.Entity, ev tea.Msg)
	OnLabelClick func(column, entityID, labelValue string, ev tea.Msg)
}

// Options tune a renderer.
type Options struct {
	LabelLimit int // 0 means DefaultLabelLimit
}

// Renderer turns entities into rows. It holds no per-row state.
type Renderer struct {
	cols       layout.Columns
	sum        *entity.Summarizer
	styles     style.Styles
	labelLimit int
}

// NewRenderer creates a renderer. It fails when cols lacks a column the
// rows draw, so a misconfigured layout is caught before anything renders.
func NewRenderer(cols layout.Columns, sum *entity.Summarizer, styles style.Styles, opts Options) (*Renderer, error) {
	if err := cols.Require(required...); err != nil {
		return nil, fmt.Errorf("row renderer: %w", err)
	}
	if opts.LabelLimit <= 0 {
		opts.LabelLimit = DefaultLabelLimit
	}
	return &Renderer{
		cols:       cols,
		sum:        sum,
		styles:     styles,
		labelLimit: opts.LabelLimit,
	}, nil
}

// Columns returns the layout shared with the header.
func (r *Renderer) Columns() layout.Columns {
	return r.cols
}

// Width returns the width of every row.
func (r *Renderer) Width() int {
	return r.cols.RowWidth()
}

// LabelLimit returns the number of visible label chips.
func (r *Renderer) LabelLimit() int {
	return r.labelLimit
}

// Render draws e. The indicator reflects whether e.ID is in sel.
func (r *Renderer) Render(e entity.Entity, sel Selection, h Handlers) Row {
	selected := sel != nil && sel.Contains(e.ID)

	indicator := r.styles.Unchecked.Render("○")
	if selected {
		indicator = r.styles.Checked.Render("●")
	}
	icon := style.TypeChip(e.Type).UnsetBackground().Render(Icon(e.Type))

	labels := entity.Labels(e)
	if len(labels) > r.labelLimit {
		labels = labels[:r.labelLimit]
	}
	markings := entity.Markings(e)
	if len(markings) > MarkingLimit {
		markings = markings[:MarkingLimit]
	}

	row := r.compose(indicator, icon, func(key string) (string, []Zone) {
		switch key {
		case layout.KeyEntityType:
			return style.TypeChip(e.Type).Render(chipText(strings.ToUpper(r.sum.TypeLabel(e)))), nil
		case layout.KeyValue:
			return r.sum.DisplayValue(e), nil
		case layout.KeyCreatedBy:
			name, _ := entity.CreatorName(e)
			return name, nil
		case layout.KeyObjectLabel:
			return labelChips(labels)
		case layout.KeyObjectMarking:
			return markingChips(markings), nil
		}
		return "", nil
	})
	row.Entity = e
	row.Selected = selected
	row.handlers = h
	row.labels = labels
	row.markings = markings
	return row
}

// Placeholder draws a loading row with the exact geometry of Render.
func (r *Renderer) Placeholder() Row {
	block := func(width int) string {
		n := (width - 1) * 9 / 10
		if n < 1 {
			n = 1
		}
		return strings.Repeat("░", n)
	}
	row := r.compose(r.styles.Muted.Render("○"), r.styles.Placeholder.Render("◌"), func(key string) (string, []Zone) {
		return r.styles.Placeholder.Render(block(r.cols.Width(key))), nil
	})
	row.Placeholder = true
	return row
}

// compose lays out the gutter and one cell per column in layout order.
// fill returns the cell content and label zones relative to the cell.
func (r *Renderer) compose(indicator, icon string, fill func(key string) (string, []Zone)) Row {
	var b strings.Builder
	b.WriteString(indicator)
	b.WriteString(" ")
	b.WriteString(icon)
	b.WriteString(" ")

	row := Row{width: r.cols.RowWidth()}
	x := layout.GutterWidth
	for _, col := range r.cols.All() {
		content, zones := fill(col.Key)
		b.WriteString(layout.Cell(r.styles.Cell, content, col.Width))
		row.cells = append(row.cells, Span{Key: col.Key, Start: x, Width: col.Width})

		// Chips cut by truncation stay clickable only on their visible part.
		limit := x + col.Width - 1
		for _, z := range zones {
			z.Start += x
			z.End += x
			if z.Start >= limit {
				break
			}
			if z.End > limit {
				z.End = limit
			}
			row.zones = append(row.zones, z)
		}
		x += col.Width
	}
	row.view = b.String()
	return row
}

func chipText(s string) string {
	return " " + s + " "
}

func labelChips(labels []entity.Label) (string, []Zone) {
	var b strings.Builder
	var zones []Zone
	x := 0
	for i, l := range labels {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		text := chipText(l.Value)
		w := ansi.StringWidth(text)
		b.WriteString(style.LabelChip(l.Color).Render(text))
		zones = append(zones, Zone{Start: x, End: x + w, Index: i, Label: l})
		x += w
	}
	return b.String(), zones
}

func markingChips(markings []entity.Marking) string {
	parts := make([]string, len(markings))
	for i, m := range markings {
		parts[i] = style.MarkingChip(m.Color).Render(chipText(m.Definition))
	}
	return strings.Join(parts, " ")
}

// Span is the horizontal extent of one cell.
type Span struct {
	Key   string
	Start int
	Width int
}

// Zone is the clickable extent of a label chip, in row coordinates.
type Zone struct {
	Start int // inclusive
	End   int // exclusive
	Index int // position among visible labels
	Label entity.Label
}

// Row is one rendered line. It is a value: rendering again replaces it.
type Row struct {
	Entity      entity.Entity
	Selected    bool
	Placeholder bool

	view     string
	width    int
	cells    []Span
	zones    []Zone
	labels   []entity.Label
	markings []entity.Marking
	handlers Handlers
}

// View returns the styled line.
func (r Row) View() string {
	return r.view
}

// Width returns the visible width of the row.
func (r Row) Width() int {
	return r.width
}

// Height is always one line; cell content is truncated, never wrapped.
func (r Row) Height() int {
	return lipgloss.Height(r.view)
}

// Cells returns the geometry of every cell in layout order.
func (r Row) Cells() []Span {
	return r.cells
}

// Labels returns the visible labels in their original order.
func (r Row) Labels() []entity.Label {
	return r.labels
}

// Markings returns the visible markings.
func (r Row) Markings() []entity.Marking {
	return r.markings
}

// Zones returns the clickable label chips.
func (r Row) Zones() []Zone {
	return r.zones
}

// Click handles a click at column x of the row. A click on a label chip
// only reaches OnLabelClick; anything else toggles the entity.
func (r Row) Click(x int, ev tea.Msg) {
	if r.Placeholder {
		return
	}
	for _, z := range r.zones {
		if x >= z.Start && x < z.End {
			r.clickLabel(z.Label, ev)
			return
		}
	}
	if r.handlers.OnToggle != nil {
		r.handlers.OnToggle(r.Entity, ev)
	}
}

// ClickLabel activates the i-th visible label, as from the keyboard. It
// reports whether such a label exists.
func (r Row) ClickLabel(i int, ev tea.Msg) bool {
	if r.Placeholder || i < 0 || i >= len(r.labels) {
		return false
	}
	r.clickLabel(r.labels[i], ev)
	return true
}

func (r Row) clickLabel(l entity.Label, ev tea.Msg) {
	if r.handlers.OnLabelClick != nil {
		r.handlers.OnLabelClick(layout.KeyObjectLabel, r.Entity.ID, l.Value, ev)
	}
}
