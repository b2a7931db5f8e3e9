// Package layout describes the column geometry shared by the list header
// and every row, and stacks layout-aware renderers vertically.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Column keys used by the entity rows.
const (
	KeyEntityType    = "entity_type"
	KeyValue         = "value"
	KeyCreatedBy     = "createdBy"
	KeyObjectLabel   = "objectLabel"
	KeyObjectMarking = "objectMarking"
)

// GutterWidth is the width reserved left of the first column for the
// selection indicator and type icon ("● ◆ ").
const GutterWidth = 4

// ErrMissingColumn is returned when a renderer needs a column the layout
// does not declare.
var ErrMissingColumn = errors.New("missing column")

// Column is a named, fixed-width column.
type Column struct {
	Key   string
	Title string
	Width int
}

// Columns is an ordered, immutable set of columns.
type Columns struct {
	cols  []Column
	index map[string]int
}

// NewColumns validates and builds a column set. Keys must be unique and
// widths positive.
func NewColumns(cols ...Column) (Columns, error) {
	c := Columns{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Key == "" {
			return Columns{}, fmt.Errorf("column %d: empty key", i)
		}
		if col.Width <= 0 {
			return Columns{}, fmt.Errorf("column %q: width must be positive, got %d", col.Key, col.Width)
		}
		if _, dup := c.index[col.Key]; dup {
			return Columns{}, fmt.Errorf("column %q: declared twice", col.Key)
		}
		c.cols[i] = col
		c.index[col.Key] = i
	}
	return c, nil
}

// MustColumns is NewColumns that panics on error.
func MustColumns(cols ...Column) Columns {
	c, err := NewColumns(cols...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultColumns returns the investigation picker columns.
func DefaultColumns() Columns {
	return MustColumns(
		Column{Key: KeyEntityType, Title: "Type", Width: 18},
		Column{Key: KeyValue, Title: "Value", Width: 36},
		Column{Key: KeyCreatedBy, Title: "Author", Width: 16},
		Column{Key: KeyObjectLabel, Title: "Labels", Width: 26},
		Column{Key: KeyObjectMarking, Title: "Marking", Width: 14},
	)
}

// Width returns the width of key. It panics when key is not declared: a
// row asking for an unknown column is a layout defect, not bad data.
func (c Columns) Width(key string) int {
	i, ok := c.index[key]
	if !ok {
		panic(fmt.Sprintf("layout: %v %q (declared: %s)", ErrMissingColumn, key, strings.Join(c.Keys(), ", ")))
	}
	return c.cols[i].Width
}

// Has reports whether key is declared.
func (c Columns) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Require returns an error naming the first key that is not declared.
func (c Columns) Require(keys ...string) error {
	for _, k := range keys {
		if !c.Has(k) {
			return fmt.Errorf("%w %q", ErrMissingColumn, k)
		}
	}
	return nil
}

// All returns the columns in declaration order.
func (c Columns) All() []Column {
	out := make([]Column, len(c.cols))
	copy(out, c.cols)
	return out
}

// Keys returns the column keys in declaration order.
func (c Columns) Keys() []string {
	keys := make([]string, len(c.cols))
	for i, col := range c.cols {
		keys[i] = col.Key
	}
	return keys
}

// Len returns the number of columns.
func (c Columns) Len() int {
	return len(c.cols)
}

// Total returns the sum of all column widths.
func (c Columns) Total() int {
	total := 0
	for _, col := range c.cols {
		total += col.Width
	}
	return total
}

// RowWidth is the full width of a row or header: gutter plus columns.
func (c Columns) RowWidth() int {
	return GutterWidth + c.Total()
}

// WithWidths returns a copy with the given widths replaced. Unknown keys
// are an error.
func (c Columns) WithWidths(widths map[string]int) (Columns, error) {
	cols := c.All()
	for k, w := range widths {
		i, ok := c.index[k]
		if !ok {
			return Columns{}, fmt.Errorf("%w %q", ErrMissingColumn, k)
		}
		cols[i].Width = w
	}
	return NewColumns(cols...)
}

// Cell renders content into exactly width cells. Content that does not fit
// is truncated with an ellipsis and one trailing cell is kept as gutter.
func Cell(s lipgloss.Style, content string, width int) string {
	if width <= 0 {
		return ""
	}
	content = ansi.Truncate(content, width-1, "…")
	pad := width - ansi.StringWidth(content)
	if content == "" {
		return strings.Repeat(" ", width)
	}
	return s.Render(content) + strings.Repeat(" ", pad)
}
