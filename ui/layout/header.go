package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compile-time check that Header implements Renderer
var _ Renderer = (*Header)(nil)

// Header renders the column titles with the same geometry as the rows.
type Header struct {
	cols  Columns
	style lipgloss.Style
	width int
}

// NewHeader creates a header for cols.
func NewHeader(cols Columns, style lipgloss.Style) *Header {
	return &Header{cols: cols, style: style}
}

// SetWidth implements Renderer. A narrower terminal clips the header the
// same way it clips rows.
func (h *Header) SetWidth(w int) {
	h.width = w
}

// Height implements Renderer.
func (h *Header) Height() int {
	return 1
}

// View implements Renderer.
func (h *Header) View() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", GutterWidth))
	for _, col := range h.cols.All() {
		b.WriteString(Cell(h.style, col.Title, col.Width))
	}
	if h.width > 0 {
		return ansi.Truncate(b.String(), h.width, "")
	}
	return b.String()
}
