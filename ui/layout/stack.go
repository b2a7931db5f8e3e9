package layout

import "strings"

// Renderer is the minimal interface for layout-aware components.
type Renderer interface {
	SetWidth(w int)
	Height() int
	View() string
}

// Stack renders its renderers top to bottom, skipping empty ones.
type Stack struct {
	Renderers []Renderer
}

// Height returns the total height of all renderers in the stack.
func (s *Stack) Height() int {
	h := 0
	for _, r := range s.Renderers {
		h += r.Height()
	}
	return h
}

// SetWidth sets the width on all renderers in the stack.
func (s *Stack) SetWidth(w int) {
	for _, r := range s.Renderers {
		r.SetWidth(w)
	}
}

// View returns the rendered view of all visible renderers concatenated.
func (s *Stack) View() string {
	var parts []string
	for _, r := range s.Renderers {
		if r.Height() > 0 {
			parts = append(parts, r.View())
		}
	}
	return strings.Join(parts, "\n")
}
