package picker

import "github.com/drake/stixpick/entity"

// Selection is the set of chosen entities keyed by id. The picker is its
// only writer; rows see it through row.Selection.
type Selection struct {
	byID  map[string]entity.Entity
	order []string
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{byID: make(map[string]entity.Entity)}
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.byID[id]
	return ok
}

// Toggle adds e when absent and removes it otherwise. It returns whether e
// is selected afterwards.
func (s *Selection) Toggle(e entity.Entity) bool {
	if _, ok := s.byID[e.ID]; ok {
		delete(s.byID, e.ID)
		for i, id := range s.order {
			if id == e.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.byID[e.ID] = e
	s.order = append(s.order, e.ID)
	return true
}

// Len returns the number of selected entities.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}

// Entities returns the selected entities in the order they were chosen.
func (s *Selection) Entities() []entity.Entity {
	if s == nil {
		return nil
	}
	out := make([]entity.Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.byID = make(map[string]entity.Entity)
	s.order = nil
}
