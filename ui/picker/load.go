package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/stixpick/entity"
)

// LoadCmd reads the entities at path off the UI goroutine.
func LoadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		items, err := entity.LoadFile(path)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return EntitiesLoadedMsg{Entities: items}
	}
}
