package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneul/sugang/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.SelectionLoadedMsg:
		m.selected = msg.Selected
		m.loading = false
		m.rebuildGrid()
		LogGridRebuild(len(m.selected), len(m.grid.Blocks))
		return m, nil

	case commands.SelectionChangedMsg:
		m.statusMsg = msg.Status
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Batch(
			commands.LoadSelection(m.repo),
			clearStatusAfter(3*time.Second),
		)

	case commands.SearchResultsMsg:
		m.results = msg.Entries
		m.resultCursor = 0
		if len(msg.Entries) == 0 {
			m.statusMsg = fmt.Sprintf("No courses match %q", msg.Keyword)
			m.statusTime = time.Now().Add(3 * time.Second)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		LogError("update", msg.Err)
		return m, clearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, clearStatusAfter(3 * time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
