package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneul/sugang/internal/timetable"
	"github.com/haneul/sugang/internal/tui/commands"
)

const windowStep = 30 // minutes per window adjustment

// handleKeyMsg dispatches key presses by interaction mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleGridKey(msg)
	}
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		LogModeChange(m.mode, ModeSearch, "search prompt opened")
		m.mode = ModeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "?":
		LogModeChange(m.mode, ModeHelp, "help opened")
		m.mode = ModeHelp
		return m, nil

	case "j", "down":
		if m.resultCursor < len(m.results)-1 {
			m.resultCursor++
		}
		return m, nil

	case "k", "up":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil

	case "enter", " ":
		// Toggle the result under the cursor in and out of the selection.
		e := m.cursorEntry()
		if e == nil {
			return m, nil
		}
		if m.selectedKeys()[e.Key()] {
			return m, commands.RemoveCourse(m.repo, e.Key())
		}
		return m, commands.AddCourse(m.repo, e.Key())

	case "d", "x":
		e := m.cursorEntry()
		if e == nil || !m.selectedKeys()[e.Key()] {
			return m, nil
		}
		return m, commands.RemoveCourse(m.repo, e.Key())

	case "y":
		return m, commands.CopyText(renderPlainGrid(m.grid))

	case "r":
		m.loading = true
		return m, commands.LoadSelection(m.repo)

	case "w":
		m.showWeekend = !m.showWeekend
		m.rebuildGrid()
		return m, nil

	case "[":
		m.startOverride = timetable.MinutesToTime(max(0, m.grid.WindowStart-windowStep))
		m.rebuildGrid()
		return m, nil

	case "]":
		next := m.grid.WindowStart + windowStep
		if next < m.grid.WindowEnd {
			m.startOverride = timetable.MinutesToTime(next)
			m.rebuildGrid()
		}
		return m, nil

	case "{":
		next := m.grid.WindowEnd - windowStep
		if next > m.grid.WindowStart {
			m.endOverride = timetable.MinutesToTime(next)
			m.rebuildGrid()
		}
		return m, nil

	case "}":
		m.endOverride = timetable.MinutesToTime(min(1439, m.grid.WindowEnd+windowStep))
		m.rebuildGrid()
		return m, nil

	case "esc":
		// Drop session overrides and the result list.
		m.startOverride = ""
		m.endOverride = ""
		m.results = nil
		m.resultCursor = 0
		m.rebuildGrid()
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		LogModeChange(m.mode, ModeGrid, "search cancelled")
		m.mode = ModeGrid
		m.search.Blur()
		return m, nil

	case tea.KeyEnter:
		keyword := m.search.Value()
		LogModeChange(m.mode, ModeGrid, "search submitted")
		m.mode = ModeGrid
		m.search.Blur()
		if keyword == "" {
			return m, nil
		}
		return m, commands.Search(m.repo, keyword, searchResultLimit)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		LogModeChange(m.mode, ModeGrid, "help closed")
		m.mode = ModeGrid
	}
	return m, nil
}
