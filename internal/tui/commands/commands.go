// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haneul/sugang/internal/course"
)

// SelectionLoadedMsg is sent when the working selection is loaded.
type SelectionLoadedMsg struct {
	Selected []course.Selected
}

// SearchResultsMsg is sent when a catalog search completes.
type SearchResultsMsg struct {
	Keyword string
	Entries []course.Entry
}

// SelectionChangedMsg is sent after an add or remove succeeds. The model
// reloads the selection in response.
type SelectionChangedMsg struct {
	Status string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadSelection loads the working selection.
func LoadSelection(repo course.Repository) tea.Cmd {
	return func() tea.Msg {
		selected, err := repo.ListSelection(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading selection: %w", err)}
		}
		return SelectionLoadedMsg{Selected: selected}
	}
}

// Search runs a catalog search.
func Search(repo course.Repository, keyword string, limit int) tea.Cmd {
	return func() tea.Msg {
		entries, err := repo.SearchCourses(context.Background(), keyword, limit)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("searching catalog: %w", err)}
		}
		return SearchResultsMsg{Keyword: keyword, Entries: entries}
	}
}

// AddCourse adds an offering to the selection by key.
func AddCourse(repo course.Repository, key string) tea.Cmd {
	return func() tea.Msg {
		code, section, err := course.SplitKey(key)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if _, err := repo.AddSelection(context.Background(), code, section); err != nil {
			return ErrMsg{Err: err}
		}
		return SelectionChangedMsg{Status: fmt.Sprintf("Added %s", key)}
	}
}

// RemoveCourse removes an offering from the selection by key.
func RemoveCourse(repo course.Repository, key string) tea.Cmd {
	return func() tea.Msg {
		code, section, err := course.SplitKey(key)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.RemoveSelection(context.Background(), code, section); err != nil {
			return ErrMsg{Err: err}
		}
		return SelectionChangedMsg{Status: fmt.Sprintf("Removed %s", key)}
	}
}

// CopyText copies text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Timetable copied to clipboard"}
	}
}
