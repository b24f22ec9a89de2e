// Package tui provides the interactive timetable browser for sugang.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/haneul/sugang/internal/config"
	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
	"github.com/haneul/sugang/internal/tui/commands"
	"github.com/haneul/sugang/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeGrid   Mode = iota
	ModeSearch      // Typing in the search prompt
	ModeHelp        // Help overlay visible
)

const searchResultLimit = 30

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   course.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Data state
	selected []course.Selected
	grid     timetable.Grid
	results  []course.Entry
	loading  bool

	// Interaction state
	mode         Mode
	resultCursor int
	search       textinput.Model
	overlay      OverlayModel

	// View overrides, applied on top of the configured window
	startOverride string
	endOverride   string
	showWeekend   bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	err error
}

// New creates a new TUI model.
func New(repo course.Repository, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "search the catalog..."
	ti.CharLimit = 64
	ti.Width = 40

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti.PlaceholderStyle = styles.SearchPlaceholder
	ti.TextStyle = styles.SearchText
	ti.PromptStyle = styles.SearchPrompt

	m := &Model{
		repo:    repo,
		config:  cfg,
		theme:   t,
		styles:  styles,
		mode:    ModeGrid,
		search:  ti,
		overlay: NewOverlayModel(),
		loading: true,
	}
	m.rebuildGrid()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadSelection(m.repo)
}

// effectiveView combines the configured view with in-session overrides.
func (m *Model) effectiveView() timetable.ViewState {
	vs := timetable.ViewState{
		StartTime: m.config.View.DayStart,
		EndTime:   m.config.View.DayEnd,
		Days:      m.config.ViewDays(),
	}
	if m.startOverride != "" {
		vs.StartTime = m.startOverride
	}
	if m.endOverride != "" {
		vs.EndTime = m.endOverride
	}
	if m.showWeekend {
		vs.Days = []int{0, 1, 2, 3, 4, 5, 6}
	}
	return vs
}

// rebuildGrid recomputes the layout from the current selection and view.
func (m *Model) rebuildGrid() {
	entries := make([]course.Entry, 0, len(m.selected))
	for _, s := range m.selected {
		entries = append(entries, s.Entry)
	}
	m.grid = timetable.Build(entries, m.effectiveView())
}

// selectedKeys returns the set of keys in the working selection.
func (m *Model) selectedKeys() map[string]bool {
	keys := make(map[string]bool, len(m.selected))
	for _, s := range m.selected {
		keys[s.Entry.Key()] = true
	}
	return keys
}

// colorFor returns the assigned color index for an entry, or 0.
func (m *Model) colorFor(e course.Entry) int {
	for _, s := range m.selected {
		if s.Entry.SameOffering(&e) {
			return s.Color
		}
	}
	return 0
}

// cursorEntry returns the search result under the cursor, or nil.
func (m *Model) cursorEntry() *course.Entry {
	if m.resultCursor < 0 || m.resultCursor >= len(m.results) {
		return nil
	}
	return &m.results[m.resultCursor]
}

// Run starts the TUI.
func Run(repo course.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo course.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	lipgloss.SetColorProfile(termenv.ColorProfile())

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
