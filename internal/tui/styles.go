package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/haneul/sugang/internal/tui/theme"
)

// Styles holds all lipgloss styles derived from a theme.
type Styles struct {
	palette *theme.Palette

	Title     lipgloss.Style
	DayHeader lipgloss.Style
	TimeCol   lipgloss.Style
	EmptyCell lipgloss.Style

	// Blocks is the course color cycle, indexed by assigned color.
	Blocks        []lipgloss.Style
	BlockConflict lipgloss.Style

	Stats  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style

	ResultRow      lipgloss.Style
	ResultCursor   lipgloss.Style
	ResultSelected lipgloss.Style

	SearchPrompt      lipgloss.Style
	SearchText        lipgloss.Style
	SearchPlaceholder lipgloss.Style

	OverlayBg lipgloss.Color
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		Title:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		DayHeader: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		TimeCol:   lipgloss.NewStyle().Foreground(p.FgMuted),
		EmptyCell: lipgloss.NewStyle().Foreground(p.FgMuted),

		Blocks: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(p.TextOnMajor).Background(p.MajorBg),
			lipgloss.NewStyle().Foreground(p.TextOnGeneral).Background(p.GeneralBg),
			lipgloss.NewStyle().Foreground(p.TextOnElective).Background(p.ElectiveBg),
			lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.Accent),
		},
		BlockConflict: lipgloss.NewStyle().Foreground(p.TextOnConflict).Background(p.ConflictBg).Bold(true),

		Stats:  lipgloss.NewStyle().Foreground(p.Fg),
		Status: lipgloss.NewStyle().Foreground(p.Conflict),
		Help:   lipgloss.NewStyle().Foreground(p.FgMuted),

		ResultRow:      lipgloss.NewStyle().Foreground(p.Fg),
		ResultCursor:   lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.Accent),
		ResultSelected: lipgloss.NewStyle().Foreground(p.General),

		SearchPrompt:      lipgloss.NewStyle().Foreground(p.Accent),
		SearchText:        lipgloss.NewStyle().Foreground(p.Fg),
		SearchPlaceholder: lipgloss.NewStyle().Foreground(p.FgMuted),

		OverlayBg: p.BgSelection,
	}
}

// BlockStyle selects the style for a timetable block by its assigned color.
func (s *Styles) BlockStyle(color int, conflict bool) lipgloss.Style {
	if conflict {
		return s.BlockConflict
	}
	if color < 0 {
		color = 0
	}
	return s.Blocks[color%len(s.Blocks)]
}
