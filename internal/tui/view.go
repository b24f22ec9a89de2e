package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

const (
	timeColWidth = 6
	minCellWidth = 8
	maxCellWidth = 14
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.loading {
		return "Loading selection..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderGrid(),
	}
	if results := m.renderResults(); results != "" {
		sections = append(sections, results)
	}
	sections = append(sections, m.renderFooter())

	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.mode == ModeHelp {
		m.overlay.active = true
		m.overlay.bgColor = m.styles.OverlayBg
		return m.overlay.Render(base, m.width, m.height, m.helpContent())
	}
	return base
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("sugang")

	credits := 0
	for _, s := range m.selected {
		credits += s.Entry.Credits
	}
	stats := fmt.Sprintf("%d courses, %d credits", len(m.selected), credits)
	if n := len(timetable.Conflicts(m.grid)); n > 0 {
		stats += m.styles.Status.Render(fmt.Sprintf("  %d conflict(s)!", n))
	}

	return title + "  " + m.styles.Stats.Render(stats)
}

func (m Model) cellWidth() int {
	if len(m.grid.Days) == 0 {
		return minCellWidth
	}
	w := (m.width - timeColWidth) / len(m.grid.Days)
	return max(minCellWidth, min(maxCellWidth, w))
}

// renderGrid draws the weekly grid, one row per time tick.
func (m Model) renderGrid() string {
	var sb strings.Builder
	cellW := m.cellWidth()

	sb.WriteString(strings.Repeat(" ", timeColWidth))
	for _, d := range m.grid.Days {
		sb.WriteString(m.styles.DayHeader.Render(pad(course.WeekdayShortName(d), cellW)))
	}
	sb.WriteString("\n")

	for i, tick := range m.grid.TimeLabels {
		if tick.Minutes >= m.grid.WindowEnd {
			break
		}
		rowEnd := m.grid.WindowEnd
		if i+1 < len(m.grid.TimeLabels) {
			rowEnd = m.grid.TimeLabels[i+1].Minutes
		}

		sb.WriteString(m.styles.TimeCol.Render(pad(tick.Label, timeColWidth)))
		for _, d := range m.grid.Days {
			sb.WriteString(m.renderCell(d, tick.Minutes, rowEnd, cellW))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderCell draws one day cell for the row covering [rowStart, rowEnd).
func (m Model) renderCell(day, rowStart, rowEnd, cellW int) string {
	for _, b := range m.grid.Blocks {
		if b.Day != day || !timetable.Overlaps(b.Start, b.End, rowStart, rowEnd) {
			continue
		}

		label := ""
		visibleStart := max(b.Start, m.grid.WindowStart)
		if visibleStart >= rowStart && visibleStart < rowEnd {
			label = b.Entries[0].Code
			if b.Conflict {
				label += "!"
			}
		}
		if r := []rune(label); len(r) > cellW-1 {
			label = string(r[:cellW-1])
		}

		style := m.styles.BlockStyle(m.colorFor(b.Entries[0]), b.Conflict)
		return style.Render(pad(label, cellW-1)) + " "
	}
	return m.styles.EmptyCell.Render(pad("·", cellW))
}

// renderResults draws the search result list below the grid.
func (m Model) renderResults() string {
	if m.mode != ModeSearch && len(m.results) == 0 {
		return ""
	}

	var sb strings.Builder
	if m.mode == ModeSearch {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}

	selected := m.selectedKeys()
	for i, e := range m.results {
		marker := "  "
		if selected[e.Key()] {
			marker = m.styles.ResultSelected.Render("* ")
		}

		row := fmt.Sprintf("%-14s %dcr  %s", e.Key(), e.Credits, e.Title)
		if i == m.resultCursor && m.mode == ModeGrid {
			sb.WriteString(marker + m.styles.ResultCursor.Render(row))
		} else {
			sb.WriteString(marker + m.styles.ResultRow.Render(row))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		return m.styles.Status.Render(m.statusMsg)
	}
	return m.styles.Help.Render("/ search  enter add/remove  y copy  w weekend  [ ] { } window  ? help  q quit")
}

func (m Model) helpContent() string {
	lines := []string{
		m.styles.Title.Render("Keys"),
		"",
		"/        search the catalog",
		"j/k      move through results",
		"enter    add or remove the highlighted course",
		"d, x     remove the highlighted course",
		"y        copy the grid to the clipboard",
		"w        toggle weekend columns",
		"[ ]      move the window start",
		"{ }      move the window end",
		"esc      reset window and results",
		"r        reload the selection",
		"q        quit",
	}
	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
