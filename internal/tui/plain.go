package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

const plainCellWidth = 11

// renderPlainGrid renders the grid without styling, for clipboard export.
func renderPlainGrid(grid timetable.Grid) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", timeColWidth))
	for _, d := range grid.Days {
		sb.WriteString(fmt.Sprintf("%-*s", plainCellWidth, course.WeekdayShortName(d)))
	}
	sb.WriteString("\n")

	for i, tick := range grid.TimeLabels {
		if tick.Minutes >= grid.WindowEnd {
			break
		}
		rowEnd := grid.WindowEnd
		if i+1 < len(grid.TimeLabels) {
			rowEnd = grid.TimeLabels[i+1].Minutes
		}

		sb.WriteString(fmt.Sprintf("%-*s", timeColWidth, tick.Label))
		for _, d := range grid.Days {
			sb.WriteString(plainCell(grid, d, tick.Minutes, rowEnd))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func plainCell(grid timetable.Grid, day, rowStart, rowEnd int) string {
	for _, b := range grid.Blocks {
		if b.Day != day || !timetable.Overlaps(b.Start, b.End, rowStart, rowEnd) {
			continue
		}

		label := "|"
		visibleStart := max(b.Start, grid.WindowStart)
		if visibleStart >= rowStart && visibleStart < rowEnd {
			label = b.Entries[0].Code
			if b.Conflict {
				label += "!"
			}
		}
		// Truncate and pad by runes so Korean codes keep the columns aligned.
		if r := []rune(label); len(r) > plainCellWidth-1 {
			label = string(r[:plainCellWidth-1])
		}
		return label + strings.Repeat(" ", plainCellWidth-utf8.RuneCountInString(label))
	}
	return strings.Repeat(" ", plainCellWidth)
}
