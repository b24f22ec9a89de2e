package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

const gridCellWidth = 11

// RenderGrid renders a built timetable as an ASCII week grid, one row per
// time tick. Cells show the course code on the row where a block begins and
// a continuation marker below; conflicting blocks are marked with '!'.
func RenderGrid(grid timetable.Grid) string {
	var sb strings.Builder

	// Header row
	sb.WriteString(strings.Repeat(" ", 6))
	for _, d := range grid.Days {
		sb.WriteString(fmt.Sprintf("%-*s", gridCellWidth, course.WeekdayShortName(d)))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", 6))
	sb.WriteString(strings.Repeat("-", gridCellWidth*len(grid.Days)))
	sb.WriteString("\n")

	for i, tick := range grid.TimeLabels {
		// The appended final label closes the window; no row below it.
		if tick.Minutes >= grid.WindowEnd {
			break
		}
		rowEnd := grid.WindowEnd
		if i+1 < len(grid.TimeLabels) {
			rowEnd = grid.TimeLabels[i+1].Minutes
		}

		sb.WriteString(fmt.Sprintf("%s ", tick.Label))
		for _, d := range grid.Days {
			sb.WriteString(gridCell(grid, d, tick.Minutes, rowEnd))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// gridCell renders one day cell for the row covering [rowStart, rowEnd).
func gridCell(grid timetable.Grid, day, rowStart, rowEnd int) string {
	for _, b := range grid.Blocks {
		if b.Day != day || !timetable.Overlaps(b.Start, b.End, rowStart, rowEnd) {
			continue
		}

		label := "|"
		if b.Conflict {
			label = "!"
		}
		visibleStart := max(b.Start, grid.WindowStart)
		if visibleStart >= rowStart && visibleStart < rowEnd {
			label = b.Entries[0].Code
			if b.Conflict {
				label += "!"
			}
		}
		// Truncate and pad by runes so Korean codes keep the columns aligned.
		if r := []rune(label); len(r) > gridCellWidth-1 {
			label = string(r[:gridCellWidth-1])
		}

		pad := strings.Repeat(" ", gridCellWidth-utf8.RuneCountInString(label))
		if b.Conflict {
			return formatConflict(label) + pad
		}
		return label + pad
	}
	return strings.Repeat(" ", gridCellWidth)
}
