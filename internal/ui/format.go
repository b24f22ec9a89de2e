package ui

import (
	"fmt"
	"strings"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

// Stats holds aggregated statistics for a selection.
type Stats struct {
	Courses       int
	Credits       int
	MajorCredits  int
	WeeklyMinutes int
	Conflicts     int
}

// PrintOpts configures selection printing behavior.
type PrintOpts struct {
	Verbose       bool // Show instructor and schedule
	MaxTitleWidth int  // Maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	tw := termWidth()
	// Base: "  CODE-SECTION  [M] 3cr  " = ~28 chars
	overhead := 28
	available := tw - overhead
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEntryRow prints a single catalog or selection row.
func PrintEntryRow(e course.Entry, conflicted bool, opts PrintOpts, maxTitleWidth int) {
	catTag := formatCategory(string(e.Category), categoryTag(e.Category))

	title := e.Title
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-3] + "..."
	}

	key := e.Key()
	if conflicted {
		key = formatConflict(key + " !")
	}

	if opts.Verbose {
		fmt.Printf("  %-14s %s %dcr  %-*s  %s  %s\n",
			key, catTag, e.Credits, maxTitleWidth, title,
			formatMuted(e.Instructor), formatMuted(e.Schedule))
	} else {
		fmt.Printf("  %-14s %s %dcr  %s\n", key, catTag, e.Credits, title)
	}
}

// categoryTag returns the single-letter tag for a category.
func categoryTag(c course.Category) string {
	switch c {
	case course.CategoryMajor:
		return "[M]"
	case course.CategoryGeneral:
		return "[G]"
	default:
		return "[E]"
	}
}

// BuildStats aggregates selection statistics from the built grid.
func BuildStats(selected []course.Selected, grid timetable.Grid) Stats {
	var stats Stats
	for _, s := range selected {
		stats.Courses++
		stats.Credits += s.Entry.Credits
		if s.Entry.Category == course.CategoryMajor {
			stats.MajorCredits += s.Entry.Credits
		}
		for _, slot := range timetable.Parse(s.Entry.Schedule) {
			stats.WeeklyMinutes += slot.End - slot.Start
		}
	}
	stats.Conflicts = len(timetable.Conflicts(grid))
	return stats
}

// PrintStats prints the selection summary line.
func PrintStats(stats Stats) {
	creditStr := formatStats(fmt.Sprintf("%d credits", stats.Credits))
	fmt.Printf("%d courses | %s (%d major) | %s in class per week\n",
		stats.Courses, creditStr, stats.MajorCredits, FormatDuration(stats.WeeklyMinutes))

	if stats.Conflicts > 0 {
		fmt.Println(formatConflict(fmt.Sprintf("%d schedule conflict(s)! Run 'sugang advise' for help.", stats.Conflicts)))
	}
}

// PrintConflicts prints the conflicting blocks of a grid.
func PrintConflicts(grid timetable.Grid) {
	conflicts := timetable.Conflicts(grid)
	if len(conflicts) == 0 {
		return
	}

	fmt.Printf("\n%s\n", formatHeader("CONFLICTS"))
	for _, b := range conflicts {
		var keys []string
		for _, e := range b.Entries {
			keys = append(keys, e.Key())
		}
		fmt.Printf("  %s %s-%s: %s\n",
			course.WeekdayName(b.Day),
			timetable.MinutesToTime(b.Start),
			timetable.MinutesToTime(b.End),
			formatConflict(strings.Join(keys, " vs ")))
	}
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
