package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/haneul/sugang/internal/course"
	"github.com/haneul/sugang/internal/timetable"
)

func TestRenderGrid(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	entries := []course.Entry{
		{Code: "CS101", Section: "001", Title: "Data Structures", Schedule: "월1 월2"},
		{Code: "GE110", Section: "001", Title: "World History", Schedule: "수3"},
	}
	grid := timetable.Build(entries, timetable.ViewState{})

	out := RenderGrid(grid)

	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Fri") {
		t.Errorf("missing weekday headers:\n%s", out)
	}
	if !strings.Contains(out, "09:00") {
		t.Errorf("missing first time tick:\n%s", out)
	}
	if !strings.Contains(out, "CS101") || !strings.Contains(out, "GE110") {
		t.Errorf("missing course codes:\n%s", out)
	}

	// The double period runs 09:00-12:00; its continuation rows use '|'.
	if !strings.Contains(out, "|") {
		t.Errorf("missing continuation markers:\n%s", out)
	}
}

func TestRenderGrid_ConflictMarker(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	entries := []course.Entry{
		{Code: "CS101", Section: "001", Schedule: "월1"},
		{Code: "GE110", Section: "001", Schedule: "월1"},
	}
	grid := timetable.Build(entries, timetable.ViewState{})

	out := RenderGrid(grid)
	if !strings.Contains(out, "CS101!") {
		t.Errorf("conflicting block not marked:\n%s", out)
	}
}

func TestRenderGrid_MultibyteCode(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	entries := []course.Entry{
		{Code: "데이터구조와알고리즘심화", Section: "001", Schedule: "월1"},
	}
	grid := timetable.Build(entries, timetable.ViewState{})

	out := RenderGrid(grid)
	if !utf8.ValidString(out) {
		t.Fatalf("grid split a code mid-rune:\n%s", out)
	}
	if !strings.Contains(out, "데이터구조와알고리즘") {
		t.Errorf("truncated code missing:\n%s", out)
	}

	// Every row stays the same rune width regardless of code bytes.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if got := utf8.RuneCountInString(line); got != want {
			t.Errorf("line %d width = %d runes, want %d:\n%s", i, got, want, out)
		}
	}
}

func TestRenderGrid_Empty(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	grid := timetable.Build(nil, timetable.ViewState{})
	out := RenderGrid(grid)

	// Default window still renders headers and ticks.
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "17:30") {
		t.Errorf("empty grid missing frame:\n%s", out)
	}
}
