package timetable

import (
	"reflect"
	"testing"

	"github.com/haneul/sugang/internal/course"
)

func TestBuildConsecutivePeriods(t *testing.T) {
	e := entry("CS101", "001")
	e.Schedule = "화2 화3"

	grid := Build([]course.Entry{e}, ViewState{})

	if len(grid.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(grid.Blocks))
	}
	b := grid.Blocks[0]
	if b.Day != 1 || b.Start != 630 || b.End != 810 {
		t.Errorf("block = day %d [%d,%d), want day 1 [630,810)", b.Day, b.Start, b.End)
	}
	if b.Conflict {
		t.Error("consecutive periods of one offering must not conflict")
	}
	if len(b.Entries) != 1 || b.Entries[0].Key() != e.Key() {
		t.Errorf("entries = %+v, want just %s", b.Entries, e.Key())
	}
}

func TestBuildConflict(t *testing.T) {
	x := entry("CS101", "001")
	x.Schedule = "월1"
	y := entry("MA201", "001")
	y.Schedule = "월1"

	grid := Build([]course.Entry{x, y}, ViewState{})

	if len(grid.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(grid.Blocks))
	}
	b := grid.Blocks[0]
	if !b.Conflict {
		t.Error("overlapping offerings must conflict")
	}
	if len(b.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(b.Entries))
	}
	if b.Entries[0].Key() != x.Key() || b.Entries[1].Key() != y.Key() {
		t.Errorf("entries = [%s, %s], want [%s, %s]",
			b.Entries[0].Key(), b.Entries[1].Key(), x.Key(), y.Key())
	}

	conflicts := Conflicts(grid)
	if len(conflicts) != 1 || !conflicts[0].Conflict {
		t.Errorf("Conflicts = %+v, want the one conflicting block", conflicts)
	}
}

func TestBuildWindowFollowsData(t *testing.T) {
	e := entry("CS101", "001")
	e.Schedule = "월0 토7" // 07:30 start, ends 19:30

	grid := Build([]course.Entry{e}, ViewState{})

	if grid.WindowStart != 450 {
		t.Errorf("WindowStart = %d, want 450", grid.WindowStart)
	}
	if grid.WindowEnd != 1170 {
		t.Errorf("WindowEnd = %d, want 1170", grid.WindowEnd)
	}
	wantDays := []int{0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(grid.Days, wantDays) {
		t.Errorf("Days = %v, want %v", grid.Days, wantDays)
	}
}

func TestBuildIgnoresMalformedSchedules(t *testing.T) {
	good := entry("CS101", "001")
	good.Schedule = "수2"
	bad := entry("MA201", "001")
	bad.Schedule = "not a schedule"

	grid := Build([]course.Entry{good, bad}, ViewState{})

	if len(grid.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(grid.Blocks))
	}
	if grid.Blocks[0].Entries[0].Key() != good.Key() {
		t.Errorf("block belongs to %s, want %s", grid.Blocks[0].Entries[0].Key(), good.Key())
	}
}

func TestBuildDeterministic(t *testing.T) {
	entries := []course.Entry{
		entry("CS101", "001"),
		entry("MA201", "002"),
		entry("PH301", "001"),
	}
	entries[0].Schedule = "월1 월2 수3"
	entries[1].Schedule = "월1 금4"
	entries[2].Schedule = "수3 수4 금4"

	first := Build(entries, ViewState{})
	for i := 0; i < 10; i++ {
		again := Build(entries, ViewState{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst %+v\nagain %+v", i, first, again)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	grid := Build(nil, ViewState{})

	if len(grid.Blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(grid.Blocks))
	}
	if grid.WindowStart != DefaultWindowStart || grid.WindowEnd != DefaultWindowEnd {
		t.Errorf("window = [%d, %d), want defaults", grid.WindowStart, grid.WindowEnd)
	}
	if !reflect.DeepEqual(grid.Days, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Days = %v, want weekdays", grid.Days)
	}
	if len(grid.TimeLabels) == 0 || len(grid.PeriodLabels) == 0 {
		t.Error("labels should still be generated for an empty grid")
	}
}
