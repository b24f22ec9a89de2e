package tui

import (
	"context"
	"testing"

	"github.com/haneul/sugang/internal/config"
	"github.com/haneul/sugang/internal/course"
)

// fakeRepo implements just enough of course.Repository for model tests.
type fakeRepo struct {
	course.Repository

	selection []course.Selected
	catalog   []course.Entry
}

func (f *fakeRepo) ListSelection(_ context.Context) ([]course.Selected, error) {
	return f.selection, nil
}

func (f *fakeRepo) SearchCourses(_ context.Context, _ string, _ int) ([]course.Entry, error) {
	return f.catalog, nil
}

func (f *fakeRepo) AddSelection(_ context.Context, code, section string) (*course.Selected, error) {
	s := course.Selected{Entry: course.Entry{Code: code, Section: section}}
	f.selection = append(f.selection, s)
	return &s, nil
}

func (f *fakeRepo) RemoveSelection(_ context.Context, code, section string) error {
	for i, s := range f.selection {
		if s.Entry.Code == code && s.Entry.Section == section {
			f.selection = append(f.selection[:i], f.selection[i+1:]...)
			return nil
		}
	}
	return course.ErrNotSelected
}

func newTestModel(t *testing.T, repo *fakeRepo) *Model {
	t.Helper()
	if repo == nil {
		repo = &fakeRepo{}
	}
	return New(repo, config.Default())
}

func TestNewDefaults(t *testing.T) {
	m := newTestModel(t, nil)

	if m.mode != ModeGrid {
		t.Errorf("mode = %v, want ModeGrid", m.mode)
	}
	if !m.loading {
		t.Error("new model should start loading")
	}
	if m.theme == nil || m.styles == nil {
		t.Error("theme and styles must be initialized")
	}
	// Empty selection still gets the default window.
	if m.grid.WindowStart != 540 || m.grid.WindowEnd != 1080 {
		t.Errorf("default window = [%d, %d)", m.grid.WindowStart, m.grid.WindowEnd)
	}
}

func TestEffectiveViewWeekend(t *testing.T) {
	m := newTestModel(t, nil)

	if got := len(m.effectiveView().Days); got != 0 {
		t.Fatalf("default view days = %d, want 0 (automatic)", got)
	}

	m.showWeekend = true
	days := m.effectiveView().Days
	if len(days) != 7 {
		t.Errorf("weekend view days = %d, want 7", len(days))
	}
}

func TestEffectiveViewOverrides(t *testing.T) {
	m := newTestModel(t, nil)
	m.startOverride = "08:00"
	m.endOverride = "20:00"

	vs := m.effectiveView()
	if vs.StartTime != "08:00" || vs.EndTime != "20:00" {
		t.Errorf("overrides not applied: %+v", vs)
	}

	m.rebuildGrid()
	if m.grid.WindowStart != 480 || m.grid.WindowEnd != 1200 {
		t.Errorf("window = [%d, %d), want [480, 1200)", m.grid.WindowStart, m.grid.WindowEnd)
	}
}

func TestCursorEntry(t *testing.T) {
	m := newTestModel(t, nil)

	if m.cursorEntry() != nil {
		t.Error("empty results should yield nil cursor entry")
	}

	m.results = []course.Entry{
		{Code: "CS101", Section: "001"},
		{Code: "GE110", Section: "001"},
	}
	m.resultCursor = 1
	if e := m.cursorEntry(); e == nil || e.Code != "GE110" {
		t.Errorf("cursor entry = %+v", e)
	}

	m.resultCursor = 5
	if m.cursorEntry() != nil {
		t.Error("out-of-range cursor should yield nil")
	}
}

func TestColorFor(t *testing.T) {
	m := newTestModel(t, nil)
	m.selected = []course.Selected{
		{Entry: course.Entry{Code: "CS101", Section: "001"}, Color: 2},
		{Entry: course.Entry{Code: "GE110", Section: "001"}, Color: 3},
	}

	if got := m.colorFor(course.Entry{Code: "GE110", Section: "001"}); got != 3 {
		t.Errorf("colorFor selected entry = %d, want 3", got)
	}
	// Same code, different section is a different offering.
	if got := m.colorFor(course.Entry{Code: "CS101", Section: "002"}); got != 0 {
		t.Errorf("colorFor other section = %d, want 0", got)
	}
	if got := m.colorFor(course.Entry{Code: "EL200", Section: "001"}); got != 0 {
		t.Errorf("colorFor unselected entry = %d, want 0", got)
	}
}

func TestSelectedKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m.selected = []course.Selected{
		{Entry: course.Entry{Code: "CS101", Section: "001"}},
	}

	keys := m.selectedKeys()
	if !keys["CS101-001"] || keys["GE110-001"] {
		t.Errorf("selected keys = %v", keys)
	}
}
