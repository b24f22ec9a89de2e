// Package course defines the core domain types for sugang.
package course

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyCode      = errors.New("course code cannot be empty")
	ErrEmptySection   = errors.New("section cannot be empty")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidCredits = errors.New("credits must be between 0 and 10")
	ErrInvalidKey     = errors.New("key must be in CODE-SECTION format")
)

// Domain errors.
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrAlreadySelected  = errors.New("course is already selected")
	ErrNotSelected      = errors.New("course is not in the selection")
	ErrTimetableExists  = errors.New("a timetable with that name already exists")
	ErrNoSuchTimetable  = errors.New("timetable not found")
)

// Category classifies a course offering.
type Category string

const (
	CategoryMajor   Category = "major"
	CategoryGeneral Category = "general"
	CategoryElect   Category = "elective"
)

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryMajor, CategoryGeneral, CategoryElect:
		return true
	default:
		return false
	}
}

// Entry is one offering in the course catalog. It is immutable input for the
// timetable pipeline; only Schedule is inspected by the core.
type Entry struct {
	Code       string // e.g. "CS101"
	Section    string // e.g. "001"
	Title      string
	Instructor string
	Credits    int
	Category   Category
	Schedule   string // raw schedule string, e.g. "월1 수2 수3"
}

// New creates an Entry with validation.
func New(code, section, title, instructor string, credits int, category Category, schedule string) (*Entry, error) {
	code = strings.TrimSpace(code)
	section = strings.TrimSpace(section)
	title = strings.TrimSpace(title)

	if code == "" {
		return nil, ErrEmptyCode
	}
	if section == "" {
		return nil, ErrEmptySection
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if credits < 0 || credits > 10 {
		return nil, ErrInvalidCredits
	}
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Entry{
		Code:       code,
		Section:    section,
		Title:      title,
		Instructor: strings.TrimSpace(instructor),
		Credits:    credits,
		Category:   category,
		Schedule:   schedule,
	}, nil
}

// Key returns the identity of the entry. Two entries with the same key are
// the same offering for grouping and conflict purposes.
func (e *Entry) Key() string {
	return e.Code + "-" + e.Section
}

// SplitKey parses a "CODE-SECTION" key back into its parts.
// The section is everything after the last dash, so codes may contain dashes.
func SplitKey(key string) (code, section string, err error) {
	idx := strings.LastIndex(key, "-")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", ErrInvalidKey
	}
	return key[:idx], key[idx+1:], nil
}

// SameOffering returns true if both entries share code and section.
func (e *Entry) SameOffering(other *Entry) bool {
	if other == nil {
		return false
	}
	return e.Code == other.Code && e.Section == other.Section
}

// WeekdayName returns the name of the weekday (0=Monday).
func WeekdayName(weekday int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return names[weekday]
}

// ParseWeekday converts an English weekday name (full or short, any case)
// to a day index (0=Monday). Returns -1 if the name is not recognized.
func ParseWeekday(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monday", "mon":
		return 0
	case "tuesday", "tue":
		return 1
	case "wednesday", "wed":
		return 2
	case "thursday", "thu":
		return 3
	case "friday", "fri":
		return 4
	case "saturday", "sat":
		return 5
	case "sunday", "sun":
		return 6
	default:
		return -1
	}
}
