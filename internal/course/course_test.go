package course

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		section  string
		title    string
		credits  int
		category Category
		wantErr  error
	}{
		{"valid", "CS101", "001", "Data Structures", 3, CategoryMajor, nil},
		{"trims whitespace", "  CS101  ", " 001 ", " Data Structures ", 3, CategoryMajor, nil},
		{"empty code", "", "001", "Data Structures", 3, CategoryMajor, ErrEmptyCode},
		{"whitespace code", "   ", "001", "Data Structures", 3, CategoryMajor, ErrEmptyCode},
		{"empty section", "CS101", "", "Data Structures", 3, CategoryMajor, ErrEmptySection},
		{"empty title", "CS101", "001", "", 3, CategoryMajor, ErrEmptyTitle},
		{"negative credits", "CS101", "001", "Data Structures", -1, CategoryMajor, ErrInvalidCredits},
		{"too many credits", "CS101", "001", "Data Structures", 11, CategoryMajor, ErrInvalidCredits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.code, tt.section, tt.title, "Prof. Kim", tt.credits, tt.category, "월1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if e.Code != "CS101" || e.Section != "001" {
				t.Errorf("entry not trimmed: %+v", e)
			}
		})
	}

	if _, err := New("CS101", "001", "Data Structures", "", 3, Category("bogus"), ""); err == nil {
		t.Error("New() with unknown category should fail")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	e := Entry{Code: "CS-ADV-101", Section: "002"}
	key := e.Key()
	if key != "CS-ADV-101-002" {
		t.Fatalf("Key() = %q", key)
	}

	code, section, err := SplitKey(key)
	if err != nil {
		t.Fatalf("SplitKey(%q) error: %v", key, err)
	}
	if code != e.Code || section != e.Section {
		t.Errorf("SplitKey(%q) = (%q, %q), want (%q, %q)", key, code, section, e.Code, e.Section)
	}
}

func TestSplitKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "nodash", "-001", "CS101-"} {
		if _, _, err := SplitKey(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("SplitKey(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestSameOffering(t *testing.T) {
	a := &Entry{Code: "CS101", Section: "001", Title: "Data Structures"}
	b := &Entry{Code: "CS101", Section: "001", Title: "Different title"}
	c := &Entry{Code: "CS101", Section: "002"}

	if !a.SameOffering(b) {
		t.Error("same code and section should be the same offering")
	}
	if a.SameOffering(c) {
		t.Error("different sections are distinct offerings")
	}
	if a.SameOffering(nil) {
		t.Error("nil is never the same offering")
	}
}

func TestWeekdayNames(t *testing.T) {
	if got := WeekdayName(0); got != "Monday" {
		t.Errorf("WeekdayName(0) = %q", got)
	}
	if got := WeekdayShortName(6); got != "Sun" {
		t.Errorf("WeekdayShortName(6) = %q", got)
	}
	if got := WeekdayName(7); got != "" {
		t.Errorf("WeekdayName(7) = %q, want empty", got)
	}

	for d := 0; d <= 6; d++ {
		if ParseWeekday(WeekdayName(d)) != d {
			t.Errorf("ParseWeekday(WeekdayName(%d)) != %d", d, d)
		}
		if ParseWeekday(WeekdayShortName(d)) != d {
			t.Errorf("ParseWeekday(WeekdayShortName(%d)) != %d", d, d)
		}
	}

	if ParseWeekday("FRIDAY") != 4 {
		t.Error("ParseWeekday should be case-insensitive")
	}
	if ParseWeekday("someday") != -1 {
		t.Error("ParseWeekday should return -1 for unknown names")
	}
}
