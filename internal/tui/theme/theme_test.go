package theme

import "testing"

func TestLoadAllAvailable(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%q) name = %q", name, th.Name)
		}
		if th.Bg == "" || th.Fg == "" || th.Accent == "" {
			t.Errorf("theme %q has empty base colors: %+v", name, th)
		}
		if th.Major == "" || th.General == "" || th.Elective == "" || th.Conflict == "" {
			t.Errorf("theme %q has empty category colors: %+v", name, th)
		}
	}
}

func TestLoadEmptyDefaultsToMocha(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("default theme = %q, want mocha", th.Name)
	}
}

func TestLoadUnknownFallsBackToMocha(t *testing.T) {
	th, err := Load("nonexistent")
	if err != nil {
		t.Fatalf("Load fallback failed: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("fallback theme = %q, want mocha", th.Name)
	}
}

func TestLoadCaseInsensitive(t *testing.T) {
	th, err := Load("LATTE")
	if err != nil {
		t.Fatalf("Load(LATTE) failed: %v", err)
	}
	if th.Name != "latte" {
		t.Errorf("theme = %q, want latte", th.Name)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"mocha", true},
		{"Mocha", true},
		{"latte", true},
		{"dracula", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsAvailable(tc.name); got != tc.want {
			t.Errorf("IsAvailable(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
