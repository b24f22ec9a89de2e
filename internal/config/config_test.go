package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.View.DayStart != "" || cfg.View.DayEnd != "" {
		t.Errorf("expected empty view window defaults, got %q..%q", cfg.View.DayStart, cfg.View.DayEnd)
	}
	if cfg.View.Days != nil {
		t.Errorf("expected no configured days, got %v", cfg.View.Days)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.BaseURL != "http://localhost:11434" {
		t.Errorf("expected base_url http://localhost:11434, got %s", cfg.LLM.BaseURL)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected default provider, got %s", cfg.LLM.Provider)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[view]
day_start = "08:00"
day_end = "16:00"
days = ["monday", "wednesday", "friday"]

[llm]
provider = "openai"
model = "gpt-4o-mini"
base_url = "http://localhost:11435"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00, got %s", cfg.View.DayStart)
	}
	if cfg.View.DayEnd != "16:00" {
		t.Errorf("expected day_end 16:00, got %s", cfg.View.DayEnd)
	}
	if len(cfg.View.Days) != 3 {
		t.Errorf("expected 3 days, got %d", len(cfg.View.Days))
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.LLM.Model)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[view]
day_start = "08:00"
day_end = "16:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("SUGANG_DAY_START", "10:00")
	t.Setenv("SUGANG_LLM_MODEL", "llama3.1")
	t.Setenv("SUGANG_DAYS", "monday,tuesday")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.View.DayStart != "10:00" {
		t.Errorf("expected day_start 10:00 from env, got %s", cfg.View.DayStart)
	}
	// File value should be kept when no env override
	if cfg.View.DayEnd != "16:00" {
		t.Errorf("expected day_end 16:00 from file, got %s", cfg.View.DayEnd)
	}
	// Env should override default
	if cfg.LLM.Model != "llama3.1" {
		t.Errorf("expected model llama3.1 from env, got %s", cfg.LLM.Model)
	}
	if !reflect.DeepEqual(cfg.View.Days, []string{"monday", "tuesday"}) {
		t.Errorf("expected days from env, got %v", cfg.View.Days)
	}
}

func TestValidate_InvalidDayStart(t *testing.T) {
	cfg := Default()
	cfg.View.DayStart = "9:00" // Missing leading zero

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid day_start")
	}
}

func TestValidate_DayStartAfterDayEnd(t *testing.T) {
	cfg := Default()
	cfg.View.DayStart = "18:00"
	cfg.View.DayEnd = "09:00"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when day_start >= day_end")
	}
}

func TestValidate_PartialWindowAllowed(t *testing.T) {
	cfg := Default()
	cfg.View.DayStart = "08:00"
	// DayEnd stays empty and derives from the data

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no error for partial window override, got: %v", err)
	}
}

func TestValidate_InvalidDay(t *testing.T) {
	cfg := Default()
	cfg.View.Days = []string{"monday", "funday"}

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid day")
	}
}

func TestViewDays(t *testing.T) {
	cfg := Default()
	if days := cfg.ViewDays(); days != nil {
		t.Errorf("expected nil days for default config, got %v", days)
	}

	cfg.View.Days = []string{"Wed", "monday", "FRIDAY"}
	if days := cfg.ViewDays(); !reflect.DeepEqual(days, []int{2, 0, 4}) {
		t.Errorf("ViewDays() = %v, want [2 0 4]", days)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.View.DayStart = "07:30"
	cfg.View.DayEnd = "15:30"
	cfg.View.Days = []string{"monday", "tuesday", "wednesday", "thursday"}
	cfg.UI.Theme = "frappe"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.View.DayStart != "07:30" {
		t.Errorf("expected day_start 07:30, got %s", loaded.View.DayStart)
	}
	if loaded.View.DayEnd != "15:30" {
		t.Errorf("expected day_end 15:30, got %s", loaded.View.DayEnd)
	}
	if len(loaded.View.Days) != 4 {
		t.Errorf("expected 4 days, got %d", len(loaded.View.Days))
	}
	if loaded.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", loaded.UI.Theme)
	}
}
