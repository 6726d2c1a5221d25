package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diegesisandmimesis/calendar/pkg/period"
)

func TestParseEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore; unset so the default applies.
	for _, key := range []string{"CALENDAR_DB", "CALENDAR_HOOKS", "CALENDAR_PERIODS"} {
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}
	if cfg.DBPath != ".calendar/calendar.db" {
		t.Fatalf("default DBPath: got %q", cfg.DBPath)
	}
	if cfg.Hooks != "" || cfg.Periods != "" {
		t.Fatalf("optional paths should default empty: %+v", cfg)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CALENDAR_DB", "/tmp/game.db")
	t.Setenv("CALENDAR_HOOKS", "hooks.lua")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/game.db" || cfg.Hooks != "hooks.lua" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseDeclarations(t *testing.T) {
	data := []byte(`
periods:
  - id: dawn
    name: Dawn
    hours: 24
  - id: tide
    hours: 6
`)
	periods, err := ParseDeclarations(data)
	if err != nil {
		t.Fatalf("ParseDeclarations: %v", err)
	}
	if len(periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(periods))
	}
	if periods[0].ID != "dawn" || periods[0].Name != "Dawn" || periods[0].Hours != 24 {
		t.Fatalf("first: %+v", periods[0])
	}
	if periods[1].ID != "tide" || periods[1].Name != "" || periods[1].Hours != 6 {
		t.Fatalf("second: %+v", periods[1])
	}
}

func TestParseDeclarationsInvalidPeriod(t *testing.T) {
	data := []byte("periods:\n  - id: bad\n    hours: 0\n")
	if _, err := ParseDeclarations(data); !errors.Is(err, period.ErrInvalidPeriod) {
		t.Fatalf("zero duration: got %v, want ErrInvalidPeriod", err)
	}
	data = []byte("periods:\n  - name: anonymous\n    hours: 5\n")
	if _, err := ParseDeclarations(data); !errors.Is(err, period.ErrInvalidPeriod) {
		t.Fatalf("missing id: got %v, want ErrInvalidPeriod", err)
	}
}

func TestParseDeclarationsBadYAML(t *testing.T) {
	if _, err := ParseDeclarations([]byte("periods: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDeclarations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periods.yaml")
	content := "periods:\n  - id: dawn\n    hours: 24\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	periods, err := LoadDeclarations(path)
	if err != nil {
		t.Fatalf("LoadDeclarations: %v", err)
	}
	if len(periods) != 1 || periods[0].ID != "dawn" {
		t.Fatalf("got %+v", periods)
	}
}

func TestLoadDeclarationsMissingFile(t *testing.T) {
	if _, err := LoadDeclarations(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
