package pmi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTableClassicOverride(t *testing.T) {
	raw := []byte(`
generation: classic
classic:
  clamp_bound: 2.5
`)
	m, err := ParseTable(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != GenerationClassic {
		t.Fatalf("expected classic generation, got %s", m.Name())
	}
	if m.ClampBound() != 2.5 {
		t.Fatalf("expected overridden clamp bound 2.5, got %v", m.ClampBound())
	}
	// Keys not listed in the file keep their defaults.
	if m.LeagueMinutesFilter() != 10 {
		t.Fatalf("expected default minutes filter 10, got %v", m.LeagueMinutesFilter())
	}
}

func TestParseTableCalibratedOverride(t *testing.T) {
	raw := []byte(`
generation: calibrated
calibrated:
  league_minutes_filter: 18
`)
	m, err := ParseTable(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.LeagueMinutesFilter() != 18 {
		t.Fatalf("expected overridden minutes filter 18, got %v", m.LeagueMinutesFilter())
	}
	if m.ClampBound() != 3.5 {
		t.Fatalf("expected default clamp bound 3.5, got %v", m.ClampBound())
	}
}

func TestParseTableUnknownGeneration(t *testing.T) {
	if _, err := ParseTable([]byte("generation: v5")); err == nil {
		t.Fatal("expected error for unknown generation")
	}
}

func TestParseTableInvalidYAML(t *testing.T) {
	if _, err := ParseTable([]byte("generation: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte("generation: classic\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := LoadTable(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != GenerationClassic {
		t.Fatalf("expected classic generation, got %s", m.Name())
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
