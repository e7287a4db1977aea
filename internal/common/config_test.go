package common

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Quality.MinScore != 50 || cfg.Quality.MinLines != 6 || cfg.Quality.MinChars != 80 {
		t.Errorf("unexpected quality defaults: %+v", cfg.Quality)
	}
	if !cfg.Quality.RequireAmount || !cfg.Quality.RequireSignals {
		t.Errorf("hard requirements should default on: %+v", cfg.Quality)
	}
	if cfg.Export.SheetName != "Receipts" {
		t.Errorf("SheetName = %q, want Receipts", cfg.Export.SheetName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("QUALITY_MIN_SCORE", "65")
	t.Setenv("QUALITY_REQUIRE_AMOUNT", "false")
	t.Setenv("EXPORT_SHEET_NAME", "Bonnen")
	t.Setenv("QUALITY_MIN_LINES", "not a number")

	cfg := LoadConfig()
	if cfg.Quality.MinScore != 65 {
		t.Errorf("MinScore = %d, want 65", cfg.Quality.MinScore)
	}
	if cfg.Quality.RequireAmount {
		t.Error("RequireAmount should be off")
	}
	if cfg.Export.SheetName != "Bonnen" {
		t.Errorf("SheetName = %q, want Bonnen", cfg.Export.SheetName)
	}
	// unparsable values fall back to the default
	if cfg.Quality.MinLines != 6 {
		t.Errorf("MinLines = %d, want 6", cfg.Quality.MinLines)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Quality.MinScore = 140
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an out-of-range score")
	}
	cfg = LoadConfig()
	cfg.Quality.MinLines = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for zero minimum lines")
	}
}
