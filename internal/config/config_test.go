package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SolarMass != DefaultSolarMass {
		t.Errorf("SolarMass = %v, want %v", cfg.SolarMass, DefaultSolarMass)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d", cfg.Width, cfg.Height, DefaultWidth, DefaultHeight)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestValidateRejectsNegativeMass(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SolarMass = -1

	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for negative solar mass")
	}
}

func TestValidateRejectsZeroThreads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threads = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for zero threads")
	}
}

func TestValidateRejectsNonPositiveFov(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fov = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for zero fov")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := DefaultConfig()
	original.SolarMass = 21.2
	original.Threads = 8

	if err := Save(path, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SolarMass != original.SolarMass || loaded.Threads != original.Threads {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, original)
	}
}

func TestLoadMissingFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	if err := os.WriteFile(path, []byte("solar_mass: 5\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SolarMass != 5 {
		t.Errorf("SolarMass = %v, want 5 (explicitly set)", loaded.SolarMass)
	}
	if loaded.Width != DefaultWidth {
		t.Errorf("Width = %v, want default %v (field omitted from file)", loaded.Width, DefaultWidth)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sgr-a-star")
	if cfg == nil {
		t.Fatal("expected a preset for sgr-a-star")
	}
	if cfg.SolarMass <= 1e6 {
		t.Errorf("SolarMass = %v, want a supermassive-scale value", cfg.SolarMass)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for an unknown preset name")
	}
}

func TestGetPresetReturnsACopy(t *testing.T) {
	a := GetPreset("stellar-default")
	a.SolarMass = 999

	b := GetPreset("stellar-default")
	if b.SolarMass == 999 {
		t.Error("mutating a returned preset should not affect the shared map")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("got %d names, want %d", len(names), len(Presets))
	}
}
