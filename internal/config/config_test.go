package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "geostationary" {
		t.Errorf("expected geostationary, got %s", cfg.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Span.Step <= 0 {
		t.Error("step should be positive")
	}
}

func TestToElements(t *testing.T) {
	cfg := DefaultConfig()
	el := cfg.ToElements()

	// 1.00273896 rev/day is the sidereal rate, ~0.0043753 rad/min.
	if math.Abs(el.MeanMotion-4.3752740975e-3) > 1e-10 {
		t.Errorf("unexpected mean motion: %g rad/min", el.MeanMotion)
	}
	if math.Abs(el.Inclination-0.573*DegreesToRadian) > 1e-12 {
		t.Errorf("unexpected inclination: %g rad", el.Inclination)
	}
	if math.Abs(el.RAAN-80.0*DegreesToRadian) > 1e-12 {
		t.Errorf("unexpected raan: %g rad", el.RAAN)
	}
	if !el.IsValid() {
		t.Error("converted elements invalid")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sat.yaml")

	orig := Presets["molniya"]
	if err := Save(path, orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != orig.Name {
		t.Errorf("name mismatch: %s vs %s", loaded.Name, orig.Name)
	}
	if loaded.Elements != orig.Elements {
		t.Errorf("elements mismatch: %+v vs %+v", loaded.Elements, orig.Elements)
	}
	if !loaded.Epoch.Equal(orig.Epoch) {
		t.Errorf("epoch mismatch: %v vs %v", loaded.Epoch, orig.Epoch)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mean motion", func(c *Config) { c.Elements.MeanMotion = 0 }},
		{"negative mean motion", func(c *Config) { c.Elements.MeanMotion = -1 }},
		{"eccentricity one", func(c *Config) { c.Elements.Eccentricity = 1.0 }},
		{"negative eccentricity", func(c *Config) { c.Elements.Eccentricity = -0.1 }},
		{"zero step", func(c *Config) { c.Span.Step = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"geostationary", "molniya", "gps", "tundra"} {
		cfg, ok := Presets[name]
		if !ok {
			t.Errorf("missing preset %s", name)
			continue
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		el := cfg.ToElements()
		if !el.IsValid() {
			t.Errorf("preset %s converts to invalid elements", name)
		}
	}
}
