package config

import (
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	ta, tb, err := cfg.Traces()
	if err != nil {
		t.Fatalf("default traces: %v", err)
	}
	if ta != 2 || tb != 2 {
		t.Errorf("expected traces 2, 2, got %v, %v", ta, tb)
	}
	if cfg.Depth <= 0 {
		t.Error("depth should be positive")
	}
	if cfg.Epsilon <= 0 {
		t.Error("epsilon should be positive")
	}
}

func TestTraces(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"2", 2},
		{"-2", -2},
		{"1.91+0.05i", 1.91 + 0.05i},
		{"1.7320508075688772+1i", 1.7320508075688772 + 1i},
		{"3i", 3i},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.TraceA = tt.in
		ta, _, err := cfg.Traces()
		if err != nil {
			t.Errorf("Traces(%q): %v", tt.in, err)
			continue
		}
		if ta != tt.want {
			t.Errorf("Traces(%q) = %v, expected %v", tt.in, ta, tt.want)
		}
	}
}

func TestTracesInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TraceB = "two"
	if _, _, err := cfg.Traces(); err == nil {
		t.Error("expected parse error for trace_b")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad trace", func(c *Config) { c.TraceA = "x" }},
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -0.5 }},
		{"zero stroke", func(c *Config) { c.StrokeWidth = 0 }},
		{"negative margin", func(c *Config) { c.Margin = -0.1 }},
		{"empty output", func(c *Config) { c.Output = "" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kleinian.yaml")
	cfg := DefaultConfig()
	cfg.TraceA = "1.91+0.05i"
	cfg.TraceB = "3"
	cfg.Depth = 30
	cfg.Epsilon = 0.002

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip changed config: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gasket")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.TraceA != "2" || cfg.TraceB != "2" {
		t.Errorf("expected gasket traces 2, 2, got %s, %s", cfg.TraceA, cfg.TraceB)
	}
	// Presets inherit the output settings from the defaults.
	if cfg.Output != DefaultOutput {
		t.Errorf("expected output %s, got %s", DefaultOutput, cfg.Output)
	}
	// Mutating the copy must not touch the preset table.
	cfg.TraceA = "9"
	if again := GetPreset("gasket"); again.TraceA != "2" {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := GetPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
