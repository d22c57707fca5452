package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RoverConfig
	if err := yaml.Unmarshal(GetDefaultYAML("rover"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultRoverConfig() {
		t.Errorf("embedded YAML %+v differs from DefaultRoverConfig() %+v", fromYAML, DefaultRoverConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("Unknown game should have no default YAML")
	}
}

func TestLoadRoverCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	writeFile(t, path, "rover:\n  fuel: 99\n")

	cfg, err := LoadRover(path)
	if err != nil {
		t.Fatalf("LoadRover() failed: %v", err)
	}
	if cfg.Rover.Fuel != 99 {
		t.Errorf("Fuel = %d, expected 99", cfg.Rover.Fuel)
	}
	if cfg.World.Width != DefaultRoverConfig().World.Width {
		t.Errorf("Width = %d, expected default to be kept", cfg.World.Width)
	}
}

func TestLoadRoverCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRover(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "world: [not a map\n")
	if _, err := LoadRover(bad); err == nil {
		t.Error("Expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "world:\n  width: 0\n")
	if _, err := LoadRover(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadRoverSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := LoadRover("")
	if err != nil {
		t.Fatalf("LoadRover() failed: %v", err)
	}
	if cfg != DefaultRoverConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	writeFile(t, filepath.Join(work, "configs", "rover.yaml"), "rover:\n  fuel: 11\n")
	cfg, _ = LoadRover("")
	if cfg.Rover.Fuel != 11 {
		t.Errorf("Fuel = %d, expected local config value 11", cfg.Rover.Fuel)
	}

	// User config wins over local.
	writeFile(t, filepath.Join(home, ".arcade", "configs", "rover.yaml"), "rover:\n  fuel: 22\n")
	cfg, _ = LoadRover("")
	if cfg.Rover.Fuel != 22 {
		t.Errorf("Fuel = %d, expected user config value 22", cfg.Rover.Fuel)
	}

	// An invalid user config is skipped.
	writeFile(t, filepath.Join(home, ".arcade", "configs", "rover.yaml"), "rover:\n  fuel: -1\n")
	cfg, _ = LoadRover("")
	if cfg.Rover.Fuel != 11 {
		t.Errorf("Fuel = %d, expected fallback to local config value 11", cfg.Rover.Fuel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoverConfig)
	}{
		{"zero width", func(c *RoverConfig) { c.World.Width = 0 }},
		{"no crystals", func(c *RoverConfig) { c.World.Crystals = 0 }},
		{"negative rocks", func(c *RoverConfig) { c.World.Rocks = -1 }},
		{"too crowded", func(c *RoverConfig) { c.World.Width, c.World.Height, c.World.Crystals, c.World.Rocks = 2, 2, 2, 2 }},
		{"no fuel", func(c *RoverConfig) { c.Rover.Fuel = 0 }},
		{"negative radius", func(c *RoverConfig) { c.Rover.LookRadius = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRoverConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyRoverPreset(t *testing.T) {
	base := DefaultRoverConfig()

	easy := base
	ApplyRoverPreset(&easy, DifficultyEasy)
	if easy.Rover.Fuel <= base.Rover.Fuel {
		t.Errorf("Easy fuel %d should exceed base %d", easy.Rover.Fuel, base.Rover.Fuel)
	}
	if easy.World.Rocks >= base.World.Rocks {
		t.Errorf("Easy rocks %d should be fewer than base %d", easy.World.Rocks, base.World.Rocks)
	}

	hard := base
	ApplyRoverPreset(&hard, DifficultyHard)
	if hard.Rover.Fuel >= base.Rover.Fuel {
		t.Errorf("Hard fuel %d should be below base %d", hard.Rover.Fuel, base.Rover.Fuel)
	}

	for _, p := range []DifficultyPreset{DifficultyNormal, DifficultyFixed, ""} {
		cfg := base
		ApplyRoverPreset(&cfg, p)
		if cfg != base {
			t.Errorf("Preset %q should not change the config", p)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}
