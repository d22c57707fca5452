package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRover loads Rover configuration.
// Search order: customPath -> ~/.arcade/configs/rover.yaml -> ./configs/rover.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadRover(customPath string) (RoverConfig, error) {
	cfg := DefaultRoverConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("rover.yaml"), filepath.Join("configs", "rover.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path, cfg); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRoverYAML, &cfg); err != nil {
		return DefaultRoverConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped so the next location in the search order is tried.
func tryLoad(path string, base RoverConfig) (RoverConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
