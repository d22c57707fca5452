package config

import (
	_ "embed"
)

//go:embed defaults/rover.yaml
var defaultRoverYAML []byte

// DefaultRoverConfig returns the default Rover configuration.
// It matches defaults/rover.yaml.
func DefaultRoverConfig() RoverConfig {
	return RoverConfig{
		World: RoverWorld{
			Width:    24,
			Height:   12,
			Crystals: 8,
			Rocks:    20,
		},
		Rover: RoverUnit{
			Fuel:       60,
			LookRadius: 4,
		},
		Scoring: RoverScoring{
			CrystalValue: 10,
			FuelBonus:    2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rover":
		return defaultRoverYAML
	default:
		return nil
	}
}
