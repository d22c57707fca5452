package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyRoverPreset modifies the config based on a difficulty preset.
// Fixed and normal keep the loaded values.
func ApplyRoverPreset(cfg *RoverConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rover.Fuel = cfg.Rover.Fuel * 3 / 2
		cfg.Rover.LookRadius++
		cfg.World.Rocks /= 2
	case DifficultyHard:
		cfg.Rover.Fuel = cfg.Rover.Fuel * 2 / 3
		if cfg.Rover.LookRadius > 1 {
			cfg.Rover.LookRadius--
		}
		cfg.Scoring.FuelBonus *= 2
	}
}
