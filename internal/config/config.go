// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RoverConfig contains all configuration for the Rover game.
type RoverConfig struct {
	World   RoverWorld   `yaml:"world"`
	Rover   RoverUnit    `yaml:"rover"`
	Scoring RoverScoring `yaml:"scoring"`
}

// RoverWorld defines the size and contents of the map.
type RoverWorld struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Crystals int `yaml:"crystals"`
	Rocks    int `yaml:"rocks"`
}

// RoverUnit defines the rover's own parameters.
type RoverUnit struct {
	Fuel       int `yaml:"fuel"`
	LookRadius int `yaml:"look_radius"` // Manhattan distance covered by "look"
}

// RoverScoring defines how points are awarded.
type RoverScoring struct {
	CrystalValue int `yaml:"crystal_value"`
	FuelBonus    int `yaml:"fuel_bonus"` // Per unit of fuel left when every crystal is taken
}

// Validate checks that the config describes a playable world.
func (c RoverConfig) Validate() error {
	w := c.World
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalid, w.Width, w.Height)
	case w.Crystals <= 0:
		return fmt.Errorf("%w: crystals must be positive, got %d", ErrInvalid, w.Crystals)
	case w.Rocks < 0:
		return fmt.Errorf("%w: rocks must not be negative, got %d", ErrInvalid, w.Rocks)
	case w.Crystals+w.Rocks >= w.Width*w.Height:
		// One cell is always kept free for the rover.
		return fmt.Errorf("%w: %d objects do not fit in %dx%d", ErrInvalid, w.Crystals+w.Rocks, w.Width, w.Height)
	case c.Rover.Fuel <= 0:
		return fmt.Errorf("%w: fuel must be positive, got %d", ErrInvalid, c.Rover.Fuel)
	case c.Rover.LookRadius < 0:
		return fmt.Errorf("%w: look_radius must not be negative, got %d", ErrInvalid, c.Rover.LookRadius)
	}
	return nil
}
