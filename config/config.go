// Package config loads tuning overrides from TOML files
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/pacific-fighter/parameter"
)

// ErrInvalidTuning is wrapped by every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Load returns the default tuning with the file at path applied on top
// An empty path yields the defaults unchanged
func Load(path string) (parameter.Tuning, error) {
	t := parameter.Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := Decode(string(data), &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Decode applies TOML text onto an existing tuning and validates the result
func Decode(text string, t *parameter.Tuning) error {
	md, err := toml.Decode(text, t)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("config: ignoring unknown keys: %s", strings.Join(keys, ", "))
	}
	return Validate(t)
}

// Validate rejects values that would stall or break the simulation
func Validate(t *parameter.Tuning) error {
	switch {
	case t.Screen.Width <= 0 || t.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidTuning)
	case t.Screen.OceanOffset < 0 || t.Screen.OceanOffset >= t.Screen.Height:
		return fmt.Errorf("%w: ocean offset out of range", ErrInvalidTuning)
	case t.WorldSpeed <= 0:
		return fmt.Errorf("%w: world_speed must be positive", ErrInvalidTuning)
	case t.Segment.Launch <= 0 || t.Segment.Ocean <= 0 || t.Segment.Island <= 0 ||
		t.Segment.CarrierReturn <= 0 || t.Segment.Relaunch <= 0:
		return fmt.Errorf("%w: segment durations must be positive", ErrInvalidTuning)
	case t.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player max_health must be positive", ErrInvalidTuning)
	case t.Player.MaxBombs < 0:
		return fmt.Errorf("%w: player max_bombs must not be negative", ErrInvalidTuning)
	case t.Player.MinY*2 >= t.Screen.Height:
		return fmt.Errorf("%w: player min_y leaves no flight band", ErrInvalidTuning)
	case t.Weapon.CannonCooldown < 0 || t.Weapon.BombCooldown < 0:
		return fmt.Errorf("%w: weapon cooldowns must not be negative", ErrInvalidTuning)
	case t.Weapon.ExplosionRadius <= 0:
		return fmt.Errorf("%w: explosion_radius must be positive", ErrInvalidTuning)
	case t.Battleship.HP <= 0:
		return fmt.Errorf("%w: battleship hp must be positive", ErrInvalidTuning)
	case t.Battleship.FireChance < 0 || t.Battleship.FireChance > 1:
		return fmt.Errorf("%w: battleship fire_chance must be within [0,1]", ErrInvalidTuning)
	}
	return nil
}
