package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunables that shape brush strokes and pile behavior.
type Params struct {
	SpawnRadius     int     `yaml:"spawn_radius"`
	EraseRadius     int     `yaml:"erase_radius"`
	AvalancheChance float64 `yaml:"avalanche_chance"`

	HueStep    float64 `yaml:"hue_step"`
	HueJitter  float64 `yaml:"hue_jitter"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// Config controls the grid dimensions and simulation behavior.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 260,
		Seed:   1337,
		Params: Params{
			SpawnRadius:     2,
			EraseRadius:     3,
			AvalancheChance: 0.35,
			HueStep:         1.5,
			HueJitter:       20,
			Saturation:      0.9,
			Lightness:       0.55,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["spawn_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SpawnRadius = parsed
		}
	}
	if v, ok := cfg["erase_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.EraseRadius = parsed
		}
	}
	if v, ok := cfg["avalanche_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.AvalancheChance = parsed
		}
	}
	if v, ok := cfg["hue_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.HueStep = parsed
		}
	}
	if v, ok := cfg["hue_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.HueJitter = parsed
		}
	}
	if v, ok := cfg["saturation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Saturation = parsed
		}
	}
	if v, ok := cfg["lightness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Lightness = parsed
		}
	}
	return c
}

// LoadFile reads a YAML tuning file on top of the defaults. Unknown keys are
// ignored; non-positive grid dimensions are rejected.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf("config %s: grid dimensions must be positive", path)
	}
	return c, nil
}
