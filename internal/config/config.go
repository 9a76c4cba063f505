// Package config provides YAML-based configuration loading for the
// gravoids tools: where the galaxy file lives, how planet numbers map
// to slots, and default shot parameters for tracing.
package config

// Config is the top-level tool configuration.
type Config struct {
	Galaxy GalaxyConfig `yaml:"galaxy"`
	Shot   ShotConfig   `yaml:"shot"`
	Log    LogConfig    `yaml:"log"`
}

// GalaxyConfig locates the galaxy file and its planet index.
type GalaxyConfig struct {
	// File is the path to the galaxy slot container.
	File string `yaml:"file"`

	// Planets maps planet number N to slot ordinal Planets[N-1]; an
	// entry below zero marks an absent planet. Empty means the
	// identity mapping over every whole slot in the file.
	Planets []int `yaml:"planets"`
}

// ShotConfig holds default ballistic parameters for shot tracing.
type ShotConfig struct {
	Life       int `yaml:"life"`        // frames a fresh shot lives
	BounceLife int `yaml:"bounce_life"` // frames granted per reflection
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}
