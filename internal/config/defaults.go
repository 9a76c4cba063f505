package config

import (
	_ "embed"
)

//go:embed defaults/gravoids.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the default tool configuration.
func DefaultConfig() Config {
	return Config{
		Galaxy: GalaxyConfig{
			File:    "galaxy.bin",
			Planets: nil,
		},
		Shot: ShotConfig{
			Life:       35,
			BounceLife: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration YAML.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
