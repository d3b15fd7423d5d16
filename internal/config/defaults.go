package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic 2048 configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			Spawn4Prob:   0.10,
			InitialTiles: 2,
			HistoryLimit: 20,
			WinTile:      2048,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
