// Package config provides YAML-based configuration for the game engine and
// its collaborators.
package config

import "github.com/mkruglov/twenty48/internal/engine"

// GameConfig contains all configuration for the 2048 game.
type GameConfig struct {
	Rules  RulesConfig  `yaml:"rules"`
	Report ReportConfig `yaml:"report"`
}

// RulesConfig defines the engine rule parameters.
type RulesConfig struct {
	Spawn4Prob   float64 `yaml:"spawn_4_prob"`  // Probability of spawning 4 instead of 2 (0.0-1.0)
	InitialTiles int     `yaml:"initial_tiles"` // Tiles spawned on new game
	HistoryLimit int     `yaml:"history_limit"` // Undo buffer capacity
	WinTile      int     `yaml:"win_tile"`      // Tile value that wins the game
}

// ReportConfig defines the external score-submission endpoint.
type ReportConfig struct {
	URL string `yaml:"url"` // Empty disables score reporting
}

// EngineRules converts the config into engine rules, substituting defaults
// for unset or out-of-range values.
func (c GameConfig) EngineRules() engine.Rules {
	rules := engine.DefaultRules()

	if c.Rules.Spawn4Prob > 0 && c.Rules.Spawn4Prob <= 1 {
		rules.Spawn4Prob = c.Rules.Spawn4Prob
	}
	if c.Rules.InitialTiles > 0 {
		rules.InitialTiles = c.Rules.InitialTiles
	}
	if c.Rules.HistoryLimit > 0 {
		rules.HistoryLimit = c.Rules.HistoryLimit
	}
	if c.Rules.WinTile > 0 {
		rules.WinTile = c.Rules.WinTile
	}

	return rules
}
