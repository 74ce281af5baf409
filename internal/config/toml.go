// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/slowtype/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Display  DisplayConfig  `toml:"display"`
	History  HistoryConfig  `toml:"history"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Lang     *string  `toml:"lang"`
	Mode     *string  `toml:"mode"`
	Duration *int     `toml:"duration"`
	Levels   *string  `toml:"levels"`
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
}

// DisplayConfig maps which live stats and result blocks are shown.
type DisplayConfig struct {
	WPM            *bool `toml:"wpm"`
	Accuracy       *bool `toml:"accuracy"`
	Time           *bool `toml:"time"`
	Smoothness     *bool `toml:"smoothness"`
	Consistency    *bool `toml:"consistency"`
	ResultWPM      *bool `toml:"result-wpm"`
	ResultAccuracy *bool `toml:"result-accuracy"`
	ResultChars    *bool `toml:"result-chars"`
	ResultTime     *bool `toml:"result-time"`
}

// HistoryConfig maps history retention settings.
type HistoryConfig struct {
	MaxEntries *int `toml:"max-entries"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the configured toggles onto base.
func (d DisplayConfig) Apply(base model.Display) model.Display {
	set := func(target *bool, value *bool) {
		if value != nil {
			*target = *value
		}
	}
	set(&base.StatsWPM, d.WPM)
	set(&base.StatsAccuracy, d.Accuracy)
	set(&base.StatsTime, d.Time)
	set(&base.StatsSmoothness, d.Smoothness)
	set(&base.StatsConsistency, d.Consistency)
	set(&base.ResultWPM, d.ResultWPM)
	set(&base.ResultAccuracy, d.ResultAccuracy)
	set(&base.ResultChars, d.ResultChars)
	set(&base.ResultTime, d.ResultTime)
	return base
}
