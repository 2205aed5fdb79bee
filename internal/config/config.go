// Package config loads the optional app config file. A missing file
// means defaults; only an unreadable or unparsable file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DefaultLead/DefaultTrail pad newly created codes, in seconds.
	DefaultLead  float64 `yaml:"default_lead"`
	DefaultTrail float64 `yaml:"default_trail"`
	// FPS drives frame-step seeking.
	FPS int `yaml:"fps"`
	// RecentLimit caps the recent-projects list.
	RecentLimit int `yaml:"recent_limit"`
	// Autosave writes the project file on every mutation when set.
	Autosave bool `yaml:"autosave"`
}

func Default() Config {
	return Config{
		DefaultLead:  10,
		DefaultTrail: 10,
		FPS:          24,
		RecentLimit:  10,
	}
}

// Load reads path, filling unset fields from the defaults. A missing
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DefaultLead < 0 {
		cfg.DefaultLead = 0
	}
	if cfg.DefaultTrail < 0 {
		cfg.DefaultTrail = 0
	}
	if cfg.FPS <= 0 {
		cfg.FPS = Default().FPS
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = Default().RecentLimit
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/replaytag/config.yaml
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "replaytag", "config.yaml"), nil
}
