// Package config loads the optional user configuration from
// ~/.config/dune/config.yaml. A missing file is not an error; every field
// has a working default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
type Config struct {
	StartDir   string `yaml:"start_dir"`   // Directory opened on launch, defaults to the working directory
	ResultFile string `yaml:"result_file"` // Where the final directory is written on exit
	ShowHidden bool   `yaml:"show_hidden"` // Show dotfiles on launch
	DebugLog   string `yaml:"debug_log"`   // Path of the debug log file, empty disables logging
}

// LoadConfig loads configuration from the default location
// (~/.config/dune/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig(), nil
	}

	configPath := filepath.Join(home, ".config", "dune", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.StartDir != "" {
		cfg.StartDir = tempCfg.StartDir
	}
	if tempCfg.ResultFile != "" {
		cfg.ResultFile = tempCfg.ResultFile
	}
	cfg.ShowHidden = tempCfg.ShowHidden
	if tempCfg.DebugLog != "" {
		cfg.DebugLog = tempCfg.DebugLog
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		StartDir:   "",
		ResultFile: "",
		ShowHidden: false,
		DebugLog:   "",
	}
}
