package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SaveDirectory   string `yaml:"save_directory"`
	DefaultSegments int    `yaml:"default_segments"`
	PresetBaseURL   string `yaml:"preset_base_url"`
	Confirmations   bool   `yaml:"confirmations"`
	AxisLockX       bool   `yaml:"axis_lock_x"`
	AxisLockY       bool   `yaml:"axis_lock_y"`
	WatchFiles      bool   `yaml:"watch_files"`
	DebugLog        string `yaml:"debug_log"`
}

func defaultConfig() *Config {
	return &Config{
		DefaultSegments: defaultSegments,
		Confirmations:   true,
		AxisLockX:       false,
		AxisLockY:       true,
		WatchFiles:      true,
	}
}

// loadConfig reads ~/.itavrc.yaml, falling back to defaults when the
// file is missing or unreadable. Config problems never stop startup.
func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}
	data, err := os.ReadFile(filepath.Join(homeDir, ".itavrc.yaml"))
	if err != nil {
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig()
	}

	if config.DefaultSegments < minSegments || config.DefaultSegments > maxSegments {
		config.DefaultSegments = defaultSegments
	}
	if config.SaveDirectory != "" {
		if v := config.SaveDirectory; v[0] == '~' {
			config.SaveDirectory = filepath.Join(homeDir, v[1:])
		}
		if !filepath.IsAbs(config.SaveDirectory) {
			if abs, err := filepath.Abs(config.SaveDirectory); err == nil {
				config.SaveDirectory = abs
			}
		}
	}
	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
