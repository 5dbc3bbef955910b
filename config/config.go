package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hal/devprofile/internal/constants"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty"`
	PageSize      int    `yaml:"page_size,omitempty"`
	DisplayLimit  int    `yaml:"display_limit,omitempty"`
	Token         string `yaml:"token,omitempty"`

	// Top-level config sections
	Stats *StatsOverrides `yaml:"stats,omitempty"`
}

// StatsOverrides allows customizing the derived-activity pass
type StatsOverrides struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Repos   *int  `yaml:"repos,omitempty"`
}

// StatsSettings is the resolved activity configuration
type StatsSettings struct {
	Enabled bool
	Repos   int
}

// DefaultStatsSettings returns the default activity settings
func DefaultStatsSettings() StatsSettings {
	return StatsSettings{
		Enabled: true,
		Repos:   constants.DefaultStatsRepos,
	}
}

// GetStatsSettings returns activity settings with user overrides merged with defaults
func (c *Config) GetStatsSettings() StatsSettings {
	settings := DefaultStatsSettings()

	if c.Stats != nil {
		if c.Stats.Enabled != nil {
			settings.Enabled = *c.Stats.Enabled
		}
		if c.Stats.Repos != nil {
			settings.Repos = *c.Stats.Repos
		}
	}

	if settings.Repos < 0 {
		settings.Repos = 0
	}
	if settings.Repos > constants.MaxStatsRepos {
		settings.Repos = constants.MaxStatsRepos
	}
	if !settings.Enabled {
		settings.Repos = 0
	}

	return settings
}

// GetToken returns the API token, preferring the config file over the
// GITHUB_TOKEN environment variable. An empty result means requests go
// out unauthenticated.
func (c *Config) GetToken() string {
	if c.Token != "" {
		return c.Token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".devprofile"
	}
	return filepath.Join(configDir, "devprofile")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".devprofile.yaml"
}

// ConfigFileExists returns true if the config file exists on disk
func ConfigFileExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .devprofile.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{
		DefaultFormat: "table",
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = constants.DefaultPageSize
	}
	if cfg.DisplayLimit == 0 {
		cfg.DisplayLimit = constants.DefaultDisplayLimit
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{}

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	} else {
		result.DefaultFormat = global.DefaultFormat
	}

	if local.PageSize != 0 {
		result.PageSize = local.PageSize
	} else {
		result.PageSize = global.PageSize
	}

	if local.DisplayLimit != 0 {
		result.DisplayLimit = local.DisplayLimit
	} else {
		result.DisplayLimit = global.DisplayLimit
	}

	if local.Token != "" {
		result.Token = local.Token
	} else {
		result.Token = global.Token
	}

	result.Stats = mergeStatsOverrides(global.Stats, local.Stats)

	return result
}

func mergeStatsOverrides(global, local *StatsOverrides) *StatsOverrides {
	if global == nil && local == nil {
		return nil
	}
	result := &StatsOverrides{}

	if global != nil {
		result.Enabled = global.Enabled
		result.Repos = global.Repos
	}

	if local != nil {
		if local.Enabled != nil {
			result.Enabled = local.Enabled
		}
		if local.Repos != nil {
			result.Repos = local.Repos
		}
	}

	if result.Enabled == nil && result.Repos == nil {
		return nil
	}

	return result
}
