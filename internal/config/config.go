// Package config provides configuration management for nya with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete configuration for nya.
//
// The window parameters (size, title) are deliberately absent: they are fixed
// at process start and not configurable.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Graphics GraphicsConfig `mapstructure:"graphics" yaml:"graphics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// GraphicsConfig holds the EGL knobs.
type GraphicsConfig struct {
	// RequireAlpha selects whether the EGL config must carry an 8-bit
	// alpha channel. This is the single configuration point for the
	// framebuffer attribute list.
	RequireAlpha bool `mapstructure:"require_alpha" yaml:"require_alpha"`
	// SwapInterval is passed to eglSwapInterval after the context becomes
	// current. 1 synchronizes presentation with the display, 0 disables it.
	SwapInterval int `mapstructure:"swap_interval" yaml:"swap_interval"`
}

// Default returns the default configuration values for nya.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Graphics: GraphicsConfig{
			RequireAlpha: true,
			SwapInterval: 1,
		},
	}
}

// GetConfigDir returns the nya configuration directory following XDG conventions.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nya"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "nya"), nil
}

// Load reads the configuration from disk, applying defaults for anything
// missing. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("NYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("graphics.require_alpha", defaults.Graphics.RequireAlpha)
	v.SetDefault("graphics.swap_interval", defaults.Graphics.SwapInterval)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q (want json or console)", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	if c.Graphics.SwapInterval < 0 {
		return fmt.Errorf("invalid graphics.swap_interval %d (must be >= 0)", c.Graphics.SwapInterval)
	}

	return nil
}
