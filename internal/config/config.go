// Package config provides configuration management for the expense analytics
// application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Analytics     AnalyticsConfig    `mapstructure:"analytics"`
	Alerts        AlertsConfig       `mapstructure:"alerts"`
	Server        ServerConfig       `mapstructure:"server"`
	UI            UIConfig           `mapstructure:"ui"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// AnalyticsConfig holds aggregation and insight thresholds.
type AnalyticsConfig struct {
	// EmotionalSpendThreshold is the emotional spend ratio above which the
	// high emotional spending insight fires.
	EmotionalSpendThreshold float64 `mapstructure:"emotional_spend_threshold"`
	// DefaultWindow is the window used when the caller does not pick one.
	DefaultWindow string `mapstructure:"default_window"`
	// Locale is the presentation locale token; it never affects engine logic.
	Locale string `mapstructure:"locale"`
}

// AlertsConfig holds predictive alert rule tunables.
type AlertsConfig struct {
	// LookaheadDays is the stressful-event horizon for stress_prediction.
	LookaheadDays int `mapstructure:"lookahead_days"`
}

// ServerConfig holds the HTTP API configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// UIConfig holds CLI output configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// NotificationConfig holds alert notification configuration.
type NotificationConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Level   string        `mapstructure:"level"` // all, high_only, off
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// WebhookConfig holds webhook notification configuration.
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/mannwallet"
	}
	return filepath.Join(home, ".config", "mannwallet")
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(DefaultConfigDir(), "mannwallet.db")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is not
// an error; a template is written and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analytics.emotional_spend_threshold", 0.40)
	v.SetDefault("analytics.default_window", "this-month")
	v.SetDefault("analytics.locale", "en-IN")
	v.SetDefault("alerts.lookahead_days", 14)
	v.SetDefault("server.addr", "127.0.0.1:8642")
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.level", "high_only")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MANNWALLET_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MANNWALLET_WEBHOOK_URL"); v != "" {
		cfg.Notifications.Webhook.URL = v
	}
	if v := os.Getenv("MANNWALLET_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MANNWALLET_EMOTIONAL_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analytics.EmotionalSpendThreshold = f
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Analytics.EmotionalSpendThreshold < 0 || c.Analytics.EmotionalSpendThreshold > 1 {
		return fmt.Errorf("emotional_spend_threshold must be between 0 and 1")
	}
	if c.Alerts.LookaheadDays < 0 {
		return fmt.Errorf("lookahead_days must be non-negative")
	}
	switch c.Notifications.Level {
	case "", "all", "high_only", "off":
	default:
		return fmt.Errorf("invalid notification level: %s (must be 'all', 'high_only' or 'off')", c.Notifications.Level)
	}
	switch c.Analytics.DefaultWindow {
	case "", "all", "today", "this-week", "this-month", "this-quarter":
	default:
		return fmt.Errorf("invalid default_window: %s", c.Analytics.DefaultWindow)
	}
	return nil
}
