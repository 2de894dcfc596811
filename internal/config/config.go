package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ENVMON"

// Defaults
const (
	DefaultInterval      = 5 * time.Minute
	DefaultAlertDuration = 10 * time.Second
	DefaultLogLevel      = "info"
)

// Config represents application configuration
type Config struct {
	Monitor MonitorConfig `mapstructure:"monitor"`
	Log     LogConfig     `mapstructure:"log"`
}

// MonitorConfig controls polling. Values are read once at startup.
type MonitorConfig struct {
	Interval      string `mapstructure:"interval"`       // Poll interval, e.g. "5m"
	AlertDuration string `mapstructure:"alert_duration"` // Requested notification display time, e.g. "10s"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to the console
	Level string `mapstructure:"level"`
}

// Load loads configuration from configPath, or from config.yaml in the
// default search paths. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("monitor.interval", DefaultInterval.String())
	v.SetDefault("monitor.alert_duration", DefaultAlertDuration.String())
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.environment-monitor")
	}

	// ENVMON_MONITOR_INTERVAL overrides monitor.interval
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateDuration("monitor.interval", c.Monitor.Interval); err != nil {
		return err
	}
	if err := validateDuration("monitor.alert_duration", c.Monitor.AlertDuration); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

func validateDuration(key, value string) error {
	if value == "" {
		return nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if duration <= 0 {
		return fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return nil
}

// GetInterval returns the poll interval
func (c *MonitorConfig) GetInterval() time.Duration {
	return parseDurationOr(c.Interval, DefaultInterval)
}

// GetAlertDuration returns the requested notification display time
func (c *MonitorConfig) GetAlertDuration() time.Duration {
	return parseDurationOr(c.AlertDuration, DefaultAlertDuration)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}
