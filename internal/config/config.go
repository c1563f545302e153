package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. JOURNEYQ_TOAST_DEFAULT_DURATION_MS
const EnvPrefix = "JOURNEYQ"

// Config represents the full dashboard configuration
type Config struct {
	Toast   ToastConfig   `mapstructure:"toast"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// ToastConfig contains notification settings
type ToastConfig struct {
	DefaultDurationMs int `mapstructure:"default_duration_ms"`
	MaxVisible        int `mapstructure:"max_visible"`
}

// SessionConfig contains local session storage settings
type SessionConfig struct {
	Path string `mapstructure:"path"`
	Key  string `mapstructure:"key"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// DefaultDuration returns the configured default toast duration
func (c ToastConfig) DefaultDuration() time.Duration {
	return time.Duration(c.DefaultDurationMs) * time.Millisecond
}

// SlogLevel returns the configured level for log/slog
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func dataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".journeyq")
}

// UserConfigPath returns the per-user config file, ~/.config/journeyq/config.json
func UserConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "journeyq", "config.json")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("toast.default_duration_ms", 5000)
	v.SetDefault("toast.max_visible", 5)
	v.SetDefault("session.path", filepath.Join(dataDir(), "storage.json"))
	v.SetDefault("session.key", "journeyq_user")
	v.SetDefault("log.path", filepath.Join(dataDir(), "journeyq.log"))
	v.SetDefault("log.level", "info")
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// LoadConfig loads configuration with priority:
// 1. JOURNEYQ_* environment variables
// 2. the file named by JOURNEYQ_CONFIG
// 3. .journeyq.json in projectPath
// 4. config.json in ~/.config/journeyq
// 5. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("json")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if local := filepath.Join(projectPath, ".journeyq.json"); fileExists(local) {
		v.SetConfigFile(local)
	} else {
		v.AddConfigPath(filepath.Dir(UserConfigPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Toast.DefaultDurationMs <= 0 {
		return fmt.Errorf("invalid config: toast.default_duration_ms must be positive, got %d", c.Toast.DefaultDurationMs)
	}
	if c.Toast.MaxVisible <= 0 {
		return fmt.Errorf("invalid config: toast.max_visible must be positive, got %d", c.Toast.MaxVisible)
	}
	if c.Session.Path == "" {
		return errors.New("invalid config: session.path is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log.level %q", c.Log.Level)
	}
	return nil
}

// SaveConfig writes cfg as JSON to path, creating the directory if needed
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("toast.default_duration_ms", cfg.Toast.DefaultDurationMs)
	v.Set("toast.max_visible", cfg.Toast.MaxVisible)
	v.Set("session.path", cfg.Session.Path)
	v.Set("session.key", cfg.Session.Key)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
