package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Defaults DefaultsConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Lang string
}

// DefaultsConfig holds the totals pre-filled in the form.
type DefaultsConfig struct {
	Units  int64
	Amount string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix RIPARTO_.
// A .env file in the working directory, when present, is loaded into the
// environment first.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "riparto", "riparto.db"))
	v.SetDefault("ui.lang", "it")
	v.SetDefault("defaults.units", 100)
	v.SetDefault("defaults.amount", "1000.00")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "riparto", "riparto.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RIPARTO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "riparto"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RIPARTO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path returns the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv("RIPARTO_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "riparto", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI uses it to remember the selected language.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.lang", cfg.UI.Lang)
	v.Set("defaults.units", cfg.Defaults.Units)
	v.Set("defaults.amount", cfg.Defaults.Amount)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
