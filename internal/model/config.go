package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// StoreConfig locates the local preferences database.
type StoreConfig struct {
	// Path is the SQLite file holding layout preferences.
	Path string `mapstructure:"path" yaml:"path"`
}

// FixturesConfig controls where seed messages come from.
type FixturesConfig struct {
	// Dir, when set, is scanned for .eml files that replace the
	// built-in sample mailbox.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LayoutConfig holds the layout used when nothing has been persisted yet.
type LayoutConfig struct {
	DefaultSizes     []float64 `mapstructure:"default_sizes" yaml:"default_sizes"`
	DefaultCollapsed bool      `mapstructure:"default_collapsed" yaml:"default_collapsed"`
	NavCollapsedSize float64   `mapstructure:"nav_collapsed_size" yaml:"nav_collapsed_size"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Fixtures FixturesConfig `mapstructure:"fixtures" yaml:"fixtures"`
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// ConfigDir returns ~/.config/avon, or the working directory when the
// home directory cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "avon")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/avon/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dir := ConfigDir()
	return &AppConfig{
		Store: StoreConfig{Path: filepath.Join(dir, "avon.db")},
		Layout: LayoutConfig{
			NavCollapsedSize: DefaultNavCollapsedSize,
		},
		Display: DisplayConfig{
			Mouse: true,
		},
		Log: LogConfig{
			File:  filepath.Join(dir, "avon.log"),
			Level: "info",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	defaults := defaultAppConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("layout.nav_collapsed_size", defaults.Layout.NavCollapsedSize)
	v.SetDefault("display.mouse", defaults.Display.Mouse)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaults
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// A configured default layout of the wrong shape is ignored rather
	// than rejected; the built-in split applies instead.
	if len(cfg.Layout.DefaultSizes) != PaneCount {
		cfg.Layout.DefaultSizes = nil
	}
	if cfg.Layout.NavCollapsedSize <= 0 || cfg.Layout.NavCollapsedSize >= NavMinSize {
		cfg.Layout.NavCollapsedSize = DefaultNavCollapsedSize
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("store", cfg.Store)
	v.Set("fixtures", cfg.Fixtures)
	v.Set("layout", cfg.Layout)
	v.Set("display", cfg.Display)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
