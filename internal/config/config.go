package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds greeter configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Screenshot ScreenshotConfig `mapstructure:"screenshot"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
	Apps       AppsConfig       `mapstructure:"apps"`
	Greeter    GreeterConfig    `mapstructure:"greeter"`
	Log        LogConfig        `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings for the greeter state store.
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// ScreenshotConfig holds screenshot provider settings. GridUnitPx is the
// display-density unit; RightMargin is subtracted from the active window
// width when scaling main-stage screenshots.
type ScreenshotConfig struct {
	BaseDir     string `mapstructure:"base_dir"`
	GridUnitPx  int    `mapstructure:"grid_unit_px"`
	RightMargin int    `mapstructure:"right_margin"`
}

// SessionsConfig holds the session catalog location.
type SessionsConfig struct {
	Dir     string `mapstructure:"dir"`
	Default string `mapstructure:"default"`
}

// AppsConfig holds the application catalog location.
type AppsConfig struct {
	Catalog string `mapstructure:"catalog"`
}

// GreeterConfig holds presentation settings.
type GreeterConfig struct {
	DefaultUser string `mapstructure:"default_user"`
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// YUNIT_. GRID_UNIT_PX is additionally bound unprefixed because it is the
// established environment knob for display density.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "yunit-greeter")
	v.SetDefault("database.path", filepath.Join(dataDir, "greeter.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("screenshot.base_dir", "/usr/share/yunit/qml")
	v.SetDefault("screenshot.grid_unit_px", 8)
	v.SetDefault("screenshot.right_margin", 0)
	v.SetDefault("sessions.dir", "/usr/share/yunit-greeter/sessions")
	v.SetDefault("sessions.default", "")
	v.SetDefault("apps.catalog", filepath.Join(dataDir, "applications.toml"))
	v.SetDefault("greeter.default_user", "")
	v.SetDefault("log.level", "INFO")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("YUNIT_GREETER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "yunit-greeter"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("YUNIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("screenshot.grid_unit_px", "YUNIT_SCREENSHOT_GRID_UNIT_PX", "GRID_UNIT_PX")

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
