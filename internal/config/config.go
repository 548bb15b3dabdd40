// Package config provides configuration management functionality for sigsleep.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration keys. Each can also be set through the environment, e.g.
// SIGSLEEP_SIGNAL or SIGSLEEP_LOG_LEVEL.
const (
	KeySignal   = "signal"
	KeyLogLevel = "log_level"
)

const (
	appName         = "sigsleep"
	envPrefix       = "SIGSLEEP"
	defaultLogLevel = "warn"
)

// Settings holds the resolved configuration for one invocation.
type Settings struct {
	Signal   string
	LogLevel string
}

// New returns a viper instance with defaults applied and environment
// variables bound. defaultSignal is used when nothing else sets a signal.
func New(defaultSignal string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySignal, defaultSignal)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile into v, or searches the standard locations when cfgFile
// is empty. A missing file in the standard locations is not an error.
func Load(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(filepath.Join(xdgConfigHome, appName))
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	slog.Debug("Loaded config", "file", v.ConfigFileUsed())
	return nil
}

// Resolve returns the settings currently visible through v.
// Precedence: flags -> environment -> config file -> defaults.
func Resolve(v *viper.Viper) Settings {
	return Settings{
		Signal:   v.GetString(KeySignal),
		LogLevel: v.GetString(KeyLogLevel),
	}
}

// ParseLevel converts a level name (debug, info, warn, error) into a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
