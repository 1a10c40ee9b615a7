// Package config resolves settings from flags, SUBNOTES_* environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	KeyDB             = "db"
	KeyBackend        = "backend"
	KeyLogLevel       = "log_level"
	KeySearchDebounce = "search_debounce"
)

// Config holds resolved settings.
type Config struct {
	DB             string
	Backend        string
	LogLevel       string
	SearchDebounce time.Duration
}

// DefaultDir is ~/.subnotes, falling back to the working directory when the
// home directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".subnotes"
	}
	return filepath.Join(home, ".subnotes")
}

// NewViper builds a viper instance with defaults, environment binding and,
// when present, the config file. cfgFile overrides the default lookup of
// config.yaml in DefaultDir.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SUBNOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDB, filepath.Join(DefaultDir(), "notes.db"))
	v.SetDefault(KeyBackend, "sqlite")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeySearchDebounce, "800ms")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(cfgFile == "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) Config {
	debounce := v.GetDuration(KeySearchDebounce)
	if debounce <= 0 {
		debounce = 800 * time.Millisecond
	}
	return Config{
		DB:             v.GetString(KeyDB),
		Backend:        strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		LogLevel:       v.GetString(KeyLogLevel),
		SearchDebounce: debounce,
	}
}

// NewLogger returns a logrus logger writing to out at the named level.
// Unknown levels fall back to warn.
func NewLogger(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}
