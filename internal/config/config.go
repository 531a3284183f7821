package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/cesargomez89/mixmemory/internal/constants"
)

// Config holds all application configuration
type Config struct {
	DBPath       string
	HistoriesDir string
	MusicDir     string
	Port         string
	LogLevel     string
	LogFormat    string
}

// SetDefaults registers every configuration default on the given viper
// instance. The CLI layer binds flags and env vars on top of these.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("db_path", constants.DefaultDBPath)
	v.SetDefault("histories_dir", constants.DefaultHistoriesDir)
	v.SetDefault("music_dir", "")
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("log_level", constants.DefaultLogLevel)
	v.SetDefault("log_format", constants.DefaultLogFormat)
}

// FromViper builds a Config from the resolved viper state (defaults, config
// file, environment, flags).
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DBPath:       v.GetString("db_path"),
		HistoriesDir: v.GetString("histories_dir"),
		MusicDir:     v.GetString("music_dir"),
		Port:         v.GetString("port"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate DBPath
	if c.DBPath == "" {
		errors = append(errors, "db_path cannot be empty")
	}

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "port cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("port must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("log_level must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("log_format must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
