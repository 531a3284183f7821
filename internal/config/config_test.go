package config

import (
	"testing"

	"github.com/spf13/viper"
)

func defaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	return FromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig()

	if cfg.DBPath != "mix-memory.db" {
		t.Errorf("Expected default db path, got %s", cfg.DBPath)
	}
	if cfg.HistoriesDir != "./rekordbox_histories" {
		t.Errorf("Expected default histories dir, got %s", cfg.HistoriesDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MIXMEMORY_DB_PATH", "/tmp/other.db")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("MIXMEMORY")
	v.AutomaticEnv()

	cfg := FromViper(v)
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("Expected env override, got %s", cfg.DBPath)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, true},
		{"out-of-range port", func(c *Config) { c.Port = "70000" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
