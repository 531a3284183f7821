// Package cli wires the cobra command tree: graph maintenance, the history
// survey, next-track queries, and the read-only HTTP surface.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cesargomez89/mixmemory/internal/config"
	"github.com/cesargomez89/mixmemory/internal/constants"
	"github.com/cesargomez89/mixmemory/internal/logger"
	"github.com/cesargomez89/mixmemory/internal/store"
)

var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mixmemory",
	Short: "Personal memory of good track transitions",
	Long: "mixmemory maintains a directed graph of confirmed good transitions " +
		"between tracks, built by replaying DJ history playlists through a " +
		"yes/no survey, and suggests next tracks from it.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default "+constants.ConfigFileName+".yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the SQLite database")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(constants.ConfigFileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func setup(cmd *cobra.Command, args []string) error {
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		viper.Set("db_path", db)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		viper.Set("log_level", level)
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		viper.Set("log_format", format)
	}

	cfg = config.FromViper(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return err
	}
	log = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return nil
}

// openStore opens the configured SQLite database, applying the schema.
func openStore() (*store.DB, error) {
	return store.NewSQLiteDB(cfg.DBPath)
}

// parseMinDate parses a --min-date value; empty means no filter.
func parseMinDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	minDate, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --min-date %q, expected %s: %w", value, constants.DateLayout, err)
	}
	return minDate, nil
}
