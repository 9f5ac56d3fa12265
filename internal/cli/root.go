// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Loaded in PersistentPreRunE
	cfg *config.File
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "3x3x3 cube simulator",
	Long: `cubesim - A sticker-level simulator for the 3x3x3 twisty cube.

Apply turns in standard notation, play with an interactive console,
and generate reproducible scrambles that are stored for later replay.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and installs the default logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.Open(configPath)
	} else {
		cfg, err = config.OpenDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Settings().Level()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Debug("config loaded", "path", cfg.Path(), "scheme", cfg.Settings().Scheme)
	return nil
}

// getDBPath returns the database path from flag, then config, then default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil && cfg.Settings().DBPath != "" {
		return cfg.Settings().DBPath
	}
	return "" // Will use default
}
