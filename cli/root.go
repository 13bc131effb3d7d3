package cli

import (
	"context"

	"github.com/TFMV/nowgen/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Context key types to avoid collisions
type contextKey string

const loggerKey contextKey = "logger"

var rootCmd = &cobra.Command{
	Use:   "nowgen",
	Short: "Generate synthetic nowcast sample tables as Parquet files",
	Long: `Nowgen synthesizes sample nowcast tables and writes them to Parquet
files, to study how file size scales with row count and the cardinality of
categorical columns.

Each table is the cross-product of a fixed nowcast date, a horizon range,
50 locations, 30 lineages, and a sample index range, with a derived target
date and one standard-normal value per row.`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteWithContext runs the root command with context containing the logger
func ExecuteWithContext(ctx context.Context) error {
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// WithLogger stores the logger in a context for command handlers
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// loggerFromContext retrieves the logger from context
func loggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// commandLogger returns the context logger, lowered to debug when --verbose is set
func commandLogger(cmd *cobra.Command) zerolog.Logger {
	logger := loggerFromContext(cmd.Context())
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
	return logger
}

// commandSetup resolves --config and builds the command logger. Without a
// config file the defaults and the logger from main's context apply; with
// one, the logger is rebuilt from its log section so level, format, console,
// and file_path all take effect.
func commandSetup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadDefaultConfig(), commandLogger(cmd), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger, err := config.NewLogger(&cfg.Log)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	return cfg, logger, nil
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to nowgen.yml config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
