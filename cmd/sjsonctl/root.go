package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sjsonkit/internal/logger"
	"github.com/joshuapare/sjsonkit/symtab"
)

// logEnv names a directory for dated log files when --log is not given.
const logEnv = "SJSONCTL_LOG"

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logDir  string
)

var rootCmd = &cobra.Command{
	Use:   "sjsonctl",
	Short: "Inspect and edit SJSON, JSON, YAML and TOML settings files",
	Long: `sjsonctl reads and writes settings documents in the SJSON format
(a relaxed JSON with bare keys, "=" assignments, optional commas and comments)
as well as strict JSON, and imports YAML and TOML.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging(); err != nil {
			return err
		}
		symtab.Initialize()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		symtab.Shutdown()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log", "", "Write logs to dated files in this directory (env "+logEnv+")")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the logger when a log directory is configured or
// --verbose is set.
func initLogging() error {
	dir := logDir
	if dir == "" {
		dir = os.Getenv(logEnv)
	}
	if dir == "" && !verbose {
		return logger.Init(logger.Options{})
	}

	opts := logger.Options{Enabled: true, LogDir: dir}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return logger.Init(opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
