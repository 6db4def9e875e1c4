package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandboxtools/execcensor/execpolicy"
)

var (
	flagHelpersList      string
	flagManagedBinsList  string
	flagManagedFilesList string
	flagAssocTable       string
	flagCaller           string
	flagJSONLogs         bool
	flagDebug            bool
)

var rootCmd = &cobra.Command{
	Use:   "execcensor",
	Short: "Inspect and dry-run the exec-call interception policy engine",
	Long: `execcensor loads the same three policy files the preload-based
interceptor reads at exec time, builds the same association registry, and
runs the same decision pipeline — without ever actually intercepting an
exec call. Use it to validate a provisioned policy set before it ships to
a sandboxed process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHelpersList, "helpers-list", execpolicy.DefaultPaths.Helpers, "path to the helper-bins policy list")
	rootCmd.PersistentFlags().StringVar(&flagManagedBinsList, "managed-bins-list", execpolicy.DefaultPaths.ManagedBins, "path to the managed-bins policy list")
	rootCmd.PersistentFlags().StringVar(&flagManagedFilesList, "managed-files-list", execpolicy.DefaultPaths.ManagedFiles, "path to the managed-files policy list")
	rootCmd.PersistentFlags().StringVar(&flagAssocTable, "assoc-table", "", "path to a JSONC association table (default: built-in table)")
	rootCmd.PersistentFlags().StringVar(&flagCaller, "caller", "", "resolved path of the calling binary, for association lookups")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "emit structured logs as JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug-level logging")

	if v := os.Getenv("EXECCENSOR_HELPERS_LIST"); v != "" {
		flagHelpersList = v
	}
	if v := os.Getenv("EXECCENSOR_MANAGED_BINS_LIST"); v != "" {
		flagManagedBinsList = v
	}
	if v := os.Getenv("EXECCENSOR_MANAGED_FILES_LIST"); v != "" {
		flagManagedFilesList = v
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if flagDebug || os.Getenv("EXECCENSOR_DEBUG") != "" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if flagJSONLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newEngine() *execpolicy.Engine {
	paths := execpolicy.Paths{
		Helpers:      flagHelpersList,
		ManagedBins:  flagManagedBinsList,
		ManagedFiles: flagManagedFilesList,
	}
	e := execpolicy.New(paths, flagCaller, slog.Default())

	if flagAssocTable != "" {
		reg, err := loadAssocTable(flagAssocTable)
		if err != nil {
			slog.Warn("falling back to built-in association table", "error", err)
		} else {
			e.SetRegistry(reg)
		}
	}

	return e
}
