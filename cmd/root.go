package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/config"
	"github.com/dotcommander/querylint/internal/logging"
	"github.com/dotcommander/querylint/internal/outputters"
	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootPath     string
	mode         string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failOn       string
	logLevel     string
	concurrency  int
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

// RootCmd is the querylint command tree
var RootCmd = &cobra.Command{
	Use:   "querylint",
	Short: "Score audience search queries for quality",
	Long: `Querylint scores free-text audience search queries against a weighted rule set.

Each query is checked in one of two modes:
- intent: behavioral, interest-based language ("interested in", "planning to")
- b2b:    firmographic, company-based language (industry, size, funding, tech stack)

A query passes with an overall score of 70 or more. Use "check" for a single query
and "batch" or "summary" for query-set files.`,
	SilenceUsage: true,
}

// Execute runs the command tree
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&rootPath, "root", "r", "", "Directory searched for query-set files (default \".\")")
	flags.StringVarP(&mode, "mode", "m", "intent", "Default targeting mode (intent|b2b)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress report output, exit code only")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show every rule and debug logging")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file for json and markdown reports")
	flags.StringVar(&failOn, "fail-on", "fail", "Exit non-zero when a query does not pass (fail|never)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (trace|debug|info|warn|error|disabled)")
	flags.IntVar(&concurrency, "concurrency", 8, "Queries validated in parallel")

	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("mode", flags.Lookup("mode"))
	viper.BindPFlag("quiet", flags.Lookup("quiet"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("output", flags.Lookup("output"))
	viper.BindPFlag("failOn", flags.Lookup("fail-on"))
	viper.BindPFlag("logLevel", flags.Lookup("log-level"))
	viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
}

// loadConfig loads configuration and builds the diagnostic logger
func loadConfig() (*config.Config, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	logger := logging.NewConsole(cfg.LogLevel, cfg.Verbose)
	logger.Debug().
		Str("root", cfg.Root).
		Str("mode", cfg.Mode).
		Str("format", cfg.Format).
		Int("concurrency", cfg.Concurrency).
		Msg("configuration loaded")

	return cfg, &logger, nil
}

// runQueries validates queries, renders the reports and applies --fail-on
func runQueries(cmd *cobra.Command, cfg *config.Config, logger *zerolog.Logger, queries []queryset.Query) error {
	summary, err := scoreQueries(cmd, cfg, logger, queries)
	if err != nil {
		return err
	}

	if shouldFail(cfg, summary.Failed) {
		logger.Debug().Int("failed", summary.Failed).Msg("exiting with failure")
		exitFunc(1)
	}
	return nil
}

// scoreQueries validates queries and renders the reports
func scoreQueries(cmd *cobra.Command, cfg *config.Config, logger *zerolog.Logger, queries []queryset.Query) (*batch.Summary, error) {
	start := time.Now()

	runner := batch.NewRunner(cfg.Concurrency, logger)
	results, err := runner.Run(commandContext(cmd), queries)
	if err != nil {
		return nil, err
	}

	summary := batch.NewSummary(results, start)
	outputter := outputters.NewOutputterWithFactory(cfg,
		outputters.NewDefaultFormatterFactoryWithWriter(cfg, cmd.OutOrStdout()))
	if err := outputter.Format(summary, cfg.Format); err != nil {
		return nil, err
	}
	return summary, nil
}

// shouldFail reports whether failed queries should exit non-zero
func shouldFail(cfg *config.Config, failed int) bool {
	return cfg.FailOn == config.FailOnFail && failed > 0
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
