package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dotcommander/querylint/internal/baseline"
	"github.com/dotcommander/querylint/internal/config"
	"github.com/dotcommander/querylint/internal/git"
	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	useBaseline    bool
	createBaseline bool
	baselinePath   string
	stagedOnly     bool
	changedOnly    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Score every query in query-set files",
	Long: `The batch command scores every query in one or more query-set files.

With no arguments, query sets are discovered under --root using the configured
patterns (default **/*.queries.yaml and **/*.queries.yml).

Query-set format:
  mode: intent            # optional, defaults to --mode
  queries:
    - id: gardeners       # optional
      text: interested in sustainable gardening
      mode: b2b           # optional per-query override

Baselines:
  --create-baseline records the currently failing queries and exits 0.
  --baseline then fails only on queries missing from that record.

Git:
  --staged and --changed limit discovery to query sets with uncommitted changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, args)
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Fail only on queries not recorded in the baseline")
	batchCmd.Flags().BoolVar(&createBaseline, "create-baseline", false, "Record failing queries in the baseline file")
	batchCmd.Flags().StringVar(&baselinePath, "baseline-path", baseline.DefaultPath, "Baseline file, relative to --root")
	batchCmd.Flags().BoolVar(&stagedOnly, "staged", false, "Only check staged query-set files")
	batchCmd.Flags().BoolVar(&changedOnly, "changed", false, "Only check query-set files with uncommitted changes")
	batchCmd.MarkFlagsMutuallyExclusive("staged", "changed")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 && (stagedOnly || changedOnly) {
		files, err = gitFiles(cfg)
		if err != nil {
			return err
		}
		logger.Debug().Bool("staged", stagedOnly).Int("files", len(files)).Msg("git file selection")
		if len(files) == 0 {
			if !cfg.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "No changed query files")
			}
			return nil
		}
	}

	queries, err := loadQueries(cfg, logger, files)
	if err != nil {
		return err
	}

	baselineFile := baselinePath
	if !filepath.IsAbs(baselineFile) {
		baselineFile = filepath.Join(cfg.Root, baselineFile)
	}

	var b *baseline.Baseline
	if useBaseline {
		if _, err := os.Stat(baselineFile); err == nil {
			b, err = baseline.LoadBaseline(baselineFile)
			if err != nil {
				logger.Warn().Err(err).Str("path", baselineFile).Msg("ignoring unreadable baseline")
				b = nil
			}
		} else {
			logger.Warn().Str("path", baselineFile).Msg("baseline file not found")
		}
	}

	summary, err := scoreQueries(cmd, cfg, logger, queries)
	if err != nil {
		return err
	}

	// A fresh baseline accepts the current state
	if createBaseline {
		b = baseline.CreateBaseline(summary.Results)
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := b.SaveBaseline(baselineFile); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		if !cfg.Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nBaseline created: %s (%d queries)\n", baselineFile, b.Len())
		}
		return nil
	}

	failed := summary.Failed
	if b != nil {
		newFailures, known := b.Filter(summary.Results)
		failed = len(newFailures)
		if len(known) > 0 && !cfg.Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%d baseline queries ignored\n", len(known))
		}
	}

	if shouldFail(cfg, failed) {
		logger.Debug().Int("failed", failed).Msg("exiting with failure")
		exitFunc(1)
	}
	return nil
}

// gitFiles lists the query-set files selected by --staged or --changed
func gitFiles(cfg *config.Config) ([]string, error) {
	if stagedOnly {
		files, err := git.GetStagedFiles(cfg.Root, cfg.Patterns)
		if err != nil {
			return nil, fmt.Errorf("error listing staged files: %w", err)
		}
		return files, nil
	}

	files, err := git.GetChangedFiles(cfg.Root, cfg.Patterns)
	if err != nil {
		return nil, fmt.Errorf("error listing changed files: %w", err)
	}
	return files, nil
}

// loadQueries loads the query sets named in files, or discovered under the root
func loadQueries(cfg *config.Config, logger *zerolog.Logger, files []string) ([]queryset.Query, error) {
	paths := files
	if len(paths) == 0 {
		discovered, err := queryset.Discover(cfg.Root, cfg.Patterns, cfg.Exclude)
		if err != nil {
			return nil, fmt.Errorf("error discovering query files: %w", err)
		}
		logger.Debug().Str("root", cfg.Root).Int("files", len(discovered)).Msg("discovered query files")
		paths = discovered
	}

	loader, err := queryset.NewLoader(cfg.DefaultMode())
	if err != nil {
		return nil, err
	}

	queries, err := loader.LoadFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("files", len(paths)).Int("queries", len(queries)).Msg("loaded query sets")
	return queries, nil
}
