package cmd

import (
	"fmt"
	"os"

	"github.com/dotcommander/querylint/internal/config"
	"github.com/dotcommander/querylint/internal/format"
	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/spf13/cobra"
)

var (
	fmtCheck bool
	fmtWrite bool
	fmtDiff  bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files or dirs...]",
	Short: "Format query-set files canonically",
	Long: `Format query-set files with canonical style.

FORMATTING RULES:
  - Set fields in the order mode, queries, then alphabetical
  - Query fields in the order id, text, mode, then alphabetical
  - Block style collections with two-space indentation
  - Quotes only where YAML requires them
  - No trailing whitespace, exactly one final newline

USAGE MODES:
  querylint fmt                    # Print formatted discovered files to stdout
  querylint fmt -w                 # Write changes in place
  querylint fmt --diff sets/       # Show what would change
  querylint fmt --check            # Exit 1 if files need formatting (CI)`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt(cmd, args)
	},
}

func init() {
	RootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Exit 1 if files would change (for CI)")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write changes in place")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "Show diff of what would change")
	fmtCmd.MarkFlagsMutuallyExclusive("check", "write", "diff")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := collectFilesToFormat(cfg, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files to format")
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	formatter := format.NewQuerySetFormatter()

	var needsFormatting []string
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(errOut, "Error reading %s: %v\n", path, err)
			}
			continue
		}

		formatted, err := formatter.Format(string(content))
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(errOut, "Error formatting %s: %v\n", path, err)
			}
			continue
		}

		if string(content) == formatted {
			logger.Debug().Str("file", path).Msg("already formatted")
			continue
		}
		needsFormatting = append(needsFormatting, path)

		switch {
		case fmtCheck:
			if !cfg.Quiet {
				fmt.Fprintf(out, "%s needs formatting\n", path)
			}
		case fmtDiff:
			fmt.Fprint(out, format.Diff(string(content), formatted, path))
		case fmtWrite:
			if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", path, err)
			}
			if !cfg.Quiet {
				fmt.Fprintf(out, "Formatted %s\n", path)
			}
		default:
			fmt.Fprint(out, formatted)
		}
	}

	if !cfg.Quiet && len(files) > 1 {
		switch {
		case len(needsFormatting) == 0:
			fmt.Fprintf(out, "\nAll %d files already formatted\n", len(files))
		case fmtWrite:
			fmt.Fprintf(out, "\nFormatted %d of %d files\n", len(needsFormatting), len(files))
		default:
			fmt.Fprintf(out, "\n%d of %d files need formatting\n", len(needsFormatting), len(files))
		}
	}

	if fmtCheck && len(needsFormatting) > 0 {
		exitFunc(1)
	}
	return nil
}

// collectFilesToFormat expands directory arguments with the configured
// patterns, or discovers query sets under the root when no args are given.
func collectFilesToFormat(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return queryset.Discover(cfg.Root, cfg.Patterns, cfg.Exclude)
	}

	var files []string
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		dirFiles, err := queryset.Discover(path, cfg.Patterns, cfg.Exclude)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}
