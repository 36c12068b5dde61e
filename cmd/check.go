package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [query...]",
	Short: "Score a single query",
	Long: `The check command scores one query and prints the full rule breakdown.

The query is taken from the arguments, joined with spaces. With no arguments,
or a single "-", it is read from stdin.

Examples:
  querylint check interested in sustainable gardening
  querylint check --mode b2b "SaaS companies with 50-200 employees"
  echo "Series B fintech startups" | querylint check -m b2b`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readQuery(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := types.CheckQuery(text); err != nil {
		return err
	}

	q := queryset.Query{Text: text, Mode: cfg.DefaultMode()}
	return runQueries(cmd, cfg, logger, []queryset.Query{q})
}

// readQuery joins args into a query, or reads stdin when args is empty or "-"
func readQuery(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}
