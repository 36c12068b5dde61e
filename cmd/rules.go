package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dotcommander/querylint/internal/config"
	"github.com/dotcommander/querylint/internal/rules"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the scoring rules and their weights",
	Long: `The rules command lists the rules every query is scored against, in
evaluation order, with each rule's weight and share of the overall score.

Rules:
- Length:          10-500 characters, ideally 20-200
- Vague Terms:     no hype words such as "best", "top" or "innovative"
- Question Format: a statement, not a question
- Mode Purity:     intent queries describe behavior, b2b queries describe companies
- Specificity:     enough descriptive words, numbers earn a bonus
- Keyword Density: no single word repeated excessively
- Actionability:   at least three words`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return runRules(cmd.OutOrStdout(), cfg.Format)
	},
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}

// ruleInfo is the listing entry for one rule
type ruleInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Share  int    `json:"share_percent"`
}

func listRules(rs []rules.Rule) []ruleInfo {
	total := rules.TotalWeight(rs)
	infos := make([]ruleInfo, 0, len(rs))
	for _, r := range rs {
		share := 0
		if total > 0 {
			share = (200*r.Weight + total) / (2 * total)
		}
		infos = append(infos, ruleInfo{ID: r.ID, Name: r.Name, Weight: r.Weight, Share: share})
	}
	return infos
}

func runRules(w io.Writer, format string) error {
	infos := listRules(rules.Default())

	if format == config.FormatJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	renderer := lipgloss.NewRenderer(w)
	header := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cell := renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("ID", "RULE", "WEIGHT", "SHARE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, info := range infos {
		t.Row(info.ID, info.Name, strconv.Itoa(info.Weight), fmt.Sprintf("%d%%", info.Share))
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintf(w, "Total weight %d, pass threshold %d\n", rules.TotalWeight(rules.Default()), scoring.PassThreshold)
	return nil
}
