package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/spf13/cobra"
)

const summaryListSize = 5

var summaryCmd = &cobra.Command{
	Use:   "summary [files...]",
	Short: "Show quality summary across query sets",
	Long: `Scores every query in the given or discovered query-set files and displays a
summary report with the quality label distribution, the most frequently failing
rules, and the lowest-scoring queries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummary(cmd, args)
	},
}

func init() {
	RootCmd.AddCommand(summaryCmd)
}

// QuerySummary holds aggregated data for the summary report
type QuerySummary struct {
	TotalQueries  int
	IntentCount   int
	B2BCount      int
	PassedCount   int
	LabelCounts   map[string]int
	RuleFailures  map[string]int
	LowestScoring []ScoredQuery
}

// ScoredQuery is a query with its score, for sorting
type ScoredQuery struct {
	Name  string
	Mode  types.Mode
	Score int
	Label string
}

func newQuerySummary() *QuerySummary {
	return &QuerySummary{
		LabelCounts:  make(map[string]int),
		RuleFailures: make(map[string]int),
	}
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	queries, err := loadQueries(cfg, logger, args)
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := batch.NewRunner(cfg.Concurrency, logger).Run(commandContext(cmd), queries)
	if err != nil {
		return err
	}

	summary := newQuerySummary()
	aggregateResults(summary, results)
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("summary aggregated")
	printSummaryReport(cmd.OutOrStdout(), summary)

	return nil
}

func aggregateResults(summary *QuerySummary, results []batch.Result) {
	for _, res := range results {
		report := res.Report
		summary.TotalQueries++

		switch report.Mode {
		case types.ModeIntent:
			summary.IntentCount++
		case types.ModeB2B:
			summary.B2BCount++
		}
		if report.Passed {
			summary.PassedCount++
		}

		label := report.Label()
		summary.LabelCounts[label]++
		summary.LowestScoring = append(summary.LowestScoring, ScoredQuery{
			Name:  res.Query.Label(),
			Mode:  report.Mode,
			Score: report.OverallScore,
			Label: label,
		})

		for _, rs := range report.Failed() {
			summary.RuleFailures[rs.Name]++
		}
	}

	sort.SliceStable(summary.LowestScoring, func(i, j int) bool {
		return summary.LowestScoring[i].Score < summary.LowestScoring[j].Score
	})
}

type ruleCount struct {
	rule  string
	count int
}

// topFailures returns failing rules by count, most frequent first
func topFailures(summary *QuerySummary) []ruleCount {
	var counts []ruleCount
	for rule, count := range summary.RuleFailures {
		counts = append(counts, ruleCount{rule, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].rule < counts[j].rule
	})
	return counts
}

// printStyles holds all the styles used in the summary report.
type printStyles struct {
	header lipgloss.Style
	tiers  map[string]lipgloss.Style
	dim    lipgloss.Style
}

// newPrintStyles creates a new set of print styles bound to w.
func newPrintStyles(w io.Writer) printStyles {
	r := lipgloss.NewRenderer(w)
	return printStyles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		tiers: map[string]lipgloss.Style{
			scoring.ColorGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
			scoring.ColorBlue:   r.NewStyle().Foreground(lipgloss.Color("12")),
			scoring.ColorYellow: r.NewStyle().Foreground(lipgloss.Color("3")),
			scoring.ColorRed:    r.NewStyle().Foreground(lipgloss.Color("9")),
		},
		dim: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s printStyles) tier(label string) lipgloss.Style {
	return s.tiers[scoring.ColorTier(label)]
}

func printSummaryReport(w io.Writer, summary *QuerySummary) {
	styles := newPrintStyles(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.header.Render("╔═══════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(w, styles.header.Render("║                QUERY QUALITY SUMMARY                      ║"))
	fmt.Fprintln(w, styles.header.Render("╠═══════════════════════════════════════════════════════════╣"))

	fmt.Fprintf(w, "║ Queries Analyzed: %-40d║\n", summary.TotalQueries)
	fmt.Fprintf(w, "║   Intent: %-6d │ B2B: %-6d │ Passed: %-16d║\n",
		summary.IntentCount, summary.B2BCount, summary.PassedCount)

	printQualityDistribution(w, summary, styles)
	printTopFailures(w, summary, styles)
	printLowestScoring(w, summary, styles)

	fmt.Fprintln(w, styles.header.Render("╚═══════════════════════════════════════════════════════════╝"))
	fmt.Fprintln(w)
}

func printQualityDistribution(w io.Writer, summary *QuerySummary, styles printStyles) {
	fmt.Fprintln(w, styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Fprintln(w, "║ QUALITY DISTRIBUTION                                      ║")

	total := summary.TotalQueries
	for _, label := range scoring.Labels {
		count := summary.LabelCounts[label]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(w, "║   %s %-4d (%5.1f%%)  %s\n",
			styles.tier(label).Render(fmt.Sprintf("%-10s", label)), count, pct,
			renderBar(count, total, styles.tier(label), styles.dim))
	}
}

func printTopFailures(w io.Writer, summary *QuerySummary, styles printStyles) {
	fmt.Fprintln(w, styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Fprintln(w, "║ MOST FAILED RULES                                         ║")

	counts := topFailures(summary)
	if len(counts) == 0 {
		fmt.Fprintln(w, "║   none                                                    ║")
	}
	for i, rc := range counts {
		if i >= summaryListSize {
			break
		}
		fmt.Fprintf(w, "║   %s %-40s %4d\n", styles.dim.Render(fmt.Sprintf("%d.", i+1)), rc.rule, rc.count)
	}
}

func printLowestScoring(w io.Writer, summary *QuerySummary, styles printStyles) {
	fmt.Fprintln(w, styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	fmt.Fprintln(w, "║ LOWEST SCORING QUERIES                                    ║")

	for i, q := range summary.LowestScoring {
		if i >= summaryListSize {
			break
		}
		name := q.Name
		if n := utf8.RuneCountInString(name); n > 35 {
			name = "..." + string([]rune(name)[n-32:])
		}
		fmt.Fprintf(w, "║   %s %-35s %-6s %s %3d\n",
			styles.dim.Render(fmt.Sprintf("%d.", i+1)),
			name,
			q.Mode,
			styles.tier(q.Label).Render(fmt.Sprintf("%-9s", q.Label)),
			q.Score)
	}
}

func renderBar(count, total int, fill, empty lipgloss.Style) string {
	if total == 0 {
		return ""
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := ""
	for i := 0; i < filled; i++ {
		bar += fill.Render("█")
	}
	for i := filled; i < barWidth; i++ {
		bar += empty.Render("░")
	}
	return bar
}
