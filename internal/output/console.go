package output

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/dotcommander/querylint/internal/scoring"
)

const maxQueryWidth = 60

// tierColors maps presentation color tiers to ANSI colors
var tierColors = map[string]lipgloss.Color{
	scoring.ColorGreen:  lipgloss.Color("10"),
	scoring.ColorBlue:   lipgloss.Color("12"),
	scoring.ColorYellow: lipgloss.Color("3"),
	scoring.ColorRed:    lipgloss.Color("9"),
}

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	renderer *lipgloss.Renderer
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to w
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		renderer: lipgloss.NewRenderer(w),
	}
}

// Format writes the summary for console output
func (f *ConsoleFormatter) Format(summary *batch.Summary) error {
	if f.quiet {
		// Only the exit code matters in quiet mode
		return nil
	}

	detailed := f.verbose || summary.Total == 1
	for i, res := range summary.Results {
		if i > 0 && detailed {
			fmt.Fprintln(f.w)
		}
		f.printResult(res, detailed)
	}

	f.printSummary(summary)
	f.printConclusion(summary)
	return nil
}

func (f *ConsoleFormatter) style(color lipgloss.Color) lipgloss.Style {
	return f.renderer.NewStyle().Foreground(color)
}

// printResult prints the headline for one query and its failing rules.
// detailed adds the query text and passing rules.
func (f *ConsoleFormatter) printResult(res batch.Result, detailed bool) {
	report := res.Report
	label := report.Label()
	tier := f.style(tierColors[scoring.ColorTier(label)])

	status := "✓"
	if !report.Passed {
		status = "✗"
	}

	fmt.Fprintf(f.w, "%s %s [%s] %s %s %s\n",
		tier.Render(status),
		displayName(res.Query),
		report.Mode,
		tier.Bold(true).Render(fmt.Sprintf("%d/100", report.OverallScore)),
		tier.Render(scoring.Stars(report.OverallScore)),
		label)

	if detailed && (res.Query.ID != "" || res.Query.File != "") {
		fmt.Fprintf(f.w, "    %s\n", f.style("8").Render(report.Query))
	}

	pass := f.style("10")
	fail := f.style("9")
	dim := f.style("8")

	for _, rs := range report.Rules {
		if rs.Passed && !detailed {
			continue
		}
		mark := pass.Render("✓")
		if !rs.Passed {
			mark = fail.Render("✘")
		}
		fmt.Fprintf(f.w, "    %s %-16s %3d  %s %s\n",
			mark, rs.Name, rs.Score, rs.Message, dim.Render(fmt.Sprintf("(weight %d)", rs.Weight)))
	}

	suggestion := f.style("7")
	for _, s := range report.Suggestions {
		fmt.Fprintf(f.w, "    💡 %s\n", suggestion.Render(s))
	}
}

// printSummary prints the run statistics for multi-query runs
func (f *ConsoleFormatter) printSummary(summary *batch.Summary) {
	if summary.Total < 2 {
		return
	}

	fmt.Fprintf(f.w, "\n%d/%d passed, average score %d (%v)\n",
		summary.Passed, summary.Total, summary.AverageScore(),
		summary.Duration().Round(time.Millisecond))
}

// printConclusion prints the conclusion message
func (f *ConsoleFormatter) printConclusion(summary *batch.Summary) {
	if summary.Total == 0 {
		fmt.Fprintln(f.w, "No queries found")
		return
	}
	if summary.Failed > 0 {
		return
	}

	fmt.Fprintln(f.w)
	style := f.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fmt.Fprintln(f.w, style.Render("✓ All passed"))
}

// displayName names a query in reports: its label when it came from a file
// or has an ID, otherwise the quoted query text.
func displayName(q queryset.Query) string {
	if q.ID != "" || q.File != "" {
		return q.Label()
	}
	return fmt.Sprintf("%q", truncate(q.Text, maxQueryWidth))
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
