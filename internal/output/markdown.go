package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	w          io.Writer
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. Output goes to
// outputFile when set, otherwise to w.
func NewMarkdownFormatter(w io.Writer, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		w:          w,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats the summary as Markdown
func (f *MarkdownFormatter) Format(summary *batch.Summary) error {
	var builder strings.Builder

	builder.WriteString("# Querylint Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", summary.Duration().Round(time.Millisecond)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Queries Checked | %d |\n", summary.Total))
	builder.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.Passed))
	builder.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.Failed))
	builder.WriteString(fmt.Sprintf("| Average Score | %d |\n", summary.AverageScore()))
	builder.WriteString("\n")

	builder.WriteString("## Detailed Results\n\n")

	if summary.Total == 0 {
		builder.WriteString("*No queries found to validate.*\n\n")
	}

	for _, res := range summary.Results {
		r := res.Report
		if r.Passed && !f.verbose && summary.Total > 1 {
			continue // Skip passing queries unless verbose
		}

		builder.WriteString(fmt.Sprintf("### %s\n\n", displayName(res.Query)))
		builder.WriteString(fmt.Sprintf("> %s\n\n", escapeMarkdown(r.Query)))
		builder.WriteString(fmt.Sprintf("Status: %s **%d/100** %s %s (`%s`)\n\n",
			getStatusEmoji(r.Passed), r.OverallScore, scoring.Stars(r.OverallScore), r.Label(), r.Mode))

		builder.WriteString("| Rule | Weight | Score | Result |\n")
		builder.WriteString("|------|--------|-------|--------|\n")
		for _, rs := range r.Rules {
			builder.WriteString(fmt.Sprintf("| %s | %d | %d | %s %s |\n",
				rs.Name, rs.Weight, rs.Score, getStatusEmoji(rs.Passed), escapeMarkdown(rs.Message)))
		}
		builder.WriteString("\n")

		if len(r.Suggestions) > 0 {
			builder.WriteString("#### Suggestions\n\n")
			for _, s := range r.Suggestions {
				builder.WriteString(fmt.Sprintf("- %s\n", escapeMarkdown(s)))
			}
			builder.WriteString("\n")
		}

		builder.WriteString("---\n\n")
	}

	builder.WriteString("## Conclusion\n\n")
	if summary.Failed == 0 {
		builder.WriteString("✓ All queries passed validation!\n")
	} else {
		builder.WriteString(fmt.Sprintf("✗ %d queries failed validation\n", summary.Failed))
	}

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	_, err := io.WriteString(f.w, content)
	return err
}

// getStatusEmoji returns an emoji for the status
func getStatusEmoji(success bool) string {
	if success {
		return "✅"
	}
	return "❌"
}

// escapeMarkdown keeps table cells intact
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
