package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/dotcommander/querylint/internal/version"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w          io.Writer
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. Output goes to outputFile
// when set, otherwise to w.
func NewJSONFormatter(w io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		w:          w,
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format formats the summary as JSON
func (f *JSONFormatter) Format(summary *batch.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "querylint",
			Version:   version.Short(),
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalQueries:  summary.Total,
			PassedQueries: summary.Passed,
			FailedQueries: summary.Failed,
			AverageScore:  summary.AverageScore(),
			Duration:      summary.Duration().Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, res := range summary.Results {
		r := res.Report
		report.Results[i] = JSONResult{
			File:         res.Query.File,
			ID:           res.Query.ID,
			Index:        res.Query.Index,
			Query:        r.Query,
			Mode:         r.Mode.String(),
			OverallScore: r.OverallScore,
			Passed:       r.Passed,
			Label:        r.Label(),
			Stars:        scoring.StarCount(r.OverallScore),
			Rules:        r.Rules,
			Suggestions:  r.Suggestions,
		}
	}

	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}

	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	_, err = fmt.Fprintln(f.w, string(jsonBytes))
	return err
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	TotalQueries  int    `json:"total_queries"`
	PassedQueries int    `json:"passed_queries"`
	FailedQueries int    `json:"failed_queries"`
	AverageScore  int    `json:"average_score"`
	Duration      string `json:"duration"`
}

// JSONResult represents a single query's report
type JSONResult struct {
	File         string              `json:"file,omitempty"`
	ID           string              `json:"id,omitempty"`
	Index        int                 `json:"index"`
	Query        string              `json:"query"`
	Mode         string              `json:"mode"`
	OverallScore int                 `json:"overall_score"`
	Passed       bool                `json:"passed"`
	Label        string              `json:"label"`
	Stars        int                 `json:"stars"`
	Rules        []scoring.RuleScore `json:"rules"`
	Suggestions  []string            `json:"suggestions"`
}
