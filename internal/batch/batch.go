// Package batch validates many queries concurrently.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ValidateFunc scores a single query
type ValidateFunc func(query string, mode types.Mode) (scoring.Report, error)

// Result pairs a query with its report
type Result struct {
	Query  queryset.Query `json:"query"`
	Report scoring.Report `json:"report"`
}

// Runner validates queries with bounded concurrency
type Runner struct {
	Concurrency int
	Validate    ValidateFunc
	Logger      *zerolog.Logger
}

// NewRunner creates a Runner using the default rule set
func NewRunner(concurrency int, logger *zerolog.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		Concurrency: concurrency,
		Validate:    scoring.Validate,
		Logger:      logger,
	}
}

// Run validates every query. Results are returned in input order. The first
// validation error cancels the remaining work and is returned.
func (r *Runner) Run(ctx context.Context, queries []queryset.Query) ([]Result, error) {
	results := make([]Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := r.Validate(q.Text, q.Mode)
			if err != nil {
				return fmt.Errorf("error validating %s: %w", q.Label(), err)
			}
			r.Logger.Debug().
				Str("query", q.Label()).
				Str("mode", q.Mode.String()).
				Int("score", report.OverallScore).
				Bool("passed", report.Passed).
				Msg("validated")
			results[i] = Result{Query: q, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.Logger.Info().Int("queries", len(queries)).Msg("batch complete")
	return results, nil
}

// Summary aggregates the results of one run
type Summary struct {
	Results   []Result
	Total     int
	Passed    int
	Failed    int
	StartTime time.Time
}

// NewSummary builds a Summary over results
func NewSummary(results []Result, start time.Time) *Summary {
	s := &Summary{Results: results, Total: len(results), StartTime: start}
	for _, res := range results {
		if res.Report.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// AverageScore returns the mean overall score, rounded half up. Zero when
// there are no results.
func (s *Summary) AverageScore() int {
	if s.Total == 0 {
		return 0
	}
	sum := 0
	for _, res := range s.Results {
		sum += res.Report.OverallScore
	}
	return (2*sum + s.Total) / (2 * s.Total)
}

// Duration is the time elapsed since the run started
func (s *Summary) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime)
}
