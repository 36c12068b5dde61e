// Package scoring aggregates rule results into a query quality report.
//
// Validate is a pure function: it performs no I/O, keeps no state between
// calls and returns identical reports for identical input.
package scoring

import (
	"fmt"

	"github.com/dotcommander/querylint/internal/rules"
	"github.com/dotcommander/querylint/internal/types"
)

// Validate scores query against the default rule set.
func Validate(query string, mode types.Mode) (Report, error) {
	return ValidateWith(query, mode, rules.Default())
}

// ValidateWith scores query against rs, in order. The overall score is the
// weight-averaged rule score, so rule sets of any total weight are supported.
func ValidateWith(query string, mode types.Mode, rs []rules.Rule) (Report, error) {
	if !mode.Valid() {
		return Report{}, fmt.Errorf("%w: %q", types.ErrInvalidMode, mode)
	}

	report := Report{
		Query:       query,
		Mode:        mode,
		Rules:       make([]RuleScore, 0, len(rs)),
		Suggestions: []string{},
	}

	var weighted int
	for _, rule := range rs {
		res := rule.Run(query, mode)
		res.Score = clamp(res.Score)
		report.Rules = append(report.Rules, RuleScore{Result: res, Name: rule.Name, Weight: rule.Weight})

		weighted += res.Score * rule.Weight
		if !res.Passed && res.Details != "" {
			report.Suggestions = append(report.Suggestions, rule.Name+": "+res.Details)
		}
	}

	report.OverallScore = OverallScore(weighted, rules.TotalWeight(rs))
	report.Passed = report.OverallScore >= PassThreshold

	return report, nil
}

// OverallScore computes round((weighted/100) / totalWeight * 100) where
// weighted is Σ score*weight. The division is done in integers, rounding
// halves up.
func OverallScore(weighted, totalWeight int) int {
	if totalWeight <= 0 || weighted <= 0 {
		return 0
	}
	return clamp((2*weighted + totalWeight) / (2 * totalWeight))
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
