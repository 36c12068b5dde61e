// Package querylint scores free-text audience search queries for quality.
//
// A query is checked against a fixed, weighted rule set tailored to one of
// two modes: intent (behavioral, interest-based language) or b2b
// (firmographic, company-based language). The result is a 0-100 score, a
// pass/fail verdict, a per-rule breakdown and a list of suggestions.
//
//	report, err := querylint.Validate("interested in sustainable gardening", querylint.ModeIntent)
//
// Validation is pure and safe to call from multiple goroutines.
package querylint

import (
	"github.com/dotcommander/querylint/internal/rules"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/dotcommander/querylint/internal/types"
)

// Mode is the targeting context a query is scored against.
type Mode = types.Mode

// Modes
const (
	ModeIntent = types.ModeIntent
	ModeB2B    = types.ModeB2B
)

// PassThreshold is the overall score a query needs to pass.
const PassThreshold = scoring.PassThreshold

// Errors
var (
	ErrInvalidMode = types.ErrInvalidMode
	ErrEmptyQuery  = types.ErrEmptyQuery
)

type (
	// Report is the quality report for one query.
	Report = scoring.Report
	// RuleScore is one rule's result plus its name and weight.
	RuleScore = scoring.RuleScore
	// RuleResult is the raw outcome of a rule.
	RuleResult = rules.Result
)

// Validate scores query in the given mode. It returns ErrInvalidMode for an
// unrecognized mode. Empty queries are accepted and score low; use
// CheckQuery to reject them first.
func Validate(query string, mode Mode) (Report, error) {
	return scoring.Validate(query, mode)
}

// ParseMode parses "intent" or "b2b".
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}

// CheckQuery returns ErrEmptyQuery for empty or whitespace-only input.
func CheckQuery(query string) error {
	return types.CheckQuery(query)
}

// Label returns the quality label ("Excellent" ... "Very Poor") for a score.
func Label(score int) string { return scoring.Label(score) }

// Stars renders a score as a five-star rating.
func Stars(score int) string { return scoring.Stars(score) }

// ColorTier maps a quality label to green, blue, yellow or red.
func ColorTier(label string) string { return scoring.ColorTier(label) }
