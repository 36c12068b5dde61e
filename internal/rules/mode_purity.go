package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/querylint/internal/patterns"
	"github.com/dotcommander/querylint/internal/types"
)

// Violation categories for intent mode
const (
	CategoryPersona     = "persona"
	CategoryDemographic = "demographic"
	CategoryLocation    = "location"
)

// Violation is a targeting filter found in an intent query
type Violation struct {
	Category string
	Match    string
}

func (v Violation) String() string {
	return v.Category + ": " + v.Match
}

// intentDetectors run in this order; it fixes the order of violations.
var intentDetectors = []struct {
	category string
	detector patterns.Detector
}{
	{CategoryPersona, patterns.Persona},
	{CategoryDemographic, patterns.Demographic},
	{CategoryLocation, patterns.Location},
}

// IntentViolations returns the distinct persona, demographic and location
// filters in query, in detector order. Matches covering overlapping text count
// once, as the longest of them. A location whose preposition belongs to an
// intent phrase ("interested in Python") is a topic, not a filter.
func IntentViolations(query string) []Violation {
	type candidate struct {
		Violation
		span  patterns.Span
		order int
	}

	signals := patterns.IntentSignal.Find(query)

	var candidates []candidate
	for _, id := range intentDetectors {
		for _, span := range id.detector.Find(query) {
			if id.category == CategoryLocation && overlapsAny(span, signals) {
				continue
			}
			candidates = append(candidates, candidate{
				Violation: Violation{Category: id.category, Match: span.Text},
				span:      span,
				order:     len(candidates),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].span.End-candidates[i].span.Start > candidates[j].span.End-candidates[j].span.Start
	})

	var accepted []candidate
	var taken []patterns.Span
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.Match] || overlapsAny(c.span, taken) {
			continue
		}
		seen[c.Match] = true
		accepted = append(accepted, c)
		taken = append(taken, c.span)
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].order < accepted[j].order })

	out := make([]Violation, 0, len(accepted))
	for _, c := range accepted {
		out = append(out, c.Violation)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func overlapsAny(span patterns.Span, others []patterns.Span) bool {
	for _, o := range others {
		if span.Overlaps(o) {
			return true
		}
	}
	return false
}

// EvaluateModePurity checks that the query uses language suited to its mode:
// behavioral signals for intent, firmographic attributes for b2b.
func EvaluateModePurity(query string, mode types.Mode) Result {
	switch mode {
	case types.ModeIntent:
		return evaluateIntentPurity(query)
	case types.ModeB2B:
		return evaluateB2BPurity(query)
	default:
		return Result{Score: 0, Message: fmt.Sprintf("Unknown mode %q", mode)}
	}
}

func evaluateIntentPurity(query string) Result {
	violations := IntentViolations(query)

	if len(violations) == 0 {
		signals := patterns.IntentSignal.Detect(query)
		if signals.Detected {
			return Result{
				Passed:  true,
				Score:   100,
				Message: "Behavioral signals: " + strings.Join(signals.Matches, ", "),
			}
		}
		return Result{
			Score:   50,
			Message: "No behavioral signals",
			Details: "Intent mode requires behavioral signals such as interests, goals, habits or struggles",
		}
	}

	labeled := make([]string, len(violations))
	for i, v := range violations {
		labeled[i] = v.String()
	}

	var score int
	switch len(violations) {
	case 1:
		score = 40
	case 2:
		score = 20
	default:
		score = 0
	}

	return Result{
		Score:   score,
		Message: fmt.Sprintf("%d targeting filter(s) in an intent query", len(violations)),
		Details: fmt.Sprintf("Remove targeting filters (%s) and describe behaviors or interests instead", strings.Join(labeled, "; ")),
	}
}

func evaluateB2BPurity(query string) Result {
	forbidden := patterns.ForbiddenIntent.Detect(query)

	if forbidden.Detected {
		phrases := strings.Join(forbidden.Matches, ", ")
		score := 40
		if len(forbidden.Matches) >= 2 {
			score = 0
		}
		return Result{
			Score:   score,
			Message: "Behavioral intent language: " + phrases,
			Details: fmt.Sprintf("Remove intent phrases (%s) and describe company attributes instead", phrases),
		}
	}

	attrs := patterns.B2BAttribute.Detect(query)
	if !attrs.Detected {
		return Result{
			Score:   50,
			Message: "No company attributes",
			Details: "B2B mode requires company-specific attributes such as industry, size, revenue, funding or tech stack",
		}
	}

	return Result{
		Passed:  true,
		Score:   100,
		Message: "Company attributes: " + strings.Join(attrs.Matches, ", "),
	}
}
