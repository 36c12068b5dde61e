// Package rules declares the query quality rules and their evaluators.
package rules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dotcommander/querylint/internal/types"
)

// Rule IDs
const (
	IDLength         = "length"
	IDVagueTerms     = "vague-terms"
	IDQuestionFormat = "question-format"
	IDModePurity     = "mode-purity"
	IDSpecificity    = "specificity"
	IDKeywordDensity = "keyword-density"
	IDActionability  = "actionability"
)

// Result is the outcome of a single rule. Passed and Score are set
// independently by each rule.
type Result struct {
	RuleID  string `json:"rule_id"`
	Passed  bool   `json:"passed"`
	Score   int    `json:"score"`   // 0-100
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // actionable suggestion, usually set when failing
}

// EvalFunc evaluates a query in the given mode
type EvalFunc func(query string, mode types.Mode) Result

// Rule is a named, weighted evaluator. Weights are relative, not normalized.
type Rule struct {
	ID       string
	Name     string
	Weight   int
	Evaluate EvalFunc
}

// Run evaluates the rule and stamps its ID on the result.
func (r Rule) Run(query string, mode types.Mode) Result {
	res := r.Evaluate(query, mode)
	res.RuleID = r.ID
	return res
}

// Default returns the declared rule set in evaluation order. A new slice is
// returned on each call so callers can append without affecting others.
func Default() []Rule {
	return []Rule{
		{IDLength, "Length", 10, EvaluateLength},
		{IDVagueTerms, "Vague Terms", 15, EvaluateVagueTerms},
		{IDQuestionFormat, "Question Format", 15, EvaluateQuestionFormat},
		{IDModePurity, "Mode Purity", 30, EvaluateModePurity},
		{IDSpecificity, "Specificity", 15, EvaluateSpecificity},
		{IDKeywordDensity, "Keyword Density", 10, EvaluateKeywordDensity},
		{IDActionability, "Actionability", 5, EvaluateActionability},
	}
}

// TotalWeight sums the weights of rs.
func TotalWeight(rs []Rule) int {
	total := 0
	for _, r := range rs {
		total += r.Weight
	}
	return total
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’-][\p{L}\p{N}]+)*`)

// Words splits query into word tokens. Hyphenated and apostrophe forms stay whole.
func Words(query string) []string {
	return wordRe.FindAllString(query, -1)
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
