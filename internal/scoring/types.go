package scoring

import (
	"github.com/dotcommander/querylint/internal/rules"
	"github.com/dotcommander/querylint/internal/types"
)

// PassThreshold is the overall score a query needs to pass
const PassThreshold = 70

// Report is the full quality report for one query
type Report struct {
	Query        string      `json:"query"`
	Mode         types.Mode  `json:"mode"`
	OverallScore int         `json:"overall_score"` // 0-100
	Passed       bool        `json:"passed"`        // OverallScore >= PassThreshold
	Rules        []RuleScore `json:"rules"`         // declaration order
	Suggestions  []string    `json:"suggestions"`   // one per failing rule with details
}

// RuleScore is a rule result with the rule's static metadata attached
type RuleScore struct {
	rules.Result
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Failed returns the rule scores that did not pass.
func (r Report) Failed() []RuleScore {
	var failed []RuleScore
	for _, rs := range r.Rules {
		if !rs.Passed {
			failed = append(failed, rs)
		}
	}
	return failed
}

// Label returns the quality label for the overall score.
func (r Report) Label() string {
	return Label(r.OverallScore)
}
