package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/querylint/internal/patterns"
	"github.com/dotcommander/querylint/internal/types"
)

// Length thresholds, in characters of the trimmed query
const (
	MinLength   = 10
	MaxLength   = 500
	IdealLower  = 20
	IdealUpper  = 200
	minWordSize = 4 // specificity counts words longer than this
	minDenseLen = 3 // keyword density ignores words this short or shorter
)

// EvaluateLength scores the trimmed query length.
func EvaluateLength(query string, _ types.Mode) Result {
	n := utf8.RuneCountInString(strings.TrimSpace(query))

	switch {
	case n < MinLength:
		return Result{
			Score:   0,
			Message: fmt.Sprintf("Too short: %d characters", n),
			Details: fmt.Sprintf("Expand the query to at least %d characters", MinLength),
		}
	case n > MaxLength:
		return Result{
			Score:   50,
			Message: fmt.Sprintf("Too long: %d characters", n),
			Details: fmt.Sprintf("Shorten the query to %d characters or fewer", MaxLength),
		}
	case n >= IdealLower && n <= IdealUpper:
		return Result{Passed: true, Score: 100, Message: fmt.Sprintf("Ideal length: %d characters", n)}
	default:
		return Result{Passed: true, Score: 80, Message: fmt.Sprintf("Acceptable length: %d characters", n)}
	}
}

// EvaluateVagueTerms penalizes hype and filler vocabulary.
func EvaluateVagueTerms(query string, _ types.Mode) Result {
	d := patterns.Vague.Detect(query)
	terms := strings.Join(d.Matches, ", ")

	switch len(d.Matches) {
	case 0:
		return Result{Passed: true, Score: 100, Message: "No vague terms"}
	case 1:
		return Result{
			Score:   30,
			Message: fmt.Sprintf("Vague term: %s", terms),
			Details: fmt.Sprintf("Replace %q with concrete, measurable criteria", terms),
		}
	default:
		return Result{
			Score:   0,
			Message: fmt.Sprintf("%d vague terms: %s", len(d.Matches), terms),
			Details: fmt.Sprintf("Replace vague terms (%s) with concrete, measurable criteria", terms),
		}
	}
}

// EvaluateQuestionFormat fails queries phrased as questions.
func EvaluateQuestionFormat(query string, _ types.Mode) Result {
	if patterns.Question.Matches(query) {
		return Result{
			Score:   0,
			Message: "Phrased as a question",
			Details: "Rephrase as a statement describing who or what you are looking for",
		}
	}
	return Result{Passed: true, Score: 100, Message: "Phrased as a statement"}
}

// EvaluateSpecificity rewards concrete detail: long words and numbers.
func EvaluateSpecificity(query string, _ types.Mode) Result {
	meaningful := 0
	for _, w := range Words(query) {
		if utf8.RuneCountInString(w) > minWordSize {
			meaningful++
		}
	}

	switch {
	case meaningful < 3:
		return Result{
			Score:   40,
			Message: fmt.Sprintf("Only %d specific terms", meaningful),
			Details: "Add concrete details such as topics, products, behaviors or numbers",
		}
	case meaningful >= 5 && hasDigit(query):
		return Result{Passed: true, Score: 100, Message: fmt.Sprintf("Highly specific: %d terms with quantitative detail", meaningful)}
	default:
		return Result{Passed: true, Score: 80, Message: fmt.Sprintf("Specific: %d terms", meaningful)}
	}
}

// EvaluateKeywordDensity penalizes repeating the same term.
func EvaluateKeywordDensity(query string, _ types.Mode) Result {
	word, count := mostRepeated(query)

	switch {
	case count <= 1:
		return Result{Passed: true, Score: 100, Message: "No repeated terms"}
	case count == 2:
		return Result{Passed: true, Score: 80, Message: fmt.Sprintf("%q appears twice", word)}
	case count == 3:
		return Result{
			Score:   50,
			Message: fmt.Sprintf("%q appears %d times", word, count),
			Details: fmt.Sprintf("Reduce repetition of %q", word),
		}
	default:
		return Result{
			Score:   20,
			Message: fmt.Sprintf("%q appears %d times", word, count),
			Details: fmt.Sprintf("Avoid keyword stuffing: %q appears %d times", word, count),
		}
	}
}

// mostRepeated returns the most frequent word longer than minDenseLen.
// Ties go to the word seen first.
func mostRepeated(query string) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, w := range Words(strings.ToLower(query)) {
		if utf8.RuneCountInString(w) <= minDenseLen {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	best, top := "", 0
	for _, w := range order {
		if counts[w] > top {
			best, top = w, counts[w]
		}
	}
	return best, top
}

// EvaluateActionability uses word count as a clarity proxy.
func EvaluateActionability(query string, _ types.Mode) Result {
	n := len(Words(query))

	switch {
	case n < 3:
		return Result{
			Score:   0,
			Message: fmt.Sprintf("Too few words: %d", n),
			Details: "Describe the audience in at least three words",
		}
	case n >= 5:
		return Result{Passed: true, Score: 100, Message: "Clear and actionable"}
	default:
		return Result{Passed: true, Score: 70, Message: "Actionable, could be more descriptive"}
	}
}
