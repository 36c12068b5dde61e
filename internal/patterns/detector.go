// Package patterns holds the lexical detectors used by the query rules.
// Detectors are compiled once at package init and are safe for concurrent use.
package patterns

import (
	"regexp"
	"strings"
)

// Detection is the outcome of running a Detector over a query
type Detection struct {
	Detected bool     `json:"detected"`
	Matches  []string `json:"matches,omitempty"`
}

// Span is a normalized match and its byte offsets in the query
type Span struct {
	Text  string
	Start int
	End   int
}

// Overlaps reports whether s and o share at least one byte of the query.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Detector is a named, ordered set of patterns
type Detector struct {
	Name     string
	patterns []*regexp.Regexp
}

// NewDetector compiles exprs into a Detector. It panics on an invalid
// expression, so it is meant for package-level literals only.
func NewDetector(name string, exprs ...string) Detector {
	d := Detector{Name: name, patterns: make([]*regexp.Regexp, 0, len(exprs))}
	for _, expr := range exprs {
		d.patterns = append(d.patterns, regexp.MustCompile(expr))
	}
	return d
}

// Combine returns a Detector that runs every pattern of the given detectors in order.
func Combine(name string, detectors ...Detector) Detector {
	d := Detector{Name: name}
	for _, src := range detectors {
		d.patterns = append(d.patterns, src.patterns...)
	}
	return d
}

// Len returns the number of patterns in the detector.
func (d Detector) Len() int {
	return len(d.patterns)
}

// Find runs each pattern against query and returns the first match of each,
// in pattern order. Overlapping and repeated matches are kept.
func (d Detector) Find(query string) []Span {
	var spans []Span
	for _, re := range d.patterns {
		loc := re.FindStringIndex(query)
		if loc == nil {
			continue
		}
		text := normalize(query[loc[0]:loc[1]])
		if text == "" {
			continue
		}
		spans = append(spans, Span{Text: text, Start: loc[0], End: loc[1]})
	}
	return spans
}

// Detect runs each pattern against query and keeps the first match of each.
// Matches are lower-cased, whitespace-collapsed and de-duplicated in
// first-seen order.
func (d Detector) Detect(query string) Detection {
	var matches []string
	seen := make(map[string]bool)

	for _, span := range d.Find(query) {
		if seen[span.Text] {
			continue
		}
		seen[span.Text] = true
		matches = append(matches, span.Text)
	}

	return Detection{Detected: len(matches) > 0, Matches: matches}
}

// Matches reports whether any pattern matches query.
func (d Detector) Matches(query string) bool {
	for _, re := range d.patterns {
		if re.MatchString(query) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// termPatterns turns a flat word list into one word-bounded pattern per term
func termPatterns(terms []string) []string {
	exprs := make([]string, 0, len(terms))
	for _, term := range terms {
		exprs = append(exprs, `(?i)\b`+regexp.QuoteMeta(term)+`\b`)
	}
	return exprs
}
