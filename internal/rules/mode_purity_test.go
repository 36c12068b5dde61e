package rules

import (
	"testing"

	"github.com/dotcommander/querylint/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateModePurity_Intent(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantScore   int
		wantPassed  bool
		wantDetails []string // substrings expected in Details
	}{
		{
			name:       "intent signal without violations",
			query:      "interested in sustainable gardening and zero-waste living",
			wantScore:  100,
			wantPassed: true,
		},
		{
			name:        "no intent signal",
			query:       "sustainable gardening and zero-waste living",
			wantScore:   50,
			wantDetails: []string{"behavioral signals"},
		},
		{
			// An intent signal does not offset a persona violation.
			name:        "persona with intent signal",
			query:       "software engineers who are interested in machine learning",
			wantScore:   40,
			wantDetails: []string{"persona: software engineers"},
		},
		{
			name:        "two violations",
			query:       "women in Denver who love hiking",
			wantScore:   20,
			wantDetails: []string{"demographic: women", "location: in denver"},
		},
		{
			name:        "three or more violations",
			query:       "married CEOs in Chicago passionate about golf",
			wantScore:   0,
			wantDetails: []string{"persona: ceos", "demographic: married", "location: in chicago"},
		},
		{
			name:       "bare place name is not a violation",
			query:      "passionate about Chicago deep dish pizza",
			wantScore:  100,
			wantPassed: true,
		},
		{
			name:        "one multi-word place counts once",
			query:       "interested in pizza, people in New York City",
			wantScore:   40,
			wantDetails: []string{"location: in new york city"},
		},
		{
			name:        "overlapping persona and demographic count once",
			query:       "home owners interested in solar panels",
			wantScore:   40,
			wantDetails: []string{"demographic: home owners"},
		},
		{
			name:       "capitalized topic after intent phrase",
			query:      "interested in Python and Rust programming",
			wantScore:  100,
			wantPassed: true,
		},
		{
			name:      "empty query",
			query:     "",
			wantScore: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateModePurity(tt.query, types.ModeIntent)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantPassed, got.Passed)
			for _, want := range tt.wantDetails {
				assert.Contains(t, got.Details, want)
			}
		})
	}
}

func TestEvaluateModePurity_B2B(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantScore  int
		wantPassed bool
	}{
		{"firmographic attributes", "SaaS companies with 50-200 employees in the fintech industry", 100, true},
		{"no attributes", "people who like spreadsheets", 50, false},
		{"one forbidden phrase", "companies looking for a new payroll vendor", 40, false},
		{"two forbidden phrases", "startups planning to hire and hoping to expand", 0, false},
		{"forbidden phrase beats attributes", "Series A startups interested in analytics", 40, false},
		// The temporal pattern keeps only its first match
		{"repeated temporal phrases count once", "just raised and will expand and may hire", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateModePurity(tt.query, types.ModeB2B)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantPassed, got.Passed)
		})
	}
}

func TestEvaluateModePurity_UnknownMode(t *testing.T) {
	got := EvaluateModePurity("anything at all", types.Mode("b2c"))
	assert.False(t, got.Passed)
	assert.Equal(t, 0, got.Score)
}

func TestIntentViolations_DistinctAcrossDetectors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []Violation
	}{
		{
			name:  "repeated filters",
			query: "founders in Austin and founders in Austin",
			want: []Violation{
				{Category: CategoryPersona, Match: "founders"},
				{Category: CategoryLocation, Match: "in austin"},
			},
		},
		{
			name:  "longest place wins",
			query: "people in New York City",
			want:  []Violation{{Category: CategoryLocation, Match: "in new york city"}},
		},
		{
			name:  "city and state",
			query: "living in Austin Texas",
			want:  []Violation{{Category: CategoryLocation, Match: "living in austin texas"}},
		},
		{
			name:  "age phrase inside age range",
			query: "women aged 25-34 years old",
			want: []Violation{
				{Category: CategoryDemographic, Match: "25-34 years old"},
				{Category: CategoryDemographic, Match: "women"},
			},
		},
		{
			name:  "demographic covers executive",
			query: "home owners interested in solar panels",
			want:  []Violation{{Category: CategoryDemographic, Match: "home owners"}},
		},
		{
			name:  "intent preposition is not a location",
			query: "interested in Python and Rust programming",
			want:  nil,
		},
		{
			name:  "location after intent phrase",
			query: "people interested in yoga in Denver",
			want:  []Violation{{Category: CategoryLocation, Match: "in denver"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntentViolations(tt.query))
		})
	}
}
