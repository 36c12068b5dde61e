package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		detector Detector
		query    string
		want     []string
	}{
		{"job title plural", JobTitle, "software engineers who ship", []string{"software engineers"}},
		{"job title singular", JobTitle, "a Senior Designer", []string{"senior designer"}},
		{"executive titles", Executive, "CEO and co-founder of a studio", []string{"ceo", "co-founder"}},
		{"persona unions both", Persona, "marketing managers and founders", []string{"marketing managers", "founders"}},
		{"age range", Demographic, "25-34 years old runners", []string{"25-34 years old"}},
		{"gender and parents", Demographic, "women who are parents", []string{"women", "parents"}},
		{"income range", Demographic, "$100k-$200k household income", []string{"$100k-$200k household income"}},
		{"education", Demographic, "college educated readers", []string{"college educated"}},
		{"homeowners", Demographic, "homeowners with solar", []string{"homeowners"}},
		{"location preposition", Location, "people in San Francisco", []string{"in san francisco"}},
		{"location based in", Location, "teams based in Austin", []string{"based in austin"}},
		{"location lowercase known place", Location, "people in san francisco", []string{"in san francisco"}},
		{"location residents", Location, "Denver residents who ski", []string{"denver residents"}},
		{"intent signal", IntentSignal, "interested in sustainable gardening", []string{"interested in"}},
		{"intent lifestyle", IntentSignal, "a minimalist lifestyle", []string{"lifestyle"}},
		{"b2b attributes", B2BAttribute, "SaaS companies in the fintech industry", []string{"companies", "saas", "industry"}},
		{"b2b funding", B2BAttribute, "Series B startups", []string{"startups", "series b"}},
		{"forbidden intent", ForbiddenIntent, "companies looking for a CRM", []string{"looking for"}},
		{"forbidden temporal", ForbiddenIntent, "firms that recently hired", []string{"recently hired"}},
		{"vague terms", Vague, "best top leading software", []string{"best", "top", "leading"}},
		{"vague hyphenated", Vague, "cutting-edge tools", []string{"cutting-edge"}},
		{"question leading word", Question, "what is the best CRM", []string{"what"}},
		{"question mark", Question, "gardening tools?", []string{"?"}},
		// Each pattern contributes only its first match
		{"temporal intent counts once", ForbiddenIntent, "just raised and will expand and may hire", []string{"just raised"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.detector.Detect(tt.query)
			assert.True(t, got.Detected)
			assert.Equal(t, tt.want, got.Matches)
		})
	}
}

func TestDetector_NoMatch(t *testing.T) {
	tests := []struct {
		name     string
		detector Detector
		query    string
	}{
		{"bare place name is a topic", Location, "chicago style pizza recipes"},
		{"lowercase topic after in", Location, "interested in machine learning"},
		{"no persona in interests", Persona, "interested in sustainable gardening"},
		{"question word not leading", Question, "tools for people who garden"},
		{"senior is not seniors", Demographic, "senior software roles"},
		{"empty query", IntentSignal, ""},
		{"no vague terms", Vague, "organic vegetable seed catalogs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.detector.Detect(tt.query)
			assert.False(t, got.Detected)
			assert.Empty(t, got.Matches)
			assert.False(t, tt.detector.Matches(tt.query))
		})
	}
}

func TestDetector_DeduplicatesMatches(t *testing.T) {
	// The preposition pattern and the known-place pattern both hit the same span.
	got := Location.Detect("shops in Chicago")
	assert.Equal(t, []string{"in chicago"}, got.Matches)
}

func TestDetector_Find(t *testing.T) {
	got := Location.Find("people in New York City")
	assert.Equal(t, []Span{
		{Text: "in new york city", Start: 7, End: 23},
		{Text: "in new york", Start: 7, End: 18},
	}, got)
	assert.True(t, got[0].Overlaps(got[1]))

	assert.Empty(t, Location.Find("chicago style pizza recipes"))
}

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"nested", Span{Start: 0, End: 10}, Span{Start: 2, End: 5}, true},
		{"partial", Span{Start: 0, End: 5}, Span{Start: 4, End: 9}, true},
		{"adjacent", Span{Start: 0, End: 5}, Span{Start: 5, End: 9}, false},
		{"disjoint", Span{Start: 0, End: 3}, Span{Start: 6, End: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestCombine(t *testing.T) {
	assert.Equal(t, JobTitle.Len()+Executive.Len(), Persona.Len())
	assert.Equal(t, NamePersona, Persona.Name)
}

func TestVagueTermsHaveOnePatternEach(t *testing.T) {
	assert.Equal(t, len(VagueTerms), Vague.Len())
}
