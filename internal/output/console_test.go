package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatter_Format(t *testing.T) {
	tests := []struct {
		name            string
		queries         []queryset.Query
		quiet           bool
		verbose         bool
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:            "quiet mode - no output",
			queries:         []queryset.Query{failingQuery},
			quiet:           true,
			wantNotContains: []string{"CRM", "passed"},
		},
		{
			name:    "single query shows every rule",
			queries: []queryset.Query{{Text: "interested in sustainable gardening and zero-waste living", Mode: types.ModeIntent}},
			wantContains: []string{
				`"interested in sustainable gardening and zero-waste living"`,
				"[intent]", "97/100", "★★★★★", "Excellent",
				"Length", "Keyword Density", "Mode Purity", "(weight 30)",
				"✓ All passed",
			},
			wantNotContains: []string{"💡", "average score"},
		},
		{
			name:    "batch hides passing rules",
			queries: []queryset.Query{passingQuery, failingQuery},
			wantContains: []string{
				"✓ gardeners [intent]", "97/100",
				"✗ sets/a.queries.yaml#2 [b2b]", "51/100",
				"★★★☆☆", "Poor",
				"💡 Question Format:",
				"1/2 passed, average score 74",
			},
			wantNotContains: []string{"✓ All passed", "Keyword Density"},
		},
		{
			name:    "verbose batch shows query text and every rule",
			queries: []queryset.Query{passingQuery, failingQuery},
			verbose: true,
			wantContains: []string{
				"interested in sustainable gardening and zero-waste living",
				"Keyword Density",
			},
		},
		{
			name:         "no queries",
			wantContains: []string{"No queries found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := NewConsoleFormatter(&buf, tt.quiet, tt.verbose)
			require.NoError(t, f.Format(summaryOf(t, tt.queries...)))

			out := buf.String()
			if tt.quiet {
				assert.Empty(t, out)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.wantNotContains {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		q    queryset.Query
		want string
	}{
		{"id wins", queryset.Query{ID: "g", File: "a.yaml", Text: "x"}, "g"},
		{"file and index", queryset.Query{File: "a.yaml", Index: 4, Text: "x"}, "a.yaml#5"},
		{"bare text is quoted", queryset.Query{Text: "gardeners"}, `"gardeners"`},
		{"long text is truncated", queryset.Query{Text: strings.Repeat("a", 80)}, `"` + strings.Repeat("a", 57) + `..."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.q))
		})
	}
}

func TestTruncate_Runes(t *testing.T) {
	assert.Equal(t, "ééé", truncate("ééé", 3))
	assert.Equal(t, "é...", truncate("ééééé", 4))
}
