package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownFormatter_Format(t *testing.T) {
	tests := []struct {
		name            string
		verbose         bool
		wantContains    []string
		wantNotContains []string
	}{
		{
			name: "failing queries only",
			wantContains: []string{
				"# Querylint Report",
				"| Queries Checked | 2 |",
				"| Passed | 1 |",
				"| Average Score | 74 |",
				"### sets/a.queries.yaml#2",
				"> what is the best CRM?",
				"❌ **51/100** ★★★☆☆ Poor (`b2b`)",
				"| Mode Purity | 30 |",
				"#### Suggestions",
				"✗ 1 queries failed validation",
			},
			wantNotContains: []string{"### gardeners"},
		},
		{
			name:         "verbose includes passing queries",
			verbose:      true,
			wantContains: []string{"### gardeners", "✅ **97/100** ★★★★★ Excellent (`intent`)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := NewMarkdownFormatter(&buf, tt.verbose, "")
			require.NoError(t, f.Format(summaryOf(t, passingQuery, failingQuery)))

			out := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.wantNotContains {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestMarkdownFormatter_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(&buf, false, "").Format(summaryOf(t, passingQuery)))
	assert.Contains(t, buf.String(), "✓ All queries passed validation!")
	// A single query is always shown
	assert.Contains(t, buf.String(), "### gardeners")
}

func TestMarkdownFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(&buf, false, "").Format(summaryOf(t)))
	assert.Contains(t, buf.String(), "*No queries found to validate.*")
}

func TestMarkdownFormatter_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(&buf, false, path).Format(summaryOf(t, failingQuery)))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Querylint Report")
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a \| b c`, escapeMarkdown("a | b\nc"))
}
