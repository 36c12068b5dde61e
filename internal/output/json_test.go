package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/querylint/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf, false, "")
	require.NoError(t, f.Format(summaryOf(t, passingQuery, failingQuery)))

	var report JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "querylint", report.Header.Tool)
	assert.Equal(t, version.Short(), report.Header.Version)
	assert.NotEmpty(t, report.Header.Timestamp)

	assert.Equal(t, 2, report.Summary.TotalQueries)
	assert.Equal(t, 1, report.Summary.PassedQueries)
	assert.Equal(t, 1, report.Summary.FailedQueries)
	assert.Equal(t, 74, report.Summary.AverageScore)

	require.Len(t, report.Results, 2)
	first := report.Results[0]
	assert.Equal(t, "gardeners", first.ID)
	assert.Equal(t, "sets/a.queries.yaml", first.File)
	assert.Equal(t, 97, first.OverallScore)
	assert.True(t, first.Passed)
	assert.Equal(t, "Excellent", first.Label)
	assert.Equal(t, 5, first.Stars)
	assert.Len(t, first.Rules, 7)
	assert.Empty(t, first.Suggestions)

	second := report.Results[1]
	assert.Equal(t, "b2b", second.Mode)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 51, second.OverallScore)
	assert.Equal(t, 3, second.Stars)
	assert.NotEmpty(t, second.Suggestions)
}

func TestJSONFormatter_RuleFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true, "").Format(summaryOf(t, failingQuery)))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	results := raw["results"].([]any)
	rule := results[0].(map[string]any)["rules"].([]any)[0].(map[string]any)
	for _, key := range []string{"rule_id", "name", "weight", "score", "passed", "message"} {
		assert.Contains(t, rule, key)
	}
	assert.Contains(t, buf.String(), "\n  ")
}

func TestJSONFormatter_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter(&buf, true, path).Format(summaryOf(t, passingQuery)))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var report JSONReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 1, report.Summary.TotalQueries)
}

func TestJSONFormatter_OutputFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	err := NewJSONFormatter(&bytes.Buffer{}, false, path).Format(summaryOf(t, passingQuery))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing to file")
}
