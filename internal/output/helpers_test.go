package output

import (
	"testing"
	"time"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/queryset"
	"github.com/dotcommander/querylint/internal/scoring"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/stretchr/testify/require"
)

func result(t *testing.T, q queryset.Query) batch.Result {
	t.Helper()
	r, err := scoring.Validate(q.Text, q.Mode)
	require.NoError(t, err)
	return batch.Result{Query: q, Report: r}
}

// passingQuery scores 97, failingQuery scores 51
var (
	passingQuery = queryset.Query{File: "sets/a.queries.yaml", ID: "gardeners", Text: "interested in sustainable gardening and zero-waste living", Mode: types.ModeIntent}
	failingQuery = queryset.Query{File: "sets/a.queries.yaml", Index: 1, Text: "what is the best CRM?", Mode: types.ModeB2B}
)

func summaryOf(t *testing.T, qs ...queryset.Query) *batch.Summary {
	t.Helper()
	var results []batch.Result
	for _, q := range qs {
		results = append(results, result(t, q))
	}
	return batch.NewSummary(results, time.Now())
}
