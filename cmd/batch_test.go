package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/dotcommander/querylint/internal/baseline"
	"github.com/dotcommander/querylint/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Baseline(t *testing.T) {
	dir := t.TempDir()
	writeQuerySet(t, dir, "sets/mixed.queries.yaml", mixedQuerySet)

	res := execute(t, "", "batch", "--root", dir, "--create-baseline")
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.exitCode, "creating a baseline accepts the current state")

	b, err := baseline.LoadBaseline(filepath.Join(dir, baseline.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.IsKnown("what is the best CRM?", types.ModeB2B))
	assert.NotEmpty(t, b.CreatedAt)

	res = execute(t, "", "batch", "--root", dir, "--baseline")
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.exitCode, "known failures do not fail the run")
	assert.Contains(t, res.out, "✗ crm [b2b]")

	writeQuerySet(t, dir, "sets/new.queries.yaml", "queries:\n  - text: hi\n")
	res = execute(t, "", "batch", "--root", dir, "--baseline")
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.exitCode, "a new failure fails the run")
}

func TestBatchCmd_BaselinePath(t *testing.T) {
	dir := t.TempDir()
	path := writeQuerySet(t, dir, "crm.yaml", mixedQuerySet)
	custom := filepath.Join(dir, "custom-baseline.json")

	res := execute(t, "", "batch", "--create-baseline", "--baseline-path", custom, path)
	require.NoError(t, res.err)
	_, err := os.Stat(custom)
	require.NoError(t, err)

	res = execute(t, "", "batch", "--baseline", "--baseline-path", custom, path)
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.exitCode)
}

func TestBatchCmd_MissingBaseline(t *testing.T) {
	dir := t.TempDir()
	writeQuerySet(t, dir, "sets/mixed.queries.yaml", mixedQuerySet)

	res := execute(t, "", "batch", "--root", dir, "--baseline")
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.exitCode, "without a baseline file every failure counts")
}

func TestBatchCmd_StagedAndChangedExclusive(t *testing.T) {
	res := execute(t, "", "batch", "--staged", "--changed")
	require.Error(t, res.err)
}

func TestBatchCmd_Staged(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit := func(args ...string) {
		t.Helper()
		c := exec.Command("git", args...)
		c.Dir = dir
		out, err := c.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	runGit("init", "-q")

	writeQuerySet(t, dir, "sets/mixed.queries.yaml", mixedQuerySet)
	writeQuerySet(t, dir, "sets/b2b.queries.yaml", "mode: b2b\nqueries:\n  - text: SaaS companies with 50-200 employees in the fintech industry\n")

	res := execute(t, "", "batch", "--root", dir, "--staged")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "No changed query files")
	assert.Equal(t, -1, res.exitCode)

	runGit("add", "sets/b2b.queries.yaml")

	res = execute(t, "", "batch", "--root", dir, "--staged")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "100/100")
	assert.NotContains(t, res.out, "crm")
	assert.Equal(t, -1, res.exitCode)

	res = execute(t, "", "batch", "--root", dir, "--changed")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "100/100")
	assert.Equal(t, -1, res.exitCode, "untracked files are not changes")
}
