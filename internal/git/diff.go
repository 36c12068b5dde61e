// Package git lists query-set files with uncommitted changes.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GetStagedFiles returns the staged files under rootPath matching patterns.
// Returns an empty slice if rootPath is not in a git repository.
func GetStagedFiles(rootPath string, patterns []string) ([]string, error) {
	if !IsGitRepo(rootPath) {
		return []string{}, nil
	}

	output, err := run(rootPath, "diff", "--name-only", "--relative", "--staged")
	if err != nil {
		return nil, err
	}

	return filterRelevantFiles(output, rootPath, patterns), nil
}

// GetChangedFiles returns all uncommitted changes (staged and unstaged) under
// rootPath matching patterns. Before the first commit every tracked file
// counts as changed. Returns an empty slice outside a git repository.
func GetChangedFiles(rootPath string, patterns []string) ([]string, error) {
	if !IsGitRepo(rootPath) {
		return []string{}, nil
	}

	if _, err := run(rootPath, "rev-parse", "HEAD"); err != nil {
		output, err := run(rootPath, "ls-files")
		if err != nil {
			return nil, err
		}
		return filterRelevantFiles(output, rootPath, patterns), nil
	}

	output, err := run(rootPath, "diff", "--name-only", "--relative", "HEAD")
	if err != nil {
		return nil, err
	}

	return filterRelevantFiles(output, rootPath, patterns), nil
}

// IsGitRepo checks if the given directory is within a git repository.
func IsGitRepo(rootPath string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = rootPath
	return cmd.Run() == nil
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, output)
	}
	return string(output), nil
}

// filterRelevantFiles keeps existing files from git output that match one of
// patterns. Paths are returned joined with rootPath and sorted.
func filterRelevantFiles(gitOutput, rootPath string, patterns []string) []string {
	files := []string{}

	for _, line := range strings.Split(strings.TrimSpace(gitOutput), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isRelevantFile(line, patterns) {
			continue
		}

		path := filepath.Join(rootPath, filepath.FromSlash(line))

		// git reports deletions too
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		files = append(files, path)
	}

	sort.Strings(files)
	return files
}

// isRelevantFile reports whether relPath (slash-separated, relative to the
// root) matches one of the query-set patterns.
func isRelevantFile(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
