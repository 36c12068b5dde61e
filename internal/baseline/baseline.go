// Package baseline records known-failing queries so that only new failures
// fail a run.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dotcommander/querylint/internal/batch"
	"github.com/dotcommander/querylint/internal/types"
)

// DefaultPath is the baseline file name used when none is given
const DefaultPath = ".querylint-baseline.json"

const formatVersion = "1.0"

// Baseline represents a snapshot of known failing queries that should be ignored
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool
}

// CreateBaseline creates a baseline from the failing results
func CreateBaseline(results []batch.Result) *Baseline {
	fingerprints := make([]string, 0, len(results))
	index := make(map[string]bool)

	for _, res := range results {
		if res.Report.Passed {
			continue
		}
		fp := Fingerprint(res.Query.Text, res.Query.Mode)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	// Sorted for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      formatVersion,
		Fingerprints: fingerprints,
		index:        index,
	}
}

// LoadBaseline loads a baseline from a JSON file
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// SaveBaseline saves the baseline to a JSON file
func (b *Baseline) SaveBaseline(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if a query is in the baseline
func (b *Baseline) IsKnown(text string, mode types.Mode) bool {
	if b == nil || b.index == nil {
		return false
	}
	return b.index[Fingerprint(text, mode)]
}

// Len returns the number of known queries
func (b *Baseline) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Fingerprints)
}

// Filter splits the failing results into new failures and known ones
func (b *Baseline) Filter(results []batch.Result) (newFailures, known []batch.Result) {
	for _, res := range results {
		if res.Report.Passed {
			continue
		}
		if b.IsKnown(res.Query.Text, res.Query.Mode) {
			known = append(known, res)
		} else {
			newFailures = append(newFailures, res)
		}
	}
	return newFailures, known
}

// Fingerprint creates a stable hash of a query. The file and position are
// left out so queries can move between files; case and spacing are ignored.
func Fingerprint(text string, mode types.Mode) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	hash := sha256.Sum256([]byte(mode.String() + "|" + normalized))
	return fmt.Sprintf("%x", hash)
}
