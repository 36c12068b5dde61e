// Package format rewrites query-set files in canonical form.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter formats query-set files canonically.
type Formatter interface {
	// Format takes raw file content and returns formatted content.
	// Returns original content and error if formatting fails.
	Format(content string) (string, error)
}

var (
	setFieldOrder   = []string{"mode", "queries"}
	queryFieldOrder = []string{"id", "text", "mode"}
)

// ErrEmptyDocument is returned for files with no YAML content
var ErrEmptyDocument = errors.New("empty query set")

// QuerySetFormatter orders set and query fields, converts flow collections to
// block style and normalizes whitespace. Comments are kept.
type QuerySetFormatter struct{}

// NewQuerySetFormatter creates a query-set formatter.
func NewQuerySetFormatter() Formatter {
	return &QuerySetFormatter{}
}

func (f *QuerySetFormatter) Format(content string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return content, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return content, ErrEmptyDocument
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return content, fmt.Errorf("query set must be a mapping, got %s", kindName(root.Kind))
	}
	normalizeMapping(root, setFieldOrder)

	if queries := lookup(root, "queries"); queries != nil && queries.Kind == yaml.SequenceNode {
		queries.Style = 0
		for _, q := range queries.Content {
			if q.Kind == yaml.MappingNode {
				normalizeMapping(q, queryFieldOrder)
			}
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return content, err
	}
	if err := enc.Close(); err != nil {
		return content, err
	}

	return normalizeLines(buf.String()), nil
}

// normalizeMapping reorders the key/value pairs of m. Priority keys come
// first, then others alphabetically. Single-line scalar values lose explicit
// quoting so the encoder picks the plainest safe style.
func normalizeMapping(m *yaml.Node, priority []string) {
	m.Style = 0

	type pair struct{ key, value *yaml.Node }
	pairs := make([]pair, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		pairs = append(pairs, pair{m.Content[i], m.Content[i+1]})
	}

	rank := func(key string) int {
		for i, k := range priority {
			if k == key {
				return i
			}
		}
		return len(priority)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		ri, rj := rank(pairs[i].key.Value), rank(pairs[j].key.Value)
		if ri != rj {
			return ri < rj
		}
		if ri < len(priority) {
			return false
		}
		return pairs[i].key.Value < pairs[j].key.Value
	})

	m.Content = m.Content[:0]
	for _, p := range pairs {
		p.key.Style = 0
		if p.value.Kind == yaml.ScalarNode && !strings.Contains(p.value.Value, "\n") {
			p.value.Style = 0
		}
		m.Content = append(m.Content, p.key, p.value)
	}
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "mapping"
	}
}

// normalizeLines trims trailing whitespace and ends the file with exactly
// one newline.
func normalizeLines(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// Diff computes a simple line diff between original and formatted content.
// Returns empty string if contents are identical.
func Diff(original, formatted, filename string) string {
	if original == formatted {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", filename)
	fmt.Fprintf(&buf, "+++ %s (formatted)\n", filename)

	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	maxLen := max(len(origLines), len(fmtLines))
	for i := 0; i < maxLen; i++ {
		var origLine, fmtLine string
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}

		if origLine != fmtLine {
			if origLine != "" {
				fmt.Fprintf(&buf, "- %s\n", origLine)
			}
			if fmtLine != "" {
				fmt.Fprintf(&buf, "+ %s\n", fmtLine)
			}
		}
	}

	return buf.String()
}
