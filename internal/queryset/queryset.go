// Package queryset loads query-set files: YAML documents listing queries to
// score, validated against an embedded CUE schema.
package queryset

import (
	"fmt"
	"os"

	"github.com/dotcommander/querylint/internal/types"
	yamlv3 "gopkg.in/yaml.v3"
)

// File is the on-disk shape of a query-set file
type File struct {
	Mode    string  `yaml:"mode,omitempty"`
	Queries []Entry `yaml:"queries"`
}

// Entry is one query in a query-set file
type Entry struct {
	ID   string `yaml:"id,omitempty"`
	Text string `yaml:"text"`
	Mode string `yaml:"mode,omitempty"`
}

// Query is a query ready to be scored, with its mode resolved
type Query struct {
	File  string     `json:"file,omitempty"`
	Index int        `json:"index"` // position in File, 0-based
	ID    string     `json:"id,omitempty"`
	Text  string     `json:"text"`
	Mode  types.Mode `json:"mode"`
}

// Label identifies the query in reports: its ID, or file#index.
func (q Query) Label() string {
	if q.ID != "" {
		return q.ID
	}
	if q.File == "" {
		return fmt.Sprintf("#%d", q.Index+1)
	}
	return fmt.Sprintf("%s#%d", q.File, q.Index+1)
}

// Loader parses and validates query-set files
type Loader struct {
	validator   *Validator
	defaultMode types.Mode
}

// NewLoader creates a Loader. defaultMode applies to entries whose file and
// entry both omit a mode.
func NewLoader(defaultMode types.Mode) (*Loader, error) {
	if !defaultMode.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidMode, defaultMode)
	}
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &Loader{validator: v, defaultMode: defaultMode}, nil
}

// LoadFile reads and parses the file at path
func (l *Loader) LoadFile(path string) ([]Query, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading query file: %w", err)
	}
	return l.Parse(path, content)
}

// LoadFiles loads every path in order and concatenates the queries
func (l *Loader) LoadFiles(paths []string) ([]Query, error) {
	var all []Query
	for _, path := range paths {
		qs, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, qs...)
	}
	return all, nil
}

// Parse decodes content, validates it against the schema and resolves modes
func (l *Loader) Parse(name string, content []byte) ([]Query, error) {
	var raw map[string]any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", name, err)
	}
	if raw == nil {
		return nil, &SchemaError{File: name, Messages: []string{"file is empty"}}
	}

	if err := l.validator.Validate(name, raw); err != nil {
		return nil, err
	}

	var f File
	if err := yamlv3.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}

	fileMode := l.defaultMode
	if f.Mode != "" {
		m, err := types.ParseMode(f.Mode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		fileMode = m
	}

	queries := make([]Query, 0, len(f.Queries))
	for i, e := range f.Queries {
		if err := types.CheckQuery(e.Text); err != nil {
			return nil, fmt.Errorf("%s: query %d: %w", name, i+1, err)
		}

		mode := fileMode
		if e.Mode != "" {
			m, err := types.ParseMode(e.Mode)
			if err != nil {
				return nil, fmt.Errorf("%s: query %d: %w", name, i+1, err)
			}
			mode = m
		}

		queries = append(queries, Query{File: name, Index: i, ID: e.ID, Text: e.Text, Mode: mode})
	}

	return queries, nil
}
