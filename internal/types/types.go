// Package types provides shared types used across the querylint codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the targeting context a query is scored against.
type Mode string

// Mode constants.
const (
	ModeIntent Mode = "intent" // behavioral / interest-based targeting
	ModeB2B    Mode = "b2b"    // firmographic / company-based targeting
)

// Sentinel errors returned at the API boundary.
var (
	ErrInvalidMode = errors.New("invalid mode")
	ErrEmptyQuery  = errors.New("empty query")
)

// Modes returns the recognized modes in display order.
func Modes() []Mode {
	return []Mode{ModeIntent, ModeB2B}
}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == ModeIntent || m == ModeB2B
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts s into a Mode. Matching ignores case and surrounding
// whitespace; anything else yields ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (must be 'intent' or 'b2b')", ErrInvalidMode, s)
	}
	return m, nil
}

// CheckQuery enforces the caller-side boundary: empty or whitespace-only
// queries are rejected before they reach the engine.
func CheckQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}
