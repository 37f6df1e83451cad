// Package forbidden scans Solidity sources for deny-listed primitives.
package forbidden

import (
	"strings"

	"connlint/internal/errors"
)

// DefaultPatterns is the deny-list used when none is configured.
var DefaultPatterns = []string{"selfdestruct"}

// Scanner matches source lines against a fixed deny-list
type Scanner struct {
	patterns []string
}

// NewScanner creates a scanner for the given patterns, falling back to DefaultPatterns
func NewScanner(patterns ...string) *Scanner {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &Scanner{patterns: patterns}
}

// Scan returns one diagnostic for every line containing a pattern.
// Matches are exact and case-sensitive; results are ordered by pattern,
// then by line.
func (s *Scanner) Scan(code, path string) []errors.Diagnostic {
	var found []errors.Diagnostic
	lines := strings.Split(code, "\n")

	for _, pattern := range s.patterns {
		for i, line := range lines {
			if strings.Contains(line, pattern) {
				found = append(found, errors.ForbiddenPattern(pattern, path, i+1))
			}
		}
	}

	return found
}
