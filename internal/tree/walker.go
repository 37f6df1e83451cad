// Package tree discovers connector directories under one or more roots.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"connlint/internal/ast"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("connlint.tree")

// ErrMissingRoot is returned when a root directory does not exist.
var ErrMissingRoot = errors.New("connector root does not exist")

// Walk returns every directory below the given roots that directly
// contains the entry file. Each root is traversed depth first with an
// explicit stack; the order of the result is not lexical.
func Walk(roots ...string) ([]string, error) {
	var connectors []string
	seen := make(map[string]bool)

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrMissingRoot, root)
			}
			return nil, fmt.Errorf("failed to stat root %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("connector root %s is not a directory", root)
		}

		dirs := []string{root}
		for len(dirs) > 0 {
			current := dirs[len(dirs)-1]
			dirs = dirs[:len(dirs)-1]

			entries, err := os.ReadDir(current)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", current, err)
			}

			for _, entry := range entries {
				switch {
				case entry.Type().IsRegular() && entry.Name() == ast.EntryFile:
					if !seen[current] {
						seen[current] = true
						connectors = append(connectors, current)
						log.Debugf("found connector %s", current)
					}
				case entry.IsDir():
					dirs = append(dirs, filepath.Join(current, entry.Name()))
				}
			}
		}
	}

	return connectors, nil
}
