package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem paths under the tool's data
// directory.
type Paths struct {
	Root string // ~/.gromark/
	DB   string // ~/.gromark/runs.db
}

// NewPaths resolves the data directory. An explicit dir wins, then the
// GROMARK_DATA_DIR environment variable, then ~/.gromark.
func NewPaths(dir string) (*Paths, error) {
	root := dir
	if root == "" {
		root = os.Getenv("GROMARK_DATA_DIR")
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		root = filepath.Join(home, ".gromark")
	}
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "runs.db"),
	}, nil
}

// EnsureDirs creates the data directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
