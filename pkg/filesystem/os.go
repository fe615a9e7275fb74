package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// osFS implements FS directly on top of the os package.
type osFS struct{}

// OS returns the real operating-system filesystem.
func OS() FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) IsReal() bool {
	return true
}

func (osFS) Canonicalize(name string) (string, error) {
	return canonicalize(name)
}

// canonicalize makes name absolute and resolves symlinks. When the full path
// does not exist it resolves the deepest existing ancestor and reattaches the
// remaining components, so paths through symlinked directories still come out
// canonical.
func canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}

	// Fast path: the whole path exists.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	current := abs
	var remainder []string

	for {
		if _, err := os.Stat(current); err == nil {
			resolved, err := filepath.EvalSymlinks(current)
			if err != nil {
				resolved = current
			}
			// Remainder was collected bottom-up.
			for i := len(remainder) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, remainder[i])
			}
			return resolved, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		remainder = append(remainder, filepath.Base(current))
		current = parent
	}
}
