package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// aferoFS implements FS using afero.
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps an afero filesystem. Only an OsFs-backed filesystem counts
// as real; anything else (MemMapFs, read-only wrappers around it, and so on)
// is treated as a synthetic namespace.
func NewAferoFS(backing afero.Fs) FS {
	return &aferoFS{fs: backing}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) IsReal() bool {
	_, ok := a.fs.(*afero.OsFs)
	return ok
}

func (a *aferoFS) Canonicalize(name string) (string, error) {
	if a.IsReal() {
		return canonicalize(name)
	}
	// Synthetic filesystems have no symlinks to resolve; absolute + clean is
	// as canonical as it gets.
	return filepath.Abs(name)
}
