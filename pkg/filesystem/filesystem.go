package filesystem

import "io/fs"

// FS is the filesystem surface the resolver depends on.
type FS interface {
	// Stat returns file info for name, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// Canonicalize returns the canonical absolute form of name: absolute,
	// cleaned, with symlinks in the existing portion resolved.
	Canonicalize(name string) (string, error)

	// IsReal reports whether entries of this filesystem are backed by real
	// storage, as opposed to a synthetic or in-memory namespace. Locations
	// on a non-real filesystem are never reported as resolved files.
	IsReal() bool
}
