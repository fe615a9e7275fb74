// Package filesystem provides the filesystem access layer used by the
// resolver. It exposes a small FS interface covering existence checks and
// canonical-path resolution, plus the distinction between entries backed by
// real storage and entries that live in a synthetic namespace (such as an
// in-memory filesystem used in tests).
package filesystem
