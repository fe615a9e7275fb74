// Package pathinfo defines the result type returned by location resolution.
// A PathInfo describes what a location string turned out to be: an HTTP(S)
// URL, an existing filesystem path, or nothing recognizable.
package pathinfo

import "fmt"

// PathType classifies a resolved location.
type PathType int

const (
	// TypeUnknown means the input could not be resolved to a URL or an
	// existing filesystem path.
	TypeUnknown PathType = iota

	// TypeHTTP means the input resolved to an absolute http or https URL.
	TypeHTTP

	// TypeFile means the input resolved to an existing path on a real
	// filesystem.
	TypeFile
)

// String returns the string representation of the path type.
func (t PathType) String() string {
	switch t {
	case TypeHTTP:
		return "http"
	case TypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so that PathType serializes
// as its name rather than a bare integer.
func (t PathType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PathType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "http":
		*t = TypeHTTP
	case "file":
		*t = TypeFile
	case "unknown":
		*t = TypeUnknown
	default:
		return fmt.Errorf("unknown path type: %s", text)
	}
	return nil
}

// PathInfo is the result of resolving a location string. It is a plain value
// constructed once per resolution; callers branch on Valid and Type rather
// than on errors.
type PathInfo struct {
	// Valid is true when the input resolved to a recognized location: a
	// well-formed HTTP(S) URL, or a filesystem path that exists.
	Valid bool `json:"valid"`

	// Reachable is true when a requested liveness probe succeeded. It is
	// always false when no probe was requested. For filesystem locations it
	// mirrors existence.
	Reachable bool `json:"reachable"`

	// Type is the classification outcome.
	Type PathType `json:"type"`

	// AbsoluteLocation is the canonical absolute URL or filesystem path.
	// Empty when Type is TypeUnknown.
	AbsoluteLocation string `json:"absolute_location"`

	// ErrorMessage holds a human-readable diagnostic when resolution or the
	// reachability probe failed. Empty otherwise.
	ErrorMessage string `json:"error_message,omitempty"`
}

// String returns a compact single-line summary, useful in logs.
func (p PathInfo) String() string {
	return fmt.Sprintf("PathInfo{type=%s valid=%t reachable=%t location=%q}",
		p.Type, p.Valid, p.Reachable, p.AbsoluteLocation)
}
