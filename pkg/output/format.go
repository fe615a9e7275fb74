// Package output renders resolution results for terminals and for machine
// consumption.
package output

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/repoloc/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders human-readable terminal output
	FormatText Format = iota
	// FormatJSON renders machine-readable JSON output
	FormatJSON
	// FormatXML renders machine-readable XML output
	FormatXML
	// FormatYAML renders machine-readable YAML output
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "plain", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, errors.Newf(errors.ErrFormatInvalid, "unknown format: %s", s)
	}
}

// colorEnabled determines whether styled output is appropriate for the given
// file, honoring NO_COLOR, pipes/redirection, and terminal capabilities.
func colorEnabled(output *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}
