package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/repoloc/pkg/errors"
	"github.com/arthur-debert/repoloc/pkg/pathinfo"
)

// Renderer writes resolution results in the configured format.
type Renderer struct {
	writer  io.Writer
	format  Format
	noColor bool
}

// NewRenderer creates a Renderer writing to w. When noColor is false and w is
// a styled-output-capable terminal, text output is colored.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	if !noColor {
		if f, ok := w.(*os.File); !ok || !colorEnabled(f) {
			noColor = true
		}
	}
	return &Renderer{writer: w, format: format, noColor: noColor}
}

// Render writes info in the renderer's format.
func (r *Renderer) Render(info pathinfo.PathInfo) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(info)
	case FormatXML:
		return r.renderXML(info)
	case FormatYAML:
		return r.renderYAML(info)
	default:
		return r.renderText(info)
	}
}

func (r *Renderer) renderText(info pathinfo.PathInfo) error {
	style := func(s string, st lipgloss.Style) string {
		if r.noColor {
			return s
		}
		return st.Render(s)
	}
	label := func(s string) string {
		return style(fmt.Sprintf("%-10s", s), labelStyle)
	}

	validity := "valid"
	validityStyle := validStyle
	if !info.Valid {
		validity = "unresolved"
		validityStyle = invalidStyle
	}

	lines := []struct {
		label string
		value string
	}{
		{"type", info.Type.String()},
		{"status", style(validity, validityStyle)},
		{"reachable", fmt.Sprintf("%t", info.Reachable)},
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(r.writer, "%s %s\n", label(line.label), line.value); err != nil {
			return errors.Wrap(err, errors.ErrOutputRender, "failed to write output")
		}
	}

	if info.AbsoluteLocation != "" {
		if _, err := fmt.Fprintf(r.writer, "%s %s\n", label("location"), style(info.AbsoluteLocation, locationStyle)); err != nil {
			return errors.Wrap(err, errors.ErrOutputRender, "failed to write output")
		}
	}
	if info.ErrorMessage != "" {
		if _, err := fmt.Fprintf(r.writer, "%s %s\n", label("error"), style(info.ErrorMessage, messageStyle)); err != nil {
			return errors.Wrap(err, errors.ErrOutputRender, "failed to write output")
		}
	}
	return nil
}

func (r *Renderer) renderJSON(info pathinfo.PathInfo) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to encode JSON")
	}
	return nil
}

// yamlInfo mirrors PathInfo with the enum flattened to its name, so YAML
// output matches the JSON field naming.
type yamlInfo struct {
	Valid            bool   `yaml:"valid"`
	Reachable        bool   `yaml:"reachable"`
	Type             string `yaml:"type"`
	AbsoluteLocation string `yaml:"absolute_location"`
	ErrorMessage     string `yaml:"error_message,omitempty"`
}

func (r *Renderer) renderYAML(info pathinfo.PathInfo) error {
	data, err := yaml.Marshal(yamlInfo{
		Valid:            info.Valid,
		Reachable:        info.Reachable,
		Type:             info.Type.String(),
		AbsoluteLocation: info.AbsoluteLocation,
		ErrorMessage:     info.ErrorMessage,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to encode YAML")
	}
	if _, err := r.writer.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to write YAML")
	}
	return nil
}

func (r *Renderer) renderXML(info pathinfo.PathInfo) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("pathinfo")
	root.CreateElement("type").SetText(info.Type.String())
	root.CreateElement("valid").SetText(fmt.Sprintf("%t", info.Valid))
	root.CreateElement("reachable").SetText(fmt.Sprintf("%t", info.Reachable))
	root.CreateElement("absolute_location").SetText(info.AbsoluteLocation)
	if info.ErrorMessage != "" {
		root.CreateElement("error_message").SetText(info.ErrorMessage)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(r.writer); err != nil {
		return errors.Wrap(err, errors.ErrOutputRender, "failed to write XML")
	}
	return nil
}
