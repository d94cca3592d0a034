package toc

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects how Write prints headings.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (want text, json or yaml)", s)
	}
}

// Write prints headings to w. Text output is the Render outline followed by
// a newline; JSON and YAML output is a flat list of heading records.
func Write(w io.Writer, format Format, headings []Heading, indent int) error {
	if headings == nil {
		headings = []Heading{}
	}

	switch format {
	case FormatText, "":
		out := Render(headings, indent)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(headings)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(headings)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
