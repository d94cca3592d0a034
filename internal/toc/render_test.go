package toc

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	headings := []Heading{
		{Level: 1, Title: "Intro & Scope", PageIndex: 0},
		{Level: 2, Title: "Background", PageIndex: 1},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatText, headings, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "- Intro & Scope\n  - Background\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("text without headings writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatText, nil, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatJSON, headings, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{`"level": 1`, `"title": "Intro & Scope"`, `"page_index": 1`} {
			if !strings.Contains(out, want) {
				t.Errorf("JSON output %q missing %s", out, want)
			}
		}
	})

	t.Run("json without headings", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatJSON, nil, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected empty array, got %q", buf.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, FormatYAML, headings, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"- level: 1", "title: Intro & Scope", "page_index: 1"} {
			if !strings.Contains(out, want) {
				t.Errorf("YAML output %q missing %s", out, want)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, Format("xml"), headings, 2); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
