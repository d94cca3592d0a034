package toc

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Heading
	}{
		{"single h1", "# Title", []Heading{{Level: 1, Title: "Title"}}},
		{"level five ignored", "##### Too Deep", nil},
		{"level six ignored", "###### Deeper", nil},
		{"marker only", "##    ", nil},
		{"bare marker", "#", nil},
		{"no separator", "#Title", nil},
		{"collapse and trim", "###   Multi   space   Title  ", []Heading{{Level: 3, Title: "Multi space Title"}}},
		{"tabs collapsed", "## Tab\tseparated\t\ttitle", []Heading{{Level: 2, Title: "Tab separated title"}}},
		{"tab separator", "#\tTabbed", []Heading{{Level: 1, Title: "Tabbed"}}},
		{"non-breaking space separator", "#\u00a0Title", []Heading{{Level: 1, Title: "Title"}}},
		{"level four", "#### Four", []Heading{{Level: 4, Title: "Four"}}},
		{"indented line", "   ## Indented  ", []Heading{{Level: 2, Title: "Indented"}}},
		{"mid-line marker", "text # not a heading", nil},
		{"plain text", "Just some text.", nil},
		{"empty", "", nil},
		{"hashes kept in title", "# C# and F#", []Heading{{Level: 1, Title: "C# and F#"}}},
		{"inline markup kept", "## **Bold** title", []Heading{{Level: 2, Title: "**Bold** title"}}},
		{"multibyte title", "# 第一章\u3000概要", []Heading{{Level: 1, Title: "第一章 概要"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.text, 0)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Scan(%q) = %+v, want %+v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestScanMultipleLines(t *testing.T) {
	text := "intro text\n# Chapter 1\nbody\n## Section 1.1\r\n\n### Section 1.1.1\n#### Detail\n##### Ignored\n# Chapter 2"

	result := Scan(text, 7)

	expected := []Heading{
		{Level: 1, Title: "Chapter 1", PageIndex: 7},
		{Level: 2, Title: "Section 1.1", PageIndex: 7},
		{Level: 3, Title: "Section 1.1.1", PageIndex: 7},
		{Level: 4, Title: "Detail", PageIndex: 7},
		{Level: 1, Title: "Chapter 2", PageIndex: 7},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Scan() = %+v, want %+v", result, expected)
	}
}

func TestScanKeepsOutOfOrderLevels(t *testing.T) {
	result := Scan("### Deep first\n# Then top", 0)

	if len(result) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(result))
	}
	if result[0].Level != 3 || result[1].Level != 1 {
		t.Errorf("expected levels [3 1], got [%d %d]", result[0].Level, result[1].Level)
	}
}

func TestScanSkipCodeBlocks(t *testing.T) {
	text := "# Before\n```python\n# comment in code\n```\n# After"

	t.Run("default scans code blocks", func(t *testing.T) {
		result := Scan(text, 0)
		if len(result) != 3 {
			t.Errorf("expected 3 headings, got %d: %+v", len(result), result)
		}
	})

	t.Run("skip code blocks", func(t *testing.T) {
		result := Scan(text, 0, SkipCodeBlocks())
		expected := []Heading{
			{Level: 1, Title: "Before"},
			{Level: 1, Title: "After"},
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Scan() = %+v, want %+v", result, expected)
		}
	})
}

func TestScanPlainTitles(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Heading
	}{
		{"emphasis and code", "# **Bold** and `code`", []Heading{{Level: 1, Title: "Bold and code"}}},
		{"link", "## [Link](https://example.com) text", []Heading{{Level: 2, Title: "Link text"}}},
		{"ordered list syntax kept", "# 1. Introduction", []Heading{{Level: 1, Title: "1. Introduction"}}},
		{"closing hashes removed", "## Summary ##", []Heading{{Level: 2, Title: "Summary"}}},
		{"plain title unchanged", "### Results", []Heading{{Level: 3, Title: "Results"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.text, 0, PlainTitles())
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Scan(%q) = %+v, want %+v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"a", "a"},
		{"  a  b  ", "a b"},
		{"a\t\n b", "a b"},
	}

	for _, tt := range tests {
		if result := collapseSpace(tt.input); result != tt.expected {
			t.Errorf("collapseSpace(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
