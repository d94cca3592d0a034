package toc

import (
	"regexp"
	"strings"
)

// Heading is a markdown heading found on a page.
type Heading struct {
	Level     int    `json:"level" yaml:"level"`
	Title     string `json:"title" yaml:"title"`
	PageIndex int    `json:"page_index" yaml:"page_index"`
}

// MaxLevel is the deepest heading level that is recognised. Lines with more
// leading '#' characters are not headings.
const MaxLevel = 4

var (
	// The separator class mirrors unicode.IsSpace so that it agrees with
	// strings.TrimSpace and strings.Fields.
	headingPattern   = regexp.MustCompile(`^(#{1,4})[\s\v\p{Z}\x{85}]+(.+)$`)
	codeFencePattern = regexp.MustCompile("^```")
)

// ScanOption adjusts how Scan reads page text.
type ScanOption func(*scanConfig)

type scanConfig struct {
	skipCodeBlocks bool
	plainTitles    bool
}

// SkipCodeBlocks ignores lines inside ``` fenced code blocks.
func SkipCodeBlocks() ScanOption {
	return func(c *scanConfig) { c.skipCodeBlocks = true }
}

// PlainTitles reduces inline markdown in titles (emphasis, code spans,
// links) to its text.
func PlainTitles() ScanOption {
	return func(c *scanConfig) { c.plainTitles = true }
}

// Scan returns the headings found in one page of markdown text, in line
// order. Every heading carries pageIndex.
func Scan(text string, pageIndex int, opts ...ScanOption) []Heading {
	var cfg scanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var headings []Heading
	inCodeBlock := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if cfg.skipCodeBlocks {
			if codeFencePattern.MatchString(trimmed) {
				inCodeBlock = !inCodeBlock
				continue
			}
			if inCodeBlock {
				continue
			}
		}

		matches := headingPattern.FindStringSubmatch(trimmed)
		if matches == nil {
			continue
		}

		title := collapseSpace(matches[2])
		if cfg.plainTitles {
			title = collapseSpace(plainText(title))
		}
		// A marker with nothing after it is not a heading.
		if title == "" {
			continue
		}

		headings = append(headings, Heading{
			Level:     len(matches[1]),
			Title:     title,
			PageIndex: pageIndex,
		})
	}

	return headings
}

// collapseSpace trims s and replaces every internal run of whitespace with a
// single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
