package toc

import (
	"log/slog"
	"sort"
	"strings"
)

// DefaultIndent is the number of spaces per heading level.
const DefaultIndent = 2

// Option configures Build, Collect and the loader functions.
type Option func(*options)

type options struct {
	indent int
	scan   []ScanOption
	logger *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithIndent sets the number of spaces per heading level. Negative values
// are treated as zero.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

// WithScanOptions passes options through to Scan for every page.
func WithScanOptions(opts ...ScanOption) Option {
	return func(o *options) { o.scan = append(o.scan, opts...) }
}

// WithLogger sets the logger used for skipped pages and build summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Build renders the table of contents of a decoded JSON document.
//
// doc is the value produced by decoding the document JSON into an any. It
// must be an object with a "pages" key, otherwise the error matches
// ErrMissingField.
func Build(doc any, opts ...Option) (string, error) {
	o := newOptions(opts)
	headings, err := collect(doc, o)
	if err != nil {
		return "", err
	}
	return Render(headings, o.indent), nil
}

// Collect returns every heading of the document ordered by page index.
// Headings from the same page, and from pages sharing an index, keep the
// order in which they were read.
func Collect(doc any, opts ...Option) ([]Heading, error) {
	return collect(doc, newOptions(opts))
}

func collect(doc any, o *options) ([]Heading, error) {
	pages, skipped, err := decodeDocument(doc, o.logger)
	if err != nil {
		return nil, err
	}

	var headings []Heading
	for _, page := range pages {
		headings = append(headings, Scan(page.Markdown, page.PageIndex, o.scan...)...)
	}

	// Level is not part of the key.
	sort.SliceStable(headings, func(i, j int) bool {
		return headings[i].PageIndex < headings[j].PageIndex
	})

	o.logger.Debug("collected headings",
		"pages", len(pages),
		"skipped_pages", skipped,
		"headings", len(headings),
	)

	return headings, nil
}

// Render formats headings as an indented outline, one "- title" line per
// heading, without a trailing newline.
func Render(headings []Heading, indent int) string {
	if indent < 0 {
		indent = 0
	}

	var sb strings.Builder
	for i, h := range headings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		depth := h.Level - 1
		if depth < 0 {
			depth = 0
		}
		sb.WriteString(strings.Repeat(" ", depth*indent))
		sb.WriteString("- ")
		sb.WriteString(h.Title)
	}
	return sb.String()
}
