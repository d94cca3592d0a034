// Package toc builds a table of contents from OCR output.
//
// # Overview
//
// OCR pipelines emit one JSON document per scanned file. Each page carries
// the recognised text as markdown together with its page index:
//
//	{
//	  "pages": [
//	    {"markdown": "# Title\n...", "page_index": 0},
//	    {"markdown": "## Section\n...", "page_index": 1}
//	  ]
//	}
//
// The package scans every page for ATX headings of levels 1 to 4, orders
// them by page index and renders an indented outline:
//
//	- Title
//	  - Section
//
// # Usage
//
// From a file:
//
//	out, err := toc.LoadAndBuild("scan_ocr.json", toc.WithIndent(2))
//
// From an already decoded document:
//
//	var doc any
//	_ = json.Unmarshal(data, &doc)
//	out, err := toc.Build(doc)
//
// Errors match ErrMissingField, ErrFileNotFound or ErrMalformedInput with
// errors.Is. The typed errors carry the field, path or parse position.
//
// # Components
//
//   - scanner.go: Scan, the per-page heading scanner
//   - document.go: document shape check and page decoding
//   - builder.go: Build, Collect and Render
//   - render.go: text, JSON and YAML output
//   - loader.go: file loading and error translation
package toc
