package toc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema only requires the pages key. Page contents are checked
// leniently by decodePage.
const documentSchema = `{
	"type": "object",
	"required": ["pages"]
}`

var documentValidator = jsonschema.MustCompileString("document.schema.json", documentSchema)

// Page is one OCR page: its markdown text and index.
type Page struct {
	Markdown  string
	PageIndex int
}

var (
	errPageNotObject   = errors.New("page is not an object")
	errMarkdownType    = errors.New("markdown is not a string")
	errPageIndexNotInt = errors.New("page_index is not an integer")
)

// decodeDocument checks the document shape and returns its usable pages.
// Pages that cannot be read are logged and skipped.
func decodeDocument(doc any, logger *slog.Logger) ([]Page, int, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, 0, &MissingFieldError{Field: "pages"}
	}
	if err := documentValidator.Validate(obj); err != nil {
		return nil, 0, &MissingFieldError{Field: "pages", Err: err}
	}

	rawPages, ok := obj["pages"].([]any)
	if !ok {
		return nil, 0, &MalformedInputError{
			Err: fmt.Errorf("%q must be an array, got %s", "pages", jsonTypeName(obj["pages"])),
		}
	}

	pages := make([]Page, 0, len(rawPages))
	skipped := 0
	for i, raw := range rawPages {
		page, err := decodePage(raw)
		if err != nil {
			logger.Debug("skipping page", "position", i, "reason", err)
			skipped++
			continue
		}
		pages = append(pages, page)
	}

	return pages, skipped, nil
}

// decodePage reads the optional markdown and page_index fields of a page.
func decodePage(raw any) (Page, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Page{}, errPageNotObject
	}

	var page Page
	if v, ok := obj["markdown"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Page{}, fmt.Errorf("%w (got %s)", errMarkdownType, jsonTypeName(v))
		}
		page.Markdown = s
	}
	if v, ok := obj["page_index"]; ok && v != nil {
		n, ok := intValue(v)
		if !ok {
			return Page{}, fmt.Errorf("%w (got %v)", errPageIndexNotInt, v)
		}
		page.PageIndex = n
	}

	return page, nil
}

// intValue accepts the integer representations produced by encoding/json
// and by callers building documents by hand.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number, int, int32, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
