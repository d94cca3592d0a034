package toc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadAndBuild reads the JSON document at path and renders its table of
// contents. Unreadable files yield a *FileNotFoundError and invalid JSON a
// *MalformedInputError, in addition to the errors Build returns.
func LoadAndBuild(path string, opts ...Option) (string, error) {
	o := newOptions(opts)
	doc, err := Load(path)
	if err != nil {
		return "", err
	}
	headings, err := collect(doc, o)
	if err != nil {
		return "", err
	}
	return Render(headings, o.indent), nil
}

// LoadAndCollect reads the JSON document at path and returns its ordered
// headings.
func LoadAndCollect(path string, opts ...Option) ([]Heading, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Collect(doc, opts...)
}

// Load reads and decodes the JSON document at path.
func Load(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader decodes a JSON document from r. name identifies the source in
// errors.
func LoadReader(r io.Reader, name string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileNotFoundError{Path: name, Err: err}
	}
	return Parse(data, name)
}

// Parse decodes JSON document text. A leading UTF-8 byte order mark is
// ignored; the rest must be valid UTF-8.
func Parse(data []byte, name string) (any, error) {
	bomLen := 0
	if bytes.HasPrefix(data, utf8BOM) {
		bomLen = len(utf8BOM)
		data = data[bomLen:]
	}

	if !utf8.Valid(data) {
		return nil, &MalformedInputError{Path: name, Err: errors.New("content is not valid UTF-8")}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(name, data, bomLen, err)
	}
	return doc, nil
}

// LoadMarkdown reads a raw markdown file, for scanning a single page.
func LoadMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

// malformed attaches the decoder's position, when it reports one, to a
// MalformedInputError. Offsets count from the start of the file.
func malformed(name string, data []byte, bomLen int, err error) error {
	merr := &MalformedInputError{Path: name, Err: err}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return merr
	}

	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}
	before := data[:offset]
	merr.Offset = int64(offset + bomLen)
	merr.Line = bytes.Count(before, []byte{'\n'}) + 1
	merr.Column = offset - (bytes.LastIndexByte(before, '\n') + 1)
	if merr.Column < 1 {
		merr.Column = 1
	}
	return merr
}
