// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rfp turns a plain-text RFP into a structured payload and a Markdown
// summary. Parsing is a stub: the payload is the schema template with
// metadata filled in and the raw text attached for manual follow-up.
package rfp

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when an RFP file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// LoadText reads the full content of the RFP file at path. The text is
// returned verbatim; no newline or BOM normalization is applied.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading RFP: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding %s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}
