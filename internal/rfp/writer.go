// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

// DefaultOutputDir is where summaries are written unless configured otherwise.
const DefaultOutputDir = "outputs/rfp_summaries"

// Outputs holds the paths of the files a Writer produced. HTML is empty
// unless the preview was enabled.
type Outputs struct {
	JSON     string
	Markdown string
	HTML     string
}

// Writer persists payloads and summaries under Dir.
type Writer struct {
	// Dir is the output directory, created on demand.
	Dir string

	// HTML also writes a rendered <base>.html preview of the summary.
	HTML bool

	// Notifier receives one confirmation per file written. May be nil.
	Notifier Notifier
}

// Write stores <base>.json and <base>.md under w.Dir, overwriting existing
// files. The writes are independent: if the Markdown write fails the JSON
// file is left in place.
func (w *Writer) Write(base string, p *types.Payload, markdown string) (Outputs, error) {
	dir := w.Dir
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Outputs{}, fmt.Errorf("creating output directory: %w", err)
	}

	notify := notifierOrNop(w.Notifier)
	out := Outputs{
		JSON:     filepath.Join(dir, base+".json"),
		Markdown: filepath.Join(dir, base+".md"),
	}

	data, err := EncodePayload(p)
	if err != nil {
		return Outputs{}, err
	}
	if err := os.WriteFile(out.JSON, data, 0o644); err != nil {
		return Outputs{}, fmt.Errorf("writing %s: %w", out.JSON, err)
	}
	notify.Plain("Saved JSON to %s", out.JSON)

	if err := os.WriteFile(out.Markdown, []byte(markdown), 0o644); err != nil {
		return out, fmt.Errorf("writing %s: %w", out.Markdown, err)
	}
	notify.Plain("Saved Markdown to %s", out.Markdown)

	if w.HTML {
		html, err := RenderHTML(markdown)
		if err != nil {
			return out, err
		}
		htmlPath := filepath.Join(dir, base+".html")
		if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
			return out, fmt.Errorf("writing %s: %w", htmlPath, err)
		}
		out.HTML = htmlPath
		notify.Plain("Saved HTML preview to %s", out.HTML)
	}

	return out, nil
}

// EncodePayload serializes p as UTF-8 JSON with two-space indentation.
// HTML-significant characters in the raw text are written as-is.
func EncodePayload(p *types.Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return buf.Bytes(), nil
}
