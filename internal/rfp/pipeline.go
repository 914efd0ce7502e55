// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

// ErrInputNotFound is returned by Pipeline.Run when the RFP path does not
// exist. Nothing has been written when it is returned.
var ErrInputNotFound = errors.New("RFP file not found")

// Notifier receives user-facing progress notices.
type Notifier interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
	Success(format string, args ...any)
	Plain(format string, args ...any)
}

type nopNotifier struct{}

func (nopNotifier) Info(string, ...any)    {}
func (nopNotifier) Error(string, ...any)   {}
func (nopNotifier) Success(string, ...any) {}
func (nopNotifier) Plain(string, ...any)   {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// Result is everything one pipeline run produced.
type Result struct {
	Payload  *types.Payload
	Markdown string
	Outputs  Outputs
}

// Pipeline sequences load, build, render, and write for one RFP file.
type Pipeline struct {
	Builder  *Builder
	Writer   *Writer
	Notifier Notifier
	Logger   *zap.Logger
}

// Run processes the RFP at path. A missing path is reported through the
// notifier and returned as ErrInputNotFound before any file is written.
// Every other failure is returned as-is; there are no retries.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	notify := notifierOrNop(p.Notifier)
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notify.Error("RFP file not found: %s", path)
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("checking RFP path: %w", err)
	}

	notify.Info("Loading RFP from %s", path)
	text, err := LoadText(path)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded RFP", zap.String("path", path), zap.Int("bytes", len(text)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := p.Builder.Build(path, text)
	if err := p.Builder.Template().CheckShape(payload); err != nil {
		return nil, err
	}
	log.Debug("built payload",
		zap.String("rfp_title", payload.Meta.RFPTitle),
		zap.String("date_received", payload.Meta.DateReceived))

	markdown := RenderSummary(payload)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputs, err := p.Writer.Write(Stem(path), payload, markdown)
	if err != nil {
		return nil, err
	}
	log.Info("wrote RFP summary",
		zap.String("json", outputs.JSON),
		zap.String("markdown", outputs.Markdown))

	notify.Success("Done. Review and update the outputs manually as needed.")
	return &Result{Payload: payload, Markdown: markdown, Outputs: outputs}, nil
}
