// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jordangpape-oss/rfp-parser/internal/console"
	"github.com/jordangpape-oss/rfp-parser/internal/logging"
	"github.com/jordangpape-oss/rfp-parser/internal/rfp"
	"github.com/jordangpape-oss/rfp-parser/internal/schema"
	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

// exitError carries a specific process exit code out of a command. The
// message has already been shown to the user.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Level, cfg.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	err = parseRFP(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), logger)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		cmd.SilenceErrors = true
	}
	return err
}

// loadConfig reads the merged flag, environment, and config-file settings.
func loadConfig() (types.ParserConfig, error) {
	var cfg types.ParserConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Dir == "" {
		cfg.Dir = rfp.DefaultOutputDir
	}
	return cfg, nil
}

// loadTemplate returns the configured schema template, or the built-in one.
func loadTemplate(path string) (*schema.Template, error) {
	if path == "" {
		return schema.Default()
	}
	return schema.LoadFile(path)
}

// parseRFP runs the pipeline for one RFP path, writing notices to out. A
// missing input is not an error unless cfg.MissingExitCode is non-zero.
func parseRFP(ctx context.Context, cfg types.ParserConfig, path string, out io.Writer, logger *zap.Logger) error {
	tmpl, err := loadTemplate(cfg.SchemaTemplate)
	if err != nil {
		return err
	}
	if cfg.SchemaTemplate != "" {
		logger.Debug("using schema template", zap.String("path", cfg.SchemaTemplate))
	}

	printer := console.New(out, cfg.NoColor)
	pipeline := &rfp.Pipeline{
		Builder:  rfp.NewBuilder(tmpl),
		Writer:   &rfp.Writer{Dir: cfg.Dir, HTML: cfg.HTML, Notifier: printer},
		Notifier: printer,
		Logger:   logger,
	}

	_, err = pipeline.Run(ctx, path)
	if errors.Is(err, rfp.ErrInputNotFound) {
		if cfg.MissingExitCode == 0 {
			return nil
		}
		return &exitError{code: cfg.MissingExitCode, err: err}
	}
	return err
}
