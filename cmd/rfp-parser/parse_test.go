// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

func testConfig(outDir string) types.ParserConfig {
	cfg := types.ParserConfig{NoColor: true}
	cfg.Dir = outDir
	return cfg
}

func TestParseRFP(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "brief.txt")
	require.NoError(t, os.WriteFile(input, []byte("Hello world"), 0o644))
	outDir := filepath.Join(dir, "outputs", "rfp_summaries")

	var out bytes.Buffer
	err := parseRFP(context.Background(), testConfig(outDir), input, &out, zap.NewNop())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "brief.json"))
	assert.FileExists(t, filepath.Join(outDir, "brief.md"))
	assert.NoFileExists(t, filepath.Join(outDir, "brief.html"))
	assert.Contains(t, out.String(), "Loading RFP from "+input)
	assert.Contains(t, out.String(), "Done. Review and update the outputs manually as needed.")
}

func TestParseRFPMissingInput(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		wantCode int
		wantErr  bool
	}{
		{name: "graceful by default", exitCode: 0},
		{name: "configured exit code", exitCode: 3, wantCode: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			outDir := filepath.Join(dir, "outputs", "rfp_summaries")
			cfg := testConfig(outDir)
			cfg.MissingExitCode = tt.exitCode

			var out bytes.Buffer
			err := parseRFP(context.Background(), cfg, filepath.Join(dir, "missing.txt"), &out, zap.NewNop())

			assert.Contains(t, out.String(), "RFP file not found:")
			assert.NoDirExists(t, outDir)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var exitErr *exitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.code)
		})
	}
}

func TestParseRFPCustomTemplateAndHTML(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "spring.txt")
	require.NoError(t, os.WriteFile(input, []byte("Spring launch"), 0o644))
	tmplPath := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(tmplPath, []byte(`
campaign_overview:
  primary_objective: Awareness
  secondary_objectives: []
missing_or_unclear:
  fields_missing: []
  fields_partial: []
`), 0o644))

	outDir := filepath.Join(dir, "out")
	cfg := testConfig(outDir)
	cfg.SchemaTemplate = tmplPath
	cfg.HTML = true

	var out bytes.Buffer
	require.NoError(t, parseRFP(context.Background(), cfg, input, &out, zap.NewNop()))

	md, err := os.ReadFile(filepath.Join(outDir, "spring.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "- Primary Objective: Awareness")
	assert.FileExists(t, filepath.Join(outDir, "spring.html"))
}

func TestParseRFPBadTemplate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "brief.txt")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))
	tmplPath := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(tmplPath, []byte("unknown_section: {}\n"), 0o644))

	cfg := testConfig(filepath.Join(dir, "out"))
	cfg.SchemaTemplate = tmplPath

	err := parseRFP(context.Background(), cfg, input, &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRootCommandRequiresOneArgument(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a.txt", "b.txt"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"a.txt"}))
}
