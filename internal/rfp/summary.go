// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

const stubDisclaimer = "> Parsing logic is a stub for v1. Update fields manually or connect AI parsing in a future iteration."

// RenderSummary projects p into the fixed Markdown summary layout. Missing
// fields are listed before partial ones, each in payload order.
func RenderSummary(p *types.Payload) string {
	objective := p.CampaignOverview.PrimaryObjective
	if strings.TrimSpace(objective) == "" {
		objective = "TBD"
	}

	lines := []string{
		"# RFP Summary: " + p.Meta.RFPTitle,
		"",
		stubDisclaimer,
		"",
		"## Campaign Overview",
		"- Campaign Name: " + p.CampaignOverview.CampaignName,
		"- Primary Objective: " + objective,
		"",
		"## Missing or Unclear",
	}
	for _, item := range p.MissingOrUnclear.FieldsMissing {
		lines = append(lines, "- "+item)
	}
	for _, item := range p.MissingOrUnclear.FieldsPartial {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts a Markdown summary into an HTML fragment.
func RenderHTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}
