// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "brief.txt", want: "brief"},
		{path: "inputs/rfps/brief.txt", want: "brief"},
		{path: "client.draft.v2.txt", want: "client.draft.v2"},
		{path: "no-extension", want: "no-extension"},
		{path: ".hidden", want: ".hidden"},
		{path: "archive.tar.gz", want: "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t)
	p := b.Build("inputs/client.draft.v2.txt", "Launch our spring line.")

	assert.Equal(t, "client.draft.v2", p.Meta.RFPTitle)
	assert.Equal(t, "client.draft.v2", p.CampaignOverview.CampaignName)
	assert.Equal(t, "inputs/client.draft.v2.txt", p.Meta.RFPSource)
	assert.Equal(t, "2026-03-04", p.Meta.DateReceived)
	assert.Equal(t, []string{AdvisoryMissing}, p.MissingOrUnclear.FieldsMissing)
	assert.Equal(t, []string{AdvisoryPartial}, p.MissingOrUnclear.FieldsPartial)
	assert.Equal(t, "Launch our spring line.", p.RawRFPText)
	assert.Empty(t, p.CampaignOverview.PrimaryObjective)
}

func TestBuildEmptyText(t *testing.T) {
	p := newTestBuilder(t).Build("empty.txt", "")
	assert.Equal(t, "", p.RawRFPText)
	assert.Equal(t, "empty", p.Meta.RFPTitle)
}

func TestBuildDoesNotLeakBetweenPayloads(t *testing.T) {
	b := newTestBuilder(t)

	first := b.Build("a.txt", "a")
	first.MissingOrUnclear.FieldsMissing = append(first.MissingOrUnclear.FieldsMissing, "extra")
	first.KPIs = append(first.KPIs, "engagement rate")

	second := b.Build("b.txt", "b")
	assert.Equal(t, []string{AdvisoryMissing}, second.MissingOrUnclear.FieldsMissing)
	assert.Empty(t, second.KPIs)

	pristine := b.Template().New()
	assert.Empty(t, pristine.MissingOrUnclear.FieldsMissing)
	assert.Empty(t, pristine.Meta.RFPTitle)
}

func TestBuildAdvisoriesAreStableAcrossRuns(t *testing.T) {
	b := newTestBuilder(t)
	first := b.Build("brief.txt", "x")
	second := b.Build("brief.txt", "x")
	assert.Equal(t, first.MissingOrUnclear, second.MissingOrUnclear)
}

func TestBuildConformsToTemplateShape(t *testing.T) {
	b := newTestBuilder(t)
	p := b.Build("brief.txt", "Hello world")
	require.NoError(t, b.Template().CheckShape(p))
}
