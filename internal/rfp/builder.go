// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rfp

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jordangpape-oss/rfp-parser/internal/schema"
	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

// Advisory notes appended to every payload until real extraction exists.
const (
	AdvisoryMissing = "Automated parsing not yet implemented; please fill fields manually for now."
	AdvisoryPartial = "Raw RFP text captured for reference, but structured extraction is pending."
)

const dateLayout = "2006-01-02"

// Builder creates payloads from the schema template.
type Builder struct {
	tmpl *schema.Template

	// Now supplies the ingestion date. Defaults to time.Now.
	Now func() time.Time
}

// NewBuilder returns a Builder cloning from tmpl.
func NewBuilder(tmpl *schema.Template) *Builder {
	return &Builder{tmpl: tmpl, Now: time.Now}
}

// Template returns the template payloads are cloned from.
func (b *Builder) Template() *schema.Template {
	return b.tmpl
}

// Build returns a fresh payload for the RFP at path with content text.
// It performs no I/O.
func (b *Builder) Build(path, text string) *types.Payload {
	stem := Stem(path)
	p := &types.Payload{RFPSchema: b.tmpl.New()}

	p.Meta.RFPTitle = stem
	p.Meta.RFPSource = path
	p.Meta.DateReceived = b.now().Format(dateLayout)

	p.MissingOrUnclear.FieldsMissing = append(p.MissingOrUnclear.FieldsMissing, AdvisoryMissing)
	p.MissingOrUnclear.FieldsPartial = append(p.MissingOrUnclear.FieldsPartial, AdvisoryPartial)

	p.CampaignOverview.CampaignName = stem
	p.RawRFPText = text
	return p
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// Stem returns the file name of path without its final extension:
// "client.draft.v2.txt" yields "client.draft.v2". A name that is only an
// extension, such as ".env", is returned unchanged.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}
