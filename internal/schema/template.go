// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema owns the RFP schema template: the default-value tree every
// payload is cloned from, and the shape check that keeps payloads assignable
// to it.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/jordangpape-oss/rfp-parser/pkg/types"
)

//go:embed template.yaml
var defaultTemplate []byte

// ErrInvalidTemplate is returned when a template document cannot be decoded
// into the RFP schema.
var ErrInvalidTemplate = errors.New("invalid schema template")

// Template is an immutable prototype of the RFP schema. The prototype is
// never handed out; New returns an independent deep copy on every call.
type Template struct {
	proto types.RFPSchema
}

// Default returns the template embedded in the binary.
func Default() (*Template, error) {
	return Decode(bytes.NewReader(defaultTemplate))
}

// LoadFile reads a YAML template from path. Keys that are not part of the
// RFP schema are rejected.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema template: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML template document from r.
func Decode(r io.Reader) (*Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var proto types.RFPSchema
	if err := dec.Decode(&proto); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTemplate)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return &Template{proto: proto}, nil
}

// New returns a deep copy of the template. Mutating the result never
// affects the template or any other copy.
func (t *Template) New() types.RFPSchema {
	return clone(t.proto)
}

// Keys returns the template's top-level JSON keys in declaration order.
func (t *Template) Keys() []string {
	return topLevelKeys(t.proto)
}

// JSON returns the template's JSON form decoded into generic values.
func (t *Template) JSON() (map[string]any, error) {
	data, err := json.Marshal(t.proto)
	if err != nil {
		return nil, fmt.Errorf("marshaling template: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding template JSON: %w", err)
	}
	return out, nil
}

func topLevelKeys(s types.RFPSchema) []string {
	rt := reflect.TypeOf(s)
	keys := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name, _, _ := strings.Cut(rt.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

func clone(s types.RFPSchema) types.RFPSchema {
	c := s

	c.CampaignOverview.SecondaryObjectives = cloneStrings(s.CampaignOverview.SecondaryObjectives)
	c.CampaignOverview.KeyMessages = cloneStrings(s.CampaignOverview.KeyMessages)

	c.TargetAudience.Regions = cloneStrings(s.TargetAudience.Regions)
	c.TargetAudience.Interests = cloneStrings(s.TargetAudience.Interests)

	c.InfluencerRequirements.Platforms = cloneStrings(s.InfluencerRequirements.Platforms)
	c.InfluencerRequirements.Tiers = cloneStrings(s.InfluencerRequirements.Tiers)
	c.InfluencerRequirements.ContentFormats = cloneStrings(s.InfluencerRequirements.ContentFormats)
	c.InfluencerRequirements.BrandSafetyNotes = cloneStrings(s.InfluencerRequirements.BrandSafetyNotes)

	if s.Deliverables != nil {
		c.Deliverables = make([]types.Deliverable, len(s.Deliverables))
		copy(c.Deliverables, s.Deliverables)
	}

	c.Timeline.Milestones = cloneStrings(s.Timeline.Milestones)
	c.KPIs = cloneStrings(s.KPIs)
	c.SubmissionRequirements.RequiredContent = cloneStrings(s.SubmissionRequirements.RequiredContent)

	c.MissingOrUnclear.FieldsMissing = cloneStrings(s.MissingOrUnclear.FieldsMissing)
	c.MissingOrUnclear.FieldsPartial = cloneStrings(s.MissingOrUnclear.FieldsPartial)
	c.MissingOrUnclear.QuestionsForClient = cloneStrings(s.MissingOrUnclear.QuestionsForClient)

	return c
}

// cloneStrings copies s, preserving the nil/empty distinction so the JSON
// form of a copy matches the original.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
