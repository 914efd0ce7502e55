// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the rfp-parser pipeline:
// the RFP schema, the per-run payload, and command configuration.
package types

// RFPMeta identifies the RFP document and where it came from.
type RFPMeta struct {
	// RFPTitle is the document title. The stub parser uses the filename stem.
	RFPTitle string `json:"rfp_title" yaml:"rfp_title"`

	// RFPSource is the path the RFP was read from.
	RFPSource string `json:"rfp_source" yaml:"rfp_source"`

	// ClientName is the issuing brand or agency.
	ClientName string `json:"client_name" yaml:"client_name"`

	// ContactName is the point of contact named in the RFP.
	ContactName string `json:"contact_name" yaml:"contact_name"`

	// ContactEmail is the contact's email address.
	ContactEmail string `json:"contact_email" yaml:"contact_email"`

	// DateReceived is the ingestion date in YYYY-MM-DD format.
	DateReceived string `json:"date_received" yaml:"date_received"`

	// ResponseDeadline is the proposal due date as written in the RFP.
	ResponseDeadline string `json:"response_deadline" yaml:"response_deadline"`
}

// CampaignOverview summarizes what the campaign is for.
type CampaignOverview struct {
	CampaignName        string   `json:"campaign_name" yaml:"campaign_name"`
	Brand               string   `json:"brand" yaml:"brand"`
	ProductOrService    string   `json:"product_or_service" yaml:"product_or_service"`
	PrimaryObjective    string   `json:"primary_objective" yaml:"primary_objective"`
	SecondaryObjectives []string `json:"secondary_objectives" yaml:"secondary_objectives"`
	KeyMessages         []string `json:"key_messages" yaml:"key_messages"`
}

// TargetAudience describes who the campaign should reach.
type TargetAudience struct {
	Demographics string   `json:"demographics" yaml:"demographics"`
	Regions      []string `json:"regions" yaml:"regions"`
	Interests    []string `json:"interests" yaml:"interests"`
}

// InfluencerRequirements lists constraints on the creators the client wants.
type InfluencerRequirements struct {
	Platforms        []string `json:"platforms" yaml:"platforms"`
	Tiers            []string `json:"tiers" yaml:"tiers"`
	NumberOfCreators string   `json:"number_of_creators" yaml:"number_of_creators"`
	MinimumFollowers string   `json:"minimum_followers" yaml:"minimum_followers"`
	ContentFormats   []string `json:"content_formats" yaml:"content_formats"`
	ExclusivityTerms string   `json:"exclusivity_terms" yaml:"exclusivity_terms"`
	UsageRights      string   `json:"usage_rights" yaml:"usage_rights"`
	BrandSafetyNotes []string `json:"brand_safety_notes" yaml:"brand_safety_notes"`
}

// Deliverable is one content item the agency is expected to produce.
type Deliverable struct {
	Platform    string `json:"platform" yaml:"platform"`
	Format      string `json:"format" yaml:"format"`
	Quantity    string `json:"quantity" yaml:"quantity"`
	Description string `json:"description" yaml:"description"`
}

// Budget holds the commercial envelope of the RFP.
type Budget struct {
	Total    string `json:"total" yaml:"total"`
	Currency string `json:"currency" yaml:"currency"`
	Notes    string `json:"notes" yaml:"notes"`
}

// Timeline holds campaign dates as written in the RFP.
type Timeline struct {
	StartDate  string   `json:"start_date" yaml:"start_date"`
	EndDate    string   `json:"end_date" yaml:"end_date"`
	Milestones []string `json:"milestones" yaml:"milestones"`
}

// SubmissionRequirements describes how the proposal must be delivered.
type SubmissionRequirements struct {
	Format          string   `json:"format" yaml:"format"`
	Deadline        string   `json:"deadline" yaml:"deadline"`
	RequiredContent []string `json:"required_content" yaml:"required_content"`
}

// MissingOrUnclear collects human-readable notes about gaps in the payload.
// Entries are appended in order and never removed.
type MissingOrUnclear struct {
	FieldsMissing      []string `json:"fields_missing" yaml:"fields_missing"`
	FieldsPartial      []string `json:"fields_partial" yaml:"fields_partial"`
	QuestionsForClient []string `json:"questions_for_client" yaml:"questions_for_client"`
}

// RFPSchema is the canonical shape of a structured RFP. The zero-filled
// defaults live in the schema template; payloads are deep clones of it.
type RFPSchema struct {
	Meta                   RFPMeta                `json:"meta" yaml:"meta"`
	CampaignOverview       CampaignOverview       `json:"campaign_overview" yaml:"campaign_overview"`
	TargetAudience         TargetAudience         `json:"target_audience" yaml:"target_audience"`
	InfluencerRequirements InfluencerRequirements `json:"influencer_requirements" yaml:"influencer_requirements"`
	Deliverables           []Deliverable          `json:"deliverables" yaml:"deliverables"`
	Budget                 Budget                 `json:"budget" yaml:"budget"`
	Timeline               Timeline               `json:"timeline" yaml:"timeline"`
	KPIs                   []string               `json:"kpis" yaml:"kpis"`
	SubmissionRequirements SubmissionRequirements `json:"submission_requirements" yaml:"submission_requirements"`
	MissingOrUnclear       MissingOrUnclear       `json:"missing_or_unclear" yaml:"missing_or_unclear"`
}

// Payload is the per-run structured output: the schema fields at the top
// level plus the verbatim input text kept for manual reference.
type Payload struct {
	RFPSchema `yaml:",inline"`

	// RawRFPText is the full input text. It is not part of the schema.
	RawRFPText string `json:"raw_rfp_text" yaml:"raw_rfp_text"`
}
