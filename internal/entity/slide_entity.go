package entity

// SlideRole is the structural role the extraction step assigns to a slide.
type SlideRole string

const (
	SlideRoleHook           SlideRole = "HOOK"
	SlideRoleTip            SlideRole = "TIP"
	SlideRoleAppMention     SlideRole = "APP_MENTION"
	SlideRoleEmotionalClose SlideRole = "EMOTIONAL_CLOSE"
	SlideRoleOther          SlideRole = "OTHER"
)

// RiskLevel is the analysis step's estimate of how risky varying a slide is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// SlideDecision is the per-slide instruction to the compile stage.
type SlideDecision string

const (
	DecisionKeep              SlideDecision = "KEEP"
	DecisionVary              SlideDecision = "VARY"
	DecisionVaryWithPainPoint SlideDecision = "VARY_WITH_PAIN_POINT"
)

// SlideData is one slide's extracted facts. The slide number is 1-based and
// unique within a submission; it is the join key to SlideAnalysis.
type SlideData struct {
	SlideNumber          int       `json:"slide_number"`
	ExtractedText        string    `json:"extracted_text"`
	Role                 SlideRole `json:"role"`
	ContainsBrandMention bool      `json:"contains_brand_mention"`
	BrandMentioned       *string   `json:"brand_mentioned"`
}

// SlideAnalysis is the per-slide risk/rationale record from the analysis step,
// matched to a SlideData by slide number.
type SlideAnalysis struct {
	SlideNumber         int       `json:"slide_number"`
	Role                string    `json:"role"`
	WhatMakesItWork     string    `json:"what_makes_it_work"`
	RiskIfVaried        RiskLevel `json:"risk_if_varied"`
	VariationApproaches string    `json:"variation_approaches"`
}

// ConfiguredSlide is a SlideData carrying the user/derived decision and, when
// the analysis step produced a matching record, the attached analysis.
// Analysis stays a pointer so "no analysis available" is distinguishable from
// an empty one.
type ConfiguredSlide struct {
	SlideData
	Decision SlideDecision  `json:"decision"`
	Analysis *SlideAnalysis `json:"analysis,omitempty"`
}
