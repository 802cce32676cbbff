package entity

// FormatAnalysis holds the format-level facts from the analysis step.
type FormatAnalysis struct {
	HookType           string `json:"hook_type"`
	EmotionalArc       string `json:"emotional_arc"`
	TargetPainPoint    string `json:"target_pain_point"`
	ConversionStrategy string `json:"conversion_strategy"`
}

// ToneAnalysis describes the detected voice of the original content.
type ToneAnalysis struct {
	Description string   `json:"description"`
	KeyMarkers  []string `json:"key_markers"`
}

// AnalysisResult is the aggregate output of the analysis step. Every slide
// number should appear in SlideAnalysis, but consumers must tolerate missing
// matches (treated as "no analysis available", not an error).
type AnalysisResult struct {
	FormatAnalysis        FormatAnalysis  `json:"format_analysis"`
	ToneAnalysis          ToneAnalysis    `json:"tone_analysis"`
	SlideAnalysis         []SlideAnalysis `json:"slide_analysis"`
	PainPointAlternatives []string        `json:"pain_point_alternatives"`
}

// PainPointConfig tracks the detected pain point and the user's selection.
// Selected defaults to Original; IsCustom marks a free-text override rather
// than one of the suggested alternatives.
type PainPointConfig struct {
	Original string `json:"original"`
	Selected string `json:"selected"`
	IsCustom bool   `json:"is_custom"`
}

// ToneMode selects between the detected tone and a user-supplied one.
type ToneMode string

const (
	ToneMatched ToneMode = "matched"
	ToneCustom  ToneMode = "custom"
)

// ToneConfig holds the tone selection. DetectedDescription is always populated
// from analysis; CustomInput is only relevant when Mode is ToneCustom.
type ToneConfig struct {
	Mode                ToneMode `json:"mode"`
	DetectedDescription string   `json:"detected_description"`
	CustomInput         string   `json:"custom_input,omitempty"`
}
