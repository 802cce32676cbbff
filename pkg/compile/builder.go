// Package compile builds the configuration payload for the prompt compile
// call. It performs no I/O; the workflow service serializes the result and
// hands it to the LLM provider.
package compile

import (
	"content-variation-be/internal/entity"
)

// SlideConfig is one slide as the compile stage sees it. The attached
// analysis is intentionally dropped: the compile prompt only needs text,
// role and decision.
type SlideConfig struct {
	Number   int                  `json:"number"`
	Text     string               `json:"text"`
	Role     entity.SlideRole     `json:"role"`
	Decision entity.SlideDecision `json:"decision"`
}

type ToneSetting struct {
	Mode        entity.ToneMode `json:"type"`
	Description string          `json:"description"`
}

// Config is the normalized compile request, field names matching the wire
// contract the compile system prompt was written against.
type Config struct {
	Slides            []SlideConfig `json:"slides"`
	OriginalPainPoint string        `json:"original_pain_point"`
	NewPainPoint      string        `json:"new_pain_point"`
	Brand             string        `json:"brand"`
	Tone              ToneSetting   `json:"tone"`
	VariationCount    int           `json:"variation_count"`
}

// Build produces the compile configuration from the current workflow fields.
func Build(
	slides []entity.ConfiguredSlide,
	painPoint entity.PainPointConfig,
	tone entity.ToneConfig,
	brand string,
	variationCount int,
) *Config {
	slideConfigs := make([]SlideConfig, 0, len(slides))
	for _, slide := range slides {
		slideConfigs = append(slideConfigs, SlideConfig{
			Number:   slide.SlideNumber,
			Text:     slide.ExtractedText,
			Role:     slide.Role,
			Decision: slide.Decision,
		})
	}

	return &Config{
		Slides:            slideConfigs,
		OriginalPainPoint: painPoint.Original,
		NewPainPoint:      painPoint.Selected,
		Brand:             brand,
		Tone: ToneSetting{
			Mode:        tone.Mode,
			Description: ResolveTone(tone),
		},
		VariationCount: variationCount,
	}
}

// ResolveTone picks the tone description the compile stage receives. Matched
// mode always uses the detected description; custom mode uses the custom
// input but falls back to the detected description when the input is empty,
// so an empty tone is never sent.
func ResolveTone(tone entity.ToneConfig) string {
	if tone.Mode == entity.ToneCustom && tone.CustomInput != "" {
		return tone.CustomInput
	}
	return tone.DetectedDescription
}
