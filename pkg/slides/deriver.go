// Package slides derives the initial per-slide configuration from raw
// extraction output and the analysis result.
package slides

import (
	"sort"

	"content-variation-be/internal/entity"
)

// Configure merges analysis into each extracted slide, applies the default
// keep/vary decision, and detects the brand. It never fails: an analysis
// record missing for a slide just means no analysis is attached.
//
// Default decision rule: APP_MENTION slides and slides whose analysis marks
// HIGH risk are kept verbatim; everything else is varied. VARY_WITH_PAIN_POINT
// is never a default; only the user selects it.
func Configure(raw []entity.SlideData, analysis *entity.AnalysisResult) ([]entity.ConfiguredSlide, string) {
	configured := make([]entity.ConfiguredSlide, 0, len(raw))
	for _, slide := range raw {
		slideAnalysis := matchAnalysis(analysis, slide.SlideNumber)

		decision := entity.DecisionVary
		if slide.Role == entity.SlideRoleAppMention {
			decision = entity.DecisionKeep
		} else if slideAnalysis != nil && slideAnalysis.RiskIfVaried == entity.RiskHigh {
			decision = entity.DecisionKeep
		}

		configured = append(configured, entity.ConfiguredSlide{
			SlideData: slide,
			Decision:  decision,
			Analysis:  slideAnalysis,
		})
	}

	return configured, DetectBrand(raw)
}

// DetectBrand returns the brand of the first slide (in slide-number order)
// that mentions one, or "" when none does.
func DetectBrand(raw []entity.SlideData) string {
	ordered := make([]entity.SlideData, len(raw))
	copy(ordered, raw)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SlideNumber < ordered[j].SlideNumber
	})

	for _, slide := range ordered {
		if slide.ContainsBrandMention && slide.BrandMentioned != nil {
			return *slide.BrandMentioned
		}
	}
	return ""
}

func matchAnalysis(analysis *entity.AnalysisResult, slideNumber int) *entity.SlideAnalysis {
	if analysis == nil {
		return nil
	}
	for i := range analysis.SlideAnalysis {
		if analysis.SlideAnalysis[i].SlideNumber == slideNumber {
			return &analysis.SlideAnalysis[i]
		}
	}
	return nil
}
