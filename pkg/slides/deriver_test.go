package slides

import (
	"testing"

	"content-variation-be/internal/entity"
)

func strPtr(s string) *string { return &s }

func TestConfigureDefaultDecisions(t *testing.T) {
	tests := []struct {
		name     string
		slide    entity.SlideData
		analysis *entity.AnalysisResult
		want     entity.SlideDecision
	}{
		{
			name:  "app mention is kept",
			slide: entity.SlideData{SlideNumber: 1, Role: entity.SlideRoleAppMention},
			want:  entity.DecisionKeep,
		},
		{
			name:  "high risk is kept",
			slide: entity.SlideData{SlideNumber: 1, Role: entity.SlideRoleHook},
			analysis: &entity.AnalysisResult{
				SlideAnalysis: []entity.SlideAnalysis{
					{SlideNumber: 1, RiskIfVaried: entity.RiskHigh},
				},
			},
			want: entity.DecisionKeep,
		},
		{
			name:  "low risk is varied",
			slide: entity.SlideData{SlideNumber: 1, Role: entity.SlideRoleTip},
			analysis: &entity.AnalysisResult{
				SlideAnalysis: []entity.SlideAnalysis{
					{SlideNumber: 1, RiskIfVaried: entity.RiskLow},
				},
			},
			want: entity.DecisionVary,
		},
		{
			name:  "no analysis defaults to vary",
			slide: entity.SlideData{SlideNumber: 1, Role: entity.SlideRoleEmotionalClose},
			want:  entity.DecisionVary,
		},
		{
			name:  "app mention wins over missing analysis",
			slide: entity.SlideData{SlideNumber: 3, Role: entity.SlideRoleAppMention},
			analysis: &entity.AnalysisResult{
				SlideAnalysis: []entity.SlideAnalysis{
					{SlideNumber: 1, RiskIfVaried: entity.RiskLow},
				},
			},
			want: entity.DecisionKeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configured, _ := Configure([]entity.SlideData{tt.slide}, tt.analysis)
			if len(configured) != 1 {
				t.Fatalf("len = %d, want 1", len(configured))
			}
			if configured[0].Decision != tt.want {
				t.Errorf("Decision = %s, want %s", configured[0].Decision, tt.want)
			}
		})
	}
}

// The default rule never produces VARY_WITH_PAIN_POINT regardless of input.
func TestConfigureNeverDefaultsToPainPointVariation(t *testing.T) {
	raw := []entity.SlideData{
		{SlideNumber: 1, Role: entity.SlideRoleHook},
		{SlideNumber: 2, Role: entity.SlideRoleTip},
		{SlideNumber: 3, Role: entity.SlideRoleAppMention},
		{SlideNumber: 4, Role: entity.SlideRoleEmotionalClose},
	}
	analysis := &entity.AnalysisResult{
		SlideAnalysis: []entity.SlideAnalysis{
			{SlideNumber: 1, RiskIfVaried: entity.RiskHigh},
			{SlideNumber: 2, RiskIfVaried: entity.RiskMedium},
			{SlideNumber: 4, RiskIfVaried: entity.RiskLow},
		},
	}

	configured, _ := Configure(raw, analysis)
	for _, slide := range configured {
		if slide.Decision == entity.DecisionVaryWithPainPoint {
			t.Errorf("slide %d defaulted to VARY_WITH_PAIN_POINT", slide.SlideNumber)
		}
	}
}

func TestConfigureAttachesMatchingAnalysis(t *testing.T) {
	raw := []entity.SlideData{
		{SlideNumber: 1, Role: entity.SlideRoleHook},
		{SlideNumber: 2, Role: entity.SlideRoleTip},
	}
	analysis := &entity.AnalysisResult{
		SlideAnalysis: []entity.SlideAnalysis{
			{SlideNumber: 2, WhatMakesItWork: "actionable"},
		},
	}

	configured, _ := Configure(raw, analysis)
	if configured[0].Analysis != nil {
		t.Error("slide 1 should have no analysis attached")
	}
	if configured[1].Analysis == nil || configured[1].Analysis.WhatMakesItWork != "actionable" {
		t.Errorf("slide 2 analysis = %+v, want attached", configured[1].Analysis)
	}
}

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		name string
		raw  []entity.SlideData
		want string
	}{
		{
			name: "no brand anywhere",
			raw: []entity.SlideData{
				{SlideNumber: 1},
				{SlideNumber: 2},
			},
			want: "",
		},
		{
			name: "first by slide number wins even when out of order",
			raw: []entity.SlideData{
				{SlideNumber: 3, ContainsBrandMention: true, BrandMentioned: strPtr("LaterBrand")},
				{SlideNumber: 1, ContainsBrandMention: true, BrandMentioned: strPtr("FirstBrand")},
			},
			want: "FirstBrand",
		},
		{
			name: "mention flag without a name is skipped",
			raw: []entity.SlideData{
				{SlideNumber: 1, ContainsBrandMention: true},
				{SlideNumber: 2, ContainsBrandMention: true, BrandMentioned: strPtr("RealBrand")},
			},
			want: "RealBrand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBrand(tt.raw); got != tt.want {
				t.Errorf("DetectBrand = %q, want %q", got, tt.want)
			}
		})
	}
}

// Configure must not reorder the incoming slides.
func TestConfigurePreservesInputOrder(t *testing.T) {
	raw := []entity.SlideData{
		{SlideNumber: 2},
		{SlideNumber: 1},
	}
	configured, _ := Configure(raw, nil)
	if configured[0].SlideNumber != 2 || configured[1].SlideNumber != 1 {
		t.Errorf("order changed: %d, %d", configured[0].SlideNumber, configured[1].SlideNumber)
	}
}
