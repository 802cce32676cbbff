package compile

import (
	"encoding/json"
	"testing"

	"content-variation-be/internal/entity"
)

func TestResolveTone(t *testing.T) {
	tests := []struct {
		name string
		tone entity.ToneConfig
		want string
	}{
		{
			name: "matched uses detected",
			tone: entity.ToneConfig{Mode: entity.ToneMatched, DetectedDescription: "casual and upbeat"},
			want: "casual and upbeat",
		},
		{
			name: "matched ignores custom input",
			tone: entity.ToneConfig{Mode: entity.ToneMatched, DetectedDescription: "detected", CustomInput: "custom"},
			want: "detected",
		},
		{
			name: "custom uses custom input",
			tone: entity.ToneConfig{Mode: entity.ToneCustom, DetectedDescription: "detected", CustomInput: "dry humor"},
			want: "dry humor",
		},
		{
			name: "custom with empty input falls back to detected",
			tone: entity.ToneConfig{Mode: entity.ToneCustom, DetectedDescription: "detected", CustomInput: ""},
			want: "detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTone(tt.tone); got != tt.want {
				t.Errorf("ResolveTone = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	slides := []entity.ConfiguredSlide{
		{
			SlideData: entity.SlideData{SlideNumber: 1, ExtractedText: "hook text", Role: entity.SlideRoleHook},
			Decision:  entity.DecisionVary,
		},
		{
			SlideData: entity.SlideData{SlideNumber: 2, ExtractedText: "get the app", Role: entity.SlideRoleAppMention},
			Decision:  entity.DecisionKeep,
		},
	}
	painPoint := entity.PainPointConfig{Original: "feeling stuck", Selected: "no time to cook", IsCustom: true}
	tone := entity.ToneConfig{Mode: entity.ToneMatched, DetectedDescription: "casual"}

	cfg := Build(slides, painPoint, tone, "SomeApp", 5)

	if len(cfg.Slides) != 2 {
		t.Fatalf("Slides len = %d, want 2", len(cfg.Slides))
	}
	if cfg.Slides[0].Number != 1 || cfg.Slides[0].Text != "hook text" {
		t.Errorf("slide 1 = %+v", cfg.Slides[0])
	}
	if cfg.Slides[1].Decision != entity.DecisionKeep {
		t.Errorf("slide 2 decision = %s, want KEEP", cfg.Slides[1].Decision)
	}
	if cfg.OriginalPainPoint != "feeling stuck" {
		t.Errorf("OriginalPainPoint = %q", cfg.OriginalPainPoint)
	}
	if cfg.NewPainPoint != "no time to cook" {
		t.Errorf("NewPainPoint = %q", cfg.NewPainPoint)
	}
	if cfg.Brand != "SomeApp" {
		t.Errorf("Brand = %q", cfg.Brand)
	}
	if cfg.Tone.Description != "casual" {
		t.Errorf("Tone.Description = %q", cfg.Tone.Description)
	}
	if cfg.VariationCount != 5 {
		t.Errorf("VariationCount = %d", cfg.VariationCount)
	}
}

// The wire format is part of the contract with the compile prompt: field
// names must stay exactly as the prompt documents them.
func TestBuildWireFormat(t *testing.T) {
	cfg := Build(
		[]entity.ConfiguredSlide{
			{
				SlideData: entity.SlideData{SlideNumber: 1, ExtractedText: "text", Role: entity.SlideRoleHook},
				Decision:  entity.DecisionVary,
			},
		},
		entity.PainPointConfig{Original: "orig", Selected: "new"},
		entity.ToneConfig{Mode: entity.ToneCustom, CustomInput: "snappy"},
		"Brand",
		3,
	)

	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"slides", "original_pain_point", "new_pain_point", "brand", "tone", "variation_count"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	toneObj, ok := decoded["tone"].(map[string]interface{})
	if !ok {
		t.Fatal("tone is not an object")
	}
	if toneObj["type"] != "custom" {
		t.Errorf("tone.type = %v, want custom", toneObj["type"])
	}
	if toneObj["description"] != "snappy" {
		t.Errorf("tone.description = %v, want snappy", toneObj["description"])
	}

	slideObj := decoded["slides"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"number", "text", "role", "decision"} {
		if _, ok := slideObj[key]; !ok {
			t.Errorf("missing slide key %q", key)
		}
	}
}
