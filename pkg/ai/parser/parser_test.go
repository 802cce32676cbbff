package parser

import (
	"errors"
	"testing"
)

func TestParseArray(t *testing.T) {
	type item struct {
		SlideNumber int    `json:"slide_number"`
		Text        string `json:"text"`
	}

	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "bare array",
			raw:       `[{"slide_number":1,"text":"a"},{"slide_number":2,"text":"b"}]`,
			wantCount: 2,
		},
		{
			name:      "array wrapped in prose",
			raw:       "Here are the slides you asked for:\n[{\"slide_number\":1,\"text\":\"a\"}]\nLet me know if you need more.",
			wantCount: 1,
		},
		{
			name:      "array inside markdown fence",
			raw:       "```json\n[{\"slide_number\":1,\"text\":\"a\"}]\n```",
			wantCount: 1,
		},
		{
			name:    "no array at all",
			raw:     "I could not process those images.",
			wantErr: true,
		},
		{
			name:    "brackets but invalid json",
			raw:     "[{slide_number: 1}]",
			wantErr: true,
		},
		{
			name:      "empty array",
			raw:       "[]",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result []item
			err := ParseArray(tt.raw, &result)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrUnparsable) {
					t.Errorf("error = %v, want ErrUnparsable", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != tt.wantCount {
				t.Errorf("len = %d, want %d", len(result), tt.wantCount)
			}
		})
	}
}

func TestParseObject(t *testing.T) {
	type analysis struct {
		HookType string `json:"hook_type"`
	}

	tests := []struct {
		name     string
		raw      string
		wantHook string
		wantErr  bool
	}{
		{
			name:     "bare object",
			raw:      `{"hook_type":"question"}`,
			wantHook: "question",
		},
		{
			name:     "object wrapped in prose",
			raw:      "Sure! Here's the analysis:\n{\"hook_type\":\"question\"}\nHope that helps.",
			wantHook: "question",
		},
		{
			name:     "greedy span keeps nested objects",
			raw:      `Prefix {"hook_type":"question","nested":{"a":1}} suffix`,
			wantHook: "question",
		},
		{
			name:    "no object",
			raw:     "no structured data here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result analysis
			err := ParseObject(tt.raw, &result)

			if tt.wantErr {
				if !errors.Is(err, ErrUnparsable) {
					t.Errorf("error = %v, want ErrUnparsable", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.HookType != tt.wantHook {
				t.Errorf("HookType = %q, want %q", result.HookType, tt.wantHook)
			}
		})
	}
}

// A close bracket before the first open bracket must not confuse the span
// extraction: it scans for the first open and the last close.
func TestParseArrayBracketNoise(t *testing.T) {
	var result []int
	err := ParseArray("noise ] before [1,2,3] trailing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("len = %d, want 3", len(result))
	}
}
