package llm

import (
	"context"
)

// Image is a base64-encoded image payload (no data-URI prefix) with its MIME
// type, in a provider-agnostic format.
type Image struct {
	MediaType string
	Data      string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend. Responses are raw
// text; callers own any JSON recovery.
type LLMProvider interface {
	// Generate sends a system instruction and a user prompt to the model.
	Generate(ctx context.Context, system, prompt string, options ...Option) (string, error)

	// GenerateVision additionally attaches images ahead of the user prompt.
	GenerateVision(ctx context.Context, system, prompt string, images []Image, options ...Option) (string, error)
}
