package factory

import (
	"fmt"

	"content-variation-be/pkg/llm"
	"content-variation-be/pkg/llm/anthropic"
	"content-variation-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, modelName, anthropicKey, geminiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return anthropic.NewAnthropicProvider(anthropicKey, modelName), nil
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY is required for the gemini provider")
		}
		return gemini.NewGeminiProvider(geminiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
