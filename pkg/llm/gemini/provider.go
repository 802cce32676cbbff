package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"content-variation-be/pkg/llm"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type GeminiProvider struct {
	APIKey    string
	ModelName string
	Client    *http.Client
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	return &GeminiProvider{
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// --- Interface Implementation ---

func (p *GeminiProvider) Generate(ctx context.Context, system, prompt string, opts ...llm.Option) (string, error) {
	return p.GenerateVision(ctx, system, prompt, nil, opts...)
}

func (p *GeminiProvider) GenerateVision(ctx context.Context, system, prompt string, images []llm.Image, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	parts := make([]part, 0, len(images)+1)
	for _, img := range images {
		mimeType := img.MediaType
		if mimeType == "" {
			mimeType = "image/png"
		}
		parts = append(parts, part{
			InlineData: &inlineData{MimeType: mimeType, Data: img.Data},
		})
	}
	parts = append(parts, part{Text: prompt})

	reqPayload := generateRequest{
		Contents: []content{
			{Parts: parts, Role: "user"},
		},
	}
	if system != "" {
		reqPayload.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	if options.Temperature > 0 || options.MaxTokens > 0 {
		cfg := &generationConfig{MaxOutputTokens: options.MaxTokens}
		if options.Temperature > 0 {
			cfg.Temperature = &options.Temperature
		}
		reqPayload.GenerationConfig = cfg
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}
	url := fmt.Sprintf("%s/%s:generateContent", baseURL, model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response contained no candidates")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
