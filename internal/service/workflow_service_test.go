package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/memory"
	"content-variation-be/pkg/llm"
	"content-variation-be/pkg/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLMProvider replays canned responses: one for the vision call and a
// queue for the plain generate calls (analysis, then compile).
type fakeLLMProvider struct {
	visionResponse  string
	visionErr       error
	generateQueue   []string
	generateErr     error
	generateCalls   int
	lastUserPrompts []string
}

func (f *fakeLLMProvider) Generate(ctx context.Context, system, prompt string, options ...llm.Option) (string, error) {
	f.lastUserPrompts = append(f.lastUserPrompts, prompt)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	if f.generateCalls >= len(f.generateQueue) {
		return "", errors.New("unexpected generate call")
	}
	out := f.generateQueue[f.generateCalls]
	f.generateCalls++
	return out, nil
}

func (f *fakeLLMProvider) GenerateVision(ctx context.Context, system, prompt string, images []llm.Image, options ...llm.Option) (string, error) {
	if f.visionErr != nil {
		return "", f.visionErr
	}
	return f.visionResponse, nil
}

type capturePublisher struct {
	messages [][]byte
}

func (c *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	c.messages = append(c.messages, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

const extractionResponse = `Here is the extracted data:
[
  {"slide_number": 1, "extracted_text": "Tired of meal prep?", "role": "HOOK", "contains_brand_mention": false, "brand_mentioned": null},
  {"slide_number": 2, "extracted_text": "Try batch cooking on Sunday", "role": "TIP", "contains_brand_mention": false, "brand_mentioned": null},
  {"slide_number": 3, "extracted_text": "CookApp plans it all for you", "role": "APP_MENTION", "contains_brand_mention": true, "brand_mentioned": "CookApp"}
]`

const analysisResponse = `{
  "format_analysis": {
    "hook_type": "question",
    "emotional_arc": "frustration to relief",
    "target_pain_point": "meal prep takes too long",
    "conversion_strategy": "soft mention"
  },
  "tone_analysis": {
    "description": "casual and encouraging",
    "key_markers": ["short sentences"]
  },
  "slide_analysis": [
    {"slide_number": 1, "role": "HOOK", "what_makes_it_work": "direct question", "risk_if_varied": "HIGH", "variation_approaches": "keep the question form"},
    {"slide_number": 2, "role": "TIP", "what_makes_it_work": "actionable", "risk_if_varied": "LOW", "variation_approaches": "swap the tip"}
  ],
  "pain_point_alternatives": ["groceries go to waste", "cooking feels like a chore"]
}`

func newTestWorkflowService(provider *fakeLLMProvider, pub *capturePublisher) (IWorkflowService, *memory.WorkflowRepository) {
	sessions := memory.NewWorkflowRepository()
	svc := NewWorkflowService(sessions, nil, provider, pub, nil, nopLogger{})
	return svc, sessions
}

func TestWorkflowExtractHappyPath(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateQueue:  []string{analysisResponse},
	}
	pub := &capturePublisher{}
	svc, _ := newTestWorkflowService(provider, pub)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	userId := uuid.New()
	state, err := svc.Extract(context.Background(), created.SessionId, userId, &dto.ExtractRequest{
		Images: []string{"data:image/png;base64,AAAA", "BBBB", "CCCC"},
	})
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, workflow.StepConfigure, state.Step)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Error)
	require.Len(t, state.Slides, 3)

	// Hook carries HIGH risk, app mention is structural: both default to KEEP.
	assert.Equal(t, entity.DecisionKeep, state.Slides[0].Decision)
	assert.Equal(t, entity.DecisionVary, state.Slides[1].Decision)
	assert.Equal(t, entity.DecisionKeep, state.Slides[2].Decision)

	assert.Equal(t, "CookApp", state.Brand)
	assert.Equal(t, "meal prep takes too long", state.PainPoint.Original)
	assert.Equal(t, "meal prep takes too long", state.PainPoint.Selected)
	assert.Equal(t, entity.ToneMatched, state.Tone.Mode)
	assert.Equal(t, "casual and encouraging", state.Tone.DetectedDescription)

	require.Len(t, pub.messages, 1)
	var usage dto.RecordUsageMessage
	require.NoError(t, json.Unmarshal(pub.messages[0], &usage))
	assert.Equal(t, userId, usage.UserId)
	assert.Equal(t, entity.UsageActionExtract, usage.Action)
}

func TestWorkflowExtractParseFailure(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: "I could not read those images, sorry.",
	}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{
		Images: []string{"AAAA"},
	})
	require.NoError(t, err, "pipeline failures surface in state, not as HTTP errors")
	require.NotNil(t, state)

	assert.Equal(t, workflow.StepUpload, state.Step)
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.Error)
	assert.Equal(t, "Failed to parse slide extraction results", *state.Error)
}

func TestWorkflowExtractTransportFailure(t *testing.T) {
	provider := &fakeLLMProvider{
		visionErr: errors.New("connection refused"),
	}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{
		Images: []string{"AAAA"},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Error)
	// A failed call carries its own message, not the parse-failure one.
	assert.Equal(t, "Failed to extract slides: connection refused", *state.Error)
	assert.Equal(t, workflow.StepUpload, state.Step)
	assert.False(t, state.IsLoading)
}

func TestWorkflowAnalysisTransportFailure(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateErr:    errors.New("upstream timeout"),
	}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{
		Images: []string{"AAAA"},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Error)
	assert.Equal(t, "Failed to analyze slides", *state.Error)
	assert.Equal(t, workflow.StepUpload, state.Step)
}

func TestWorkflowExtractAnalysisFailure(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateQueue:  []string{"the slides look fine to me"},
	}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{
		Images: []string{"AAAA"},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Error)
	assert.Equal(t, "Failed to parse analysis results", *state.Error)
	assert.Equal(t, workflow.StepUpload, state.Step)
}

func TestWorkflowExtractGates(t *testing.T) {
	svc, sessions := newTestWorkflowService(&fakeLLMProvider{}, &capturePublisher{})

	_, err := svc.Extract(context.Background(), "missing", uuid.Nil, &dto.ExtractRequest{Images: []string{"a"}})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	tooMany := make([]string, workflow.MaxImages+1)
	for i := range tooMany {
		tooMany[i] = "a"
	}
	_, err = svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{Images: tooMany})
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)

	// A loading session rejects concurrent extraction with a conflict.
	session, found := sessions.Get(created.SessionId)
	require.True(t, found)
	session.State.IsLoading = true
	sessions.Save(session)

	_, err = svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{Images: []string{"a"}})
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
}

func TestWorkflowCompileHappyPath(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateQueue:  []string{analysisResponse, "You are a content variation assistant. Produce 5 variations."},
	}
	pub := &capturePublisher{}
	svc, _ := newTestWorkflowService(provider, pub)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	userId := uuid.New()
	_, err = svc.Extract(context.Background(), created.SessionId, userId, &dto.ExtractRequest{Images: []string{"AAAA"}})
	require.NoError(t, err)

	_, err = svc.UpdateVariationCount(created.SessionId, &dto.UpdateVariationCountRequest{Count: 5})
	require.NoError(t, err)

	state, err := svc.Compile(context.Background(), created.SessionId, userId)
	require.NoError(t, err)

	assert.Equal(t, workflow.StepOutput, state.Step)
	require.NotNil(t, state.CompiledPrompt)
	// The model response is the prompt, verbatim.
	assert.Equal(t, "You are a content variation assistant. Produce 5 variations.", *state.CompiledPrompt)
	assert.Nil(t, state.Error)

	// Extract and compile each record usage.
	require.Len(t, pub.messages, 2)
	var usage dto.RecordUsageMessage
	require.NoError(t, json.Unmarshal(pub.messages[1], &usage))
	assert.Equal(t, entity.UsageActionCompile, usage.Action)
}

func TestWorkflowCompileFromUploadConflicts(t *testing.T) {
	svc, _ := newTestWorkflowService(&fakeLLMProvider{}, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.Compile(context.Background(), created.SessionId, uuid.Nil)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
}

func TestWorkflowVariationCountClampedThroughService(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateQueue:  []string{analysisResponse},
	}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	_, err = svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{Images: []string{"AAAA"}})
	require.NoError(t, err)

	state, err := svc.UpdateVariationCount(created.SessionId, &dto.UpdateVariationCountRequest{Count: 500})
	require.NoError(t, err)
	assert.Equal(t, workflow.MaxVariationCount, state.VariationCount)
}

func TestWorkflowResetAndDismiss(t *testing.T) {
	provider := &fakeLLMProvider{visionResponse: "not json"}
	svc, _ := newTestWorkflowService(provider, &capturePublisher{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	state, err := svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{Images: []string{"AAAA"}})
	require.NoError(t, err)
	require.NotNil(t, state.Error)

	state, err = svc.DismissError(created.SessionId)
	require.NoError(t, err)
	assert.Nil(t, state.Error)

	state, err = svc.Reset(created.SessionId)
	require.NoError(t, err)
	assert.Equal(t, workflow.StepUpload, state.Step)
	assert.Empty(t, state.Images)
	assert.Equal(t, workflow.DefaultVariationCount, state.VariationCount)
}

func TestWorkflowAnonymousUsageCarriesNilUser(t *testing.T) {
	provider := &fakeLLMProvider{
		visionResponse: extractionResponse,
		generateQueue:  []string{analysisResponse},
	}
	pub := &capturePublisher{}
	svc, _ := newTestWorkflowService(provider, pub)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	_, err = svc.Extract(context.Background(), created.SessionId, uuid.Nil, &dto.ExtractRequest{Images: []string{"AAAA"}})
	require.NoError(t, err)

	require.Len(t, pub.messages, 1)
	var usage dto.RecordUsageMessage
	require.NoError(t, json.Unmarshal(pub.messages[0], &usage))
	assert.Equal(t, uuid.Nil, usage.UserId)
}
