package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"content-variation-be/internal/constant"
	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/pkg/logger"
	"content-variation-be/internal/repository/memory"
	"content-variation-be/internal/repository/specification"
	"content-variation-be/internal/repository/unitofwork"
	"content-variation-be/pkg/ai/parser"
	"content-variation-be/pkg/compile"
	"content-variation-be/pkg/events"
	"content-variation-be/pkg/llm"
	pktNats "content-variation-be/pkg/nats"
	"content-variation-be/pkg/slides"
	"content-variation-be/pkg/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	extractFailedMessage = "Failed to parse slide extraction results"
	analyzeFailedMessage = "Failed to parse analysis results"
)

type IWorkflowService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetState(sessionId string) (*workflow.State, error)
	Extract(ctx context.Context, sessionId string, userId uuid.UUID, req *dto.ExtractRequest) (*workflow.State, error)
	UpdateDecision(sessionId string, slideNumber int, req *dto.UpdateDecisionRequest) (*workflow.State, error)
	UpdatePainPoint(sessionId string, req *dto.UpdatePainPointRequest) (*workflow.State, error)
	UpdateTone(sessionId string, req *dto.UpdateToneRequest) (*workflow.State, error)
	UpdateBrand(sessionId string, req *dto.UpdateBrandRequest) (*workflow.State, error)
	UpdateVariationCount(sessionId string, req *dto.UpdateVariationCountRequest) (*workflow.State, error)
	Compile(ctx context.Context, sessionId string, userId uuid.UUID) (*workflow.State, error)
	Back(sessionId string) (*workflow.State, error)
	Reset(sessionId string) (*workflow.State, error)
	DismissError(sessionId string) (*workflow.State, error)
	LoadProject(ctx context.Context, sessionId string, userId uuid.UUID, projectId uuid.UUID) (*workflow.State, error)
}

type workflowService struct {
	sessions         *memory.WorkflowRepository
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewWorkflowService(
	sessions *memory.WorkflowRepository,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IWorkflowService {
	return &workflowService{
		sessions:         sessions,
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *workflowService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := workflow.NewSession(uuid.New().String())
	s.sessions.Save(session)
	return &dto.CreateSessionResponse{SessionId: session.ID}, nil
}

func (s *workflowService) GetState(sessionId string) (*workflow.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session), nil
}

// Extract runs the two-call pipeline: vision extraction of raw slide data,
// then format analysis over the extracted slides. Pipeline failures never
// fail the HTTP request; they land in the session's error field with the
// state machine held at the step it was on.
func (s *workflowService) Extract(ctx context.Context, sessionId string, userId uuid.UUID, req *dto.ExtractRequest) (*workflow.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	if err := session.BeginExtraction(req.Images); err != nil {
		return nil, mapTransitionError(err)
	}
	s.sessions.Save(session)

	images := make([]llm.Image, len(req.Images))
	for i, img := range req.Images {
		images[i] = normalizeImage(img)
	}

	rawSlides, err := s.extractSlides(ctx, images)
	if err != nil {
		s.logger.Error("WorkflowService", "Slide extraction failed", map[string]interface{}{"error": err.Error(), "session_id": sessionId})
		session.Fail(extractFailureMessage(err))
		s.sessions.Save(session)
		return s.snapshot(session), nil
	}

	analysis, err := s.analyzeSlides(ctx, rawSlides)
	if err != nil {
		s.logger.Error("WorkflowService", "Slide analysis failed", map[string]interface{}{"error": err.Error(), "session_id": sessionId})
		session.Fail(analyzeFailureMessage(err))
		s.sessions.Save(session)
		return s.snapshot(session), nil
	}

	configured, detectedBrand := slides.Configure(rawSlides, analysis)
	session.ApplyExtraction(configured, analysis, detectedBrand)
	s.sessions.Save(session)

	s.recordUsage(ctx, userId, entity.UsageActionExtract)
	s.publishEvent(ctx, entity.UsageActionExtract, sessionId, userId, map[string]interface{}{
		"slide_count": len(configured),
	})

	return s.snapshot(session), nil
}

// extractFailureMessage keeps unparsable model output distinguishable from
// a failed call: parse failures get the fixed message, transport failures
// carry the underlying error.
func extractFailureMessage(err error) string {
	if errors.Is(err, parser.ErrUnparsable) {
		return extractFailedMessage
	}
	return fmt.Sprintf("Failed to extract slides: %s", err.Error())
}

func analyzeFailureMessage(err error) string {
	if errors.Is(err, parser.ErrUnparsable) {
		return analyzeFailedMessage
	}
	return "Failed to analyze slides"
}

func (s *workflowService) extractSlides(ctx context.Context, images []llm.Image) ([]entity.SlideData, error) {
	raw, err := s.llmProvider.GenerateVision(ctx, constant.ExtractSystemPrompt,
		"Extract the slide data from these images.", images)
	if err != nil {
		return nil, err
	}

	var result []entity.SlideData
	if err := parser.ParseArray(raw, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: empty slide list", parser.ErrUnparsable)
	}
	return result, nil
}

func (s *workflowService) analyzeSlides(ctx context.Context, rawSlides []entity.SlideData) (*entity.AnalysisResult, error) {
	slidesJson, err := json.Marshal(rawSlides)
	if err != nil {
		return nil, err
	}

	raw, err := s.llmProvider.Generate(ctx, constant.AnalyzeSystemPrompt,
		fmt.Sprintf("Slides:\n%s", slidesJson))
	if err != nil {
		return nil, err
	}

	var result entity.AnalysisResult
	if err := parser.ParseObject(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *workflowService) UpdateDecision(sessionId string, slideNumber int, req *dto.UpdateDecisionRequest) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.UpdateDecision(slideNumber, req.Decision)
	})
}

func (s *workflowService) UpdatePainPoint(sessionId string, req *dto.UpdatePainPointRequest) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.UpdatePainPoint(req.Selected, req.IsCustom)
	})
}

func (s *workflowService) UpdateTone(sessionId string, req *dto.UpdateToneRequest) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.UpdateTone(req.Mode, req.CustomInput)
	})
}

func (s *workflowService) UpdateBrand(sessionId string, req *dto.UpdateBrandRequest) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.UpdateBrand(req.Brand)
	})
}

func (s *workflowService) UpdateVariationCount(sessionId string, req *dto.UpdateVariationCountRequest) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.UpdateVariationCount(req.Count)
	})
}

// Compile builds the compile configuration from the session and asks the LLM
// for the final prompt. The model's response is used verbatim, never parsed.
func (s *workflowService) Compile(ctx context.Context, sessionId string, userId uuid.UUID) (*workflow.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	if err := session.BeginCompile(); err != nil {
		return nil, mapTransitionError(err)
	}
	s.sessions.Save(session)

	state := session.Snapshot()
	cfg := compile.Build(
		state.Slides,
		state.PainPoint,
		state.Tone,
		state.Brand,
		state.VariationCount,
	)

	cfgJson, err := json.Marshal(cfg)
	if err != nil {
		session.Fail("Failed to build compile configuration")
		s.sessions.Save(session)
		return s.snapshot(session), nil
	}

	prompt, err := s.llmProvider.Generate(ctx, constant.CompileSystemPrompt,
		fmt.Sprintf("Configuration:\n%s", cfgJson))
	if err != nil {
		s.logger.Error("WorkflowService", "Prompt compilation failed", map[string]interface{}{"error": err.Error(), "session_id": sessionId})
		session.Fail("Failed to compile prompt")
		s.sessions.Save(session)
		return s.snapshot(session), nil
	}

	session.ApplyCompiled(prompt)
	s.sessions.Save(session)

	s.recordUsage(ctx, userId, entity.UsageActionCompile)
	s.publishEvent(ctx, entity.UsageActionCompile, sessionId, userId, map[string]interface{}{
		"variation_count": state.VariationCount,
	})

	return s.snapshot(session), nil
}

func (s *workflowService) Back(sessionId string) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		return session.BackToConfig()
	})
}

func (s *workflowService) Reset(sessionId string) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		session.Reset()
		return nil
	})
}

func (s *workflowService) DismissError(sessionId string) (*workflow.State, error) {
	return s.mutate(sessionId, func(session *workflow.Session) error {
		session.DismissError()
		return nil
	})
}

// LoadProject replaces the session wholesale from one of the caller's saved
// projects.
func (s *workflowService) LoadProject(ctx context.Context, sessionId string, userId uuid.UUID, projectId uuid.UUID) (*workflow.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Project not found")
	}

	session.LoadProject(project)
	s.sessions.Save(session)
	return s.snapshot(session), nil
}

func (s *workflowService) session(sessionId string) (*workflow.Session, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return session, nil
}

func (s *workflowService) mutate(sessionId string, fn func(*workflow.Session) error) (*workflow.State, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, mapTransitionError(err)
	}
	s.sessions.Save(session)
	return s.snapshot(session), nil
}

// snapshot detaches the response from the shared session so concurrent
// transitions cannot race the serializer.
func (s *workflowService) snapshot(session *workflow.Session) *workflow.State {
	state := session.Snapshot()
	return &state
}

func (s *workflowService) recordUsage(ctx context.Context, userId uuid.UUID, action string) {
	msg, err := json.Marshal(dto.RecordUsageMessage{UserId: userId, Action: action})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		s.logger.Warn("WorkflowService", "Failed to publish usage message", map[string]interface{}{"error": err.Error()})
	}
}

func (s *workflowService) publishEvent(ctx context.Context, eventType, sessionId string, userId uuid.UUID, extra map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewWorkflowEvent(eventType, sessionId, userId, extra)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("WorkflowService", "Failed to publish workflow event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

// mapTransitionError translates state machine sentinels into HTTP statuses.
func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrBusy):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, workflow.ErrWrongStep):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, workflow.ErrNoImages),
		errors.Is(err, workflow.ErrTooManyImages),
		errors.Is(err, workflow.ErrNoSlides):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}

// normalizeImage strips an optional data-URI wrapper and recovers the MIME
// type, defaulting to JPEG for bare base64 payloads.
func normalizeImage(raw string) llm.Image {
	mediaType := "image/jpeg"
	data := raw

	if strings.HasPrefix(raw, "data:") {
		if idx := strings.Index(raw, ";base64,"); idx > 5 {
			mediaType = raw[5:idx]
			data = raw[idx+len(";base64,"):]
		}
	}

	return llm.Image{MediaType: mediaType, Data: data}
}
