package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/memory"
	"content-variation-be/internal/repository/specification"
	"content-variation-be/internal/repository/unitofwork"
	"content-variation-be/pkg/events"
	pktNats "content-variation-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPromptService interface {
	Save(ctx context.Context, userId uuid.UUID, req *dto.SavePromptRequest) (*dto.SavePromptResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowPromptResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowPromptResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type promptService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.WorkflowRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewPromptService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.WorkflowRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IPromptService {
	return &promptService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// Save persists prompt text against the session. The client may send edited
// text of its own; without it the session must hold a compiled prompt.
func (s *promptService) Save(ctx context.Context, userId uuid.UUID, req *dto.SavePromptRequest) (*dto.SavePromptResponse, error) {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	promptText := req.PromptText
	if promptText == "" {
		state := session.Snapshot()
		if state.CompiledPrompt == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "No compiled prompt to save")
		}
		promptText = *state.CompiledPrompt
	}

	projectName := req.ProjectName
	if projectName == "" {
		projectName = fmt.Sprintf("Prompt %s", time.Now().Format("Jan 2, 2006"))
	}

	prompt := &entity.SavedPrompt{
		Id:          uuid.New(),
		UserId:      userId,
		ProjectId:   req.ProjectId,
		ProjectName: projectName,
		PromptText:  promptText,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PromptRepository().Create(ctx, prompt); err != nil {
		return nil, err
	}

	s.recordUsage(ctx, userId, entity.UsageActionSavePrompt)
	if s.eventPublisher != nil {
		evt := events.NewWorkflowEvent(entity.UsageActionSavePrompt, session.ID, userId, map[string]interface{}{
			"prompt_id":    prompt.Id.String(),
			"project_name": prompt.ProjectName,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", entity.UsageActionSavePrompt, err)
		}
	}

	return &dto.SavePromptResponse{Id: prompt.Id}, nil
}

func (s *promptService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.PromptRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowPromptResponse, len(prompts))
	for i, p := range prompts {
		res[i] = toPromptResponse(p)
	}
	return res, nil
}

func (s *promptService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowPromptResponse, error) {
	prompt, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	return toPromptResponse(prompt), nil
}

func (s *promptService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	prompt, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PromptRepository().Delete(ctx, prompt.Id)
}

func (s *promptService) findOwned(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.SavedPrompt, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	prompt, err := uow.PromptRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Prompt not found")
	}
	return prompt, nil
}

func (s *promptService) recordUsage(ctx context.Context, userId uuid.UUID, action string) {
	msg, err := json.Marshal(dto.RecordUsageMessage{UserId: userId, Action: action})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		fmt.Printf("[WARN] Failed to publish usage message: %v\n", err)
	}
}

func toPromptResponse(p *entity.SavedPrompt) *dto.ShowPromptResponse {
	return &dto.ShowPromptResponse{
		Id:          p.Id,
		ProjectId:   p.ProjectId,
		ProjectName: p.ProjectName,
		PromptText:  p.PromptText,
		CreatedAt:   p.CreatedAt,
	}
}
