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
	"content-variation-be/pkg/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectService interface {
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProjectRequest) (*dto.SaveProjectResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectSummaryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateProjectRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type projectService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.WorkflowRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewProjectService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.WorkflowRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IProjectService {
	return &projectService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// Save snapshots the session's configuration into a durable project. The
// compiled prompt is deliberately not part of the snapshot.
func (s *projectService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProjectRequest) (*dto.SaveProjectResponse, error) {
	session, found := s.sessions.Get(req.SessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	state := session.Snapshot()
	if len(state.Slides) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Nothing to save yet")
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Project %s", time.Now().Format("Jan 2, 2006"))
	}

	project := &entity.Project{
		Id:             uuid.New(),
		UserId:         userId,
		Name:           name,
		Images:         state.Images,
		Slides:         state.Slides,
		Analysis:       state.Analysis,
		Brand:          state.Brand,
		PainPoint:      state.PainPoint,
		Tone:           state.Tone,
		VariationCount: state.VariationCount,
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	s.recordUsage(ctx, userId, entity.UsageActionSaveProject)
	s.publishEvent(ctx, session.ID, userId, map[string]interface{}{
		"project_id":   project.Id.String(),
		"project_name": project.Name,
	})

	return &dto.SaveProjectResponse{Id: project.Id, Name: project.Name}, nil
}

func (s *projectService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProjectSummaryResponse, len(projects))
	for i, p := range projects {
		res[i] = &dto.ProjectSummaryResponse{
			Id:         p.Id,
			Name:       p.Name,
			SlideCount: len(p.Slides),
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		}
	}
	return res, nil
}

func (s *projectService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowProjectResponse, error) {
	project, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	return &dto.ShowProjectResponse{
		Id:             project.Id,
		Name:           project.Name,
		Images:         project.Images,
		Slides:         project.Slides,
		Analysis:       project.Analysis,
		Brand:          project.Brand,
		PainPoint:      project.PainPoint,
		Tone:           project.Tone,
		VariationCount: project.VariationCount,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}, nil
}

// Update applies a partial update: only the fields present in the request
// touch the stored project.
func (s *projectService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateProjectRequest) error {
	project, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Brand != nil {
		project.Brand = *req.Brand
	}
	if req.VariationCount != nil {
		project.VariationCount = workflow.ClampVariationCount(*req.VariationCount)
	}
	if req.PainPoint != nil {
		project.PainPoint = *req.PainPoint
	}
	if req.Tone != nil {
		project.Tone = *req.Tone
	}
	now := time.Now()
	project.UpdatedAt = &now

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProjectRepository().Update(ctx, project)
}

func (s *projectService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	project, err := s.findOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProjectRepository().Delete(ctx, project.Id)
}

// findOwned resolves a project only if it belongs to the caller. A foreign
// project id behaves exactly like a missing one.
func (s *projectService) findOwned(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*entity.Project, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	return project, nil
}

func (s *projectService) recordUsage(ctx context.Context, userId uuid.UUID, action string) {
	msg, err := json.Marshal(dto.RecordUsageMessage{UserId: userId, Action: action})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		fmt.Printf("[WARN] Failed to publish usage message: %v\n", err)
	}
}

func (s *projectService) publishEvent(ctx context.Context, sessionId string, userId uuid.UUID, extra map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewWorkflowEvent(entity.UsageActionSaveProject, sessionId, userId, extra)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", entity.UsageActionSaveProject, err)
	}
}
