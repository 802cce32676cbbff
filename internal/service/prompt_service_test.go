package service

import (
	"context"
	"strings"
	"testing"

	"content-variation-be/internal/dto"
	"content-variation-be/internal/entity"
	"content-variation-be/internal/repository/contract"
	"content-variation-be/internal/repository/memory"
	"content-variation-be/internal/repository/specification"
	"content-variation-be/internal/repository/unitofwork"
	"content-variation-be/pkg/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromptRepo struct {
	created []*entity.SavedPrompt
}

func (f *fakePromptRepo) Create(ctx context.Context, prompt *entity.SavedPrompt) error {
	f.created = append(f.created, prompt)
	return nil
}

func (f *fakePromptRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedPrompt, error) {
	return nil, nil
}

func (f *fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedPrompt, error) {
	return nil, nil
}

func (f *fakePromptRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeUnitOfWork struct {
	prompts *fakePromptRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository       { return nil }
func (f *fakeUnitOfWork) ProjectRepository() contract.ProjectRepository { return nil }
func (f *fakeUnitOfWork) PromptRepository() contract.PromptRepository   { return f.prompts }
func (f *fakeUnitOfWork) UsageRepository() contract.UsageRepository     { return nil }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newTestPromptService() (IPromptService, *memory.WorkflowRepository, *fakePromptRepo) {
	repo := &fakePromptRepo{}
	factory := &fakeRepositoryFactory{uow: &fakeUnitOfWork{prompts: repo}}
	sessions := memory.NewWorkflowRepository()
	svc := NewPromptService(factory, sessions, &capturePublisher{}, nil)
	return svc, sessions, repo
}

func TestPromptSaveAcceptsClientText(t *testing.T) {
	svc, sessions, repo := newTestPromptService()

	// No compiled prompt on the session: the client-held text wins anyway.
	sessions.Save(workflow.NewSession("sid"))

	res, err := svc.Save(context.Background(), uuid.New(), &dto.SavePromptRequest{
		SessionId:  "sid",
		PromptText: "hand-edited prompt text",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "hand-edited prompt text", repo.created[0].PromptText)
	assert.True(t, strings.HasPrefix(repo.created[0].ProjectName, "Prompt "), "default name is date-stamped")
}

func TestPromptSaveFallsBackToCompiledPrompt(t *testing.T) {
	svc, sessions, repo := newTestPromptService()

	session := workflow.NewSession("sid")
	session.ApplyExtraction(
		[]entity.ConfiguredSlide{{SlideData: entity.SlideData{SlideNumber: 1}, Decision: entity.DecisionVary}},
		&entity.AnalysisResult{},
		"",
	)
	require.NoError(t, session.BeginCompile())
	session.ApplyCompiled("the compiled prompt")
	sessions.Save(session)

	res, err := svc.Save(context.Background(), uuid.New(), &dto.SavePromptRequest{
		SessionId:   "sid",
		ProjectName: "My Project",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "the compiled prompt", repo.created[0].PromptText)
	assert.Equal(t, "My Project", repo.created[0].ProjectName)
}

func TestPromptSaveWithoutTextOrCompiledPrompt(t *testing.T) {
	svc, sessions, repo := newTestPromptService()

	sessions.Save(workflow.NewSession("sid"))

	_, err := svc.Save(context.Background(), uuid.New(), &dto.SavePromptRequest{SessionId: "sid"})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Empty(t, repo.created)
}

func TestPromptSaveUnknownSession(t *testing.T) {
	svc, _, _ := newTestPromptService()

	_, err := svc.Save(context.Background(), uuid.New(), &dto.SavePromptRequest{
		SessionId:  "missing",
		PromptText: "text",
	})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
