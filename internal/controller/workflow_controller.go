package controller

import (
	"content-variation-be/internal/dto"
	"content-variation-be/internal/pkg/serverutils"
	"content-variation-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkflowController interface {
	RegisterRoutes(r fiber.Router)
}

type workflowController struct {
	workflowService service.IWorkflowService
}

func NewWorkflowController(workflowService service.IWorkflowService) IWorkflowController {
	return &workflowController{
		workflowService: workflowService,
	}
}

func (c *workflowController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workflow/v1")
	// Sessions work anonymously; identity is only picked up when present so
	// usage and events can be attributed.
	h.Use(serverutils.OptionalJwtMiddleware)

	h.Post("session", c.CreateSession)
	h.Get(":id", c.GetState)
	h.Post(":id/extract", c.Extract)
	h.Put(":id/slides/:number/decision", c.UpdateDecision)
	h.Put(":id/pain-point", c.UpdatePainPoint)
	h.Put(":id/tone", c.UpdateTone)
	h.Put(":id/brand", c.UpdateBrand)
	h.Put(":id/variation-count", c.UpdateVariationCount)
	h.Post(":id/compile", c.Compile)
	h.Post(":id/back", c.Back)
	h.Post(":id/reset", c.Reset)
	h.Post(":id/dismiss-error", c.DismissError)
	h.Post(":id/load/:projectId", c.LoadProject)
}

// optionalUserId resolves the caller's identity when a token was presented,
// uuid.Nil otherwise.
func optionalUserId(ctx *fiber.Ctx) uuid.UUID {
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if userId, err := uuid.Parse(userIdStr); err == nil {
			return userId
		}
	}
	return uuid.Nil
}

func (c *workflowController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.workflowService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *workflowController) GetState(ctx *fiber.Ctx) error {
	state, err := c.workflowService.GetState(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session state", state))
}

func (c *workflowController) Extract(ctx *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, err := c.workflowService.Extract(ctx.Context(), ctx.Params("id"), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Extraction finished", state))
}

func (c *workflowController) UpdateDecision(ctx *fiber.Ctx) error {
	slideNumber, err := ctx.ParamsInt("number")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid slide number")
	}

	var req dto.UpdateDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, err := c.workflowService.UpdateDecision(ctx.Params("id"), slideNumber, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Decision updated", state))
}

func (c *workflowController) UpdatePainPoint(ctx *fiber.Ctx) error {
	var req dto.UpdatePainPointRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, err := c.workflowService.UpdatePainPoint(ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pain point updated", state))
}

func (c *workflowController) UpdateTone(ctx *fiber.Ctx) error {
	var req dto.UpdateToneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, err := c.workflowService.UpdateTone(ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tone updated", state))
}

func (c *workflowController) UpdateBrand(ctx *fiber.Ctx) error {
	var req dto.UpdateBrandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	state, err := c.workflowService.UpdateBrand(ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Brand updated", state))
}

func (c *workflowController) UpdateVariationCount(ctx *fiber.Ctx) error {
	var req dto.UpdateVariationCountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	state, err := c.workflowService.UpdateVariationCount(ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Variation count updated", state))
}

func (c *workflowController) Compile(ctx *fiber.Ctx) error {
	state, err := c.workflowService.Compile(ctx.Context(), ctx.Params("id"), optionalUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Compile finished", state))
}

func (c *workflowController) Back(ctx *fiber.Ctx) error {
	state, err := c.workflowService.Back(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Back to configuration", state))
}

func (c *workflowController) Reset(ctx *fiber.Ctx) error {
	state, err := c.workflowService.Reset(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session reset", state))
}

func (c *workflowController) DismissError(ctx *fiber.Ctx) error {
	state, err := c.workflowService.DismissError(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Error dismissed", state))
}

func (c *workflowController) LoadProject(ctx *fiber.Ctx) error {
	userId := optionalUserId(ctx)
	if userId == uuid.Nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	state, err := c.workflowService.LoadProject(ctx.Context(), ctx.Params("id"), userId, projectId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project loaded", state))
}
