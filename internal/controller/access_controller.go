package controller

import (
	"content-variation-be/internal/dto"
	"content-variation-be/internal/pkg/serverutils"
	"content-variation-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAccessController interface {
	RegisterRoutes(r fiber.Router)
	Verify(ctx *fiber.Ctx) error
}

type accessController struct {
	authService service.IAuthService
}

func NewAccessController(authService service.IAuthService) IAccessController {
	return &accessController{
		authService: authService,
	}
}

func (c *accessController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/access/v1")
	h.Post("verify", c.Verify)
}

func (c *accessController) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifyAccessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.authService.VerifyAccess(&req)
	if !res.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid access code"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Access granted", res))
}
