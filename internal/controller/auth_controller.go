package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/serverutils"
	"github.com/meetingscribe/api/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	DevToken(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{service: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/dev-token", c.DevToken)
}

type devTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// DevToken is the boundary stub that stands in for real account auth:
// find-or-create a user by email, return a signed bearer token.
func (c *authController) DevToken(ctx *fiber.Ctx) error {
	var req devTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	token, err := c.service.IssueDevToken(ctx.Context(), req.Email)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"token": token})
}
