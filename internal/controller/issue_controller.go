package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/dto"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/serverutils"
	"github.com/meetingscribe/api/internal/service"
)

type IIssueController interface {
	RegisterRoutes(r fiber.Router)
}

type issueController struct {
	issues *service.TrackedIssueService
}

func NewIssueController(issues *service.TrackedIssueService) IIssueController {
	return &issueController{issues: issues}
}

func (c *issueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/issues", serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Patch("/:id/resolve", c.Resolve)
}

func (c *issueController) List(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}

	var resolvedFilter *bool
	if raw := ctx.Query("resolved"); raw != "" {
		resolved := raw == "true"
		resolvedFilter = &resolved
	}

	issues, err := c.issues.List(ctx.Context(), ownerId, resolvedFilter)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, dto.NewTrackedIssueResponses(issues))
}

func (c *issueController) Resolve(ctx *fiber.Ctx) error {
	ownerId, err := serverutils.OwnerID(ctx)
	if err != nil {
		return err
	}
	issueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid issue id")
	}
	if err := c.issues.Resolve(ctx.Context(), ownerId, issueId); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, fiber.Map{"ok": true})
}
