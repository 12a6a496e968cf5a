package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
)

// ErrorHandlerMiddleware centralizes the mapping from typed application
// errors to HTTP status and response body, per the error handling design:
// ValidationError->400, AuthError->401/403, QuotaError->403/429 with a
// machine-readable code, NotFound->404, Conflict->409, UpstreamError/
// DecodeError/StorageError->500.
func ErrorHandlerMiddleware(ctx *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	var authErr *apperrors.AuthError
	var quotaErr *apperrors.QuotaError
	var notFoundErr *apperrors.NotFoundError
	var conflictErr *apperrors.ConflictError
	var upstreamErr *apperrors.UpstreamError
	var decodeErr *apperrors.DecodeError
	var storageErr *apperrors.StorageError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": validationErr.Message})
	case errors.As(err, &authErr):
		return ctx.Status(authErr.Status).JSON(fiber.Map{"message": authErr.Message})
	case errors.As(err, &quotaErr):
		return ctx.Status(quotaErr.Status).JSON(fiber.Map{"error": quotaErr.Code, "message": quotaErr.Message})
	case errors.As(err, &notFoundErr):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": notFoundErr.Message})
	case errors.As(err, &conflictErr):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":      "session_active",
			"session_id": conflictErr.SessionId,
			"message":    conflictErr.Message,
		})
	case errors.As(err, &upstreamErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "upstream provider call failed"})
	case errors.As(err, &decodeErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to parse AI response"})
	case errors.As(err, &storageErr):
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal storage error"})
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
