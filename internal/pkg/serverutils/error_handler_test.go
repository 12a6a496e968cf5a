package serverutils

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandlerMiddleware})
	app.Get("/", func(ctx *fiber.Ctx) error { return err })

	req := httptest.NewRequest("GET", "/", nil)
	resp, testErr := app.Test(req, -1)
	if testErr != nil {
		t.Fatalf("app.Test failed: %v", testErr)
	}
	return resp.StatusCode
}

func TestErrorHandlerMiddlewareStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", apperrors.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"unauthenticated error", apperrors.NewUnauthenticatedError(), fiber.StatusUnauthorized},
		{"forbidden error", apperrors.NewForbiddenError("nope"), fiber.StatusForbidden},
		{"quota error", apperrors.NewQuotaError("limit_reached", "too many", fiber.StatusTooManyRequests), fiber.StatusTooManyRequests},
		{"not found error", apperrors.NewNotFoundError("meeting"), fiber.StatusNotFound},
		{"conflict error", apperrors.NewConflictError("session active", "abc"), fiber.StatusConflict},
		{"upstream error", apperrors.NewUpstreamError("boom", 503, "body"), fiber.StatusInternalServerError},
		{"decode error", apperrors.NewDecodeError("not json"), fiber.StatusInternalServerError},
		{"storage error", apperrors.NewStorageError(errors.New("db down")), fiber.StatusInternalServerError},
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "teapot"), fiber.StatusTeapot},
		{"unknown error", errors.New("mystery"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(t, tt.err); got != tt.wantStatus {
				t.Errorf("status = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestErrorHandlerMiddlewareWrappedError(t *testing.T) {
	wrapped := errors.New("wrapper: " + apperrors.NewNotFoundError("meeting").Error())
	if got := statusFor(t, wrapped); got != fiber.StatusInternalServerError {
		t.Errorf("a plain-wrapped message (not errors.As-compatible) should fall through to 500, got %d", got)
	}
}
