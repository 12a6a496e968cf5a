package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
)

// OwnerID reads the user id JwtMiddleware stashed in ctx.Locals and
// parses it as a UUID. Every authenticated route needs this.
func OwnerID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, apperrors.NewUnauthenticatedError()
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewUnauthenticatedError()
	}
	return id, nil
}
