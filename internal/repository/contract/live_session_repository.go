package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/repository/specification"
)

type LiveSessionRepository interface {
	Create(ctx context.Context, session *entity.LiveSession) error
	Update(ctx context.Context, session *entity.LiveSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveSession, error)
	// FindActiveByOwner returns the owner's single active session, or nil.
	// Invariant S relies on callers pairing this with Create inside one
	// transaction.
	FindActiveByOwner(ctx context.Context, ownerId uuid.UUID) (*entity.LiveSession, error)
	FindByIDOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.LiveSession, error)
}
