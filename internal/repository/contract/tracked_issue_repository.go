package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/repository/specification"
)

type TrackedIssueRepository interface {
	Create(ctx context.Context, issue *entity.TrackedIssue) error
	Update(ctx context.Context, issue *entity.TrackedIssue) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrackedIssue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrackedIssue, error)
	FindByIDOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.TrackedIssue, error)
}
