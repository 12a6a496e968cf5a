package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/repository/specification"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *entity.Meeting) error
	Update(ctx context.Context, meeting *entity.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindPriorToMeeting returns up to limit meetings owned by ownerId,
	// excluding excludeId, ordered most-recent-first. Used by InsightEngine
	// to assemble the "prior meetings" set.
	FindPriorToMeeting(ctx context.Context, ownerId, excludeId uuid.UUID, limit int) ([]*entity.Meeting, error)
	// FindMostRecentPrior returns the single most recent meeting created
	// strictly before cutoff, or nil if none exists. Used by the
	// what-changed diff.
	FindMostRecentPrior(ctx context.Context, ownerId uuid.UUID, excludeId uuid.UUID, cutoff time.Time) (*entity.Meeting, error)
}
