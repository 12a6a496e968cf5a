package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

type UsageCounterRepository interface {
	// Get returns the counter row for (ownerId, month), or nil if absent.
	Get(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error)
	// EnsureRow lazily creates a zero-valued counter row if absent and
	// returns the current row either way.
	EnsureRow(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error)
	// Increment performs an atomic upsert-increment of extracts for
	// (ownerId, month). Safe under concurrent callers — I-UsageMonotone.
	Increment(ctx context.Context, ownerId uuid.UUID, month string) error
	// SumAllTime sums extracts across every month for ownerId. Used by the
	// free plan's lifetime cap.
	SumAllTime(ctx context.Context, ownerId uuid.UUID) (int, error)
}
