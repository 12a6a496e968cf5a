package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

type MeetingEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.MeetingEmbedding) error
	FindByMeetingID(ctx context.Context, meetingId uuid.UUID) (*entity.MeetingEmbedding, error)
	// FindNearest returns up to limit embeddings owned by ownerId (excluding
	// excludeMeetingId) ordered by Euclidean (L2) distance to value, nearest
	// first.
	// EmbeddingAugmenter uses this to widen the Recurring Topics candidate
	// set; it never substitutes for the keyword-overlap gate.
	FindNearest(ctx context.Context, ownerId, excludeMeetingId uuid.UUID, value []float32, limit int) ([]*entity.MeetingEmbedding, error)
}
