package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

type TranscriptSegmentRepository interface {
	// Insert allocates the next dense segment index for sessionId (max+1,
	// defaulting to 0) and persists the segment, reading the current max and
	// then inserting, both inside the caller's transaction. Returns the
	// allocated index.
	Insert(ctx context.Context, segment *entity.TranscriptSegment) (int, error)
	ListOrdered(ctx context.Context, sessionId uuid.UUID) ([]*entity.TranscriptSegment, error)
}
