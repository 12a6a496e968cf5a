package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetingEmbedding is an optional secondary signal populated asynchronously
// after a meeting is persisted. EmbeddingAugmenter uses nearest-neighbor
// distance over these rows to widen the set of prior meetings considered
// by InsightEngine's Recurring Topics card — it never overrides the
// deterministic keyword-overlap verdict.
type MeetingEmbedding struct {
	Id             uuid.UUID
	MeetingId      uuid.UUID
	OwnerId        uuid.UUID
	EmbeddingValue []float32
	CreatedAt      time.Time
}
