package entity

import "github.com/google/uuid"

// UsageCounter is keyed by (user, month). Extracts is monotonic and is
// incremented only on successful extraction — I-UsageMonotone.
type UsageCounter struct {
	Id      uuid.UUID
	OwnerId uuid.UUID
	Month   string // "YYYY-MM"
	Extracts int
}
