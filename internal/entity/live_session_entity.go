package entity

import (
	"time"

	"github.com/google/uuid"
)

type LiveSessionStatus string

const (
	LiveSessionActive    LiveSessionStatus = "active"
	LiveSessionCompleted LiveSessionStatus = "completed"
	LiveSessionFailed    LiveSessionStatus = "failed"
)

// LiveSession is a single recording session. Invariant S: at most one
// active session may exist per owner at any instant; enforced by pairing
// the existence check with the insert inside one storage transaction.
type LiveSession struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	Title        string
	Participants string
	Status       LiveSessionStatus
	StartedAt    time.Time
	EndedAt      *time.Time
	MeetingId    *uuid.UUID
}
