package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingOwnedByUser restricts a query to a single owner's meetings.
// I-OwnerOnly: callers rely on this to turn a non-owned row into a plain
// not-found rather than a distinguishable forbidden.
type MeetingOwnedByUser struct {
	OwnerId uuid.UUID
}

func (s MeetingOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerId)
}

// MeetingCreatedBefore restricts to meetings created strictly before a
// cutoff, ordered newest-first by the caller. Used to find "the most
// recent prior meeting" for the what-changed diff.
type MeetingCreatedBefore struct {
	Cutoff time.Time
}

func (s MeetingCreatedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at < ?", s.Cutoff)
}

// MeetingExcludingID excludes a single meeting, used to keep the focal
// meeting out of its own "prior meetings" set.
type MeetingExcludingID struct {
	ID uuid.UUID
}

func (s MeetingExcludingID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}
