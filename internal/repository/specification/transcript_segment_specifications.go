package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SegmentBySession struct {
	SessionId uuid.UUID
}

func (s SegmentBySession) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}
