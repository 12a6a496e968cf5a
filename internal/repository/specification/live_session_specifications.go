package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LiveSessionOwnedByUser struct {
	OwnerId uuid.UUID
}

func (s LiveSessionOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerId)
}

type LiveSessionByStatus struct {
	Status string
}

func (s LiveSessionByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
