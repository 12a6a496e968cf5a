package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueOwnedByUser struct {
	OwnerId uuid.UUID
}

func (s IssueOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerId)
}

type IssueByResolved struct {
	Resolved bool
}

func (s IssueByResolved) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("resolved = ?", s.Resolved)
}
