package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageByOwnerAndMonth struct {
	OwnerId uuid.UUID
	Month   string
}

func (s UsageByOwnerAndMonth) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ? AND month = ?", s.OwnerId, s.Month)
}

type UsageByOwner struct {
	OwnerId uuid.UUID
}

func (s UsageByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerId)
}
