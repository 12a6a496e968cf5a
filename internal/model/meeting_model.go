package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting persists the extraction record as a JSON column (action_items).
// It is written as a unit by the mapper and parsed on read; no query ever
// filters on a field inside it.
type Meeting struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title      string         `gorm:"type:varchar(255)"`
	RawNotes   string         `gorm:"type:text"`
	ActionItems datatypes.JSON `gorm:"column:action_items;type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "meetings"
}
