package model

import "github.com/google/uuid"

type UsageCounter struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_month"`
	Month    string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_user_month"`
	Extracts int       `gorm:"not null;default:0"`
}

func (UsageCounter) TableName() string {
	return "usage"
}
