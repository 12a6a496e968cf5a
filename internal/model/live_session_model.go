package model

import (
	"time"

	"github.com/google/uuid"
)

type LiveSession struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(255)"`
	Participants string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active'"`
	StartedAt    time.Time  `gorm:"not null"`
	EndedAt      *time.Time
	MeetingId    *uuid.UUID `gorm:"type:uuid"`
}

func (LiveSession) TableName() string {
	return "live_sessions"
}
