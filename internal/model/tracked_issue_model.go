package model

import (
	"time"

	"github.com/google/uuid"
)

type TrackedIssue struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	IssueText          string     `gorm:"type:text;not null"`
	Notes              string     `gorm:"type:text"`
	SourceMeetingId    *uuid.UUID `gorm:"type:uuid"`
	SourceMeetingTitle string     `gorm:"type:varchar(255)"`
	Resolved           bool       `gorm:"not null;default:false"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	ResolvedAt         *time.Time
}

func (TrackedIssue) TableName() string {
	return "tracked_issues"
}
