package model

import "github.com/google/uuid"

type TranscriptSegment struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_segment"`
	SegmentIndex int       `gorm:"not null;uniqueIndex:idx_session_segment"`
	Text         string    `gorm:"type:text"`
	TimestampMs  int64     `gorm:"not null"`
	Speaker      string    `gorm:"type:varchar(50);not null;default:'Speaker'"`
	IsFinal      bool      `gorm:"not null;default:true"`
}

func (TranscriptSegment) TableName() string {
	return "transcript_segments"
}
