package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type MeetingEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MeetingId      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OwnerId        uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (MeetingEmbedding) TableName() string {
	return "meeting_embeddings"
}
