package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
	"github.com/pgvector/pgvector-go"
)

type MeetingEmbeddingMapper struct{}

func NewMeetingEmbeddingMapper() *MeetingEmbeddingMapper {
	return &MeetingEmbeddingMapper{}
}

func (m *MeetingEmbeddingMapper) ToEntity(e *model.MeetingEmbedding) *entity.MeetingEmbedding {
	if e == nil {
		return nil
	}
	return &entity.MeetingEmbedding{
		Id:             e.Id,
		MeetingId:      e.MeetingId,
		OwnerId:        e.OwnerId,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *MeetingEmbeddingMapper) ToEntities(embeddings []*model.MeetingEmbedding) []*entity.MeetingEmbedding {
	entities := make([]*entity.MeetingEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *MeetingEmbeddingMapper) ToModel(e *entity.MeetingEmbedding) *model.MeetingEmbedding {
	if e == nil {
		return nil
	}
	return &model.MeetingEmbedding{
		Id:             e.Id,
		MeetingId:      e.MeetingId,
		OwnerId:        e.OwnerId,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}
