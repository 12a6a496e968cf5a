package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/mapper"
	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/internal/repository/contract"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeetingEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingEmbeddingMapper
}

func NewMeetingEmbeddingRepository(db *gorm.DB) contract.MeetingEmbeddingRepository {
	return &MeetingEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingEmbeddingMapper(),
	}
}

func (r *MeetingEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.MeetingEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding_value"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingEmbeddingRepositoryImpl) FindByMeetingID(ctx context.Context, meetingId uuid.UUID) (*entity.MeetingEmbedding, error) {
	var m model.MeetingEmbedding
	err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingEmbeddingRepositoryImpl) FindNearest(ctx context.Context, ownerId, excludeMeetingId uuid.UUID, value []float32, limit int) ([]*entity.MeetingEmbedding, error) {
	vec := pgvector.NewVector(value)
	var models []*model.MeetingEmbedding
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND meeting_id <> ?", ownerId, excludeMeetingId).
		Order(clause.Expr{SQL: "embedding_value <-> ?", Vars: []interface{}{vec}}).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
