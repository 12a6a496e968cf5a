package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/mapper"
	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/internal/repository/contract"
	"github.com/meetingscribe/api/internal/repository/specification"
	"gorm.io/gorm"
)

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewMeetingRepository(db *gorm.DB) contract.MeetingRepository {
	return &MeetingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) Update(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Meeting{}, id).Error
}

func (r *MeetingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	var m model.Meeting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error) {
	var models []*model.Meeting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeetingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Meeting{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MeetingRepositoryImpl) FindPriorToMeeting(ctx context.Context, ownerId, excludeId uuid.UUID, limit int) ([]*entity.Meeting, error) {
	var models []*model.Meeting
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND id <> ?", ownerId, excludeId).
		Order("created_at DESC").
		Limit(limit)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeetingRepositoryImpl) FindMostRecentPrior(ctx context.Context, ownerId uuid.UUID, excludeId uuid.UUID, cutoff time.Time) (*entity.Meeting, error) {
	var m model.Meeting
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND id <> ? AND created_at < ?", ownerId, excludeId, cutoff).
		Order("created_at DESC")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
