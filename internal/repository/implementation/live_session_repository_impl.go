package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/mapper"
	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/internal/repository/contract"
	"github.com/meetingscribe/api/internal/repository/specification"
	"gorm.io/gorm"
)

type LiveSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LiveSessionMapper
}

func NewLiveSessionRepository(db *gorm.DB) contract.LiveSessionRepository {
	return &LiveSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewLiveSessionMapper(),
	}
}

func (r *LiveSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LiveSessionRepositoryImpl) Create(ctx context.Context, session *entity.LiveSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *LiveSessionRepositoryImpl) Update(ctx context.Context, session *entity.LiveSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *LiveSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LiveSession, error) {
	var m model.LiveSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LiveSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LiveSession, error) {
	var models []*model.LiveSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// FindActiveByOwner is always called with the caller's transaction as db,
// and paired with Create by LiveSessionManager inside that same
// transaction — that pairing is what makes Invariant S hold.
func (r *LiveSessionRepositoryImpl) FindActiveByOwner(ctx context.Context, ownerId uuid.UUID) (*entity.LiveSession, error) {
	return r.FindOne(ctx, specification.LiveSessionOwnedByUser{OwnerId: ownerId}, specification.LiveSessionByStatus{Status: string(entity.LiveSessionActive)})
}

func (r *LiveSessionRepositoryImpl) FindByIDOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.LiveSession, error) {
	return r.FindOne(ctx, specification.ByID{ID: id}, specification.LiveSessionOwnedByUser{OwnerId: ownerId})
}
