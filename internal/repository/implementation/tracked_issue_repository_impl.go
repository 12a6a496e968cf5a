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

type TrackedIssueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrackedIssueMapper
}

func NewTrackedIssueRepository(db *gorm.DB) contract.TrackedIssueRepository {
	return &TrackedIssueRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrackedIssueMapper(),
	}
}

func (r *TrackedIssueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TrackedIssueRepositoryImpl) Create(ctx context.Context, issue *entity.TrackedIssue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrackedIssueRepositoryImpl) Update(ctx context.Context, issue *entity.TrackedIssue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrackedIssueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrackedIssue, error) {
	var m model.TrackedIssue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TrackedIssueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrackedIssue, error) {
	var models []*model.TrackedIssue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TrackedIssueRepositoryImpl) FindByIDOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.TrackedIssue, error) {
	return r.FindOne(ctx, specification.ByID{ID: id}, specification.IssueOwnedByUser{OwnerId: ownerId})
}
