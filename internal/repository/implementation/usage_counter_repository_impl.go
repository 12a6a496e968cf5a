package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/mapper"
	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/internal/repository/contract"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageCounterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageCounterMapper
}

func NewUsageCounterRepository(db *gorm.DB) contract.UsageCounterRepository {
	return &UsageCounterRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageCounterMapper(),
	}
}

func (r *UsageCounterRepositoryImpl) Get(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error) {
	var m model.UsageCounter
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND month = ?", ownerId, month).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UsageCounterRepositoryImpl) EnsureRow(ctx context.Context, ownerId uuid.UUID, month string) (*entity.UsageCounter, error) {
	m := &model.UsageCounter{OwnerId: ownerId, Month: month, Extracts: 0}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, ownerId, month)
}

// Increment is an atomic upsert-increment: a fresh row starts at 1, an
// existing row's extracts is bumped by 1 in the same statement. Safe
// under concurrent callers for the same (owner, month) — I-UsageMonotone.
func (r *UsageCounterRepositoryImpl) Increment(ctx context.Context, ownerId uuid.UUID, month string) error {
	m := &model.UsageCounter{OwnerId: ownerId, Month: month, Extracts: 1}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"extracts": gorm.Expr("usage.extracts + 1")}),
		}).
		Create(m).Error
}

func (r *UsageCounterRepositoryImpl) SumAllTime(ctx context.Context, ownerId uuid.UUID) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&model.UsageCounter{}).
		Where("owner_id = ?", ownerId).
		Select("COALESCE(SUM(extracts), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
