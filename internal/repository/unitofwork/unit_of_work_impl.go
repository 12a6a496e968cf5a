package unitofwork

import (
	"context"
	"fmt"

	"github.com/meetingscribe/api/internal/repository/contract"
	"github.com/meetingscribe/api/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Begin starts the transaction that pairs a guard check with its insert
// for Invariant S (single active session) and for segment index
// allocation (Invariant T).
func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MeetingRepository() contract.MeetingRepository {
	return implementation.NewMeetingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LiveSessionRepository() contract.LiveSessionRepository {
	return implementation.NewLiveSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TranscriptSegmentRepository() contract.TranscriptSegmentRepository {
	return implementation.NewTranscriptSegmentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UsageCounterRepository() contract.UsageCounterRepository {
	return implementation.NewUsageCounterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrackedIssueRepository() contract.TrackedIssueRepository {
	return implementation.NewTrackedIssueRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MeetingEmbeddingRepository() contract.MeetingEmbeddingRepository {
	return implementation.NewMeetingEmbeddingRepository(u.getDB())
}
