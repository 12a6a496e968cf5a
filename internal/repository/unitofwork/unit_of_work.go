package unitofwork

import (
	"context"

	"github.com/meetingscribe/api/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MeetingRepository() contract.MeetingRepository
	LiveSessionRepository() contract.LiveSessionRepository
	TranscriptSegmentRepository() contract.TranscriptSegmentRepository
	UsageCounterRepository() contract.UsageCounterRepository
	TrackedIssueRepository() contract.TrackedIssueRepository
	MeetingEmbeddingRepository() contract.MeetingEmbeddingRepository
}
