package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/internal/repository/specification"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/pkg/insight"
)

// TrackedIssueService owns the tracked_issues table: CRUD, the manual
// resolve toggle, and auto-creation driven by InsightEngine's
// unresolved-items card — a carried-over action item becomes a tracked
// issue the first time it surfaces against a newer meeting.
type TrackedIssueService struct {
	uowFactory unitofwork.RepositoryFactory
	events     interface {
		PublishTrackedIssueCreated(ctx context.Context, issueId, ownerId string)
	}
	logger logger.ILogger
}

func NewTrackedIssueService(
	uowFactory unitofwork.RepositoryFactory,
	events interface {
		PublishTrackedIssueCreated(ctx context.Context, issueId, ownerId string)
	},
	appLogger logger.ILogger,
) *TrackedIssueService {
	return &TrackedIssueService{uowFactory: uowFactory, events: events, logger: appLogger}
}

func (s *TrackedIssueService) List(ctx context.Context, ownerId uuid.UUID, resolvedFilter *bool) ([]*entity.TrackedIssue, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{specification.IssueOwnedByUser{OwnerId: ownerId}}
	if resolvedFilter != nil {
		specs = append(specs, specification.IssueByResolved{Resolved: *resolvedFilter})
	}
	return uow.TrackedIssueRepository().FindAll(ctx, specs...)
}

func (s *TrackedIssueService) Resolve(ctx context.Context, ownerId, issueId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	issue, err := uow.TrackedIssueRepository().FindByIDOwned(ctx, issueId, ownerId)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if issue == nil {
		return apperrors.NewNotFoundError("tracked issue")
	}
	issue.Resolved = true
	now := time.Now()
	issue.ResolvedAt = &now
	if err := uow.TrackedIssueRepository().Update(ctx, issue); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// SyncFromUnresolvedCard upserts one TrackedIssue per entry in an
// unresolved-items card, skipping tasks already tracked for the same
// source meeting so recomputing insights never duplicates rows.
func (s *TrackedIssueService) SyncFromUnresolvedCard(ctx context.Context, ownerId uuid.UUID, cards []insight.Card) {
	for _, card := range cards {
		if card.Type != insight.CardUnresolvedItems {
			continue
		}
		entries, ok := card.Data.([]insight.UnresolvedItemEntry)
		if !ok {
			continue
		}
		for _, entry := range entries {
			s.upsertFromEntry(ctx, ownerId, entry)
		}
	}
}

func (s *TrackedIssueService) upsertFromEntry(ctx context.Context, ownerId uuid.UUID, entry insight.UnresolvedItemEntry) {
	sourceId, err := uuid.Parse(entry.SourceMeetingId)
	if err != nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TrackedIssueRepository().FindAll(ctx,
		specification.IssueOwnedByUser{OwnerId: ownerId},
		specification.Filter("issue_text", entry.Task),
	)
	if err != nil {
		s.logger.Warn("tracked_issue", "failed to check existing issues", map[string]interface{}{"error": err.Error()})
		return
	}
	for _, issue := range existing {
		if issue.SourceMeetingId != nil && *issue.SourceMeetingId == sourceId {
			return
		}
	}

	issue := &entity.TrackedIssue{
		OwnerId:            ownerId,
		IssueText:          entry.Task,
		Notes:              entry.Owner,
		SourceMeetingId:    &sourceId,
		SourceMeetingTitle: entry.SourceMeetingTitle,
		Resolved:           false,
	}
	if err := uow.TrackedIssueRepository().Create(ctx, issue); err != nil {
		s.logger.Warn("tracked_issue", "failed to auto-create tracked issue", map[string]interface{}{"error": err.Error()})
		return
	}
	s.events.PublishTrackedIssueCreated(ctx, issue.Id.String(), ownerId.String())
}
