package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/internal/pkg/mailer"
	"github.com/meetingscribe/api/internal/repository/specification"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/pkg/extraction"
	"github.com/meetingscribe/api/pkg/insight"
	"github.com/meetingscribe/api/pkg/insightcache"
	"github.com/meetingscribe/api/pkg/tolerant"
	"github.com/meetingscribe/api/pkg/usage"
)

const insightCandidateLimit = 20

// MeetingService is the CRUD + derived-intelligence surface over
// meetings: plain create/read/update/delete, the standalone extraction
// endpoint gated by UsageGate, insights (InsightEngine), the
// what-changed diff, and sending a meeting's follow-up email.
type MeetingService struct {
	uowFactory   unitofwork.RepositoryFactory
	extractor    extraction.Provider
	usageGate    *usage.Gate
	issueService *TrackedIssueService
	emailService mailer.IEmailService
	logger       logger.ILogger
	insightCache *insightcache.Cache
}

func NewMeetingService(
	uowFactory unitofwork.RepositoryFactory,
	extractor extraction.Provider,
	usageGate *usage.Gate,
	issueService *TrackedIssueService,
	emailService mailer.IEmailService,
	appLogger logger.ILogger,
	insightCache *insightcache.Cache,
) *MeetingService {
	return &MeetingService{
		uowFactory:   uowFactory,
		extractor:    extractor,
		usageGate:    usageGate,
		issueService: issueService,
		emailService: emailService,
		logger:       appLogger,
		insightCache: insightCache,
	}
}

// Extract runs the UsageGate check, calls the extractor, tolerant-decodes
// the result, and consumes the usage counter only after a successful
// extraction — a failed extraction never counts against the plan.
func (s *MeetingService) Extract(ctx context.Context, ownerId uuid.UUID, notes string) (*entity.ExtractionRecord, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	check, err := s.usageGate.Check(ctx, user)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if !check.Allowed {
		return nil, apperrors.NewQuotaError("limit_reached", check.Message, 429)
	}

	raw, err := s.extractor.Extract(ctx, extraction.PromptPrefix, notes)
	if err != nil {
		return nil, apperrors.NewUpstreamError("extraction failed", 0, err.Error())
	}

	decoded, err := tolerant.Decode(raw)
	if err != nil {
		return nil, apperrors.NewDecodeError(raw)
	}

	record, err := decodeExtractionRecord(decoded)
	if err != nil {
		return nil, apperrors.NewDecodeError(raw)
	}

	if err := s.usageGate.Consume(ctx, ownerId); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return record, nil
}

func (s *MeetingService) Create(ctx context.Context, ownerId uuid.UUID, title, rawNotes string, record entity.ExtractionRecord) (*entity.Meeting, error) {
	if err := s.checkMeetingStorageQuota(ctx, ownerId); err != nil {
		return nil, err
	}
	meeting := &entity.Meeting{
		OwnerId:   ownerId,
		Title:     title,
		RawNotes:  rawNotes,
		Extracted: record,
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Create(ctx, meeting); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return meeting, nil
}

func (s *MeetingService) checkMeetingStorageQuota(ctx context.Context, ownerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, ownerId)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if user == nil {
		return apperrors.NewNotFoundError("user")
	}
	count, err := uow.MeetingRepository().Count(ctx, specification.MeetingOwnedByUser{OwnerId: ownerId})
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if !usage.MeetingStorageAllowed(user.Plan, int(count)) {
		return apperrors.NewQuotaError("meeting_limit", "Free plan meeting storage limit reached. Delete an existing meeting or upgrade.", 403)
	}
	return nil
}

func (s *MeetingService) List(ctx context.Context, ownerId uuid.UUID) ([]*entity.Meeting, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MeetingRepository().FindAll(ctx, specification.MeetingOwnedByUser{OwnerId: ownerId}, specification.OrderBy{Field: "created_at", Desc: true})
}

// Get enforces Invariant I-OwnerOnly: a meeting owned by someone else is
// reported as not-found, never forbidden.
func (s *MeetingService) Get(ctx context.Context, ownerId, meetingId uuid.UUID) (*entity.Meeting, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meeting, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: meetingId}, specification.MeetingOwnedByUser{OwnerId: ownerId})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if meeting == nil {
		return nil, apperrors.NewNotFoundError("meeting")
	}
	return meeting, nil
}

func (s *MeetingService) UpdateTranscript(ctx context.Context, ownerId, meetingId uuid.UUID, transcript string) error {
	meeting, err := s.Get(ctx, ownerId, meetingId)
	if err != nil {
		return err
	}
	meeting.RawNotes = transcript
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Update(ctx, meeting); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *MeetingService) UpdateExtraction(ctx context.Context, ownerId, meetingId uuid.UUID, record entity.ExtractionRecord) error {
	meeting, err := s.Get(ctx, ownerId, meetingId)
	if err != nil {
		return err
	}
	meeting.Extracted = record
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Update(ctx, meeting); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

func (s *MeetingService) Delete(ctx context.Context, ownerId, meetingId uuid.UUID) error {
	if _, err := s.Get(ctx, ownerId, meetingId); err != nil {
		return err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Delete(ctx, meetingId); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Insights assembles the prior-meetings set (direct history plus a widened
// candidate set from nearest embeddings) and runs InsightEngine over it.
func (s *MeetingService) Insights(ctx context.Context, ownerId, meetingId uuid.UUID) ([]insight.Card, error) {
	meeting, err := s.Get(ctx, ownerId, meetingId)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.insightCache.Get(ctx, meetingId, meeting.UpdatedAt); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	prior, err := uow.MeetingRepository().FindPriorToMeeting(ctx, ownerId, meetingId, insightCandidateLimit)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var embeddingCandidates []*entity.Meeting
	ownEmbedding, err := uow.MeetingEmbeddingRepository().FindByMeetingID(ctx, meetingId)
	if err == nil && ownEmbedding != nil {
		nearest, err := uow.MeetingEmbeddingRepository().FindNearest(ctx, ownerId, meetingId, ownEmbedding.EmbeddingValue, insightCandidateLimit)
		if err == nil {
			for _, emb := range nearest {
				candidate, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: emb.MeetingId})
				if err == nil && candidate != nil {
					embeddingCandidates = append(embeddingCandidates, candidate)
				}
			}
		}
	}

	cards := insight.BuildCards(meeting, prior, embeddingCandidates)
	if s.issueService != nil {
		s.issueService.SyncFromUnresolvedCard(ctx, ownerId, cards)
	}
	s.insightCache.Set(ctx, meetingId, meeting.UpdatedAt, cards)
	return cards, nil
}

func (s *MeetingService) WhatChanged(ctx context.Context, ownerId, meetingId uuid.UUID) (*insight.WhatChanged, error) {
	meeting, err := s.Get(ctx, ownerId, meetingId)
	if err != nil {
		return nil, err
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	mostRecentPrior, err := uow.MeetingRepository().FindMostRecentPrior(ctx, ownerId, meetingId, meeting.CreatedAt)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	result := insight.BuildWhatChanged(meeting, mostRecentPrior)
	return &result, nil
}

// SendFollowUp emails a meeting's extracted follow-up text verbatim to
// the owner. A blank follow-up email is rejected rather than sent empty.
func (s *MeetingService) SendFollowUp(ctx context.Context, ownerId, meetingId uuid.UUID) error {
	meeting, err := s.Get(ctx, ownerId, meetingId)
	if err != nil {
		return err
	}
	body := strings.TrimSpace(meeting.Extracted.FollowUpEmail)
	if body == "" {
		return apperrors.NewValidationError("meeting has no generated follow-up email")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.UserRepository().FindByID(ctx, ownerId)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if owner == nil {
		return apperrors.NewNotFoundError("user")
	}

	if err := s.emailService.SendFollowUp(owner.Email, "Follow-up: "+meeting.Title, body); err != nil {
		return apperrors.NewUpstreamError("failed to send follow-up email", 0, err.Error())
	}
	return nil
}

func decodeExtractionRecord(decoded map[string]interface{}) (*entity.ExtractionRecord, error) {
	record := &entity.ExtractionRecord{}

	if items, ok := decoded["action_items"].([]interface{}); ok {
		for _, raw := range items {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			record.ActionItems = append(record.ActionItems, entity.ActionItem{
				Task:     stringField(m, "task"),
				Owner:    stringField(m, "owner"),
				Deadline: stringField(m, "deadline"),
			})
		}
	}
	record.FollowUpEmail = stringField(decoded, "follow_up_email")
	record.Summary = stringField(decoded, "summary")
	record.OpenQuestions = stringSliceField(decoded, "open_questions")
	record.ProposedSolutions = stringSliceField(decoded, "proposed_solutions")
	return record, nil
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func stringSliceField(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
