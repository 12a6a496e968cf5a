// Package service holds the domain services sitting between the HTTP
// facade and the repository layer: LiveSessionManager, MeetingIngest, and
// the meeting/insight/issue services built on top of them.
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/dto"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/internal/repository/specification"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/pkg/extraction"
	"github.com/meetingscribe/api/pkg/keyword"
	"github.com/meetingscribe/api/pkg/meetingevents"
	"github.com/meetingscribe/api/pkg/tolerant"
	"github.com/meetingscribe/api/pkg/transcription"
	"github.com/meetingscribe/api/pkg/usage"
)

const keepaliveInterval = 15 * time.Second

type ChunkResult struct {
	Ok           bool
	SegmentIndex *int
	Silent       bool
}

type StopResult struct {
	MeetingId *uuid.UUID
	Title     string
	Message   string
}

type StatusResult struct {
	Session      *entity.LiveSession
	SegmentCount int
}

type MemoryHint struct {
	MeetingId    string   `json:"meeting_id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	SharedTopics []string `json:"shared_topics"`
	Snippet      string   `json:"snippet"`
}

// LiveSessionManager owns the live recording lifecycle: start, chunk
// ingestion, the SSE push channel, memory hints, and stop/finalize.
type LiveSessionManager struct {
	uowFactory      unitofwork.RepositoryFactory
	transcriber     transcription.Provider
	mockTranscriber *transcription.MockProvider
	extractor       extraction.Provider
	usageGate       *usage.Gate
	events          meetingevents.Publisher
	logger          logger.ILogger
	push            *pushRegistry
	embedPublisher  IPublisherService
	embedTopic      string
}

func NewLiveSessionManager(
	uowFactory unitofwork.RepositoryFactory,
	transcriber transcription.Provider,
	extractor extraction.Provider,
	usageGate *usage.Gate,
	events meetingevents.Publisher,
	appLogger logger.ILogger,
	embedPublisher IPublisherService,
	embedTopic string,
) *LiveSessionManager {
	mock, _ := transcriber.(*transcription.MockProvider)
	return &LiveSessionManager{
		uowFactory:      uowFactory,
		transcriber:     transcriber,
		mockTranscriber: mock,
		extractor:       extractor,
		usageGate:       usageGate,
		events:          events,
		logger:          appLogger,
		push:            newPushRegistry(),
		embedPublisher:  embedPublisher,
		embedTopic:      embedTopic,
	}
}

// Start enforces Invariant S (no second active session per owner) and the
// meeting-storage quota inside a single transaction, so a concurrent
// start cannot slip a second active session past the guard.
func (m *LiveSessionManager) Start(ctx context.Context, ownerId uuid.UUID, title, participants string) (*entity.LiveSession, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	existing, err := uow.LiveSessionRepository().FindActiveByOwner(ctx, ownerId)
	if err != nil {
		uow.Rollback()
		return nil, apperrors.NewStorageError(err)
	}
	if existing != nil {
		uow.Rollback()
		return nil, apperrors.NewConflictError("session already active", existing.Id.String())
	}

	user, err := uow.UserRepository().FindByID(ctx, ownerId)
	if err != nil {
		uow.Rollback()
		return nil, apperrors.NewStorageError(err)
	}
	if user == nil {
		uow.Rollback()
		return nil, apperrors.NewNotFoundError("user")
	}

	meetingCount, err := uow.MeetingRepository().Count(ctx, specification.MeetingOwnedByUser{OwnerId: ownerId})
	if err != nil {
		uow.Rollback()
		return nil, apperrors.NewStorageError(err)
	}
	if !usage.MeetingStorageAllowed(user.Plan, int(meetingCount)) {
		uow.Rollback()
		return nil, apperrors.NewQuotaError("meeting_limit", "Free plan meeting storage limit reached. Delete an existing meeting or upgrade.", 403)
	}

	session := &entity.LiveSession{
		OwnerId:      ownerId,
		Title:        title,
		Participants: participants,
		Status:       entity.LiveSessionActive,
		StartedAt:    time.Now(),
	}
	if err := uow.LiveSessionRepository().Create(ctx, session); err != nil {
		uow.Rollback()
		return nil, apperrors.NewStorageError(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if m.mockTranscriber != nil {
		m.mockTranscriber.ResetSession(session.Id)
	}
	m.events.PublishLiveSessionStarted(ctx, session.Id.String(), ownerId.String())
	return session, nil
}

// Chunk implements the six-step per-chunk processing pipeline. Failures
// here are isolated to the chunk uploader: the session stays active and
// nothing is reported to the push subscriber.
func (m *LiveSessionManager) Chunk(ctx context.Context, sessionId, ownerId uuid.UUID, audio []byte, timestampMs int64, formatHint string) (*ChunkResult, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.LiveSessionRepository().FindByIDOwned(ctx, sessionId, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("live session")
	}
	if session.Status != entity.LiveSessionActive {
		return nil, apperrors.NewValidationError("live session is not active")
	}

	text, err := m.transcribeChunk(ctx, sessionId, audio, formatHint)
	if err != nil {
		return nil, apperrors.NewUpstreamError("transcription failed", 0, err.Error())
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &ChunkResult{Ok: true, Silent: true}, nil
	}

	tx := m.uowFactory.NewUnitOfWork(ctx)
	if err := tx.Begin(ctx); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	segment := &entity.TranscriptSegment{
		SessionId:   sessionId,
		Text:        trimmed,
		TimestampMs: timestampMs,
		Speaker:     entity.SpeakerPlaceholder,
		IsFinal:     true,
	}
	index, err := tx.TranscriptSegmentRepository().Insert(ctx, segment)
	if err != nil {
		tx.Rollback()
		return nil, apperrors.NewStorageError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	m.push.Publish(sessionId, PushEvent{Event: "", Data: segmentPayload(segment)})
	return &ChunkResult{Ok: true, SegmentIndex: &index}, nil
}

func (m *LiveSessionManager) transcribeChunk(ctx context.Context, sessionId uuid.UUID, audio []byte, formatHint string) (string, error) {
	if m.mockTranscriber != nil {
		return m.mockTranscriber.TranscribeForSession(ctx, sessionId, audio, formatHint)
	}
	return m.transcriber.Transcribe(ctx, audio, formatHint)
}

// Stop concatenates every segment in index order, runs extraction and the
// tolerant decoder, and persists a new meeting. Any extraction or decode
// failure is swallowed into an empty record; the transcript is still
// saved. Zero segments transitions the session to failed with no meeting.
func (m *LiveSessionManager) Stop(ctx context.Context, sessionId, ownerId uuid.UUID) (*StopResult, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.LiveSessionRepository().FindByIDOwned(ctx, sessionId, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("live session")
	}
	if session.Status != entity.LiveSessionActive {
		return nil, apperrors.NewValidationError("live session is not active")
	}

	segments, err := uow.TranscriptSegmentRepository().ListOrdered(ctx, sessionId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	now := time.Now()

	if len(segments) == 0 {
		session.Status = entity.LiveSessionFailed
		session.EndedAt = &now
		if err := uow.LiveSessionRepository().Update(ctx, session); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		m.push.CloseSession(sessionId, PushEvent{Event: "stopped", Data: map[string]interface{}{}})
		m.events.PublishLiveSessionStopped(ctx, sessionId.String(), ownerId.String(), nil)
		return &StopResult{MeetingId: nil, Title: session.Title, Message: "No transcript was captured."}, nil
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	transcript := strings.Join(texts, "\n\n")

	extracted := m.runExtraction(ctx, transcript)

	meeting := &entity.Meeting{
		OwnerId:   ownerId,
		Title:     session.Title,
		RawNotes:  transcript,
		Extracted: extracted,
	}
	if err := uow.MeetingRepository().Create(ctx, meeting); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	session.Status = entity.LiveSessionCompleted
	session.EndedAt = &now
	session.MeetingId = &meeting.Id
	if err := uow.LiveSessionRepository().Update(ctx, session); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	m.push.CloseSession(sessionId, PushEvent{Event: "stopped", Data: map[string]interface{}{}})
	meetingId := meeting.Id.String()
	m.events.PublishLiveSessionStopped(ctx, sessionId.String(), ownerId.String(), &meetingId)
	m.events.PublishMeetingCreated(ctx, meetingId, ownerId.String())
	if err := m.embedPublisher.Publish(m.embedTopic, dto.PublishEmbedMeetingMessage{MeetingId: meeting.Id}); err != nil {
		m.logger.Warn("live_session", "failed to publish embed-meeting message", map[string]interface{}{"error": err.Error()})
	}

	return &StopResult{MeetingId: &meeting.Id, Title: meeting.Title}, nil
}

// runExtraction calls the extractor and tolerant-decodes its output.
// Any provider or decode failure yields the zero-value extraction record.
func (m *LiveSessionManager) runExtraction(ctx context.Context, transcript string) entity.ExtractionRecord {
	var record entity.ExtractionRecord

	raw, err := m.extractor.Extract(ctx, extraction.PromptPrefix, transcript)
	if err != nil {
		m.logger.Warn("live_session", "extraction provider call failed", map[string]interface{}{"error": err.Error()})
		return record
	}

	decoded, err := tolerant.Decode(raw)
	if err != nil {
		m.logger.Warn("live_session", "tolerant decode failed", map[string]interface{}{
			"error": err.Error(),
			"raw":   truncateForLog(raw, 800),
		})
		return record
	}

	buf, err := json.Marshal(decoded)
	if err != nil {
		return record
	}
	_ = json.Unmarshal(buf, &record)
	return record
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func (m *LiveSessionManager) Status(ctx context.Context, sessionId, ownerId uuid.UUID) (*StatusResult, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.LiveSessionRepository().FindByIDOwned(ctx, sessionId, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("live session")
	}
	segments, err := uow.TranscriptSegmentRepository().ListOrdered(ctx, sessionId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &StatusResult{Session: session, SegmentCount: len(segments)}, nil
}

// MemoryHints is read-only: it never changes session state. It pulls the
// last 24 segments of the active session and checks the owner's 20 most
// recent other meetings for shared keyword signal.
func (m *LiveSessionManager) MemoryHints(ctx context.Context, sessionId, ownerId uuid.UUID) ([]MemoryHint, error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.LiveSessionRepository().FindByIDOwned(ctx, sessionId, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if session == nil {
		return nil, apperrors.NewNotFoundError("live session")
	}

	segments, err := uow.TranscriptSegmentRepository().ListOrdered(ctx, sessionId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if len(segments) > 24 {
		segments = segments[len(segments)-24:]
	}
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	liveContext := strings.Join(texts, "\n\n")
	liveKeywords := keyword.Keywords(liveContext)

	others, err := uow.MeetingRepository().FindPriorToMeeting(ctx, ownerId, uuid.Nil, 20)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var hints []MemoryHint
	for _, meeting := range others {
		shared := sharedKeywords(liveKeywords, keyword.Keywords(meeting.RawNotes))
		if len(shared) < 2 {
			continue
		}
		snippet := firstSentenceContaining(meeting.RawNotes, shared)
		hints = append(hints, MemoryHint{
			MeetingId:    meeting.Id.String(),
			Title:        meeting.Title,
			Date:         meeting.CreatedAt.Format(time.RFC3339),
			SharedTopics: shared,
			Snippet:      snippet,
		})
		if len(hints) >= 3 {
			break
		}
	}
	return hints, nil
}

func sharedKeywords(a, b []string) []string {
	bSet := make(map[string]bool, len(b))
	for _, t := range b {
		bSet[t] = true
	}
	var shared []string
	for _, t := range a {
		if bSet[t] {
			shared = append(shared, t)
		}
	}
	return shared
}

func firstSentenceContaining(text string, keywords []string) string {
	sentences := strings.Split(text, ".")
	for _, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return truncateSnippet(strings.TrimSpace(sentence))
			}
		}
	}
	return ""
}

func truncateSnippet(s string) string {
	if len(s) <= 150 {
		return s
	}
	return s[:150] + "..."
}

func segmentPayload(seg *entity.TranscriptSegment) map[string]interface{} {
	return map[string]interface{}{
		"segment_index": seg.SegmentIndex,
		"text":          seg.Text,
		"timestamp_ms":  seg.TimestampMs,
		"speaker":       seg.Speaker,
		"is_final":      seg.IsFinal,
	}
}

// Subscribe registers the caller as the session's sole push subscriber,
// replays every persisted segment in order, and keeps a keepalive ticking
// until the caller disconnects or the session stops.
func (m *LiveSessionManager) Subscribe(ctx context.Context, sessionId, ownerId uuid.UUID) (<-chan PushEvent, func(), error) {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.LiveSessionRepository().FindByIDOwned(ctx, sessionId, ownerId)
	if err != nil {
		return nil, nil, apperrors.NewStorageError(err)
	}
	if session == nil {
		return nil, nil, apperrors.NewNotFoundError("live session")
	}
	if session.Status != entity.LiveSessionActive {
		return nil, nil, apperrors.NewValidationError("live session is not active")
	}

	segments, err := uow.TranscriptSegmentRepository().ListOrdered(ctx, sessionId)
	if err != nil {
		return nil, nil, apperrors.NewStorageError(err)
	}

	sub, unsubscribe := m.push.Subscribe(sessionId)

	go func() {
		defer func() { recover() }() // sub.ch may already be closed by CloseSession/Subscribe teardown
		sub.ch <- PushEvent{Event: "connected", Data: map[string]interface{}{"session_id": sessionId.String()}}
		for _, seg := range segments {
			sub.ch <- PushEvent{Event: "", Data: segmentPayload(seg)}
		}

		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sub.done:
				return
			case <-ticker.C:
				select {
				case sub.ch <- PushEvent{Event: "keepalive", Data: map[string]interface{}{}}:
				default:
				}
			}
		}
	}()

	return sub.ch, unsubscribe, nil
}
