package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/dto"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/pkg/logger"
	"github.com/meetingscribe/api/internal/repository/specification"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
	"github.com/meetingscribe/api/pkg/cloudrecording"
	"github.com/meetingscribe/api/pkg/transcription"
	"github.com/meetingscribe/api/pkg/usage"
)

var allowedAudioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".webm": true,
}

const maxUploadBytes = 100 * 1024 * 1024

// MeetingIngest implements the file-upload and cloud-recording-import
// flows. Both converge on ingestFromTempFile once audio bytes are on disk:
// transcribe, persist a meeting with an empty extraction record, fan out
// the embedding event.
type MeetingIngest struct {
	uowFactory     unitofwork.RepositoryFactory
	transcriber    transcription.Provider
	usageGate      *usage.Gate
	cloudProvider  cloudrecording.Provider
	logger         logger.ILogger
	embedPublisher IPublisherService
	embedTopic     string
}

func NewMeetingIngest(
	uowFactory unitofwork.RepositoryFactory,
	transcriber transcription.Provider,
	usageGate *usage.Gate,
	cloudProvider cloudrecording.Provider,
	appLogger logger.ILogger,
	embedPublisher IPublisherService,
	embedTopic string,
) *MeetingIngest {
	return &MeetingIngest{
		uowFactory:     uowFactory,
		transcriber:    transcriber,
		usageGate:      usageGate,
		cloudProvider:  cloudProvider,
		logger:         appLogger,
		embedPublisher: embedPublisher,
		embedTopic:     embedTopic,
	}
}

type IngestResult struct {
	MeetingId uuid.UUID
	Title     string
	Transcript string
}

// UploadFile validates extension and size, checks the meeting-storage
// quota before doing any remote work, writes the upload to a temp file,
// and guarantees that temp file is removed on every exit path.
func (s *MeetingIngest) UploadFile(ctx context.Context, ownerId uuid.UUID, title string, header *multipart.FileHeader) (*IngestResult, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAudioExtensions[ext] {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported audio extension %q", ext))
	}
	if header.Size > maxUploadBytes {
		return nil, apperrors.NewValidationError("audio file exceeds the 100MB upload limit")
	}

	if err := s.checkMeetingStorageQuota(ctx, ownerId); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer src.Close()

	tempPath, err := s.writeToTemp(src, ext)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer os.Remove(tempPath)

	return s.ingestFromTempFile(ctx, ownerId, title, tempPath)
}

// ImportCloudRecording refreshes the cached access token if expired,
// fetches recording metadata, downloads the selected file by id, and
// proceeds exactly like a file upload from the temp-file step.
func (s *MeetingIngest) ImportCloudRecording(ctx context.Context, ownerId uuid.UUID, thirdPartyMeetingId, recordingId, title string) (*IngestResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, ownerId)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("user")
	}
	if user.CloudAccessToken == nil || user.CloudRefreshToken == nil {
		return nil, apperrors.NewValidationError("no cloud recording account is linked")
	}

	accessToken := *user.CloudAccessToken
	expired := user.CloudTokenExpiresAt == nil || time.Now().After(*user.CloudTokenExpiresAt)
	if expired {
		refreshed, err := s.cloudProvider.RefreshAccessToken(ctx, *user.CloudRefreshToken)
		if err != nil {
			return nil, apperrors.NewUpstreamError("cloud token refresh failed", 0, err.Error())
		}
		accessToken = refreshed.AccessToken
		user.CloudAccessToken = &refreshed.AccessToken
		user.CloudRefreshToken = &refreshed.RefreshToken
		user.CloudTokenExpiresAt = &refreshed.ExpiresAt
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
	}

	if err := s.checkMeetingStorageQuota(ctx, ownerId); err != nil {
		return nil, err
	}

	files, err := s.cloudProvider.GetRecording(ctx, accessToken, thirdPartyMeetingId)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to fetch recording metadata", 0, err.Error())
	}

	var selected *cloudrecording.RecordingFile
	for i := range files {
		if files[i].Id == recordingId {
			selected = &files[i]
			break
		}
	}
	if selected == nil {
		return nil, apperrors.NewNotFoundError("recording file")
	}

	audio, err := s.cloudProvider.Download(ctx, accessToken, *selected)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to download recording", 0, err.Error())
	}

	ext := strings.ToLower(filepath.Ext(selected.FileType))
	if ext == "" {
		ext = ".mp3"
	}
	tempPath, err := s.writeToTemp(bytes.NewReader(audio), ext)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer os.Remove(tempPath)

	return s.ingestFromTempFile(ctx, ownerId, title, tempPath)
}

func (s *MeetingIngest) checkMeetingStorageQuota(ctx context.Context, ownerId uuid.UUID) error {
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

func (s *MeetingIngest) writeToTemp(r io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "meeting-ingest-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := io.Copy(tmp, r); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (s *MeetingIngest) ingestFromTempFile(ctx context.Context, ownerId uuid.UUID, title, tempPath string) (*IngestResult, error) {
	audio, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	text, err := s.transcriber.Transcribe(ctx, audio, filepath.Ext(tempPath))
	if err != nil {
		return nil, apperrors.NewUpstreamError("transcription failed", 0, err.Error())
	}

	if title == "" {
		title = "Imported meeting"
	}

	meeting := &entity.Meeting{
		OwnerId:  ownerId,
		Title:    title,
		RawNotes: text,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Create(ctx, meeting); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if err := s.embedPublisher.Publish(s.embedTopic, dto.PublishEmbedMeetingMessage{MeetingId: meeting.Id}); err != nil {
		s.logger.Warn("meeting_ingest", "failed to publish embed-meeting message", map[string]interface{}{"error": err.Error()})
	}

	return &IngestResult{MeetingId: meeting.Id, Title: meeting.Title, Transcript: text}, nil
}
