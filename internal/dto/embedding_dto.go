package dto

import "github.com/google/uuid"

// PublishEmbedMeetingMessage is the watermill payload that triggers
// EmbeddingAugmenter's async work for one freshly persisted meeting.
type PublishEmbedMeetingMessage struct {
	MeetingId uuid.UUID `json:"meeting_id"`
}
