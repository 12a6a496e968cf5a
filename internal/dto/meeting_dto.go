package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

// MeetingResponse is the wire shape for a Meeting: entity.Meeting itself
// carries no JSON tags so it never leaks PascalCase field names or
// storage-only columns into a response body.
type MeetingResponse struct {
	Id          uuid.UUID               `json:"id"`
	Owner       uuid.UUID               `json:"owner"`
	Title       string                  `json:"title,omitempty"`
	RawNotes    string                  `json:"raw_notes"`
	ActionItems entity.ExtractionRecord `json:"action_items"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func NewMeetingResponse(m *entity.Meeting) MeetingResponse {
	return MeetingResponse{
		Id:          m.Id,
		Owner:       m.OwnerId,
		Title:       m.Title,
		RawNotes:    m.RawNotes,
		ActionItems: m.Extracted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewMeetingResponses(meetings []*entity.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = NewMeetingResponse(m)
	}
	return out
}
