package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

// TrackedIssueResponse is the wire shape for a TrackedIssue; like
// MeetingResponse it exists because entity.TrackedIssue carries no JSON
// tags of its own.
type TrackedIssueResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Owner              uuid.UUID  `json:"owner"`
	IssueText          string     `json:"issue_text"`
	Notes              string     `json:"notes,omitempty"`
	SourceMeetingId    *uuid.UUID `json:"source_meeting_id,omitempty"`
	SourceMeetingTitle string     `json:"source_meeting_title,omitempty"`
	Resolved           bool       `json:"resolved"`
	CreatedAt          time.Time  `json:"created_at"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
}

func NewTrackedIssueResponse(i *entity.TrackedIssue) TrackedIssueResponse {
	return TrackedIssueResponse{
		Id:                 i.Id,
		Owner:              i.OwnerId,
		IssueText:          i.IssueText,
		Notes:              i.Notes,
		SourceMeetingId:    i.SourceMeetingId,
		SourceMeetingTitle: i.SourceMeetingTitle,
		Resolved:           i.Resolved,
		CreatedAt:          i.CreatedAt,
		ResolvedAt:         i.ResolvedAt,
	}
}

func NewTrackedIssueResponses(issues []*entity.TrackedIssue) []TrackedIssueResponse {
	out := make([]TrackedIssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = NewTrackedIssueResponse(issue)
	}
	return out
}
