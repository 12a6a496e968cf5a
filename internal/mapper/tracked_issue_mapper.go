package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
)

type TrackedIssueMapper struct{}

func NewTrackedIssueMapper() *TrackedIssueMapper {
	return &TrackedIssueMapper{}
}

func (m *TrackedIssueMapper) ToEntity(i *model.TrackedIssue) *entity.TrackedIssue {
	if i == nil {
		return nil
	}
	return &entity.TrackedIssue{
		Id:                 i.Id,
		OwnerId:            i.OwnerId,
		IssueText:          i.IssueText,
		Notes:              i.Notes,
		SourceMeetingId:    i.SourceMeetingId,
		SourceMeetingTitle: i.SourceMeetingTitle,
		Resolved:           i.Resolved,
		CreatedAt:          i.CreatedAt,
		ResolvedAt:         i.ResolvedAt,
	}
}

func (m *TrackedIssueMapper) ToModel(i *entity.TrackedIssue) *model.TrackedIssue {
	if i == nil {
		return nil
	}
	return &model.TrackedIssue{
		Id:                 i.Id,
		OwnerId:            i.OwnerId,
		IssueText:          i.IssueText,
		Notes:              i.Notes,
		SourceMeetingId:    i.SourceMeetingId,
		SourceMeetingTitle: i.SourceMeetingTitle,
		Resolved:           i.Resolved,
		CreatedAt:          i.CreatedAt,
		ResolvedAt:         i.ResolvedAt,
	}
}

func (m *TrackedIssueMapper) ToEntities(issues []*model.TrackedIssue) []*entity.TrackedIssue {
	entities := make([]*entity.TrackedIssue, len(issues))
	for idx, i := range issues {
		entities[idx] = m.ToEntity(i)
	}
	return entities
}
