package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
)

type LiveSessionMapper struct{}

func NewLiveSessionMapper() *LiveSessionMapper {
	return &LiveSessionMapper{}
}

func (m *LiveSessionMapper) ToEntity(s *model.LiveSession) *entity.LiveSession {
	if s == nil {
		return nil
	}
	return &entity.LiveSession{
		Id:           s.Id,
		OwnerId:      s.OwnerId,
		Title:        s.Title,
		Participants: s.Participants,
		Status:       entity.LiveSessionStatus(s.Status),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		MeetingId:    s.MeetingId,
	}
}

func (m *LiveSessionMapper) ToModel(s *entity.LiveSession) *model.LiveSession {
	if s == nil {
		return nil
	}
	return &model.LiveSession{
		Id:           s.Id,
		OwnerId:      s.OwnerId,
		Title:        s.Title,
		Participants: s.Participants,
		Status:       string(s.Status),
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		MeetingId:    s.MeetingId,
	}
}

func (m *LiveSessionMapper) ToEntities(sessions []*model.LiveSession) []*entity.LiveSession {
	entities := make([]*entity.LiveSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
