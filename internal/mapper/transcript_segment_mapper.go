package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
)

type TranscriptSegmentMapper struct{}

func NewTranscriptSegmentMapper() *TranscriptSegmentMapper {
	return &TranscriptSegmentMapper{}
}

func (m *TranscriptSegmentMapper) ToEntity(s *model.TranscriptSegment) *entity.TranscriptSegment {
	if s == nil {
		return nil
	}
	return &entity.TranscriptSegment{
		Id:           s.Id,
		SessionId:    s.SessionId,
		SegmentIndex: s.SegmentIndex,
		Text:         s.Text,
		TimestampMs:  s.TimestampMs,
		Speaker:      s.Speaker,
		IsFinal:      s.IsFinal,
	}
}

func (m *TranscriptSegmentMapper) ToModel(s *entity.TranscriptSegment) *model.TranscriptSegment {
	if s == nil {
		return nil
	}
	return &model.TranscriptSegment{
		Id:           s.Id,
		SessionId:    s.SessionId,
		SegmentIndex: s.SegmentIndex,
		Text:         s.Text,
		TimestampMs:  s.TimestampMs,
		Speaker:      s.Speaker,
		IsFinal:      s.IsFinal,
	}
}

func (m *TranscriptSegmentMapper) ToEntities(segments []*model.TranscriptSegment) []*entity.TranscriptSegment {
	entities := make([]*entity.TranscriptSegment, len(segments))
	for i, s := range segments {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
