package mapper

import (
	"encoding/json"

	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
	"gorm.io/datatypes"
)

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{}
}

// ToEntity parses the stored action_items JSON column into the extraction
// record. A malformed or empty column decodes to a zero-value record rather
// than failing the read.
func (m *MeetingMapper) ToEntity(meeting *model.Meeting) *entity.Meeting {
	if meeting == nil {
		return nil
	}
	var extracted entity.ExtractionRecord
	if len(meeting.ActionItems) > 0 {
		_ = json.Unmarshal(meeting.ActionItems, &extracted)
	}
	return &entity.Meeting{
		Id:        meeting.Id,
		OwnerId:   meeting.OwnerId,
		Title:     meeting.Title,
		RawNotes:  meeting.RawNotes,
		Extracted: extracted,
		CreatedAt: meeting.CreatedAt,
		UpdatedAt: meeting.UpdatedAt,
	}
}

func (m *MeetingMapper) ToModel(meeting *entity.Meeting) *model.Meeting {
	if meeting == nil {
		return nil
	}
	raw, _ := json.Marshal(meeting.Extracted)
	return &model.Meeting{
		Id:          meeting.Id,
		OwnerId:     meeting.OwnerId,
		Title:       meeting.Title,
		RawNotes:    meeting.RawNotes,
		ActionItems: datatypes.JSON(raw),
		CreatedAt:   meeting.CreatedAt,
		UpdatedAt:   meeting.UpdatedAt,
	}
}

func (m *MeetingMapper) ToEntities(meetings []*model.Meeting) []*entity.Meeting {
	entities := make([]*entity.Meeting, len(meetings))
	for i, meeting := range meetings {
		entities[i] = m.ToEntity(meeting)
	}
	return entities
}
