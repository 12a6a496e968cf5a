package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
)

type UsageCounterMapper struct{}

func NewUsageCounterMapper() *UsageCounterMapper {
	return &UsageCounterMapper{}
}

func (m *UsageCounterMapper) ToEntity(u *model.UsageCounter) *entity.UsageCounter {
	if u == nil {
		return nil
	}
	return &entity.UsageCounter{
		Id:       u.Id,
		OwnerId:  u.OwnerId,
		Month:    u.Month,
		Extracts: u.Extracts,
	}
}

func (m *UsageCounterMapper) ToModel(u *entity.UsageCounter) *model.UsageCounter {
	if u == nil {
		return nil
	}
	return &model.UsageCounter{
		Id:       u.Id,
		OwnerId:  u.OwnerId,
		Month:    u.Month,
		Extracts: u.Extracts,
	}
}
