package mapper

import (
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		Email:               u.Email,
		Plan:                entity.Plan(u.Plan),
		IsLifetime:          u.IsLifetime,
		CloudAccessToken:    u.CloudAccessToken,
		CloudRefreshToken:   u.CloudRefreshToken,
		CloudTokenExpiresAt: u.CloudTokenExpiresAt,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		Email:               u.Email,
		Plan:                string(u.Plan),
		IsLifetime:          u.IsLifetime,
		CloudAccessToken:    u.CloudAccessToken,
		CloudRefreshToken:   u.CloudRefreshToken,
		CloudTokenExpiresAt: u.CloudTokenExpiresAt,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) ToModels(users []*entity.User) []*model.User {
	models := make([]*model.User, len(users))
	for i, u := range users {
		models[i] = m.ToModel(u)
	}
	return models
}
