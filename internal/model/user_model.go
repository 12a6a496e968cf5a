package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Plan       string    `gorm:"type:varchar(50);not null;default:'free'"`
	IsLifetime bool      `gorm:"not null;default:false"`

	CloudAccessToken    *string `gorm:"type:text"`
	CloudRefreshToken   *string `gorm:"type:text"`
	CloudTokenExpiresAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
