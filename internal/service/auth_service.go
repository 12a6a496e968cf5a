package service

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/pkg/apperrors"
	"github.com/meetingscribe/api/internal/repository/unitofwork"
)

const devTokenExpiry = 24 * time.Hour

// IAuthService is a boundary stub: find-or-create a user by email and
// hand back a signed JWT. There is no password, no session, no OTP —
// real account auth is out of scope.
type IAuthService interface {
	IssueDevToken(ctx context.Context, email string) (string, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{uowFactory: uowFactory}
}

func (s *authService) IssueDevToken(ctx context.Context, email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", apperrors.NewValidationError("email is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, normalized)
	if err != nil {
		return "", apperrors.NewStorageError(err)
	}
	if user == nil {
		user = &entity.User{Email: normalized, Plan: entity.PlanFree}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return "", apperrors.NewStorageError(err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(devTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperrors.NewStorageError(err)
	}
	return signed, nil
}
