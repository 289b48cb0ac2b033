package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
	"github.com/MKhiriev/go-vocab-sync/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UpsertProfile creates or refreshes the owner's profile from verified token
// claims. Every call stamps last_login_at; created_at is preserved across
// merges by the store.
func (u *userService) UpsertProfile(ctx context.Context, authUser models.AuthUser) (models.User, error) {
	now := time.Now().UTC()

	user := models.User{
		UID:         authUser.UID,
		Email:       authUser.Email,
		Name:        authUser.Name,
		Picture:     authUser.Picture,
		CreatedAt:   now,
		LastLoginAt: now,
	}

	return u.userRepository.UpsertUser(ctx, user)
}
