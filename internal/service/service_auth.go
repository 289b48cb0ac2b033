package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService verifies inbound bearer tokens and mints tokens for the debug
// tooling. The server never creates tokens on behalf of clients in
// production; identity comes from the external auth provider.
type authService struct {
	cfg    config.App
	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateToken mints a signed bearer token for the given owner identity using
// the configured issuer, duration and sign key.
func (a *authService) CreateToken(ctx context.Context, user models.AuthUser) (string, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "authService.CreateToken").Msg("failed to create token")
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns the owner identity carried in
// its claims. Expired tokens map to [ErrTokenIsExpired]; every other
// verification failure maps to [ErrInvalidToken].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.AuthUser, error) {
	log := logger.FromContext(ctx)

	authUser, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		log.Warn().Err(err).Str("func", "authService.ParseToken").Msg("token verification failed")

		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.AuthUser{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return models.AuthUser{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return authUser, nil
}
