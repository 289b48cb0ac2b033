package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 bearer token for the given
// owner identity. The subject claim carries the owner UID; email, name and
// picture travel as optional custom claims alongside the standard set.
//
// In production tokens are minted by the external authentication provider —
// this helper exists for the debug client and for tests, producing tokens
// with the exact claim shape the server-side verification expects.
//
// Returns an error if issuer, sign key, duration, or the owner UID is empty.
func GenerateJWTToken(issuer string, user models.AuthUser, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || user.UID == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given bearer token string and
// extracts the owner identity from its claims.
//
// Validation includes:
//   - signature verification with the provided sign key (HMAC family only);
//   - issuer (iss) claim check against tokenIssuer;
//   - expiration (exp) claim check;
//   - subject (sub) claim presence — the owner UID must be non-empty.
//
// Returns the verified [models.AuthUser] or an error if validation fails.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.AuthUser, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.AuthUser{}, errors.New("empty subject error")
	}

	return claims.AuthUser(), nil
}
