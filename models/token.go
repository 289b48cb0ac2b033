package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set carried by the bearer tokens the mobile
// client obtains from the authentication provider. The subject claim holds
// the owner UID; the display attributes are optional and only used to
// refresh the User profile record.
type TokenClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// AuthUser converts the verified claims into the request-scoped identity.
func (c *TokenClaims) AuthUser() AuthUser {
	return AuthUser{
		UID:     c.Subject,
		Email:   c.Email,
		Name:    c.Name,
		Picture: c.Picture,
	}
}
