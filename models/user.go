package models

import "time"

// User is the profile record of an authenticated owner. It is not one of the
// four synced entity kinds: the record is refreshed from verified token
// claims on login, never from batch payloads, and owns no client-assigned
// identifier.
type User struct {
	// UID is the stable identity established by the external authentication
	// provider. It is the value every synced record is scoped by.
	UID string `json:"uid"`

	// Display attributes copied from the verified token claims.
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`

	// CreatedAt is set once when the profile is first seen.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is refreshed on every profile upsert.
	LastLoginAt time.Time `json:"last_login_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthUser carries the already-verified identity attached to a request by
// the authentication middleware. UID is always present; the display
// attributes are optional claims.
type AuthUser struct {
	UID     string
	Email   string
	Name    string
	Picture string
}
