package models

import "time"

// DefaultDeckColor is assigned when a pushed deck omits its color, matching
// the default the client seeds its local store with.
const DefaultDeckColor = "#2196F3"

// Deck is the server-side record of one flashcard deck. Decks are owned by a
// single user and identified by the client-assigned LocalID; the pair
// (UserUID, LocalID) is unique and the server never mints its own deck ids.
type Deck struct {
	// UserUID is the stable identity of the owning user, established by the
	// external authentication provider.
	UserUID string

	// LocalID is the deck's primary key inside the client's local store.
	// It is unique per owner only, not globally.
	LocalID int64

	Name  string
	Color string

	// CreatedAt and UpdatedAt are client-supplied and authoritative;
	// the server stores them verbatim.
	CreatedAt time.Time
	UpdatedAt time.Time

	IsActive   bool
	IsFavorite bool

	// SyncedAt is stamped by the server on every successful merge.
	// It is the only server-authored field on the record.
	SyncedAt time.Time
}

// TableName returns the name of the database table
// associated with the Deck model.
func (d Deck) TableName() string {
	return "decks"
}

// DeckPayload is the client-shaped wire form of a deck, using the client's
// snake_case field names, 0/1 booleans and ISO-8601 timestamps.
type DeckPayload struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	CreatedAt  ClientTime `json:"created_at"`
	UpdatedAt  ClientTime `json:"updated_at"`
	IsActive   ClientBool `json:"is_active"`
	IsFavorite ClientBool `json:"is_favorite"`
}

// Record converts the payload into the canonical server record for userUID,
// applying documented defaults and stamping syncedAt. Merge semantics are
// whole-field replacement: every recognised field overwrites the stored
// value, so a missing color falls back to the default rather than preserving
// an earlier one.
func (p DeckPayload) Record(userUID string, syncedAt time.Time) Deck {
	color := p.Color
	if color == "" {
		color = DefaultDeckColor
	}

	return Deck{
		UserUID:    userUID,
		LocalID:    p.ID,
		Name:       p.Name,
		Color:      color,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
		IsActive:   bool(p.IsActive),
		IsFavorite: bool(p.IsFavorite),
		SyncedAt:   syncedAt.UTC(),
	}
}

// Payload re-shapes the record into the client encoding for a snapshot pull.
func (d Deck) Payload() DeckPayload {
	return DeckPayload{
		ID:         d.LocalID,
		Name:       d.Name,
		Color:      d.Color,
		CreatedAt:  NewClientTime(d.CreatedAt),
		UpdatedAt:  NewClientTime(d.UpdatedAt),
		IsActive:   ClientBool(d.IsActive),
		IsFavorite: ClientBool(d.IsFavorite),
	}
}
