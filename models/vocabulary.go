package models

import "time"

// DefaultCardType is assigned when a pushed vocabulary omits its card type.
const DefaultCardType = "basis"

// Vocabulary is the server-side record of one vocabulary card. The pair
// (UserUID, LocalID) is unique per owner; DeckLocalID is a logical reference
// into the owner's deck id space and is deliberately not backed by a foreign
// key — its validity is the client's responsibility.
type Vocabulary struct {
	UserUID string
	LocalID int64

	// DeckLocalID references Deck.LocalID within the same owner.
	DeckLocalID int64

	Front string
	Back  string

	// Optional media attachments and per-side opaque extras. Nil means the
	// client sent nothing for the slot.
	FrontImageURL  *string
	FrontImagePath *string
	BackImageURL   *string
	BackImagePath  *string
	FrontExtraJSON *string
	BackExtraJSON  *string

	CreatedAt time.Time
	UpdatedAt time.Time

	IsActive bool
	CardType string

	SyncedAt time.Time
}

// TableName returns the name of the database table
// associated with the Vocabulary model.
func (v Vocabulary) TableName() string {
	return "vocabularies"
}

// VocabularyPayload is the client-shaped wire form of a vocabulary card.
// Optional fields are pointers so that absent values round-trip as JSON null,
// exactly as the original client store exports them.
type VocabularyPayload struct {
	ID             int64      `json:"id"`
	DeckID         int64      `json:"deck_id"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	FrontImageURL  *string    `json:"front_image_url"`
	FrontImagePath *string    `json:"front_image_path"`
	BackImageURL   *string    `json:"back_image_url"`
	BackImagePath  *string    `json:"back_image_path"`
	FrontExtraJSON *string    `json:"front_extra_json"`
	BackExtraJSON  *string    `json:"back_extra_json"`
	CreatedAt      ClientTime `json:"created_at"`
	UpdatedAt      ClientTime `json:"updated_at"`
	IsActive       ClientBool `json:"is_active"`
	CardType       string     `json:"card_type"`
}

// Record converts the payload into the canonical server record for userUID.
// An empty card_type falls back to [DefaultCardType]; empty optional strings
// are normalised to nil so that "" and absent behave identically, as they did
// in the original API.
func (p VocabularyPayload) Record(userUID string, syncedAt time.Time) Vocabulary {
	cardType := p.CardType
	if cardType == "" {
		cardType = DefaultCardType
	}

	return Vocabulary{
		UserUID:        userUID,
		LocalID:        p.ID,
		DeckLocalID:    p.DeckID,
		Front:          p.Front,
		Back:           p.Back,
		FrontImageURL:  normalizeOptional(p.FrontImageURL),
		FrontImagePath: normalizeOptional(p.FrontImagePath),
		BackImageURL:   normalizeOptional(p.BackImageURL),
		BackImagePath:  normalizeOptional(p.BackImagePath),
		FrontExtraJSON: normalizeOptional(p.FrontExtraJSON),
		BackExtraJSON:  normalizeOptional(p.BackExtraJSON),
		CreatedAt:      p.CreatedAt.UTC(),
		UpdatedAt:      p.UpdatedAt.UTC(),
		IsActive:       bool(p.IsActive),
		CardType:       cardType,
		SyncedAt:       syncedAt.UTC(),
	}
}

// Payload re-shapes the record into the client encoding for a snapshot pull.
func (v Vocabulary) Payload() VocabularyPayload {
	return VocabularyPayload{
		ID:             v.LocalID,
		DeckID:         v.DeckLocalID,
		Front:          v.Front,
		Back:           v.Back,
		FrontImageURL:  v.FrontImageURL,
		FrontImagePath: v.FrontImagePath,
		BackImageURL:   v.BackImageURL,
		BackImagePath:  v.BackImagePath,
		FrontExtraJSON: v.FrontExtraJSON,
		BackExtraJSON:  v.BackExtraJSON,
		CreatedAt:      NewClientTime(v.CreatedAt),
		UpdatedAt:      NewClientTime(v.UpdatedAt),
		IsActive:       ClientBool(v.IsActive),
		CardType:       v.CardType,
	}
}

func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
