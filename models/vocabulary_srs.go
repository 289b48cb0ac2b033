package models

import "time"

// DefaultEaseFactor is the SM-2 starting ease applied when a pushed
// scheduling record carries no ease factor (or an impossible zero one).
const DefaultEaseFactor = 2.5

// VocabularySrs is the server-side scheduling record for one vocabulary
// card: at most one exists per (UserUID, VocabularyLocalID). All scheduler
// state fields are opaque transport values computed by the client's
// spaced-repetition algorithm; the server stores and returns them unchanged
// and never derives anything from them.
type VocabularySrs struct {
	UserUID string

	// VocabularyLocalID references Vocabulary.LocalID within the same
	// owner. One scheduling record per card, not per review event.
	VocabularyLocalID int64

	MasteryLevel int64
	ReviewCount  int64
	LastReviewed *time.Time
	NextReview   *time.Time

	// SM-2 state.
	SrsEaseFactor  float64
	SrsInterval    int64
	SrsRepetitions int64
	SrsDue         *time.Time

	// Anki-like scheduler state.
	SrsType   int64
	SrsQueue  int64
	SrsLapses int64
	SrsLeft   int64

	SyncedAt time.Time
}

// TableName returns the name of the database table
// associated with the VocabularySrs model.
func (s VocabularySrs) TableName() string {
	return "vocabulary_srs"
}

// VocabularySrsPayload is the client-shaped wire form of a scheduling record.
type VocabularySrsPayload struct {
	VocabularyID   int64       `json:"vocabulary_id"`
	MasteryLevel   int64       `json:"mastery_level"`
	ReviewCount    int64       `json:"review_count"`
	LastReviewed   *ClientTime `json:"last_reviewed"`
	NextReview     *ClientTime `json:"next_review"`
	SrsEaseFactor  float64     `json:"srs_ease_factor"`
	SrsInterval    int64       `json:"srs_interval"`
	SrsRepetitions int64       `json:"srs_repetitions"`
	SrsDue         *ClientTime `json:"srs_due"`
	SrsType        int64       `json:"srs_type"`
	SrsQueue       int64       `json:"srs_queue"`
	SrsLapses      int64       `json:"srs_lapses"`
	SrsLeft        int64       `json:"srs_left"`
}

// Record converts the payload into the canonical server record for userUID.
// A zero ease factor falls back to [DefaultEaseFactor], preserving the
// original API's treatment of unset scheduler state.
func (p VocabularySrsPayload) Record(userUID string, syncedAt time.Time) VocabularySrs {
	ease := p.SrsEaseFactor
	if ease == 0 {
		ease = DefaultEaseFactor
	}

	return VocabularySrs{
		UserUID:           userUID,
		VocabularyLocalID: p.VocabularyID,
		MasteryLevel:      p.MasteryLevel,
		ReviewCount:       p.ReviewCount,
		LastReviewed:      optionalTime(p.LastReviewed),
		NextReview:        optionalTime(p.NextReview),
		SrsEaseFactor:     ease,
		SrsInterval:       p.SrsInterval,
		SrsRepetitions:    p.SrsRepetitions,
		SrsDue:            optionalTime(p.SrsDue),
		SrsType:           p.SrsType,
		SrsQueue:          p.SrsQueue,
		SrsLapses:         p.SrsLapses,
		SrsLeft:           p.SrsLeft,
		SyncedAt:          syncedAt.UTC(),
	}
}

// Payload re-shapes the record into the client encoding for a snapshot pull.
func (s VocabularySrs) Payload() VocabularySrsPayload {
	return VocabularySrsPayload{
		VocabularyID:   s.VocabularyLocalID,
		MasteryLevel:   s.MasteryLevel,
		ReviewCount:    s.ReviewCount,
		LastReviewed:   optionalClientTime(s.LastReviewed),
		NextReview:     optionalClientTime(s.NextReview),
		SrsEaseFactor:  s.SrsEaseFactor,
		SrsInterval:    s.SrsInterval,
		SrsRepetitions: s.SrsRepetitions,
		SrsDue:         optionalClientTime(s.SrsDue),
		SrsType:        s.SrsType,
		SrsQueue:       s.SrsQueue,
		SrsLapses:      s.SrsLapses,
		SrsLeft:        s.SrsLeft,
	}
}

func optionalTime(t *ClientTime) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func optionalClientTime(t *time.Time) *ClientTime {
	if t == nil {
		return nil
	}
	ct := NewClientTime(*t)
	return &ct
}
