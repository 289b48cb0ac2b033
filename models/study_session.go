package models

import "time"

// Study-mode tags and outcome tags recorded by the client for a session row.
// The sets are closed; the server validates membership is non-empty but does
// not interpret the values.
const (
	SessionTypeLearn  = "learn"
	SessionTypeReview = "review"
	SessionTypeTest   = "test"

	ResultCorrect   = "correct"
	ResultIncorrect = "incorrect"
	ResultSkipped   = "skipped"
)

// StudySession is one study-history row. Sessions are append-only from the
// server's perspective: the only write path is the idempotent upsert on
// (UserUID, LocalID), so re-syncing an identical row is a no-op.
type StudySession struct {
	UserUID string
	LocalID int64

	// Logical references into the owner's local id spaces.
	DeckLocalID       int64
	VocabularyLocalID int64

	SessionType string
	Result      string

	// TimeSpent is a non-negative duration in seconds.
	TimeSpent int64

	// CreatedAt is client-supplied immutable history.
	CreatedAt time.Time

	SyncedAt time.Time
}

// TableName returns the name of the database table
// associated with the StudySession model.
func (s StudySession) TableName() string {
	return "study_sessions"
}

// StudySessionPayload is the client-shaped wire form of a session row.
type StudySessionPayload struct {
	ID           int64      `json:"id"`
	DeckID       int64      `json:"deck_id"`
	VocabularyID int64      `json:"vocabulary_id"`
	SessionType  string     `json:"session_type"`
	Result       string     `json:"result"`
	TimeSpent    int64      `json:"time_spent"`
	CreatedAt    ClientTime `json:"created_at"`
}

// Record converts the payload into the canonical server record for userUID.
func (p StudySessionPayload) Record(userUID string, syncedAt time.Time) StudySession {
	return StudySession{
		UserUID:           userUID,
		LocalID:           p.ID,
		DeckLocalID:       p.DeckID,
		VocabularyLocalID: p.VocabularyID,
		SessionType:       p.SessionType,
		Result:            p.Result,
		TimeSpent:         p.TimeSpent,
		CreatedAt:         p.CreatedAt.UTC(),
		SyncedAt:          syncedAt.UTC(),
	}
}

// Payload re-shapes the record into the client encoding for a snapshot pull.
func (s StudySession) Payload() StudySessionPayload {
	return StudySessionPayload{
		ID:           s.LocalID,
		DeckID:       s.DeckLocalID,
		VocabularyID: s.VocabularyLocalID,
		SessionType:  s.SessionType,
		Result:       s.Result,
		TimeSpent:    s.TimeSpent,
		CreatedAt:    NewClientTime(s.CreatedAt),
	}
}
