package store

import (
	"context"

	"github.com/MKhiriev/go-vocab-sync/models"
)

// UserRepository persists owner profile records.
type UserRepository interface {
	// UpsertUser creates the profile on first sight and refreshes the
	// display attributes and last-login time afterwards. CreatedAt is
	// preserved across merges. Returns the stored record.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
}

// DeckRepository persists deck records keyed by (user_uid, local_id).
type DeckRepository interface {
	// UpsertDeck atomically creates or whole-field-replaces the record
	// matching the deck's natural key.
	UpsertDeck(ctx context.Context, deck models.Deck) error

	// GetActiveDecks returns the owner's active decks, newest created first.
	GetActiveDecks(ctx context.Context, userUID string) ([]models.Deck, error)
}

// VocabularyRepository persists vocabulary records keyed by
// (user_uid, local_id).
type VocabularyRepository interface {
	// UpsertVocabulary atomically creates or whole-field-replaces the record
	// matching the vocabulary's natural key.
	UpsertVocabulary(ctx context.Context, vocabulary models.Vocabulary) error

	// GetActiveVocabularies returns the owner's active cards, newest created
	// first.
	GetActiveVocabularies(ctx context.Context, userUID string) ([]models.Vocabulary, error)

	// GetVocabularyLocalIDs returns every vocabulary local id stored for the
	// owner, active or not. Used by the reconciliation engine to validate
	// logical references before persisting dependent records.
	GetVocabularyLocalIDs(ctx context.Context, userUID string) ([]int64, error)
}

// VocabularySrsRepository persists scheduling records keyed by
// (user_uid, vocabulary_local_id) — at most one per card per owner.
type VocabularySrsRepository interface {
	// UpsertVocabularySrs atomically creates or whole-field-replaces the
	// record matching the scheduling record's natural key.
	UpsertVocabularySrs(ctx context.Context, srs models.VocabularySrs) error

	// GetAllVocabularySrs returns every scheduling record the owner has,
	// including records for deactivated cards, ordered by ascending
	// vocabulary local id.
	GetAllVocabularySrs(ctx context.Context, userUID string) ([]models.VocabularySrs, error)
}

// StudySessionRepository persists session history keyed by
// (user_uid, local_id).
type StudySessionRepository interface {
	// UpsertStudySession atomically creates or whole-field-replaces the
	// record matching the session's natural key.
	UpsertStudySession(ctx context.Context, session models.StudySession) error

	// GetAllStudySessions returns the owner's full session history, newest
	// created first, regardless of the referenced entities' active flags.
	GetAllStudySessions(ctx context.Context, userUID string) ([]models.StudySession, error)
}
