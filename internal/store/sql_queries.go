package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// Column lists shared between the upsert builders and the row scanners.
// Order matters: every scanner reads columns in exactly this order.
var (
	deckColumns = []string{
		"user_uid", "local_id", "name", "color",
		"created_at", "updated_at", "is_active", "is_favorite", "synced_at",
	}

	vocabularyColumns = []string{
		"user_uid", "local_id", "deck_local_id", "front", "back",
		"front_image_url", "front_image_path", "back_image_url", "back_image_path",
		"front_extra_json", "back_extra_json",
		"created_at", "updated_at", "is_active", "card_type", "synced_at",
	}

	vocabularySrsColumns = []string{
		"user_uid", "vocabulary_local_id", "mastery_level", "review_count",
		"last_reviewed", "next_review",
		"srs_ease_factor", "srs_interval", "srs_repetitions", "srs_due",
		"srs_type", "srs_queue", "srs_lapses", "srs_left", "synced_at",
	}

	studySessionColumns = []string{
		"user_uid", "local_id", "deck_local_id", "vocabulary_local_id",
		"session_type", "result", "time_spent", "created_at", "synced_at",
	}

	userColumns = []string{
		"uid", "email", "name", "picture", "created_at", "last_login_at",
	}
)

// The ON CONFLICT clauses below are the storage-layer enforcement of the
// one-record-per-natural-key invariant: the unique index serializes
// concurrent upserts for the same key, and the DO UPDATE branch replaces
// every client-owned field with the incoming value (whole-field merge).
// The same SQL runs on both PostgreSQL and SQLite.

func buildUpsertDeckQuery(b sq.StatementBuilderType, deck models.Deck) (string, []any, error) {
	return b.Insert(deck.TableName()).
		Columns(deckColumns...).
		Values(
			deck.UserUID, deck.LocalID, deck.Name, deck.Color,
			deck.CreatedAt, deck.UpdatedAt, deck.IsActive, deck.IsFavorite, deck.SyncedAt,
		).
		Suffix(`ON CONFLICT (user_uid, local_id) DO UPDATE SET
			name = EXCLUDED.name,
			color = EXCLUDED.color,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			is_active = EXCLUDED.is_active,
			is_favorite = EXCLUDED.is_favorite,
			synced_at = EXCLUDED.synced_at`).
		ToSql()
}

func buildUpsertVocabularyQuery(b sq.StatementBuilderType, vocabulary models.Vocabulary) (string, []any, error) {
	return b.Insert(vocabulary.TableName()).
		Columns(vocabularyColumns...).
		Values(
			vocabulary.UserUID, vocabulary.LocalID, vocabulary.DeckLocalID,
			vocabulary.Front, vocabulary.Back,
			vocabulary.FrontImageURL, vocabulary.FrontImagePath,
			vocabulary.BackImageURL, vocabulary.BackImagePath,
			vocabulary.FrontExtraJSON, vocabulary.BackExtraJSON,
			vocabulary.CreatedAt, vocabulary.UpdatedAt,
			vocabulary.IsActive, vocabulary.CardType, vocabulary.SyncedAt,
		).
		Suffix(`ON CONFLICT (user_uid, local_id) DO UPDATE SET
			deck_local_id = EXCLUDED.deck_local_id,
			front = EXCLUDED.front,
			back = EXCLUDED.back,
			front_image_url = EXCLUDED.front_image_url,
			front_image_path = EXCLUDED.front_image_path,
			back_image_url = EXCLUDED.back_image_url,
			back_image_path = EXCLUDED.back_image_path,
			front_extra_json = EXCLUDED.front_extra_json,
			back_extra_json = EXCLUDED.back_extra_json,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			is_active = EXCLUDED.is_active,
			card_type = EXCLUDED.card_type,
			synced_at = EXCLUDED.synced_at`).
		ToSql()
}

func buildUpsertVocabularySrsQuery(b sq.StatementBuilderType, srs models.VocabularySrs) (string, []any, error) {
	return b.Insert(srs.TableName()).
		Columns(vocabularySrsColumns...).
		Values(
			srs.UserUID, srs.VocabularyLocalID, srs.MasteryLevel, srs.ReviewCount,
			srs.LastReviewed, srs.NextReview,
			srs.SrsEaseFactor, srs.SrsInterval, srs.SrsRepetitions, srs.SrsDue,
			srs.SrsType, srs.SrsQueue, srs.SrsLapses, srs.SrsLeft, srs.SyncedAt,
		).
		Suffix(`ON CONFLICT (user_uid, vocabulary_local_id) DO UPDATE SET
			mastery_level = EXCLUDED.mastery_level,
			review_count = EXCLUDED.review_count,
			last_reviewed = EXCLUDED.last_reviewed,
			next_review = EXCLUDED.next_review,
			srs_ease_factor = EXCLUDED.srs_ease_factor,
			srs_interval = EXCLUDED.srs_interval,
			srs_repetitions = EXCLUDED.srs_repetitions,
			srs_due = EXCLUDED.srs_due,
			srs_type = EXCLUDED.srs_type,
			srs_queue = EXCLUDED.srs_queue,
			srs_lapses = EXCLUDED.srs_lapses,
			srs_left = EXCLUDED.srs_left,
			synced_at = EXCLUDED.synced_at`).
		ToSql()
}

func buildUpsertStudySessionQuery(b sq.StatementBuilderType, session models.StudySession) (string, []any, error) {
	return b.Insert(session.TableName()).
		Columns(studySessionColumns...).
		Values(
			session.UserUID, session.LocalID, session.DeckLocalID, session.VocabularyLocalID,
			session.SessionType, session.Result, session.TimeSpent,
			session.CreatedAt, session.SyncedAt,
		).
		Suffix(`ON CONFLICT (user_uid, local_id) DO UPDATE SET
			deck_local_id = EXCLUDED.deck_local_id,
			vocabulary_local_id = EXCLUDED.vocabulary_local_id,
			session_type = EXCLUDED.session_type,
			result = EXCLUDED.result,
			time_spent = EXCLUDED.time_spent,
			created_at = EXCLUDED.created_at,
			synced_at = EXCLUDED.synced_at`).
		ToSql()
}

func buildUpsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	// created_at survives merges: the profile keeps its first-seen time.
	return b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UID, user.Email, user.Name, user.Picture, user.CreatedAt, user.LastLoginAt).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			picture = EXCLUDED.picture,
			last_login_at = EXCLUDED.last_login_at`).
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, uid string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

// Snapshot list queries. Decks and vocabularies exclude inactive records;
// scheduling records and session history are exported unconditionally so
// that a deactivated card's learning state survives a fresh pull.

func buildGetActiveDecksQuery(b sq.StatementBuilderType, userUID string) (string, []any, error) {
	return b.Select(deckColumns...).
		From(models.Deck{}.TableName()).
		Where(sq.Eq{"user_uid": userUID, "is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildGetActiveVocabulariesQuery(b sq.StatementBuilderType, userUID string) (string, []any, error) {
	return b.Select(vocabularyColumns...).
		From(models.Vocabulary{}.TableName()).
		Where(sq.Eq{"user_uid": userUID, "is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildGetVocabularyLocalIDsQuery(b sq.StatementBuilderType, userUID string) (string, []any, error) {
	return b.Select("local_id").
		From(models.Vocabulary{}.TableName()).
		Where(sq.Eq{"user_uid": userUID}).
		OrderBy("local_id ASC").
		ToSql()
}

func buildGetAllVocabularySrsQuery(b sq.StatementBuilderType, userUID string) (string, []any, error) {
	return b.Select(vocabularySrsColumns...).
		From(models.VocabularySrs{}.TableName()).
		Where(sq.Eq{"user_uid": userUID}).
		OrderBy("vocabulary_local_id ASC").
		ToSql()
}

func buildGetAllStudySessionsQuery(b sq.StatementBuilderType, userUID string) (string, []any, error) {
	return b.Select(studySessionColumns...).
		From(models.StudySession{}.TableName()).
		Where(sq.Eq{"user_uid": userUID}).
		OrderBy("created_at DESC").
		ToSql()
}
