package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// studySessionRepository is the SQL-backed implementation of
// [StudySessionRepository]. Session history lives in the "study_sessions"
// table.
type studySessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewStudySessionRepository constructs a [StudySessionRepository] backed by
// the provided database connection and logger.
func NewStudySessionRepository(db *DB, logger *logger.Logger) StudySessionRepository {
	logger.Debug().Msg("creating study session repository")
	return &studySessionRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertStudySession atomically creates or whole-field-replaces the session
// record matching (user_uid, local_id). Re-pushing an already synced session
// is a no-op replacement, which keeps retried batches idempotent.
func (r *studySessionRepository) UpsertStudySession(ctx context.Context, session models.StudySession) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertStudySessionQuery(r.DB.builder, session)
	if err != nil {
		log.Err(err).
			Str("func", "studySessionRepository.UpsertStudySession").
			Str("user_uid", session.UserUID).
			Int64("local_id", session.LocalID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "studySessionRepository.UpsertStudySession").
			Str("user_uid", session.UserUID).
			Int64("local_id", session.LocalID).
			Str("classification", r.DB.errorClassificator.Classify(execErr).String()).
			Msg("failed to upsert study session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// GetAllStudySessions returns the owner's full session history ordered by
// descending creation time. History is append-only from the client's point
// of view and is never filtered by the referenced entities' active flags.
func (r *studySessionRepository) GetAllStudySessions(ctx context.Context, userUID string) ([]models.StudySession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllStudySessionsQuery(r.DB.builder, userUID)
	if err != nil {
		log.Err(err).
			Str("func", "studySessionRepository.GetAllStudySessions").
			Str("user_uid", userUID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "studySessionRepository.GetAllStudySessions").
			Str("user_uid", userUID).
			Msg("failed to execute query for getting study sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	sessions := make([]models.StudySession, 0, 100)

	for rows.Next() {
		var session models.StudySession

		scanErr := rows.Scan(
			&session.UserUID,
			&session.LocalID,
			&session.DeckLocalID,
			&session.VocabularyLocalID,
			&session.SessionType,
			&session.Result,
			&session.TimeSpent,
			&session.CreatedAt,
			&session.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "studySessionRepository.GetAllStudySessions").
				Str("user_uid", userUID).
				Msg("failed to scan study session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		sessions = append(sessions, session)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "studySessionRepository.GetAllStudySessions").
			Str("user_uid", userUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sessions, nil
}
