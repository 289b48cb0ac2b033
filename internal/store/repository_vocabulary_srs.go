package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// vocabularySrsRepository is the SQL-backed implementation of
// [VocabularySrsRepository]. Scheduling state lives in the "vocabulary_srs"
// table, one row per card per owner.
type vocabularySrsRepository struct {
	*DB
	logger *logger.Logger
}

// NewVocabularySrsRepository constructs a [VocabularySrsRepository] backed by
// the provided database connection and logger.
func NewVocabularySrsRepository(db *DB, logger *logger.Logger) VocabularySrsRepository {
	logger.Debug().Msg("creating vocabulary srs repository")
	return &vocabularySrsRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertVocabularySrs atomically creates or whole-field-replaces the
// scheduling record matching (user_uid, vocabulary_local_id).
//
// Unlike the other entities the natural key here is the referenced card, not
// the record's own id: a card carries at most one scheduling state.
func (r *vocabularySrsRepository) UpsertVocabularySrs(ctx context.Context, srs models.VocabularySrs) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertVocabularySrsQuery(r.DB.builder, srs)
	if err != nil {
		log.Err(err).
			Str("func", "vocabularySrsRepository.UpsertVocabularySrs").
			Str("user_uid", srs.UserUID).
			Int64("vocabulary_local_id", srs.VocabularyLocalID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "vocabularySrsRepository.UpsertVocabularySrs").
			Str("user_uid", srs.UserUID).
			Int64("vocabulary_local_id", srs.VocabularyLocalID).
			Str("classification", r.DB.errorClassificator.Classify(execErr).String()).
			Msg("failed to upsert vocabulary srs")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// GetAllVocabularySrs returns every scheduling record the owner has, ordered
// by ascending vocabulary local id. Records for deactivated cards are
// included so learning state survives a fresh install restore.
func (r *vocabularySrsRepository) GetAllVocabularySrs(ctx context.Context, userUID string) ([]models.VocabularySrs, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllVocabularySrsQuery(r.DB.builder, userUID)
	if err != nil {
		log.Err(err).
			Str("func", "vocabularySrsRepository.GetAllVocabularySrs").
			Str("user_uid", userUID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vocabularySrsRepository.GetAllVocabularySrs").
			Str("user_uid", userUID).
			Msg("failed to execute query for getting vocabulary srs records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	records := make([]models.VocabularySrs, 0, 50)

	for rows.Next() {
		var srs models.VocabularySrs

		scanErr := rows.Scan(
			&srs.UserUID,
			&srs.VocabularyLocalID,
			&srs.MasteryLevel,
			&srs.ReviewCount,
			&srs.LastReviewed,
			&srs.NextReview,
			&srs.SrsEaseFactor,
			&srs.SrsInterval,
			&srs.SrsRepetitions,
			&srs.SrsDue,
			&srs.SrsType,
			&srs.SrsQueue,
			&srs.SrsLapses,
			&srs.SrsLeft,
			&srs.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vocabularySrsRepository.GetAllVocabularySrs").
				Str("user_uid", userUID).
				Msg("failed to scan vocabulary srs row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, srs)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vocabularySrsRepository.GetAllVocabularySrs").
			Str("user_uid", userUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
