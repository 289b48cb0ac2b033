package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// vocabularyRepository is the SQL-backed implementation of
// [VocabularyRepository]. All card content lives in the "vocabularies" table.
type vocabularyRepository struct {
	*DB
	logger *logger.Logger
}

// NewVocabularyRepository constructs a [VocabularyRepository] backed by the
// provided database connection and logger.
func NewVocabularyRepository(db *DB, logger *logger.Logger) VocabularyRepository {
	logger.Debug().Msg("creating vocabulary repository")
	return &vocabularyRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertVocabulary atomically creates or whole-field-replaces the vocabulary
// record matching (user_uid, local_id).
func (r *vocabularyRepository) UpsertVocabulary(ctx context.Context, vocabulary models.Vocabulary) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertVocabularyQuery(r.DB.builder, vocabulary)
	if err != nil {
		log.Err(err).
			Str("func", "vocabularyRepository.UpsertVocabulary").
			Str("user_uid", vocabulary.UserUID).
			Int64("local_id", vocabulary.LocalID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "vocabularyRepository.UpsertVocabulary").
			Str("user_uid", vocabulary.UserUID).
			Int64("local_id", vocabulary.LocalID).
			Str("classification", r.DB.errorClassificator.Classify(execErr).String()).
			Msg("failed to upsert vocabulary")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// GetActiveVocabularies returns the owner's active cards ordered by
// descending creation time. Deactivated cards are excluded from the snapshot.
func (r *vocabularyRepository) GetActiveVocabularies(ctx context.Context, userUID string) ([]models.Vocabulary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetActiveVocabulariesQuery(r.DB.builder, userUID)
	if err != nil {
		log.Err(err).
			Str("func", "vocabularyRepository.GetActiveVocabularies").
			Str("user_uid", userUID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vocabularyRepository.GetActiveVocabularies").
			Str("user_uid", userUID).
			Msg("failed to execute query for getting active vocabularies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	vocabularies := make([]models.Vocabulary, 0, 50)

	for rows.Next() {
		var vocabulary models.Vocabulary

		scanErr := rows.Scan(
			&vocabulary.UserUID,
			&vocabulary.LocalID,
			&vocabulary.DeckLocalID,
			&vocabulary.Front,
			&vocabulary.Back,
			&vocabulary.FrontImageURL,
			&vocabulary.FrontImagePath,
			&vocabulary.BackImageURL,
			&vocabulary.BackImagePath,
			&vocabulary.FrontExtraJSON,
			&vocabulary.BackExtraJSON,
			&vocabulary.CreatedAt,
			&vocabulary.UpdatedAt,
			&vocabulary.IsActive,
			&vocabulary.CardType,
			&vocabulary.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vocabularyRepository.GetActiveVocabularies").
				Str("user_uid", userUID).
				Msg("failed to scan vocabulary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		vocabularies = append(vocabularies, vocabulary)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vocabularyRepository.GetActiveVocabularies").
			Str("user_uid", userUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vocabularies, nil
}

// GetVocabularyLocalIDs returns every vocabulary local id stored for the
// owner, active or not. Dependent records may legitimately reference a
// deactivated card, so no is_active filter is applied here.
func (r *vocabularyRepository) GetVocabularyLocalIDs(ctx context.Context, userUID string) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetVocabularyLocalIDsQuery(r.DB.builder, userUID)
	if err != nil {
		log.Err(err).
			Str("func", "vocabularyRepository.GetVocabularyLocalIDs").
			Str("user_uid", userUID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vocabularyRepository.GetVocabularyLocalIDs").
			Str("user_uid", userUID).
			Msg("failed to execute query for getting vocabulary local ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	localIDs := make([]int64, 0, 50)

	for rows.Next() {
		var localID int64

		if scanErr := rows.Scan(&localID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "vocabularyRepository.GetVocabularyLocalIDs").
				Str("user_uid", userUID).
				Msg("failed to scan local id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		localIDs = append(localIDs, localID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vocabularyRepository.GetVocabularyLocalIDs").
			Str("user_uid", userUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return localIDs, nil
}
