package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// deckRepository is the SQL-backed implementation of [DeckRepository].
// It executes deck upserts and snapshot reads against the "decks" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_uid, local_id).
type deckRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeckRepository constructs a [DeckRepository] backed by the provided
// database connection and logger.
func NewDeckRepository(db *DB, logger *logger.Logger) DeckRepository {
	logger.Debug().Msg("creating deck repository")
	return &deckRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertDeck atomically creates or whole-field-replaces the deck record
// matching (user_uid, local_id).
//
// The merge is a full replacement of every client-owned column; the unique
// index on the natural key serializes concurrent writers, so the last
// statement to commit wins without partial merges.
func (r *deckRepository) UpsertDeck(ctx context.Context, deck models.Deck) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDeckQuery(r.DB.builder, deck)
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.UpsertDeck").
			Str("user_uid", deck.UserUID).
			Int64("local_id", deck.LocalID).
			Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "deckRepository.UpsertDeck").
			Str("user_uid", deck.UserUID).
			Int64("local_id", deck.LocalID).
			Str("classification", r.DB.errorClassificator.Classify(execErr).String()).
			Msg("failed to upsert deck")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// GetActiveDecks returns the owner's active decks ordered by descending
// creation time. Deactivated decks are excluded from the snapshot.
func (r *deckRepository) GetActiveDecks(ctx context.Context, userUID string) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetActiveDecksQuery(r.DB.builder, userUID)
	if err != nil {
		log.Err(err).
			Str("func", "deckRepository.GetActiveDecks").
			Str("user_uid", userUID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "deckRepository.GetActiveDecks").
			Str("user_uid", userUID).
			Msg("failed to execute query for getting active decks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0, 20)

	for rows.Next() {
		var deck models.Deck

		scanErr := rows.Scan(
			&deck.UserUID,
			&deck.LocalID,
			&deck.Name,
			&deck.Color,
			&deck.CreatedAt,
			&deck.UpdatedAt,
			&deck.IsActive,
			&deck.IsFavorite,
			&deck.SyncedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "deckRepository.GetActiveDecks").
				Str("user_uid", userUID).
				Msg("failed to scan deck row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		decks = append(decks, deck)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deckRepository.GetActiveDecks").
			Str("user_uid", userUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return decks, nil
}
