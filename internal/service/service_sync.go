package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// syncService is the concrete implementation of [SyncService]: the
// reconciliation engine that merges client batches into the canonical store.
//
// Batch semantics are best-effort per element. Validation failures are
// logged and skipped so that one malformed element never poisons the rest
// of an offline queue; a store failure aborts the remainder of the batch
// because continuing after the backend misbehaves would reorder the
// dependency chain the kind order exists to protect.
type syncService struct {
	deckRepository          store.DeckRepository
	vocabularyRepository    store.VocabularyRepository
	vocabularySrsRepository store.VocabularySrsRepository
	studySessionRepository  store.StudySessionRepository

	logger *logger.Logger
}

func NewSyncService(
	deckRepository store.DeckRepository,
	vocabularyRepository store.VocabularyRepository,
	vocabularySrsRepository store.VocabularySrsRepository,
	studySessionRepository store.StudySessionRepository,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		deckRepository:          deckRepository,
		vocabularyRepository:    vocabularyRepository,
		vocabularySrsRepository: vocabularySrsRepository,
		studySessionRepository:  studySessionRepository,
		logger:                  logger,
	}
}

// Push implements [SyncService].
//
// Kinds are processed in fixed dependency order — decks, vocabularies,
// scheduling records, sessions — so that downstream elements may reference
// upstream ones created in the same batch. Every accepted element is merged
// with a single atomic upsert stamped with one shared synced_at; re-pushing
// the same batch replaces records with identical values, keeping retries
// idempotent.
//
// Scheduling records and sessions carry a logical vocabulary reference which
// must resolve against cards seen earlier in this batch or already stored
// for the owner. The stored set is fetched once per batch, and only when the
// batch actually contains dependent kinds.
func (s *syncService) Push(ctx context.Context, userUID string, batch models.PushRequest) (models.SyncStats, error) {
	log := logger.FromContext(ctx)

	syncedAt := time.Now().UTC()
	var stats models.SyncStats

	for _, payload := range batch.Decks {
		if err := validateDeckPayload(payload); err != nil {
			log.Warn().Err(err).
				Str("func", "syncService.Push").
				Str("user_uid", userUID).
				Int64("local_id", payload.ID).
				Msg("skipping invalid deck payload")
			continue
		}

		if err := s.deckRepository.UpsertDeck(ctx, payload.Record(userUID, syncedAt)); err != nil {
			return stats, err
		}
		stats.Decks++
	}

	// vocabulary ids visible to dependent kinds: everything merged in this
	// batch plus everything already stored for the owner
	knownVocabularyIDs := make(map[int64]struct{}, len(batch.Vocabularies))

	for _, payload := range batch.Vocabularies {
		if err := validateVocabularyPayload(payload); err != nil {
			log.Warn().Err(err).
				Str("func", "syncService.Push").
				Str("user_uid", userUID).
				Int64("local_id", payload.ID).
				Msg("skipping invalid vocabulary payload")
			continue
		}

		if err := s.vocabularyRepository.UpsertVocabulary(ctx, payload.Record(userUID, syncedAt)); err != nil {
			return stats, err
		}
		stats.Vocabularies++
		knownVocabularyIDs[payload.ID] = struct{}{}
	}

	if len(batch.VocabularySrs) > 0 || len(batch.StudySessions) > 0 {
		storedIDs, err := s.vocabularyRepository.GetVocabularyLocalIDs(ctx, userUID)
		if err != nil {
			return stats, err
		}
		for _, id := range storedIDs {
			knownVocabularyIDs[id] = struct{}{}
		}
	}

	for _, payload := range batch.VocabularySrs {
		if err := validateVocabularySrsPayload(payload, knownVocabularyIDs); err != nil {
			log.Warn().Err(err).
				Str("func", "syncService.Push").
				Str("user_uid", userUID).
				Int64("vocabulary_local_id", payload.VocabularyID).
				Msg("skipping invalid vocabulary srs payload")
			continue
		}

		if err := s.vocabularySrsRepository.UpsertVocabularySrs(ctx, payload.Record(userUID, syncedAt)); err != nil {
			return stats, err
		}
		stats.VocabularySrs++
	}

	for _, payload := range batch.StudySessions {
		if err := validateStudySessionPayload(payload, knownVocabularyIDs); err != nil {
			log.Warn().Err(err).
				Str("func", "syncService.Push").
				Str("user_uid", userUID).
				Int64("local_id", payload.ID).
				Msg("skipping invalid study session payload")
			continue
		}

		if err := s.studySessionRepository.UpsertStudySession(ctx, payload.Record(userUID, syncedAt)); err != nil {
			return stats, err
		}
		stats.StudySessions++
	}

	log.Info().
		Str("func", "syncService.Push").
		Str("user_uid", userUID).
		Int("submitted", batch.Size()).
		Int("accepted", stats.Decks+stats.Vocabularies+stats.VocabularySrs+stats.StudySessions).
		Msg("reconciled push batch")

	return stats, nil
}
