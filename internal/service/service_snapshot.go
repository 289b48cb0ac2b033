package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// snapshotService exports an owner's canonical state back into client shape.
//
// Visibility is intentionally asymmetric: decks and vocabularies are
// filtered to active records, while scheduling records and session history
// are exported unconditionally. A deactivated card keeps its learning state
// and its history so that reactivation or a later audit loses nothing.
type snapshotService struct {
	deckRepository          store.DeckRepository
	vocabularyRepository    store.VocabularyRepository
	vocabularySrsRepository store.VocabularySrsRepository
	studySessionRepository  store.StudySessionRepository

	logger *logger.Logger
}

func NewSnapshotService(
	deckRepository store.DeckRepository,
	vocabularyRepository store.VocabularyRepository,
	vocabularySrsRepository store.VocabularySrsRepository,
	studySessionRepository store.StudySessionRepository,
	logger *logger.Logger,
) SnapshotService {
	return &snapshotService{
		deckRepository:          deckRepository,
		vocabularyRepository:    vocabularyRepository,
		vocabularySrsRepository: vocabularySrsRepository,
		studySessionRepository:  studySessionRepository,
		logger:                  logger,
	}
}

// Export implements [SnapshotService]. The four reads are issued
// sequentially; the first store failure aborts the export, since a partial
// snapshot would silently drop data on a restoring client.
func (s *snapshotService) Export(ctx context.Context, userUID string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	decks, err := s.deckRepository.GetActiveDecks(ctx, userUID)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Export").Str("user_uid", userUID).Msg("failed to export decks")
		return models.Snapshot{}, err
	}

	vocabularies, err := s.vocabularyRepository.GetActiveVocabularies(ctx, userUID)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Export").Str("user_uid", userUID).Msg("failed to export vocabularies")
		return models.Snapshot{}, err
	}

	srsRecords, err := s.vocabularySrsRepository.GetAllVocabularySrs(ctx, userUID)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Export").Str("user_uid", userUID).Msg("failed to export vocabulary srs records")
		return models.Snapshot{}, err
	}

	sessions, err := s.studySessionRepository.GetAllStudySessions(ctx, userUID)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Export").Str("user_uid", userUID).Msg("failed to export study sessions")
		return models.Snapshot{}, err
	}

	snapshot := models.Snapshot{
		Decks:         make([]models.DeckPayload, 0, len(decks)),
		Vocabularies:  make([]models.VocabularyPayload, 0, len(vocabularies)),
		VocabularySrs: make([]models.VocabularySrsPayload, 0, len(srsRecords)),
		StudySessions: make([]models.StudySessionPayload, 0, len(sessions)),
	}

	for _, deck := range decks {
		snapshot.Decks = append(snapshot.Decks, deck.Payload())
	}
	for _, vocabulary := range vocabularies {
		snapshot.Vocabularies = append(snapshot.Vocabularies, vocabulary.Payload())
	}
	for _, srs := range srsRecords {
		snapshot.VocabularySrs = append(snapshot.VocabularySrs, srs.Payload())
	}
	for _, session := range sessions {
		snapshot.StudySessions = append(snapshot.StudySessions, session.Payload())
	}

	return snapshot, nil
}
