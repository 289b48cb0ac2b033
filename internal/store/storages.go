package store

import "github.com/MKhiriev/go-vocab-sync/internal/logger"

// Storages groups every repository behind a single injection point for the
// service layer.
type Storages struct {
	UserRepository          UserRepository
	DeckRepository          DeckRepository
	VocabularyRepository    VocabularyRepository
	VocabularySrsRepository VocabularySrsRepository
	StudySessionRepository  StudySessionRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, logger),
		DeckRepository:          NewDeckRepository(db, logger),
		VocabularyRepository:    NewVocabularyRepository(db, logger),
		VocabularySrsRepository: NewVocabularySrsRepository(db, logger),
		StudySessionRepository:  NewStudySessionRepository(db, logger),
	}
}
