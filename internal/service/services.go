package service

import (
	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	SyncService     SyncService
	SnapshotService SnapshotService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, logger),
		SyncService: NewSyncService(
			storages.DeckRepository,
			storages.VocabularyRepository,
			storages.VocabularySrsRepository,
			storages.StudySessionRepository,
			logger,
		),
		SnapshotService: NewSnapshotService(
			storages.DeckRepository,
			storages.VocabularyRepository,
			storages.VocabularySrsRepository,
			storages.StudySessionRepository,
			logger,
		),
	}
}
