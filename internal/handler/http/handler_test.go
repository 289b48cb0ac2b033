package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/service"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockAuthService struct {
	createFn func(ctx context.Context, user models.AuthUser) (string, error)
	parseFn  func(ctx context.Context, tokenString string) (models.AuthUser, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.AuthUser) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return "token", nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.AuthUser, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	return models.AuthUser{UID: "uid-1"}, nil
}

type mockSyncService struct {
	pushFn func(ctx context.Context, userUID string, batch models.PushRequest) (models.SyncStats, error)
}

func (m *mockSyncService) Push(ctx context.Context, userUID string, batch models.PushRequest) (models.SyncStats, error) {
	if m.pushFn != nil {
		return m.pushFn(ctx, userUID, batch)
	}
	return models.SyncStats{}, nil
}

type mockSnapshotService struct {
	exportFn func(ctx context.Context, userUID string) (models.Snapshot, error)
}

func (m *mockSnapshotService) Export(ctx context.Context, userUID string) (models.Snapshot, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, userUID)
	}
	return models.Snapshot{
		Decks:         []models.DeckPayload{},
		Vocabularies:  []models.VocabularyPayload{},
		VocabularySrs: []models.VocabularySrsPayload{},
		StudySessions: []models.StudySessionPayload{},
	}, nil
}

type mockUserService struct {
	upsertFn func(ctx context.Context, authUser models.AuthUser) (models.User, error)
}

func (m *mockUserService) UpsertProfile(ctx context.Context, authUser models.AuthUser) (models.User, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, authUser)
	}
	return models.User{UID: authUser.UID}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.SyncService == nil {
		services.SyncService = &mockSyncService{}
	}
	if services.SnapshotService == nil {
		services.SnapshotService = &mockSnapshotService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}

	return &Handler{
		services: services,
		version:  "1.0.0-test",
		logger:   logger.Nop(),
	}
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// ctxWithAuthUser returns a context carrying a verified owner identity, the
// way the auth middleware leaves it for downstream handlers.
func ctxWithAuthUser(uid string) context.Context {
	return context.WithValue(context.Background(), utils.AuthUserCtxKey, models.AuthUser{UID: uid})
}
