package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-vocab-sync/internal/service"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserData_Success(t *testing.T) {
	now := time.Now().UTC()
	h := newTestHandler(t, &service.Services{
		SnapshotService: &mockSnapshotService{
			exportFn: func(ctx context.Context, userUID string) (models.Snapshot, error) {
				assert.Equal(t, "uid-1", userUID)
				return models.Snapshot{
					Decks: []models.DeckPayload{{
						ID:        1,
						Name:      "French",
						Color:     "#2196F3",
						CreatedAt: models.NewClientTime(now),
						UpdatedAt: models.NewClientTime(now),
						IsActive:  true,
					}},
					Vocabularies:  []models.VocabularyPayload{},
					VocabularySrs: []models.VocabularySrsPayload{},
					StudySessions: []models.StudySessionPayload{},
				}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	req = req.WithContext(ctxWithAuthUser("uid-1"))
	rec := httptest.NewRecorder()

	h.getUserData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PullResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Decks, 1)
	assert.Equal(t, "French", resp.Data.Decks[0].Name)
	assert.Equal(t, models.SyncStats{Decks: 1}, resp.Stats)
}

func TestGetUserData_ArraysNeverNull(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	req = req.WithContext(ctxWithAuthUser("uid-1"))
	rec := httptest.NewRecorder()

	h.getUserData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// raw body check: an empty owner must receive [] not null
	body := rec.Body.String()
	assert.Contains(t, body, `"decks":[]`)
	assert.Contains(t, body, `"vocabularies":[]`)
	assert.Contains(t, body, `"vocabulary_srs":[]`)
	assert.Contains(t, body, `"study_sessions":[]`)
}

func TestGetUserData_NoOwnerInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	rec := httptest.NewRecorder()

	h.getUserData(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserData_StoreError(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		SnapshotService: &mockSnapshotService{
			exportFn: func(ctx context.Context, userUID string) (models.Snapshot, error) {
				return models.Snapshot{}, errors.Join(store.ErrExecutingQuery, errors.New("connection lost"))
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/data", nil)
	req = req.WithContext(ctxWithAuthUser("uid-1"))
	rec := httptest.NewRecorder()

	h.getUserData(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to fetch data", resp.Message)
}
