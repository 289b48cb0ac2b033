// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "https://sync.example.com/", want: "https://sync.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9090  ", want: "http://127.0.0.1:9090"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_Trimmed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  some.jwt.token  ")

	assert.Equal(t, "some.jwt.token", a.Token())
}

func TestUpsertProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/upsert", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.UserResponse{
			User: models.User{UID: "uid-1", Email: "alice@example.com", Name: "Alice"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	got, err := a.UpsertProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UID)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUpsertProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"token is expired"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.UpsertProfile(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPush_Success(t *testing.T) {
	batch := models.PushRequest{
		Decks: []models.DeckPayload{{ID: 1, Name: "JLPT N5"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/sync", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var got models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Len(t, got.Decks, 1)

		_ = json.NewEncoder(w).Encode(models.PushResponse{
			Success: true,
			Message: "Data synced successfully",
			Stats:   models.SyncStats{Decks: 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	got, err := a.Push(context.Background(), batch)

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 1, got.Stats.Decks)
}

func TestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Sync failed"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	_, err := a.Push(context.Background(), models.PushRequest{})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestPull_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/user/data", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.PullResponse{
			Success: true,
			Data: models.Snapshot{
				Decks:         []models.DeckPayload{{ID: 1, Name: "JLPT N5"}},
				Vocabularies:  []models.VocabularyPayload{},
				VocabularySrs: []models.VocabularySrsPayload{},
				StudySessions: []models.StudySessionPayload{},
			},
			Stats: models.SyncStats{Decks: 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	got, err := a.Pull(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Success)
	require.Len(t, got.Data.Decks, 1)
	assert.Equal(t, "JLPT N5", got.Data.Decks[0].Name)
}

func TestPull_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Pull(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPull_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-1")

	_, err := a.Pull(context.Background())

	assert.Error(t, err)
}
