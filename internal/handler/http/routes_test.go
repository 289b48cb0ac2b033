package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-vocab-sync/internal/service"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_GreetingAndVersionAreOpen(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/api/version")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestRoutes_SyncRejectedWithoutTokenBeforeService(t *testing.T) {
	pushCalled := false
	h := newTestHandler(t, &service.Services{
		SyncService: &mockSyncService{
			pushFn: func(ctx context.Context, userUID string, batch models.PushRequest) (models.SyncStats, error) {
				pushCalled = true
				return models.SyncStats{}, nil
			},
		},
	})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/user/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, pushCalled, "reconciliation must not run for unauthenticated requests")
}

func TestRoutes_DataRejectedWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/user/data")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_UnknownRouteIs404(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_AuthenticatedSyncThroughRouter(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			parseFn: func(ctx context.Context, tokenString string) (models.AuthUser, error) {
				return models.AuthUser{UID: "uid-1"}, nil
			},
		},
	})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/user/sync", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer some-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
