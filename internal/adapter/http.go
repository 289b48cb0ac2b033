package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/utils"
	"github.com/MKhiriev/go-vocab-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// UpsertProfile implements [ServerAdapter]. It POSTs to
// POST /api/user/upsert with an empty body; the server resolves the owner
// identity from the bearer token alone. Returns the stored profile record or
// an error if the request fails or the server returns a non-2xx status.
func (h *httpServerAdapter) UpsertProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		Post("/api/user/upsert")
	if err != nil {
		return models.User{}, fmt.Errorf("upsert profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var ur models.UserResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.User{}, fmt.Errorf("decode upsert profile response: %w", err)
	}

	return ur.User, nil
}

// Push implements [ServerAdapter]. It POSTs the reconciliation batch to
// POST /api/user/sync and returns the server's acknowledgement with per-kind
// accepted counts. Returns an error if the request fails, the server returns
// a non-2xx status, or the response cannot be decoded.
func (h *httpServerAdapter) Push(ctx context.Context, batch models.PushRequest) (models.PushResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(batch).
		Post("/api/user/sync")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pr models.PushResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return pr, nil
}

// Pull implements [ServerAdapter]. It GETs the owner's full snapshot from
// GET /api/user/data. Returns an error if the request fails, the server
// returns a non-2xx status, or the response cannot be decoded.
func (h *httpServerAdapter) Pull(ctx context.Context) (models.PullResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/data")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var pr models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return pr, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
