// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// vocab-sync server from client-side tooling.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package currently ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vocab-sync/models"
)

// ServerAdapter defines transport-agnostic communication with the vocab-sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. Every endpoint of the sync API is
	// authenticated, so a token must be set before any other call.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// UpsertProfile asks the server to create or refresh the profile
	// record of the owner identified by the bearer token. The server
	// derives the profile entirely from token claims, so no request body
	// is needed. Returns the stored profile record.
	UpsertProfile(ctx context.Context) (models.User, error)

	// Push submits a reconciliation batch. The returned response carries
	// per-kind accepted counts; comparing them against the submitted
	// counts reveals elements that were skipped by validation.
	Push(ctx context.Context, batch models.PushRequest) (models.PushResponse, error)

	// Pull fetches the owner's full canonical snapshot in client shape.
	Pull(ctx context.Context) (models.PullResponse, error)
}
