package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-sync/models"
)

// SyncService reconciles client-pushed batches into the canonical store.
type SyncService interface {
	// Push merges a batch of client payloads for the given owner. Kinds are
	// processed in dependency order (decks, vocabularies, scheduling
	// records, sessions). Elements that fail validation are skipped and the
	// batch continues; a store failure aborts the remainder. The returned
	// stats count accepted elements even when an error is also returned.
	Push(ctx context.Context, userUID string, batch models.PushRequest) (models.SyncStats, error)
}

// SnapshotService exports an owner's full canonical state in client shape.
type SnapshotService interface {
	// Export returns the owner's snapshot: active decks and vocabularies,
	// all scheduling records and the full session history. Slices are never
	// nil.
	Export(ctx context.Context, userUID string) (models.Snapshot, error)
}

// UserService maintains owner profile records.
type UserService interface {
	// UpsertProfile creates or refreshes the profile derived from verified
	// token claims and returns the stored record.
	UpsertProfile(ctx context.Context, authUser models.AuthUser) (models.User, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.AuthUser) (string, error)
	ParseToken(ctx context.Context, tokenString string) (models.AuthUser, error)
}
