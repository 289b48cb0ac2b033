package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-vocab-sync/models"
)

func TestErrorClassification_String(t *testing.T) {
	tests := []struct {
		name           string
		classification ErrorClassification
		expected       string
	}{
		{name: "non-retryable", classification: NonRetryable, expected: "NonRetryable"},
		{name: "retryable", classification: Retryable, expected: "Retryable"},
		{name: "unknown value falls back", classification: ErrorClassification(42), expected: "NonRetryable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.classification.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorClassification
	}{
		{name: "nil error", err: nil, expected: NonRetryable},
		{name: "plain error", err: errors.New("boom"), expected: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, expected: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, expected: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, expected: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, expected: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, expected: NonRetryable},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}), expected: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorClassification
	}{
		{name: "nil error", err: nil, expected: NonRetryable},
		{name: "plain error", err: errors.New("boom"), expected: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, expected: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, expected: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, expected: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestUpsertDeck_LogsClassificationName verifies that a failed upsert logs
// the classification by name, not as a raw integer rune.
func TestUpsertDeck_LogsClassificationName(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	mock.ExpectExec("INSERT INTO decks").
		WillReturnError(errors.New("db network error"))

	var buf bytes.Buffer
	ctxLogger := zerolog.New(&buf)
	ctx := ctxLogger.WithContext(context.Background())

	deck := models.Deck{UserUID: "uid-1", LocalID: 7, Name: "French"}
	if err := repo.UpsertDeck(ctx, deck); err == nil {
		t.Fatal("expected error, got nil")
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log entry: %v", err)
	}

	got, ok := entry["classification"].(string)
	if !ok {
		t.Fatalf("expected string classification field, got %T", entry["classification"])
	}
	if got != "NonRetryable" {
		t.Errorf("expected classification %q, got %q", "NonRetryable", got)
	}
}

