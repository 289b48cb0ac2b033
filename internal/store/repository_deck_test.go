package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		driver:             "pgx",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}

	return db, mock, conn
}

func newTestDeckRepo(t *testing.T) (*deckRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, conn := newTestDB(t)
	repo := &deckRepository{DB: db, logger: db.logger}

	return repo, mock, conn
}

func TestUpsertDeck_Success(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	now := time.Now().UTC()
	deck := models.Deck{
		UserUID:   "uid-1",
		LocalID:   7,
		Name:      "French",
		Color:     "#2196F3",
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
		SyncedAt:  now,
	}

	mock.ExpectExec("INSERT INTO decks").
		WithArgs(deck.UserUID, deck.LocalID, deck.Name, deck.Color, deck.CreatedAt, deck.UpdatedAt, deck.IsActive, deck.IsFavorite, deck.SyncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertDeck(context.Background(), deck); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertDeck_ExecError(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	mock.ExpectExec("INSERT INTO decks").
		WillReturnError(errors.New("db network error"))

	err := repo.UpsertDeck(context.Background(), models.Deck{UserUID: "uid-1", LocalID: 1, Name: "French"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetActiveDecks_Success(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(deckColumns).
		AddRow("uid-1", int64(2), "Spanish", "#FF5722", now, now, true, false, now).
		AddRow("uid-1", int64(1), "French", "#2196F3", now.Add(-time.Hour), now, true, true, now)

	mock.ExpectQuery("SELECT (.+) FROM decks").
		WithArgs(true, "uid-1").
		WillReturnRows(rows)

	decks, err := repo.GetActiveDecks(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(decks))
	}
	if decks[0].Name != "Spanish" || decks[1].Name != "French" {
		t.Errorf("unexpected deck order: %q, %q", decks[0].Name, decks[1].Name)
	}
}

func TestGetActiveDecks_QueryError(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	mock.ExpectQuery("SELECT (.+) FROM decks").
		WillReturnError(errors.New("db network error"))

	_, err := repo.GetActiveDecks(context.Background(), "uid-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetActiveDecks_ScanError(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	rows := sqlmock.NewRows([]string{"user_uid"}). // intentionally wrong shape → scan error
							AddRow("uid-1")

	mock.ExpectQuery("SELECT (.+) FROM decks").
		WillReturnRows(rows)

	_, err := repo.GetActiveDecks(context.Background(), "uid-1")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetActiveDecks_Empty(t *testing.T) {
	repo, mock, conn := newTestDeckRepo(t)
	defer conn.Close()

	mock.ExpectQuery("SELECT (.+) FROM decks").
		WillReturnRows(sqlmock.NewRows(deckColumns))

	decks, err := repo.GetActiveDecks(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(decks) != 0 {
		t.Fatalf("expected no decks, got %d", len(decks))
	}
}
