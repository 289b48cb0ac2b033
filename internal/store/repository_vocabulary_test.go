package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vocab-sync/models"
)

func TestUpsertVocabulary_Success(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &vocabularyRepository{DB: db, logger: db.logger}

	now := time.Now().UTC()
	imageURL := "https://example.com/cat.png"
	vocabulary := models.Vocabulary{
		UserUID:       "uid-1",
		LocalID:       3,
		DeckLocalID:   1,
		Front:         "chat",
		Back:          "cat",
		FrontImageURL: &imageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      true,
		CardType:      "basis",
		SyncedAt:      now,
	}

	mock.ExpectExec("INSERT INTO vocabularies").
		WithArgs(
			vocabulary.UserUID, vocabulary.LocalID, vocabulary.DeckLocalID,
			vocabulary.Front, vocabulary.Back,
			vocabulary.FrontImageURL, nil, nil, nil, nil, nil,
			vocabulary.CreatedAt, vocabulary.UpdatedAt,
			vocabulary.IsActive, vocabulary.CardType, vocabulary.SyncedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertVocabulary(context.Background(), vocabulary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertVocabulary_ExecError(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &vocabularyRepository{DB: db, logger: db.logger}

	mock.ExpectExec("INSERT INTO vocabularies").
		WillReturnError(errors.New("db network error"))

	err := repo.UpsertVocabulary(context.Background(), models.Vocabulary{UserUID: "uid-1", LocalID: 1})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetActiveVocabularies_Success(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &vocabularyRepository{DB: db, logger: db.logger}

	now := time.Now().UTC()
	rows := sqlmock.NewRows(vocabularyColumns).
		AddRow("uid-1", int64(3), int64(1), "chat", "cat",
			nil, nil, nil, nil, nil, nil,
			now, now, true, "basis", now)

	mock.ExpectQuery("SELECT (.+) FROM vocabularies").
		WithArgs(true, "uid-1").
		WillReturnRows(rows)

	vocabularies, err := repo.GetActiveVocabularies(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vocabularies) != 1 {
		t.Fatalf("expected 1 vocabulary, got %d", len(vocabularies))
	}
	if vocabularies[0].Front != "chat" {
		t.Errorf("expected front %q, got %q", "chat", vocabularies[0].Front)
	}
	if vocabularies[0].FrontImageURL != nil {
		t.Errorf("expected nil front image url, got %v", *vocabularies[0].FrontImageURL)
	}
}

func TestGetVocabularyLocalIDs_Success(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &vocabularyRepository{DB: db, logger: db.logger}

	rows := sqlmock.NewRows([]string{"local_id"}).
		AddRow(int64(1)).
		AddRow(int64(3)).
		AddRow(int64(8))

	mock.ExpectQuery("SELECT local_id FROM vocabularies").
		WithArgs("uid-1").
		WillReturnRows(rows)

	localIDs, err := repo.GetVocabularyLocalIDs(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(localIDs) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(localIDs))
	}
	if localIDs[0] != 1 || localIDs[2] != 8 {
		t.Errorf("unexpected ids: %v", localIDs)
	}
}

func TestGetVocabularyLocalIDs_RowsError(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &vocabularyRepository{DB: db, logger: db.logger}

	rows := sqlmock.NewRows([]string{"local_id"}).
		AddRow(int64(1)).
		RowError(0, errors.New("broken connection"))

	mock.ExpectQuery("SELECT local_id FROM vocabularies").
		WillReturnRows(rows)

	_, err := repo.GetVocabularyLocalIDs(context.Background(), "uid-1")
	if err == nil {
		t.Fatal("expected rows error, got nil")
	}
}
