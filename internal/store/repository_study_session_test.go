package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-vocab-sync/models"
)

func TestUpsertStudySession_Success(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &studySessionRepository{DB: db, logger: db.logger}

	now := time.Now().UTC()
	session := models.StudySession{
		UserUID:           "uid-1",
		LocalID:           4,
		DeckLocalID:       1,
		VocabularyLocalID: 3,
		SessionType:       models.SessionTypeReview,
		Result:            models.ResultCorrect,
		TimeSpent:         1500,
		CreatedAt:         now,
		SyncedAt:          now,
	}

	mock.ExpectExec("INSERT INTO study_sessions").
		WithArgs(
			session.UserUID, session.LocalID, session.DeckLocalID, session.VocabularyLocalID,
			session.SessionType, session.Result, session.TimeSpent,
			session.CreatedAt, session.SyncedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertStudySession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertStudySession_ExecError(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &studySessionRepository{DB: db, logger: db.logger}

	mock.ExpectExec("INSERT INTO study_sessions").
		WillReturnError(errors.New("db network error"))

	err := repo.UpsertStudySession(context.Background(), models.StudySession{UserUID: "uid-1", LocalID: 1})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetAllStudySessions_Success(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &studySessionRepository{DB: db, logger: db.logger}

	now := time.Now().UTC()
	rows := sqlmock.NewRows(studySessionColumns).
		AddRow("uid-1", int64(5), int64(1), int64(3), "review", "correct", int64(1200), now, now).
		AddRow("uid-1", int64(4), int64(1), int64(3), "learn", "incorrect", int64(3000), now.Add(-time.Minute), now)

	mock.ExpectQuery("SELECT (.+) FROM study_sessions").
		WithArgs("uid-1").
		WillReturnRows(rows)

	sessions, err := repo.GetAllStudySessions(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].LocalID != 5 {
		t.Errorf("expected newest session first, got local_id %d", sessions[0].LocalID)
	}
}

func TestGetAllStudySessions_ScanError(t *testing.T) {
	db, mock, conn := newTestDB(t)
	defer conn.Close()

	repo := &studySessionRepository{DB: db, logger: db.logger}

	rows := sqlmock.NewRows([]string{"user_uid"}). // intentionally wrong shape → scan error
							AddRow("uid-1")

	mock.ExpectQuery("SELECT (.+) FROM study_sessions").
		WillReturnRows(rows)

	_, err := repo.GetAllStudySessions(context.Background(), "uid-1")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
