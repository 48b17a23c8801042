package quiz

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"id", "responses", "created_at", "updated_at"}).
		AddRow("s-1", []byte(`{"background":"tech","yearsOfExperience":"6"}`), now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, responses, created_at, updated_at")).
		WithArgs("s-1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	store := NewPGStore(db)
	got, err := store.Get(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Responses.Background != "tech" || got.Responses.YearsOfExperience != "6" {
		t.Fatalf("unexpected responses: %+v", got.Responses)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGStoreGetMissingOrStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, responses, created_at, updated_at")).
		WithArgs("gone", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "responses", "created_at", "updated_at"}))

	store := NewPGStore(db)
	if _, err := store.Get(context.Background(), "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGStoreSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_sessions")).
		WithArgs("s-2", sqlmock.AnyArg(), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPGStore(db)
	s := Session{
		ID:        "s-2",
		Responses: Responses{TargetRole: "Backend Engineer"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
