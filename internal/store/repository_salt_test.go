package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
)

func newTestSaltRepo(t *testing.T) (*saltRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &saltRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaltGetOrCreate_ReturnsExisting(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	ctx := context.Background()
	salt := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	rows := sqlmock.NewRows([]string{"salt"}).
		AddRow(base64.StdEncoding.EncodeToString(salt))

	mock.ExpectQuery("SELECT salt").
		WithArgs(identityDigest("user@example.com")).
		WillReturnRows(rows)

	got, err := repo.GetOrCreate(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(salt) {
		t.Errorf("expected stored salt back, got % x", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaltGetOrCreate_GeneratesAndStoresWhenMissing(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	ctx := context.Background()
	digest := identityDigest("user@example.com")

	mock.ExpectQuery("SELECT salt").
		WithArgs(digest).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectExec("INSERT INTO encryption_salts").
		WithArgs(digest, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.GetOrCreate(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 16 {
		t.Errorf("expected a fresh 16-byte salt, got %d bytes", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaltGetOrCreate_NormalizedIdentitiesShareRow(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	ctx := context.Background()
	salt := []byte("0123456789abcdef")

	// Both spellings must hit the same digest.
	for _, identity := range []string{"user@example.com", "USER@example.com"} {
		rows := sqlmock.NewRows([]string{"salt"}).
			AddRow(base64.StdEncoding.EncodeToString(salt))
		mock.ExpectQuery("SELECT salt").
			WithArgs(identityDigest("user@example.com")).
			WillReturnRows(rows)

		got, err := repo.GetOrCreate(ctx, identity)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", identity, err)
		}
		if string(got) != string(salt) {
			t.Errorf("expected shared salt for %q", identity)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaltGetOrCreate_UnexpectedQueryError(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT salt").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetOrCreate(context.Background(), "user@example.com")
	if err == nil || !strings.Contains(err.Error(), "failed to query salt") {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestSaltGet_CorruptBase64(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"salt"}).AddRow("!!! not base64 !!!")
	mock.ExpectQuery("SELECT salt").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	_, err := repo.get(context.Background(), "user@example.com")
	if !errors.Is(err, ErrDecodingSalt) {
		t.Fatalf("expected ErrDecodingSalt, got %v", err)
	}
}

func TestSaltStore_UpsertError(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO encryption_salts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := repo.Store(context.Background(), "user@example.com", []byte("0123456789abcdef"))
	if err == nil || !strings.Contains(err.Error(), "failed to persist salt") {
		t.Fatalf("expected wrapped persist error, got %v", err)
	}
}

func TestSaltHas(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	ctx := context.Background()
	digest := identityDigest("user@example.com")

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(digest).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	has, err := repo.Has(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !has {
		t.Errorf("expected Has=true for present salt")
	}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(digest).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	has, err = repo.Has(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if has {
		t.Errorf("expected Has=false for absent salt")
	}
}

func TestSaltClear(t *testing.T) {
	repo, mock, db := newTestSaltRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM encryption_salts").
		WithArgs(identityDigest("user@example.com")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Clear(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
