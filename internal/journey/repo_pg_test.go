package journey

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveWritesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	snap := Snapshot{
		ID:        "snap-1",
		Checksum:  Checksum(Default()),
		Config:    Default(),
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO catalog_snapshots").
		WithArgs(snap.ID, snap.Checksum, sqlmock.AnyArg(), snap.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSaveDefaultsCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO catalog_snapshots").
		WithArgs("snap-2", "sum", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Save(context.Background(), Snapshot{ID: "snap-2", Checksum: "sum", Config: Default()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestDecodesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	payload, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	created := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "checksum", "payload", "created_at"}).
		AddRow("snap-3", "sum", payload, created)
	mock.ExpectQuery("FROM catalog_snapshots").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	snap, err := repo.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap.ID != "snap-3" || !snap.CreatedAt.Equal(created) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if len(snap.Config.Chapters) != 5 {
		t.Fatalf("expected 5 chapters, got %d", len(snap.Config.Chapters))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestEmptyIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM catalog_snapshots").
		WillReturnRows(sqlmock.NewRows([]string{"id", "checksum", "payload", "created_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.Latest(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
