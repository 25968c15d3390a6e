package cvs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

func pgTestDocument() Document {
	model := cv.New()
	model.Name = "Erik Lund"
	model.Skills = []string{"Go", "SQL"}
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	return Document{
		ID:             "doc-1",
		UserID:         "guest:abc",
		Title:          "Erik Lund",
		TemplateID:     "classic",
		Content:        model,
		Settings:       cv.DefaultDisplaySettings(),
		SourceKey:      "guest:abc/profile.pdf",
		SourceFilename: "profile.pdf",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPGRepoCreateEncodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := pgTestDocument()

	mock.ExpectExec("INSERT INTO cv_documents").
		WithArgs(
			doc.ID,
			doc.UserID,
			doc.Title,
			doc.TemplateID,
			sqlmock.AnyArg(), // content
			sqlmock.AnyArg(), // settings
			doc.SourceKey,
			doc.SourceFilename,
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := pgTestDocument()

	content, err := json.Marshal(doc.Content)
	if err != nil {
		t.Fatalf("marshal content: %v", err)
	}
	settings, err := json.Marshal(doc.Settings)
	if err != nil {
		t.Fatalf("marshal settings: %v", err)
	}

	columns := []string{"id", "user_id", "title", "template_id", "content", "settings", "source_key", "source_filename", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM cv_documents").
		WithArgs(doc.UserID, doc.ID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(doc.ID, doc.UserID, doc.Title, doc.TemplateID, content, settings, doc.SourceKey, doc.SourceFilename, doc.CreatedAt, doc.UpdatedAt))

	got, err := repo.GetByID(context.Background(), doc.UserID, doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Content.Name != "Erik Lund" {
		t.Fatalf("expected decoded content, got %+v", got.Content)
	}
	if got.Settings.MaxSkills != doc.Settings.MaxSkills {
		t.Fatalf("expected decoded settings, got %+v", got.Settings)
	}
	if got.SourceKey != doc.SourceKey {
		t.Fatalf("expected source key %q, got %q", doc.SourceKey, got.SourceKey)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	columns := []string{"id", "user_id", "title", "template_id", "content", "settings", "source_key", "source_filename", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM cv_documents").
		WithArgs("guest:abc", "missing").
		WillReturnRows(sqlmock.NewRows(columns))

	if _, err := repo.GetByID(context.Background(), "guest:abc", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := pgTestDocument()

	mock.ExpectExec("UPDATE cv_documents").
		WithArgs(doc.Title, doc.TemplateID, sqlmock.AnyArg(), sqlmock.AnyArg(), doc.UpdatedAt, doc.UserID, doc.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), doc); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteAllForUserReturnsStorageKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("DELETE FROM cv_documents").
		WithArgs("guest:abc").
		WillReturnRows(sqlmock.NewRows([]string{"source_key"}).
			AddRow("guest:abc/a.pdf").
			AddRow(nil).
			AddRow("guest:abc/b.pdf"))

	keys, err := repo.DeleteAllForUser(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("DeleteAllForUser: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
}

func TestPGRepoClaimGuestCountsMoves(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE cv_documents").
		WithArgs("google:123", "guest:abc").
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.ClaimGuest(context.Background(), "guest:abc", "google:123")
	if err != nil {
		t.Fatalf("ClaimGuest: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}
}
