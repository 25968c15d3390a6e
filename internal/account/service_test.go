package account

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/cvs"
	"github.com/baehrendtz/FreeResume-sub000/internal/users"
)

type stubStore struct {
	deleted []string
}

func (s *stubStore) Save(ctx context.Context, userID, fileName string, r io.Reader) (string, int64, string, error) {
	return userID + "/" + fileName, 0, "application/pdf", nil
}

func (s *stubStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, errors.New("not found")
}

func (s *stubStore) Delete(ctx context.Context, storageKey string) error {
	s.deleted = append(s.deleted, storageKey)
	return nil
}

func seedDocument(t *testing.T, repo cvs.Repo, userID, id, sourceKey string) {
	t.Helper()
	doc := cvs.Document{
		ID:         id,
		UserID:     userID,
		Title:      "CV " + id,
		TemplateID: "classic",
		Content:    cv.New(),
		Settings:   cv.DefaultDisplaySettings(),
		SourceKey:  sourceKey,
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("seed document %s: %v", id, err)
	}
}

func TestClaimGuestMovesDocuments(t *testing.T) {
	cvRepo := cvs.NewMemoryRepo()
	userRepo := users.NewMemoryRepo()
	store := &stubStore{}
	svc := NewService(cvRepo, userRepo, store)

	seedDocument(t, cvRepo, "guest:abc", "doc-1", "")
	seedDocument(t, cvRepo, "guest:abc", "doc-2", "")
	seedDocument(t, cvRepo, "guest:other", "doc-3", "")

	result, err := svc.ClaimGuest(context.Background(), "guest:abc", "google:123")
	if err != nil {
		t.Fatalf("ClaimGuest: %v", err)
	}
	if result.MigratedCVs != 2 {
		t.Fatalf("expected 2 migrated, got %d", result.MigratedCVs)
	}

	docs, err := cvRepo.ListByUser(context.Background(), "google:123", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents for claimed user, got %d", len(docs))
	}

	remaining, err := cvRepo.ListByUser(context.Background(), "guest:abc", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser guest: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected guest to keep nothing, got %d", len(remaining))
	}

	other, err := cvRepo.ListByUser(context.Background(), "guest:other", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser other: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("other guest's documents must be untouched, got %d", len(other))
	}
}

func TestClaimGuestRequiresBothIdentities(t *testing.T) {
	svc := NewService(cvs.NewMemoryRepo(), users.NewMemoryRepo(), &stubStore{})

	if _, err := svc.ClaimGuest(context.Background(), "", "google:123"); err == nil {
		t.Fatal("expected error for missing guest id")
	}
	if _, err := svc.ClaimGuest(context.Background(), "guest:abc", " "); err == nil {
		t.Fatal("expected error for missing authed id")
	}
}

func TestDeleteAccountRemovesDocumentsUploadsAndUser(t *testing.T) {
	cvRepo := cvs.NewMemoryRepo()
	userRepo := users.NewMemoryRepo()
	store := &stubStore{}
	svc := NewService(cvRepo, userRepo, store)

	if err := userRepo.Upsert(context.Background(), users.User{ID: "google:123", Email: "erik@example.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	seedDocument(t, cvRepo, "google:123", "doc-1", "google:123/a.pdf")
	seedDocument(t, cvRepo, "google:123", "doc-2", "")

	if err := svc.DeleteAccount(context.Background(), "google:123"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	docs, err := cvRepo.ListByUser(context.Background(), "google:123", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}

	if len(store.deleted) != 1 || store.deleted[0] != "google:123/a.pdf" {
		t.Fatalf("expected one upload deleted, got %v", store.deleted)
	}

	if _, err := userRepo.GetByID(context.Background(), "google:123"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected user removed, got %v", err)
	}
}

func TestDeleteAccountKeepsNoUserRowForGuests(t *testing.T) {
	cvRepo := cvs.NewMemoryRepo()
	userRepo := users.NewMemoryRepo()
	svc := NewService(cvRepo, userRepo, &stubStore{})

	seedDocument(t, cvRepo, "guest:abc", "doc-1", "")

	if err := svc.DeleteAccount(context.Background(), "guest:abc"); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	docs, err := cvRepo.ListByUser(context.Background(), "guest:abc", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}
