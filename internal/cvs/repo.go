package cvs

import "context"

// Repo defines persistence operations for CV documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, id string) (Document, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error)
	Update(ctx context.Context, doc Document) error
	Delete(ctx context.Context, userID, id string) error
	// DeleteAllForUser removes every document for the user and returns the
	// storage keys of their uploaded sources so the caller can clean up.
	DeleteAllForUser(ctx context.Context, userID string) ([]string, error)
	// ClaimGuest reassigns a guest's documents to an authenticated user.
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}
