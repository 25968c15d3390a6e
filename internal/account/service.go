package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/baehrendtz/FreeResume-sub000/internal/cvs"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/object"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/telemetry"
	"github.com/baehrendtz/FreeResume-sub000/internal/users"
)

type Service struct {
	CvRepo   cvs.Repo
	UserRepo users.Repo
	Store    object.ObjectStore
}

type ClaimResult struct {
	MigratedCVs int `json:"migratedCvs"`
}

func NewService(cvRepo cvs.Repo, userRepo users.Repo, store object.ObjectStore) *Service {
	return &Service{CvRepo: cvRepo, UserRepo: userRepo, Store: store}
}

// ClaimGuest moves a guest identity's CVs to the signed-in user.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if pg, ok := s.CvRepo.(*cvs.PGRepo); ok && pg != nil && pg.DB != nil {
		return claimWithTx(ctx, pg.DB, guestUserID, authedUserID)
	}

	count, err := s.CvRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedCVs: count}, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE cv_documents SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	count, _ := res.RowsAffected()

	if _, err := tx.ExecContext(ctx, `DELETE FROM usage_counters WHERE user_id = $1`, guestUserID); err != nil {
		return ClaimResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedCVs: int(count)}, nil
}

// DeleteAccount removes the user's documents, their stored uploads and the
// user row itself. Upload cleanup failures are logged, not fatal.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}

	keys, err := s.CvRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return err
	}

	if s.Store != nil {
		for _, key := range keys {
			if err := s.Store.Delete(ctx, key); err != nil {
				telemetry.Error("account.delete_upload_failed", map[string]any{
					"storage_key": key,
					"error":       err.Error(),
				})
			}
		}
	}

	if s.UserRepo != nil && !strings.HasPrefix(userID, "guest:") {
		if err := s.UserRepo.Delete(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}
