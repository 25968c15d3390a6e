package cvs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// PGRepo implements Repo using Postgres. Content and settings live in JSONB
// columns so the document schema can evolve without migrations.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, user_id, title, template_id, content, settings, source_key, source_filename, created_at, updated_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO cv_documents (
    id,
    user_id,
    title,
    template_id,
    content,
    settings,
    source_key,
    source_filename,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	content, settings, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	var sourceKey, sourceFilename sql.NullString
	if doc.SourceKey != "" {
		sourceKey = sql.NullString{String: doc.SourceKey, Valid: true}
	}
	if doc.SourceFilename != "" {
		sourceFilename = sql.NullString{String: doc.SourceFilename, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		doc.TemplateID,
		content,
		settings,
		sourceKey,
		sourceFilename,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// GetByID fetches a document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM cv_documents
WHERE user_id = $1 AND id = $2
LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// ListByUser lists documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM cv_documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Update replaces the editable fields of a document.
func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE cv_documents
SET title = $1, template_id = $2, content = $3, settings = $4, updated_at = $5
WHERE user_id = $6 AND id = $7`

	content, settings, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, doc.Title, doc.TemplateID, content, settings, doc.UpdatedAt, doc.UserID, doc.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document for a user.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM cv_documents WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllForUser removes every document for the user and returns the
// attached source storage keys.
func (r *PGRepo) DeleteAllForUser(ctx context.Context, userID string) ([]string, error) {
	const query = `
DELETE FROM cv_documents
WHERE user_id = $1
RETURNING source_key`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key sql.NullString
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		if key.Valid && key.String != "" {
			keys = append(keys, key.String)
		}
	}
	return keys, rows.Err()
}

// ClaimGuest reassigns documents owned by a guest user to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE cv_documents
SET user_id = $1
WHERE user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return int(updated), nil
}

func encodeDocument(doc Document) (content, settings []byte, err error) {
	content, err = json.Marshal(doc.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("encode content: %w", err)
	}
	settings, err = json.Marshal(doc.Settings)
	if err != nil {
		return nil, nil, fmt.Errorf("encode settings: %w", err)
	}
	return content, settings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc            Document
		content        []byte
		settings       []byte
		sourceKey      sql.NullString
		sourceFilename sql.NullString
	)
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.TemplateID,
		&content,
		&settings,
		&sourceKey,
		&sourceFilename,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	); err != nil {
		return Document{}, err
	}

	model, err := cv.DecodeModel(content)
	if err != nil {
		return Document{}, fmt.Errorf("decode content: %w", err)
	}
	doc.Content = model

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &doc.Settings); err != nil {
			return Document{}, fmt.Errorf("decode settings: %w", err)
		}
	}

	if sourceKey.Valid {
		doc.SourceKey = sourceKey.String
	}
	if sourceFilename.Valid {
		doc.SourceFilename = sourceFilename.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
