package cvs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/fit"
	"github.com/baehrendtz/FreeResume-sub000/internal/linkedin"
	"github.com/baehrendtz/FreeResume-sub000/internal/pdftext"
	"github.com/baehrendtz/FreeResume-sub000/internal/render"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/object"
)

// ImportMeter limits how many imports an identity can run per month.
type ImportMeter interface {
	ConsumeImport(ctx context.Context, userID string, guest bool) error
}

// Service contains business logic for CV documents.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	Meter ImportMeter
}

// CreateBlank creates an empty CV with default settings and template.
func (s *Service) CreateBlank(ctx context.Context, userID, title string) (Document, error) {
	if title == "" {
		title = "Untitled CV"
	}
	now := time.Now().UTC()
	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		TemplateID: render.DefaultTemplateID,
		Content:    cv.New(),
		Settings:   cv.DefaultDisplaySettings(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Import runs the extraction pipeline on an uploaded LinkedIn PDF: the
// original file is kept in object storage, the parsed model becomes a new
// document. An unparseable file fails; an empty one yields an empty model.
func (s *Service) Import(ctx context.Context, userID string, guest bool, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	if s.Meter != nil {
		if err := s.Meter.ConsumeImport(ctx, userID, guest); err != nil {
			return Document{}, err
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}

	pages, err := pdftext.ExtractPages(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	model := linkedin.Parse(pages)

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	title := model.Name
	if title == "" {
		title = fileName
	}

	now := time.Now().UTC()
	doc := Document{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          title,
		TemplateID:     render.DefaultTemplateID,
		Content:        model,
		Settings:       cv.DefaultDisplaySettings(),
		SourceKey:      storageKey,
		SourceFilename: fileName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get returns one document.
func (s *Service) Get(ctx context.Context, userID, id string) (Document, error) {
	if userID == "" || id == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Update replaces a document's editable state.
func (s *Service) Update(ctx context.Context, doc Document) (Document, error) {
	if doc.UserID == "" || doc.ID == "" {
		return Document{}, ErrInvalidInput
	}
	if doc.TemplateID != "" {
		if _, ok := render.Template(doc.TemplateID); !ok {
			return Document{}, ErrUnknownTemplate
		}
	} else {
		doc.TemplateID = render.DefaultTemplateID
	}
	doc.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Delete removes a document.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, id)
}

// OpenSource streams the original uploaded PDF for a document. Documents
// created blank have no source file.
func (s *Service) OpenSource(ctx context.Context, userID, id string) (io.ReadCloser, string, error) {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	if doc.SourceKey == "" {
		return nil, "", ErrNotFound
	}
	reader, err := s.Store.Open(ctx, doc.SourceKey)
	if err != nil {
		return nil, "", fmt.Errorf("open source: %w", err)
	}
	name := doc.SourceFilename
	if name == "" {
		name = "source.pdf"
	}
	return reader, name, nil
}

// Render derives the render model and trim info for a document, optionally
// overriding its stored template and settings.
func (s *Service) Render(ctx context.Context, userID, id, templateID string, settings *cv.DisplaySettings) (render.Model, render.TrimInfo, error) {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return render.Model{}, render.TrimInfo{}, err
	}

	meta, err := resolveTemplate(doc, templateID)
	if err != nil {
		return render.Model{}, render.TrimInfo{}, err
	}
	effective := doc.Settings
	if settings != nil {
		effective = *settings
	}

	rm := render.Build(doc.Content, meta, effective)
	return rm, render.ComputeTrimInfo(doc.Content, rm), nil
}

// FitStep runs one auto-fit decision for a document against the supplied
// layout measurement. A nil result means nothing more applies.
func (s *Service) FitStep(ctx context.Context, userID, id, templateID string, settings cv.DisplaySettings, metrics fit.LayoutMetrics) (*fit.Result, error) {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	meta, err := resolveTemplate(doc, templateID)
	if err != nil {
		return nil, err
	}
	return fit.Next(doc.Content, meta, settings, metrics), nil
}

func resolveTemplate(doc Document, override string) (render.TemplateMeta, error) {
	id := override
	if id == "" {
		id = doc.TemplateID
	}
	if id == "" {
		id = render.DefaultTemplateID
	}
	meta, ok := render.Template(id)
	if !ok {
		return render.TemplateMeta{}, ErrUnknownTemplate
	}
	return meta, nil
}
