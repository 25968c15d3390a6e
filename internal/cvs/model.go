package cvs

import (
	"time"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// Document is one saved CV owned by an identity. Content and Settings are
// the canonical editable state; render models are always derived on demand
// and never persisted.
type Document struct {
	ID             string
	UserID         string
	Title          string
	TemplateID     string
	Content        cv.Model
	Settings       cv.DisplaySettings
	SourceKey      string
	SourceFilename string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
