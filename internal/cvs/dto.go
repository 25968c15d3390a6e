package cvs

import (
	"time"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
)

// DocumentResponse is the outward-facing representation of a CV document.
type DocumentResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	TemplateID     string             `json:"templateId"`
	Content        cv.Model           `json:"content"`
	Settings       cv.DisplaySettings `json:"settings"`
	SourceFilename string             `json:"sourceFilename,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// SummaryResponse is the trimmed list representation.
type SummaryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:             doc.ID,
		Title:          doc.Title,
		TemplateID:     doc.TemplateID,
		Content:        doc.Content,
		Settings:       doc.Settings,
		SourceFilename: doc.SourceFilename,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func toSummary(doc Document) SummaryResponse {
	return SummaryResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		TemplateID: doc.TemplateID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
