package cvs

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baehrendtz/FreeResume-sub000/internal/cv"
	"github.com/baehrendtz/FreeResume-sub000/internal/fit"
	"github.com/baehrendtz/FreeResume-sub000/internal/render"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/metrics"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/server/middleware"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/server/respond"
	"github.com/baehrendtz/FreeResume-sub000/internal/usage"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches CV routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cvs/import", h.importPDF)
	rg.POST("/cvs", h.create)
	rg.GET("/cvs", h.list)
	rg.GET("/cvs/:id", h.get)
	rg.PUT("/cvs/:id", h.update)
	rg.DELETE("/cvs/:id", h.delete)
	rg.GET("/cvs/:id/source", h.downloadSource)
	rg.POST("/cvs/:id/render", h.render)
	rg.POST("/cvs/:id/fit-step", h.fitStep)
	rg.GET("/templates", h.templates)
}

func (h *Handler) importPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	guest := middleware.IsGuestFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	metrics.IncImportStarted()
	started := time.Now()
	doc, err := h.Svc.Import(c.Request.Context(), userID, guest, fileHeader.Filename, file)
	metrics.ObserveImportDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncImportFailed()
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_exceeded", "monthly import limit reached", nil)
		case errors.Is(err, ErrPDFParse):
			respond.Error(c, http.StatusUnprocessableEntity, "pdf_parse_failed", "could not read the uploaded PDF", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import CV", nil)
		}
		return
	}
	metrics.IncImportCompleted()

	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

type createRequest struct {
	Title string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	// An empty body is fine; the title defaults server-side.
	_ = c.ShouldBindJSON(&req)

	doc, err := h.Svc.CreateBlank(c.Request.Context(), userID, req.Title)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create CV", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list CVs", nil)
		return
	}

	resp := make([]SummaryResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toSummary(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch CV")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(doc))
}

type updateRequest struct {
	Title      string              `json:"title"`
	TemplateID string              `json:"templateId"`
	Content    *cv.Model           `json:"content"`
	Settings   *cv.DisplaySettings `json:"settings"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch CV")
		return
	}

	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.TemplateID != "" {
		doc.TemplateID = req.TemplateID
	}
	if req.Content != nil {
		doc.Content = *req.Content
	}
	if req.Settings != nil {
		doc.Settings = *req.Settings
	}

	doc, err = h.Svc.Update(c.Request.Context(), doc)
	if err != nil {
		h.respondServiceError(c, err, "failed to update CV")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(doc))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondServiceError(c, err, "failed to delete CV")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) downloadSource(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	reader, fileName, err := h.Svc.OpenSource(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to load source file")
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

type renderRequest struct {
	TemplateID string              `json:"templateId"`
	Settings   *cv.DisplaySettings `json:"settings"`
}

type renderResponse struct {
	RenderModel render.Model    `json:"renderModel"`
	TrimInfo    render.TrimInfo `json:"trimInfo"`
}

func (h *Handler) render(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req renderRequest
	// Body is optional; stored template and settings apply by default.
	_ = c.ShouldBindJSON(&req)

	rm, info, err := h.Svc.Render(c.Request.Context(), userID, c.Param("id"), req.TemplateID, req.Settings)
	if err != nil {
		h.respondServiceError(c, err, "failed to render CV")
		return
	}
	respond.JSON(c, http.StatusOK, renderResponse{RenderModel: rm, TrimInfo: info})
}

type fitStepRequest struct {
	TemplateID string             `json:"templateId"`
	Settings   cv.DisplaySettings `json:"settings"`
	Metrics    fit.LayoutMetrics  `json:"metrics"`
}

func (h *Handler) fitStep(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req fitStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.FitStep(c.Request.Context(), userID, c.Param("id"), req.TemplateID, req.Settings, req.Metrics)
	if err != nil {
		h.respondServiceError(c, err, "failed to run fit step")
		return
	}
	metrics.IncFitStep()

	if result == nil {
		respond.JSON(c, http.StatusOK, gin.H{"done": true})
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) templates(c *gin.Context) {
	respond.JSON(c, http.StatusOK, render.Templates())
}

func (h *Handler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrUnknownTemplate):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template id", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
