package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

// PageHandler handles HTTP requests for CMS pages
type PageHandler struct {
	service simplecms.Service
}

// NewPageHandler creates a new page handler
func NewPageHandler(service simplecms.Service) *PageHandler {
	return &PageHandler{service: service}
}

// Routes returns the routes for pages
func (h *PageHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreatePage)
	r.Get("/", h.ListPages)
	r.Get("/slug/{slug}", h.GetPageBySlug)
	r.Get("/{id}", h.GetPage)
	r.Put("/{id}", h.UpdatePage)

	return r
}

// CreatePageRequest is the request body for creating a page
type CreatePageRequest struct {
	TenantID string `json:"tenant_id,omitempty"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// UpdatePageRequest is the request body for a partial page update
type UpdatePageRequest struct {
	TenantID *string `json:"tenant_id,omitempty"`
	Slug     *string `json:"slug,omitempty"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
}

// PageResponse is the response body for a page
type PageResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPageResponse(page *simplecms.Page) PageResponse {
	resp := PageResponse{
		ID:        page.ID.String(),
		Slug:      page.Slug,
		Title:     page.Title,
		Content:   page.Content,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
	if page.TenantID != nil {
		resp.TenantID = page.TenantID.String()
	}
	return resp
}

// CreatePage creates a new page
func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req CreatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Slug == "" {
		http.Error(w, "Slug is required", http.StatusBadRequest)
		return
	}

	createReq := simplecms.CreatePageRequest{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
	}
	if req.TenantID != "" {
		tenantID, err := uuid.Parse(req.TenantID)
		if err != nil {
			slog.Error("Invalid tenant ID", "tenant_id", req.TenantID, "error", err)
			http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
			return
		}
		createReq.TenantID = &tenantID
	}

	page, err := h.service.CreatePage(r.Context(), createReq)
	if err != nil {
		slog.Error("Failed to create page", "slug", req.Slug, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("Page created", "page_id", page.ID.String(), "slug", page.Slug)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toPageResponse(page))
}

// ListPages returns all pages ordered by creation time, newest first
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.service.ListPages(r.Context())
	if err != nil {
		slog.Error("Failed to list pages", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]PageResponse, 0, len(pages))
	for _, page := range pages {
		resp = append(resp, toPageResponse(page))
	}

	render.JSON(w, r, resp)
}

// GetPageBySlug looks up a page by slug with an optional tenant_id filter
func (h *PageHandler) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var tenantID *uuid.UUID
	if raw := r.URL.Query().Get("tenant_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			slog.Error("Invalid tenant ID", "tenant_id", raw, "error", err)
			http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
			return
		}
		tenantID = &parsed
	}

	page, err := h.service.GetPageBySlug(r.Context(), slug, tenantID)
	if err != nil {
		slog.Error("Failed to get page by slug", "slug", slug, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	render.JSON(w, r, toPageResponse(page))
}

// GetPage returns a page by its ID
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid page ID", "page_id", idStr, "error", err)
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	page, err := h.service.GetPage(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get page", "page_id", idStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	render.JSON(w, r, toPageResponse(page))
}

// UpdatePage applies a partial update to a page
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid page ID", "page_id", idStr, "error", err)
		http.Error(w, "Invalid page ID", http.StatusBadRequest)
		return
	}

	var req UpdatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updateReq := simplecms.UpdatePageRequest{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
	}
	if req.TenantID != nil {
		tenantID, err := uuid.Parse(*req.TenantID)
		if err != nil {
			slog.Error("Invalid tenant ID", "tenant_id", *req.TenantID, "error", err)
			http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
			return
		}
		updateReq.TenantID = &tenantID
	}

	page, err := h.service.UpdatePage(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Failed to update page", "page_id", idStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("Page updated", "page_id", idStr)
	render.JSON(w, r, toPageResponse(page))
}
