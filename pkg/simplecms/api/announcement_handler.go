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

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	service simplecms.Service
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(service simplecms.Service) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Routes returns the routes for announcements
func (h *AnnouncementHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateAnnouncement)
	r.Get("/", h.ListAnnouncements)
	r.Post("/reconcile", h.Reconcile)
	r.Get("/{id}", h.GetAnnouncement)
	r.Put("/{id}", h.UpdateAnnouncement)
	r.Delete("/{id}", h.DeleteAnnouncement)

	return r
}

// CreateAnnouncementRequest is the request body for creating an announcement
type CreateAnnouncementRequest struct {
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

// UpdateAnnouncementRequest is the request body for a partial announcement update
type UpdateAnnouncementRequest struct {
	TenantID  *string    `json:"tenant_id,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Body      *string    `json:"body,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// AnnouncementResponse is the response body for an announcement
type AnnouncementResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAnnouncementResponse(a *simplecms.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID.String(),
		TenantID:  a.TenantID.String(),
		Title:     a.Title,
		Body:      a.Body,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateAnnouncement creates a new announcement
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		slog.Error("Invalid tenant ID", "tenant_id", req.TenantID, "error", err)
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}

	status, err := simplecms.ParseAnnouncementStatus(req.Status)
	if err != nil {
		slog.Error("Invalid status", "status", req.Status)
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	announcement, err := h.service.CreateAnnouncement(r.Context(), simplecms.CreateAnnouncementRequest{
		TenantID:  tenantID,
		Title:     req.Title,
		Body:      req.Body,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
	})
	if err != nil {
		slog.Error("Failed to create announcement", "tenant_id", req.TenantID, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("Announcement created", "announcement_id", announcement.ID.String())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toAnnouncementResponse(announcement))
}

// ListAnnouncements returns announcements matching the optional tenant_id and
// status query filters, newest first
func (h *AnnouncementHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	var opts []simplecms.AnnouncementQueryOption

	if raw := r.URL.Query().Get("tenant_id"); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			slog.Error("Invalid tenant ID", "tenant_id", raw, "error", err)
			http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
			return
		}
		opts = append(opts, simplecms.WithTenantFilter(tenantID))
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := simplecms.ParseAnnouncementStatus(raw)
		if err != nil {
			slog.Error("Invalid status", "status", raw)
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}
		opts = append(opts, simplecms.WithStatusFilter(status))
	}

	announcements, err := h.service.ListAnnouncements(r.Context(), simplecms.NewAnnouncementQuery(opts...))
	if err != nil {
		slog.Error("Failed to list announcements", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, toAnnouncementResponse(a))
	}

	render.JSON(w, r, resp)
}

// GetAnnouncement returns an announcement by its ID
func (h *AnnouncementHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid announcement ID", "announcement_id", idStr, "error", err)
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	announcement, err := h.service.GetAnnouncement(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get announcement", "announcement_id", idStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	render.JSON(w, r, toAnnouncementResponse(announcement))
}

// UpdateAnnouncement applies a partial update to an announcement
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid announcement ID", "announcement_id", idStr, "error", err)
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	var req UpdateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updateReq := simplecms.UpdateAnnouncementRequest{
		Title:     req.Title,
		Body:      req.Body,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
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
	if req.Status != nil {
		status, err := simplecms.ParseAnnouncementStatus(*req.Status)
		if err != nil {
			slog.Error("Invalid status", "status", *req.Status)
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}
		updateReq.Status = &status
	}

	announcement, err := h.service.UpdateAnnouncement(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Failed to update announcement", "announcement_id", idStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("Announcement updated", "announcement_id", idStr)
	render.JSON(w, r, toAnnouncementResponse(announcement))
}

// DeleteAnnouncement deletes an announcement
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		slog.Error("Invalid announcement ID", "announcement_id", idStr, "error", err)
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteAnnouncement(r.Context(), id); err != nil {
		slog.Error("Failed to delete announcement", "announcement_id", idStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("Announcement deleted", "announcement_id", idStr)
	w.WriteHeader(http.StatusNoContent)
}

// Reconcile runs the two-pass status sweep on demand. The same sweep is
// normally driven by the server's ticker; this endpoint exists for operators
// and tests.
func (h *AnnouncementHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ReconcileAnnouncements(r.Context()); err != nil {
		slog.Error("Failed to reconcile announcements", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
