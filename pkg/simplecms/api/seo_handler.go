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

// SeoHandler handles HTTP requests for per-tenant SEO configuration
type SeoHandler struct {
	service simplecms.Service
}

// NewSeoHandler creates a new SEO config handler
func NewSeoHandler(service simplecms.Service) *SeoHandler {
	return &SeoHandler{service: service}
}

// Routes returns the routes for SEO configs
func (h *SeoHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.CreateSeoConfig)
	r.Get("/{tenantID}", h.GetSeoConfigByTenant)
	r.Put("/{tenantID}", h.UpdateSeoConfig)

	return r
}

// CreateSeoConfigRequest is the request body for creating an SEO config
type CreateSeoConfigRequest struct {
	TenantID        string   `json:"tenant_id"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	IndexFollow     *bool    `json:"index_follow,omitempty"`
	OgImageURL      *string  `json:"og_image_url,omitempty"`
	CanonicalURL    *string  `json:"canonical_url,omitempty"`
}

// UpdateSeoConfigRequest is the request body for a partial SEO config update
type UpdateSeoConfigRequest struct {
	MetaTitle       *string  `json:"meta_title,omitempty"`
	MetaDescription *string  `json:"meta_description,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	IndexFollow     *bool    `json:"index_follow,omitempty"`
	OgImageURL      *string  `json:"og_image_url,omitempty"`
	CanonicalURL    *string  `json:"canonical_url,omitempty"`
}

// SeoConfigResponse is the response body for an SEO config
type SeoConfigResponse struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	Keywords        []string  `json:"keywords"`
	IndexFollow     bool      `json:"index_follow"`
	OgImageURL      *string   `json:"og_image_url,omitempty"`
	CanonicalURL    *string   `json:"canonical_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toSeoConfigResponse(config *simplecms.SeoConfig) SeoConfigResponse {
	return SeoConfigResponse{
		ID:              config.ID.String(),
		TenantID:        config.TenantID.String(),
		MetaTitle:       config.MetaTitle,
		MetaDescription: config.MetaDescription,
		Keywords:        config.Keywords,
		IndexFollow:     config.IndexFollow,
		OgImageURL:      config.OgImageURL,
		CanonicalURL:    config.CanonicalURL,
		CreatedAt:       config.CreatedAt,
		UpdatedAt:       config.UpdatedAt,
	}
}

// CreateSeoConfig creates the SEO config for a tenant
func (h *SeoHandler) CreateSeoConfig(w http.ResponseWriter, r *http.Request) {
	var req CreateSeoConfigRequest
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

	config, err := h.service.CreateSeoConfig(r.Context(), simplecms.CreateSeoConfigRequest{
		TenantID:        tenantID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		IndexFollow:     req.IndexFollow,
		OgImageURL:      req.OgImageURL,
		CanonicalURL:    req.CanonicalURL,
	})
	if err != nil {
		slog.Error("Failed to create seo config", "tenant_id", req.TenantID, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("SEO config created", "config_id", config.ID.String(), "tenant_id", req.TenantID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toSeoConfigResponse(config))
}

// GetSeoConfigByTenant returns the SEO config for a tenant
func (h *SeoHandler) GetSeoConfigByTenant(w http.ResponseWriter, r *http.Request) {
	tenantStr := chi.URLParam(r, "tenantID")
	tenantID, err := uuid.Parse(tenantStr)
	if err != nil {
		slog.Error("Invalid tenant ID", "tenant_id", tenantStr, "error", err)
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}

	config, err := h.service.GetSeoConfigByTenant(r.Context(), tenantID)
	if err != nil {
		slog.Error("Failed to get seo config", "tenant_id", tenantStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	render.JSON(w, r, toSeoConfigResponse(config))
}

// UpdateSeoConfig applies a partial update to a tenant's SEO config
func (h *SeoHandler) UpdateSeoConfig(w http.ResponseWriter, r *http.Request) {
	tenantStr := chi.URLParam(r, "tenantID")
	tenantID, err := uuid.Parse(tenantStr)
	if err != nil {
		slog.Error("Invalid tenant ID", "tenant_id", tenantStr, "error", err)
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}

	var req UpdateSeoConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config, err := h.service.UpdateSeoConfig(r.Context(), tenantID, simplecms.UpdateSeoConfigRequest{
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		IndexFollow:     req.IndexFollow,
		OgImageURL:      req.OgImageURL,
		CanonicalURL:    req.CanonicalURL,
	})
	if err != nil {
		slog.Error("Failed to update seo config", "tenant_id", tenantStr, "error", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	slog.Info("SEO config updated", "tenant_id", tenantStr)
	render.JSON(w, r, toSeoConfigResponse(config))
}
