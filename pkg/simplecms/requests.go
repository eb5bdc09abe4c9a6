package simplecms

import (
	"time"

	"github.com/google/uuid"
)

// Request/Response DTOs
//
// Update requests use pointer fields to carry a partial field set: nil means
// the field was absent from the request and the stored value is left
// untouched.

// CreatePageRequest contains parameters for creating a page
type CreatePageRequest struct {
	TenantID *uuid.UUID
	Slug     string
	Title    string
	Content  string
}

// UpdatePageRequest contains the partial field set for a page update
type UpdatePageRequest struct {
	TenantID *uuid.UUID
	Slug     *string
	Title    *string
	Content  *string
}

// CreateSeoConfigRequest contains parameters for creating a tenant's SEO
// config. IndexFollow defaults to true when nil.
type CreateSeoConfigRequest struct {
	TenantID        uuid.UUID
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	IndexFollow     *bool
	OgImageURL      *string
	CanonicalURL    *string
}

// UpdateSeoConfigRequest contains the partial field set for an SEO config
// update
type UpdateSeoConfigRequest struct {
	MetaTitle       *string
	MetaDescription *string
	Keywords        []string
	IndexFollow     *bool
	OgImageURL      *string
	CanonicalURL    *string
}

// CreateAnnouncementRequest contains parameters for creating an announcement.
// Status is caller-supplied, not derived from the date window.
type CreateAnnouncementRequest struct {
	TenantID  uuid.UUID
	Title     string
	Body      string
	StartDate time.Time
	EndDate   time.Time
	Status    AnnouncementStatus
}

// UpdateAnnouncementRequest contains the partial field set for an announcement
// update. Status here is a plain overwrite; the sweep does not run as part of
// an update.
type UpdateAnnouncementRequest struct {
	TenantID  *uuid.UUID
	Title     *string
	Body      *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *AnnouncementStatus
}
