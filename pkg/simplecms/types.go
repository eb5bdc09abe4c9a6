package simplecms

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AnnouncementStatus is the domain type for announcement lifecycle states.
type AnnouncementStatus string

// Announcement status constants (typed).
const (
	AnnouncementStatusScheduled AnnouncementStatus = "scheduled"
	AnnouncementStatusActive    AnnouncementStatus = "active"
	AnnouncementStatusExpired   AnnouncementStatus = "expired"
)

// Valid reports whether s is a known announcement status.
func (s AnnouncementStatus) Valid() bool {
	switch s {
	case AnnouncementStatusScheduled, AnnouncementStatusActive, AnnouncementStatusExpired:
		return true
	default:
		return false
	}
}

// ParseAnnouncementStatus converts a raw string into a typed status.
func ParseAnnouncementStatus(s string) (AnnouncementStatus, error) {
	status := AnnouncementStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAnnouncementStatus, s)
	}
	return status, nil
}

// Page represents a static CMS page.
//
// Slug is globally unique across all tenants, compared case-insensitively.
// TenantID is a correlation key only; nil means the page is not tied to a
// tenant.
type Page struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SeoConfig represents per-tenant SEO metadata. At most one config exists per
// tenant; the repository's unique index on tenant_id enforces this.
type SeoConfig struct {
	ID              uuid.UUID  `json:"id"`
	TenantID        uuid.UUID  `json:"tenant_id"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	Keywords        []string   `json:"keywords"`
	IndexFollow     bool       `json:"index_follow"`
	OgImageURL      *string    `json:"og_image_url,omitempty"`
	CanonicalURL    *string    `json:"canonical_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Announcement represents a time-windowed tenant announcement.
//
// Status is caller-supplied at creation and recomputed only by the periodic
// reconciliation sweep. The date window is never validated: EndDate before
// StartDate is accepted and resolves to expired on the next sweep.
type Announcement struct {
	ID        uuid.UUID          `json:"id"`
	TenantID  uuid.UUID          `json:"tenant_id"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Status    AnnouncementStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
