package simplecms

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for page, SEO config and announcement
// persistence. The repository is the system of record for uniqueness:
// implementations must enforce the case-insensitive unique index on page
// slugs and the unique index on SEO config tenant_id, returning
// ErrDuplicateSlug / ErrDuplicateTenantConfig on violation.
type Repository interface {
	// Page operations
	CreatePage(ctx context.Context, page *Page) error
	GetPage(ctx context.Context, id uuid.UUID) (*Page, error)
	// GetPageBySlug matches slugs case-insensitively. A non-nil tenantID
	// narrows the match, though a globally unique slug can match at most one
	// row either way.
	GetPageBySlug(ctx context.Context, slug string, tenantID *uuid.UUID) (*Page, error)
	UpdatePage(ctx context.Context, page *Page) error
	ListPages(ctx context.Context) ([]*Page, error)

	// SEO config operations
	CreateSeoConfig(ctx context.Context, config *SeoConfig) error
	GetSeoConfigByTenant(ctx context.Context, tenantID uuid.UUID) (*SeoConfig, error)
	UpdateSeoConfig(ctx context.Context, config *SeoConfig) error

	// Announcement operations
	CreateAnnouncement(ctx context.Context, announcement *Announcement) error
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcement *Announcement) error
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	ListAnnouncements(ctx context.Context, query AnnouncementQuery) ([]*Announcement, error)

	// Reconciliation passes. Each is a single predicate batch update that
	// returns the number of rows transitioned, so a repeated sweep against an
	// unchanged store reports zero writes.
	//
	// ActivateDueAnnouncements: status scheduled AND start_date <= now < end_date -> active.
	// ExpireDueAnnouncements:   status != expired AND end_date <= now -> expired.
	ActivateDueAnnouncements(ctx context.Context, now time.Time) (int64, error)
	ExpireDueAnnouncements(ctx context.Context, now time.Time) (int64, error)
}

// EventSink defines the interface for event handling
type EventSink interface {
	// PageCreated is fired when a page is created
	PageCreated(ctx context.Context, page *Page) error

	// PageUpdated is fired when a page is updated
	PageUpdated(ctx context.Context, page *Page) error

	// SeoConfigCreated is fired when an SEO config is created
	SeoConfigCreated(ctx context.Context, config *SeoConfig) error

	// SeoConfigUpdated is fired when an SEO config is updated
	SeoConfigUpdated(ctx context.Context, config *SeoConfig) error

	// AnnouncementCreated is fired when an announcement is created
	AnnouncementCreated(ctx context.Context, announcement *Announcement) error

	// AnnouncementUpdated is fired when an announcement is updated
	AnnouncementUpdated(ctx context.Context, announcement *Announcement) error

	// AnnouncementDeleted is fired when an announcement is deleted
	AnnouncementDeleted(ctx context.Context, announcementID uuid.UUID) error

	// AnnouncementsReconciled is fired after a sweep that transitioned at
	// least one announcement
	AnnouncementsReconciled(ctx context.Context, activated, expired int64) error
}
