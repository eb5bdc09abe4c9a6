package simplecms

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the main interface for the simple-cms library
type Service interface {
	// Page operations
	CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error)
	GetPage(ctx context.Context, id uuid.UUID) (*Page, error)
	GetPageBySlug(ctx context.Context, slug string, tenantID *uuid.UUID) (*Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, req UpdatePageRequest) (*Page, error)
	ListPages(ctx context.Context) ([]*Page, error)

	// SEO config operations
	CreateSeoConfig(ctx context.Context, req CreateSeoConfigRequest) (*SeoConfig, error)
	GetSeoConfigByTenant(ctx context.Context, tenantID uuid.UUID) (*SeoConfig, error)
	UpdateSeoConfig(ctx context.Context, tenantID uuid.UUID, req UpdateSeoConfigRequest) (*SeoConfig, error)

	// Announcement operations
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*Announcement, error)
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, req UpdateAnnouncementRequest) (*Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
	ListAnnouncements(ctx context.Context, query AnnouncementQuery) ([]*Announcement, error)

	// ReconcileAnnouncements runs the two-pass status sweep: activate due
	// scheduled announcements, then expire everything whose window has
	// closed. Designed to be invoked periodically by an external scheduler;
	// re-running against an unchanged store produces zero writes.
	ReconcileAnnouncements(ctx context.Context) error
}
