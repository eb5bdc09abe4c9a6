package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

// Repository implements simplecms.Repository using in-memory storage.
//
// Unique constraints are enforced the way a relational store would: the
// case-folded slug index and the per-tenant SEO config index are checked
// inside the write lock, so concurrent creates cannot both succeed.
type Repository struct {
	mu            sync.RWMutex
	pages         map[uuid.UUID]*simplecms.Page
	pagesBySlug   map[string]uuid.UUID // case-folded slug -> page_id
	seoConfigs    map[uuid.UUID]*simplecms.SeoConfig
	seoByTenant   map[uuid.UUID]uuid.UUID // tenant_id -> config_id
	announcements map[uuid.UUID]*simplecms.Announcement
}

// New creates a new in-memory repository
func New() simplecms.Repository {
	return &Repository{
		pages:         make(map[uuid.UUID]*simplecms.Page),
		pagesBySlug:   make(map[string]uuid.UUID),
		seoConfigs:    make(map[uuid.UUID]*simplecms.SeoConfig),
		seoByTenant:   make(map[uuid.UUID]uuid.UUID),
		announcements: make(map[uuid.UUID]*simplecms.Announcement),
	}
}

func slugKey(slug string) string {
	return strings.ToLower(slug)
}

// Page operations

func (r *Repository) CreatePage(ctx context.Context, page *simplecms.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slugKey(page.Slug)
	if _, exists := r.pagesBySlug[key]; exists {
		return simplecms.ErrDuplicateSlug
	}

	// Create a copy to avoid external modifications
	pageCopy := *page
	r.pages[page.ID] = &pageCopy
	r.pagesBySlug[key] = page.ID

	return nil
}

func (r *Repository) GetPage(ctx context.Context, id uuid.UUID) (*simplecms.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, exists := r.pages[id]
	if !exists {
		return nil, simplecms.ErrPageNotFound
	}

	pageCopy := *page
	return &pageCopy, nil
}

func (r *Repository) GetPageBySlug(ctx context.Context, slug string, tenantID *uuid.UUID) (*simplecms.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.pagesBySlug[slugKey(slug)]
	if !exists {
		return nil, simplecms.ErrPageNotFound
	}

	page := r.pages[id]
	if tenantID != nil {
		if page.TenantID == nil || *page.TenantID != *tenantID {
			return nil, simplecms.ErrPageNotFound
		}
	}

	pageCopy := *page
	return &pageCopy, nil
}

func (r *Repository) UpdatePage(ctx context.Context, page *simplecms.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.pages[page.ID]
	if !exists {
		return simplecms.ErrPageNotFound
	}

	oldKey := slugKey(existing.Slug)
	newKey := slugKey(page.Slug)
	if oldKey != newKey {
		if _, taken := r.pagesBySlug[newKey]; taken {
			return simplecms.ErrDuplicateSlug
		}
		delete(r.pagesBySlug, oldKey)
		r.pagesBySlug[newKey] = page.ID
	}

	pageCopy := *page
	r.pages[page.ID] = &pageCopy

	return nil
}

func (r *Repository) ListPages(ctx context.Context) ([]*simplecms.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*simplecms.Page, 0, len(r.pages))
	for _, page := range r.pages {
		pageCopy := *page
		result = append(result, &pageCopy)
	}

	// Sort by created_at descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// SEO config operations

func (r *Repository) CreateSeoConfig(ctx context.Context, config *simplecms.SeoConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seoByTenant[config.TenantID]; exists {
		return simplecms.ErrDuplicateTenantConfig
	}

	configCopy := *config
	r.seoConfigs[config.ID] = &configCopy
	r.seoByTenant[config.TenantID] = config.ID

	return nil
}

func (r *Repository) GetSeoConfigByTenant(ctx context.Context, tenantID uuid.UUID) (*simplecms.SeoConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.seoByTenant[tenantID]
	if !exists {
		return nil, simplecms.ErrSeoConfigNotFound
	}

	configCopy := *r.seoConfigs[id]
	return &configCopy, nil
}

func (r *Repository) UpdateSeoConfig(ctx context.Context, config *simplecms.SeoConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seoConfigs[config.ID]; !exists {
		return simplecms.ErrSeoConfigNotFound
	}

	configCopy := *config
	r.seoConfigs[config.ID] = &configCopy

	return nil
}

// Announcement operations

func (r *Repository) CreateAnnouncement(ctx context.Context, announcement *simplecms.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	announcementCopy := *announcement
	r.announcements[announcement.ID] = &announcementCopy

	return nil
}

func (r *Repository) GetAnnouncement(ctx context.Context, id uuid.UUID) (*simplecms.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	announcement, exists := r.announcements[id]
	if !exists {
		return nil, simplecms.ErrAnnouncementNotFound
	}

	announcementCopy := *announcement
	return &announcementCopy, nil
}

func (r *Repository) UpdateAnnouncement(ctx context.Context, announcement *simplecms.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.announcements[announcement.ID]; !exists {
		return simplecms.ErrAnnouncementNotFound
	}

	announcementCopy := *announcement
	r.announcements[announcement.ID] = &announcementCopy

	return nil
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.announcements[id]; !exists {
		return simplecms.ErrAnnouncementNotFound
	}

	delete(r.announcements, id)
	return nil
}

func (r *Repository) ListAnnouncements(ctx context.Context, query simplecms.AnnouncementQuery) ([]*simplecms.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*simplecms.Announcement
	for _, announcement := range r.announcements {
		if query.Matches(announcement) {
			announcementCopy := *announcement
			result = append(result, &announcementCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if query.Order.Desc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// Reconciliation passes

func (r *Repository) ActivateDueAnnouncements(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, a := range r.announcements {
		// start_date <= now < end_date
		if a.Status == simplecms.AnnouncementStatusScheduled &&
			!a.StartDate.After(now) && a.EndDate.After(now) {
			a.Status = simplecms.AnnouncementStatusActive
			a.UpdatedAt = now
			count++
		}
	}

	return count, nil
}

func (r *Repository) ExpireDueAnnouncements(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, a := range r.announcements {
		// end_date <= now; expired is terminal so it is skipped
		if a.Status != simplecms.AnnouncementStatusExpired && !a.EndDate.After(now) {
			a.Status = simplecms.AnnouncementStatusExpired
			a.UpdatedAt = now
			count++
		}
	}

	return count, nil
}
