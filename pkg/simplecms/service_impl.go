package simplecms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service struct {
	repository Repository
	eventSink  EventSink
	now        func() time.Time
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// WithClock overrides the time source used for timestamps and the
// reconciliation sweep. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		now: time.Now,
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

// Page operations

func (s *service) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	// Advisory existence check. It is check-then-act and may race with a
	// concurrent writer; the repository's unique index on the case-folded
	// slug is the authoritative guard.
	existing, err := s.repository.GetPageBySlug(ctx, req.Slug, nil)
	if err != nil && !errors.Is(err, ErrPageNotFound) {
		return nil, &PageError{Op: "create", Err: err}
	}
	if existing != nil {
		return nil, &PageError{PageID: existing.ID, Op: "create", Err: ErrDuplicateSlug}
	}

	now := s.now().UTC()
	page := &Page{
		ID:        uuid.New(),
		TenantID:  req.TenantID,
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreatePage(ctx, page); err != nil {
		return nil, &PageError{PageID: page.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		// Event failures never fail the operation
		_ = s.eventSink.PageCreated(ctx, page)
	}

	return page, nil
}

func (s *service) GetPage(ctx context.Context, id uuid.UUID) (*Page, error) {
	return s.repository.GetPage(ctx, id)
}

func (s *service) GetPageBySlug(ctx context.Context, slug string, tenantID *uuid.UUID) (*Page, error) {
	return s.repository.GetPageBySlug(ctx, slug, tenantID)
}

func (s *service) UpdatePage(ctx context.Context, id uuid.UUID, req UpdatePageRequest) (*Page, error) {
	page, err := s.repository.GetPage(ctx, id)
	if err != nil {
		return nil, &PageError{PageID: id, Op: "update", Err: err}
	}

	// Merge: only fields present in the request overwrite the stored record
	if req.TenantID != nil {
		page.TenantID = req.TenantID
	}
	if req.Slug != nil {
		page.Slug = *req.Slug
	}
	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	page.UpdatedAt = s.now().UTC()

	if err := s.repository.UpdatePage(ctx, page); err != nil {
		return nil, &PageError{PageID: id, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.PageUpdated(ctx, page)
	}

	return page, nil
}

func (s *service) ListPages(ctx context.Context) ([]*Page, error) {
	return s.repository.ListPages(ctx)
}

// SEO config operations

func (s *service) CreateSeoConfig(ctx context.Context, req CreateSeoConfigRequest) (*SeoConfig, error) {
	// No application-level duplicate check here: the unique index on
	// tenant_id is the only guard, and a violation surfaces from the
	// repository as ErrDuplicateTenantConfig.
	indexFollow := true
	if req.IndexFollow != nil {
		indexFollow = *req.IndexFollow
	}

	now := s.now().UTC()
	config := &SeoConfig{
		ID:              uuid.New(),
		TenantID:        req.TenantID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
		IndexFollow:     indexFollow,
		OgImageURL:      req.OgImageURL,
		CanonicalURL:    req.CanonicalURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repository.CreateSeoConfig(ctx, config); err != nil {
		return nil, &SeoConfigError{TenantID: req.TenantID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.SeoConfigCreated(ctx, config)
	}

	return config, nil
}

func (s *service) GetSeoConfigByTenant(ctx context.Context, tenantID uuid.UUID) (*SeoConfig, error) {
	return s.repository.GetSeoConfigByTenant(ctx, tenantID)
}

func (s *service) UpdateSeoConfig(ctx context.Context, tenantID uuid.UUID, req UpdateSeoConfigRequest) (*SeoConfig, error) {
	// An update cannot create a config: missing tenant is a not-found
	config, err := s.repository.GetSeoConfigByTenant(ctx, tenantID)
	if err != nil {
		return nil, &SeoConfigError{TenantID: tenantID, Op: "update", Err: err}
	}

	if req.MetaTitle != nil {
		config.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		config.MetaDescription = *req.MetaDescription
	}
	if req.Keywords != nil {
		config.Keywords = req.Keywords
	}
	if req.IndexFollow != nil {
		config.IndexFollow = *req.IndexFollow
	}
	if req.OgImageURL != nil {
		config.OgImageURL = req.OgImageURL
	}
	if req.CanonicalURL != nil {
		config.CanonicalURL = req.CanonicalURL
	}
	config.UpdatedAt = s.now().UTC()

	if err := s.repository.UpdateSeoConfig(ctx, config); err != nil {
		return nil, &SeoConfigError{TenantID: tenantID, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.SeoConfigUpdated(ctx, config)
	}

	return config, nil
}

// Announcement operations

func (s *service) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (*Announcement, error) {
	if !req.Status.Valid() {
		return nil, &AnnouncementError{Op: "create", Err: fmt.Errorf("%w: %q", ErrInvalidAnnouncementStatus, req.Status)}
	}

	// The date window is intentionally not validated: end before start is
	// accepted and resolves to expired on the next sweep.
	now := s.now().UTC()
	announcement := &Announcement{
		ID:        uuid.New(),
		TenantID:  req.TenantID,
		Title:     req.Title,
		Body:      req.Body,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, &AnnouncementError{AnnouncementID: announcement.ID, Op: "create", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.AnnouncementCreated(ctx, announcement)
	}

	return announcement, nil
}

func (s *service) GetAnnouncement(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	return s.repository.GetAnnouncement(ctx, id)
}

func (s *service) UpdateAnnouncement(ctx context.Context, id uuid.UUID, req UpdateAnnouncementRequest) (*Announcement, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, &AnnouncementError{AnnouncementID: id, Op: "update", Err: fmt.Errorf("%w: %q", ErrInvalidAnnouncementStatus, *req.Status)}
	}

	announcement, err := s.repository.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, &AnnouncementError{AnnouncementID: id, Op: "update", Err: err}
	}

	// Merge semantics; status is overwritten as-is, never re-derived from
	// the dates
	if req.TenantID != nil {
		announcement.TenantID = *req.TenantID
	}
	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Body != nil {
		announcement.Body = *req.Body
	}
	if req.StartDate != nil {
		announcement.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		announcement.EndDate = *req.EndDate
	}
	if req.Status != nil {
		announcement.Status = *req.Status
	}
	announcement.UpdatedAt = s.now().UTC()

	if err := s.repository.UpdateAnnouncement(ctx, announcement); err != nil {
		return nil, &AnnouncementError{AnnouncementID: id, Op: "update", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.AnnouncementUpdated(ctx, announcement)
	}

	return announcement, nil
}

func (s *service) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	// Look up first so an unknown id reports not-found rather than a silent
	// no-op delete
	if _, err := s.repository.GetAnnouncement(ctx, id); err != nil {
		return &AnnouncementError{AnnouncementID: id, Op: "delete", Err: err}
	}

	if err := s.repository.DeleteAnnouncement(ctx, id); err != nil {
		return &AnnouncementError{AnnouncementID: id, Op: "delete", Err: err}
	}

	if s.eventSink != nil {
		_ = s.eventSink.AnnouncementDeleted(ctx, id)
	}

	return nil
}

func (s *service) ListAnnouncements(ctx context.Context, query AnnouncementQuery) ([]*Announcement, error) {
	return s.repository.ListAnnouncements(ctx, query)
}

func (s *service) ReconcileAnnouncements(ctx context.Context) error {
	now := s.now().UTC()

	activated, err := s.repository.ActivateDueAnnouncements(ctx, now)
	if err != nil {
		return &AnnouncementError{Op: "reconcile_activate", Err: err}
	}

	// The expire pass runs last on purpose: a malformed window that
	// satisfies both predicates (end_date <= start_date) lands on expired.
	expired, err := s.repository.ExpireDueAnnouncements(ctx, now)
	if err != nil {
		return &AnnouncementError{Op: "reconcile_expire", Err: err}
	}

	if s.eventSink != nil && (activated > 0 || expired > 0) {
		_ = s.eventSink.AnnouncementsReconciled(ctx, activated, expired)
	}

	return nil
}
