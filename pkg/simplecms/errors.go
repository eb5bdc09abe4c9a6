package simplecms

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrPageNotFound indicates a page was not found
	ErrPageNotFound = errors.New("page not found")

	// ErrSeoConfigNotFound indicates no SEO config exists for a tenant
	ErrSeoConfigNotFound = errors.New("seo config not found")

	// ErrAnnouncementNotFound indicates an announcement was not found
	ErrAnnouncementNotFound = errors.New("announcement not found")

	// ErrDuplicateSlug indicates a page with the same case-folded slug already exists
	ErrDuplicateSlug = errors.New("page with this slug already exists")

	// ErrDuplicateTenantConfig indicates the tenant already has an SEO config
	ErrDuplicateTenantConfig = errors.New("seo config for this tenant already exists")

	// ErrInvalidAnnouncementStatus indicates an unknown announcement status value
	ErrInvalidAnnouncementStatus = errors.New("invalid announcement status")
)

// PageError represents an error related to page operations
type PageError struct {
	PageID uuid.UUID
	Op     string
	Err    error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page operation %s failed for page %s: %v", e.Op, e.PageID, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// SeoConfigError represents an error related to SEO config operations
type SeoConfigError struct {
	TenantID uuid.UUID
	Op       string
	Err      error
}

func (e *SeoConfigError) Error() string {
	return fmt.Sprintf("seo config operation %s failed for tenant %s: %v", e.Op, e.TenantID, e.Err)
}

func (e *SeoConfigError) Unwrap() error {
	return e.Err
}

// AnnouncementError represents an error related to announcement operations
type AnnouncementError struct {
	AnnouncementID uuid.UUID
	Op             string
	Err            error
}

func (e *AnnouncementError) Error() string {
	return fmt.Sprintf("announcement operation %s failed for announcement %s: %v", e.Op, e.AnnouncementID, e.Err)
}

func (e *AnnouncementError) Unwrap() error {
	return e.Err
}
