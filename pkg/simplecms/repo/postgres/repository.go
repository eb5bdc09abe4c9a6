package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simplecms.Repository using PostgreSQL.
//
// Expected schema: cms_page with a unique index on lower(slug), seo_config
// with a unique index on tenant_id, and announcement. All timestamps are
// stored as timestamptz in UTC.
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) simplecms.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) simplecms.Repository {
	return &Repository{db: pool}
}

// Error handling helper
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return simplecms.ErrDuplicateSlug
			}
			if strings.Contains(pgErr.ConstraintName, "tenant") {
				return simplecms.ErrDuplicateTenantConfig
			}
			return fmt.Errorf("duplicate entry")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Page operations

func (r *Repository) CreatePage(ctx context.Context, page *simplecms.Page) error {
	query := `
		INSERT INTO cms_page (
			id, tenant_id, slug, title, content, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		page.ID, page.TenantID, page.Slug, page.Title, page.Content,
		page.CreatedAt, page.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create page", err)
	}

	return nil
}

func (r *Repository) GetPage(ctx context.Context, id uuid.UUID) (*simplecms.Page, error) {
	query := `
		SELECT id, tenant_id, slug, title, content, created_at, updated_at
		FROM cms_page WHERE id = $1`

	var page simplecms.Page
	err := r.db.QueryRow(ctx, query, id).Scan(
		&page.ID, &page.TenantID, &page.Slug, &page.Title, &page.Content,
		&page.CreatedAt, &page.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrPageNotFound
		}
		return nil, r.handlePostgresError("get page", err)
	}

	return &page, nil
}

func (r *Repository) GetPageBySlug(ctx context.Context, slug string, tenantID *uuid.UUID) (*simplecms.Page, error) {
	query := `
		SELECT id, tenant_id, slug, title, content, created_at, updated_at
		FROM cms_page WHERE LOWER(slug) = LOWER($1)`
	args := []interface{}{slug}

	if tenantID != nil {
		query += ` AND tenant_id = $2`
		args = append(args, *tenantID)
	}

	var page simplecms.Page
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&page.ID, &page.TenantID, &page.Slug, &page.Title, &page.Content,
		&page.CreatedAt, &page.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrPageNotFound
		}
		return nil, r.handlePostgresError("get page by slug", err)
	}

	return &page, nil
}

func (r *Repository) UpdatePage(ctx context.Context, page *simplecms.Page) error {
	query := `
		UPDATE cms_page SET
			tenant_id = $2, slug = $3, title = $4, content = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		page.ID, page.TenantID, page.Slug, page.Title, page.Content, page.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update page", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrPageNotFound
	}

	return nil
}

func (r *Repository) ListPages(ctx context.Context) ([]*simplecms.Page, error) {
	query := `
		SELECT id, tenant_id, slug, title, content, created_at, updated_at
		FROM cms_page
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.handlePostgresError("list pages", err)
	}
	defer rows.Close()

	var pages []*simplecms.Page
	for rows.Next() {
		var page simplecms.Page
		if err := rows.Scan(
			&page.ID, &page.TenantID, &page.Slug, &page.Title, &page.Content,
			&page.CreatedAt, &page.UpdatedAt); err != nil {
			return nil, r.handlePostgresError("scan page", err)
		}
		pages = append(pages, &page)
	}

	if err = rows.Err(); err != nil {
		return nil, r.handlePostgresError("iterate page rows", err)
	}

	return pages, nil
}

// SEO config operations

func (r *Repository) CreateSeoConfig(ctx context.Context, config *simplecms.SeoConfig) error {
	query := `
		INSERT INTO seo_config (
			id, tenant_id, meta_title, meta_description, keywords,
			index_follow, og_image_url, canonical_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		config.ID, config.TenantID, config.MetaTitle, config.MetaDescription,
		config.Keywords, config.IndexFollow, config.OgImageURL, config.CanonicalURL,
		config.CreatedAt, config.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create seo config", err)
	}

	return nil
}

func (r *Repository) GetSeoConfigByTenant(ctx context.Context, tenantID uuid.UUID) (*simplecms.SeoConfig, error) {
	query := `
		SELECT id, tenant_id, meta_title, meta_description, keywords,
			   index_follow, og_image_url, canonical_url, created_at, updated_at
		FROM seo_config WHERE tenant_id = $1`

	var config simplecms.SeoConfig
	err := r.db.QueryRow(ctx, query, tenantID).Scan(
		&config.ID, &config.TenantID, &config.MetaTitle, &config.MetaDescription,
		&config.Keywords, &config.IndexFollow, &config.OgImageURL, &config.CanonicalURL,
		&config.CreatedAt, &config.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrSeoConfigNotFound
		}
		return nil, r.handlePostgresError("get seo config by tenant", err)
	}

	return &config, nil
}

func (r *Repository) UpdateSeoConfig(ctx context.Context, config *simplecms.SeoConfig) error {
	query := `
		UPDATE seo_config SET
			meta_title = $2, meta_description = $3, keywords = $4,
			index_follow = $5, og_image_url = $6, canonical_url = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		config.ID, config.MetaTitle, config.MetaDescription, config.Keywords,
		config.IndexFollow, config.OgImageURL, config.CanonicalURL, config.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update seo config", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrSeoConfigNotFound
	}

	return nil
}

// Announcement operations

func (r *Repository) CreateAnnouncement(ctx context.Context, announcement *simplecms.Announcement) error {
	query := `
		INSERT INTO announcement (
			id, tenant_id, title, body, start_date, end_date, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		announcement.ID, announcement.TenantID, announcement.Title, announcement.Body,
		announcement.StartDate, announcement.EndDate, announcement.Status,
		announcement.CreatedAt, announcement.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create announcement", err)
	}

	return nil
}

func (r *Repository) GetAnnouncement(ctx context.Context, id uuid.UUID) (*simplecms.Announcement, error) {
	query := `
		SELECT id, tenant_id, title, body, start_date, end_date, status,
			   created_at, updated_at
		FROM announcement WHERE id = $1`

	var announcement simplecms.Announcement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&announcement.ID, &announcement.TenantID, &announcement.Title, &announcement.Body,
		&announcement.StartDate, &announcement.EndDate, &announcement.Status,
		&announcement.CreatedAt, &announcement.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrAnnouncementNotFound
		}
		return nil, r.handlePostgresError("get announcement", err)
	}

	return &announcement, nil
}

func (r *Repository) UpdateAnnouncement(ctx context.Context, announcement *simplecms.Announcement) error {
	query := `
		UPDATE announcement SET
			tenant_id = $2, title = $3, body = $4, start_date = $5,
			end_date = $6, status = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		announcement.ID, announcement.TenantID, announcement.Title, announcement.Body,
		announcement.StartDate, announcement.EndDate, announcement.Status,
		announcement.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update announcement", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrAnnouncementNotFound
	}

	return nil
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM announcement WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return r.handlePostgresError("delete announcement", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrAnnouncementNotFound
	}

	return nil
}

func (r *Repository) ListAnnouncements(ctx context.Context, q simplecms.AnnouncementQuery) ([]*simplecms.Announcement, error) {
	query := `
		SELECT id, tenant_id, title, body, start_date, end_date, status,
			   created_at, updated_at
		FROM announcement`

	var (
		where []string
		args  []interface{}
	)
	for _, f := range q.Filters {
		switch f.Field {
		case simplecms.FilterTenantID:
			where = append(where, fmt.Sprintf("tenant_id = $%d", len(args)+1))
			args = append(args, f.Value)
		case simplecms.FilterStatus:
			where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
			args = append(args, f.Value)
		default:
			return nil, fmt.Errorf("unsupported filter field: %s", f.Field)
		}
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// Only created_at ordering is supported; the direction comes from the
	// order clause
	if q.Order.Desc {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY created_at ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.handlePostgresError("list announcements", err)
	}
	defer rows.Close()

	var announcements []*simplecms.Announcement
	for rows.Next() {
		var announcement simplecms.Announcement
		if err := rows.Scan(
			&announcement.ID, &announcement.TenantID, &announcement.Title, &announcement.Body,
			&announcement.StartDate, &announcement.EndDate, &announcement.Status,
			&announcement.CreatedAt, &announcement.UpdatedAt); err != nil {
			return nil, r.handlePostgresError("scan announcement", err)
		}
		announcements = append(announcements, &announcement)
	}

	if err = rows.Err(); err != nil {
		return nil, r.handlePostgresError("iterate announcement rows", err)
	}

	return announcements, nil
}

// Reconciliation passes. Each pass is a single conditional UPDATE so the
// predicate and the write are atomic under concurrent sweeps.

func (r *Repository) ActivateDueAnnouncements(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE announcement SET status = $2, updated_at = $1
		WHERE status = $3 AND start_date <= $1 AND end_date > $1`

	tag, err := r.db.Exec(ctx, query, now,
		simplecms.AnnouncementStatusActive, simplecms.AnnouncementStatusScheduled)
	if err != nil {
		return 0, r.handlePostgresError("activate due announcements", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) ExpireDueAnnouncements(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE announcement SET status = $2, updated_at = $1
		WHERE status <> $2 AND end_date <= $1`

	tag, err := r.db.Exec(ctx, query, now, simplecms.AnnouncementStatusExpired)
	if err != nil {
		return 0, r.handlePostgresError("expire due announcements", err)
	}

	return tag.RowsAffected(), nil
}
