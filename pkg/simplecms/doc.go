// Package simplecms provides a reusable library for managing tenant-scoped
// content artifacts: static CMS pages, per-tenant SEO configuration, and
// time-windowed announcements.
//
// It exposes a single Service interface that owns entity lifecycle and
// consistency rules: global case-insensitive slug uniqueness for pages, the
// one-config-per-tenant rule for SEO configuration, merge-style partial
// updates, and the date-driven announcement status sweep. Repository
// implementations (memory, Postgres) are provided under subpackages; the
// repository's unique indexes are the system of record for uniqueness, while
// application-level existence checks are advisory only.
package simplecms
