package simplecms

import (
	"github.com/google/uuid"
)

// FilterField identifies an announcement attribute usable in an equality filter.
type FilterField string

// Filterable fields (typed).
const (
	FilterTenantID FilterField = "tenant_id"
	FilterStatus   FilterField = "status"
)

// FilterClause is a single equality predicate against one field.
type FilterClause struct {
	Field FilterField `json:"field"`
	Value string      `json:"value"`
}

// OrderClause controls result ordering. Only created_at is supported.
type OrderClause struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// AnnouncementQuery is an explicit predicate value consumed by a single
// repository query function. Filter clauses combine with logical AND, so the
// order in which they were added never changes the result set: filtering by
// tenant then status equals filtering by status then tenant, and equals the
// full list intersected with both per-filter subsets.
type AnnouncementQuery struct {
	Filters []FilterClause `json:"filters,omitempty"`
	Order   OrderClause    `json:"order"`
}

// AnnouncementQueryOption represents a functional option for building a query
type AnnouncementQueryOption func(*AnnouncementQuery)

// NewAnnouncementQuery builds a query from the given options. Results are
// ordered by created_at descending.
func NewAnnouncementQuery(opts ...AnnouncementQueryOption) AnnouncementQuery {
	q := AnnouncementQuery{
		Order: OrderClause{Field: "created_at", Desc: true},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&q)
	}
	return q
}

// WithTenantFilter restricts results to a single tenant
func WithTenantFilter(tenantID uuid.UUID) AnnouncementQueryOption {
	return func(q *AnnouncementQuery) {
		q.Filters = append(q.Filters, FilterClause{Field: FilterTenantID, Value: tenantID.String()})
	}
}

// WithStatusFilter restricts results to a single lifecycle status
func WithStatusFilter(status AnnouncementStatus) AnnouncementQueryOption {
	return func(q *AnnouncementQuery) {
		q.Filters = append(q.Filters, FilterClause{Field: FilterStatus, Value: string(status)})
	}
}

// Matches reports whether a satisfies every filter clause. An unknown field
// never matches.
func (q AnnouncementQuery) Matches(a *Announcement) bool {
	for _, f := range q.Filters {
		switch f.Field {
		case FilterTenantID:
			if a.TenantID.String() != f.Value {
				return false
			}
		case FilterStatus:
			if string(a.Status) != f.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}
