package simplecms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

func TestNewAnnouncementQuery_Defaults(t *testing.T) {
	query := simplecms.NewAnnouncementQuery()

	assert.Empty(t, query.Filters)
	assert.Equal(t, "created_at", query.Order.Field)
	assert.True(t, query.Order.Desc)
}

func TestAnnouncementQuery_Matches(t *testing.T) {
	tenantID := uuid.New()
	announcement := &simplecms.Announcement{
		ID:       uuid.New(),
		TenantID: tenantID,
		Status:   simplecms.AnnouncementStatusActive,
	}

	tests := []struct {
		name    string
		query   simplecms.AnnouncementQuery
		matches bool
	}{
		{
			name:    "empty query matches everything",
			query:   simplecms.NewAnnouncementQuery(),
			matches: true,
		},
		{
			name: "matching tenant",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithTenantFilter(tenantID),
			),
			matches: true,
		},
		{
			name: "other tenant",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithTenantFilter(uuid.New()),
			),
			matches: false,
		},
		{
			name: "matching status",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithStatusFilter(simplecms.AnnouncementStatusActive),
			),
			matches: true,
		},
		{
			name: "other status",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithStatusFilter(simplecms.AnnouncementStatusExpired),
			),
			matches: false,
		},
		{
			name: "both filters match",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithTenantFilter(tenantID),
				simplecms.WithStatusFilter(simplecms.AnnouncementStatusActive),
			),
			matches: true,
		},
		{
			name: "one filter fails the conjunction",
			query: simplecms.NewAnnouncementQuery(
				simplecms.WithTenantFilter(tenantID),
				simplecms.WithStatusFilter(simplecms.AnnouncementStatusScheduled),
			),
			matches: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.query.Matches(announcement))
		})
	}
}

func TestAnnouncementQuery_FilterOrderIrrelevant(t *testing.T) {
	tenantID := uuid.New()
	a := &simplecms.Announcement{
		ID:       uuid.New(),
		TenantID: tenantID,
		Status:   simplecms.AnnouncementStatusScheduled,
	}
	b := &simplecms.Announcement{
		ID:       uuid.New(),
		TenantID: uuid.New(),
		Status:   simplecms.AnnouncementStatusScheduled,
	}

	forward := simplecms.NewAnnouncementQuery(
		simplecms.WithTenantFilter(tenantID),
		simplecms.WithStatusFilter(simplecms.AnnouncementStatusScheduled),
	)
	reversed := simplecms.NewAnnouncementQuery(
		simplecms.WithStatusFilter(simplecms.AnnouncementStatusScheduled),
		simplecms.WithTenantFilter(tenantID),
	)

	for _, candidate := range []*simplecms.Announcement{a, b} {
		assert.Equal(t, forward.Matches(candidate), reversed.Matches(candidate))
	}
}

func TestAnnouncementQuery_UnknownFieldNeverMatches(t *testing.T) {
	query := simplecms.AnnouncementQuery{
		Filters: []simplecms.FilterClause{
			{Field: simplecms.FilterField("color"), Value: "red"},
		},
	}

	assert.False(t, query.Matches(&simplecms.Announcement{ID: uuid.New()}))
}
