package simplecms

import (
	"context"

	"github.com/google/uuid"
)

// NoopEventSink is a no-operation implementation of EventSink
// Useful for production when you don't need event handling or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// PageCreated does nothing and returns nil
func (n *NoopEventSink) PageCreated(ctx context.Context, page *Page) error {
	return nil
}

// PageUpdated does nothing and returns nil
func (n *NoopEventSink) PageUpdated(ctx context.Context, page *Page) error {
	return nil
}

// SeoConfigCreated does nothing and returns nil
func (n *NoopEventSink) SeoConfigCreated(ctx context.Context, config *SeoConfig) error {
	return nil
}

// SeoConfigUpdated does nothing and returns nil
func (n *NoopEventSink) SeoConfigUpdated(ctx context.Context, config *SeoConfig) error {
	return nil
}

// AnnouncementCreated does nothing and returns nil
func (n *NoopEventSink) AnnouncementCreated(ctx context.Context, announcement *Announcement) error {
	return nil
}

// AnnouncementUpdated does nothing and returns nil
func (n *NoopEventSink) AnnouncementUpdated(ctx context.Context, announcement *Announcement) error {
	return nil
}

// AnnouncementDeleted does nothing and returns nil
func (n *NoopEventSink) AnnouncementDeleted(ctx context.Context, announcementID uuid.UUID) error {
	return nil
}

// AnnouncementsReconciled does nothing and returns nil
func (n *NoopEventSink) AnnouncementsReconciled(ctx context.Context, activated, expired int64) error {
	return nil
}

// LoggingEventSink is an event sink that logs events but takes no other action
// Useful for development and debugging
type LoggingEventSink struct {
	logger Logger
}

// Logger interface for logging events
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLoggingEventSink creates a new logging event sink
func NewLoggingEventSink(logger Logger) EventSink {
	return &LoggingEventSink{logger: logger}
}

// PageCreated logs the page creation event
func (l *LoggingEventSink) PageCreated(ctx context.Context, page *Page) error {
	l.logger.Infof("Page created: ID=%s, Slug=%s", page.ID, page.Slug)
	return nil
}

// PageUpdated logs the page update event
func (l *LoggingEventSink) PageUpdated(ctx context.Context, page *Page) error {
	l.logger.Infof("Page updated: ID=%s, Slug=%s", page.ID, page.Slug)
	return nil
}

// SeoConfigCreated logs the SEO config creation event
func (l *LoggingEventSink) SeoConfigCreated(ctx context.Context, config *SeoConfig) error {
	l.logger.Infof("SEO config created: ID=%s, TenantID=%s", config.ID, config.TenantID)
	return nil
}

// SeoConfigUpdated logs the SEO config update event
func (l *LoggingEventSink) SeoConfigUpdated(ctx context.Context, config *SeoConfig) error {
	l.logger.Infof("SEO config updated: ID=%s, TenantID=%s", config.ID, config.TenantID)
	return nil
}

// AnnouncementCreated logs the announcement creation event
func (l *LoggingEventSink) AnnouncementCreated(ctx context.Context, announcement *Announcement) error {
	l.logger.Infof("Announcement created: ID=%s, TenantID=%s, Status=%s", announcement.ID, announcement.TenantID, announcement.Status)
	return nil
}

// AnnouncementUpdated logs the announcement update event
func (l *LoggingEventSink) AnnouncementUpdated(ctx context.Context, announcement *Announcement) error {
	l.logger.Infof("Announcement updated: ID=%s, Status=%s", announcement.ID, announcement.Status)
	return nil
}

// AnnouncementDeleted logs the announcement deletion event
func (l *LoggingEventSink) AnnouncementDeleted(ctx context.Context, announcementID uuid.UUID) error {
	l.logger.Infof("Announcement deleted: ID=%s", announcementID)
	return nil
}

// AnnouncementsReconciled logs the sweep result
func (l *LoggingEventSink) AnnouncementsReconciled(ctx context.Context, activated, expired int64) error {
	l.logger.Infof("Announcements reconciled: activated=%d, expired=%d", activated, expired)
	return nil
}
