package simplecms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

func TestAnnouncementStatusValid(t *testing.T) {
	valid := []simplecms.AnnouncementStatus{
		simplecms.AnnouncementStatusScheduled,
		simplecms.AnnouncementStatusActive,
		simplecms.AnnouncementStatusExpired,
	}
	for _, status := range valid {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	invalid := []simplecms.AnnouncementStatus{"", "draft", "Active", "SCHEDULED"}
	for _, status := range invalid {
		assert.False(t, status.Valid(), "expected %q to be invalid", status)
	}
}

func TestParseAnnouncementStatus(t *testing.T) {
	status, err := simplecms.ParseAnnouncementStatus("active")
	assert.NoError(t, err)
	assert.Equal(t, simplecms.AnnouncementStatusActive, status)

	_, err = simplecms.ParseAnnouncementStatus("bogus")
	assert.Error(t, err)
	assert.ErrorIs(t, err, simplecms.ErrInvalidAnnouncementStatus)
}
