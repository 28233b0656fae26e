package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "02 Jan 2024", FormatDisplayDate("2024-01-02"))
	// Dates are opaque strings; anything unparseable passes through.
	assert.Equal(t, "next tuesday", FormatDisplayDate("next tuesday"))
}

func TestFormatDisplayTime(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatDisplayTime("09:00"))
	assert.Equal(t, "2:30 PM", FormatDisplayTime("14:30:00"))
	assert.Equal(t, "25:99", FormatDisplayTime("25:99"))
}

func TestFormatParticipants(t *testing.T) {
	assert.Equal(t, "", FormatParticipants(nil))
	assert.Equal(t, "a@b.com, c@d.com", FormatParticipants([]string{"a@b.com", "c@d.com"}))
}
