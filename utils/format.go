package utils

import (
	"strings"
	"time"
)

// Meeting dates and times are stored as opaque strings, so formatting is
// best-effort and falls back to the raw value when parsing fails.

func FormatDisplayDate(s string) string {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02 Jan 2006")
	}
	return s
}

func FormatDisplayTime(s string) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return s
}

func FormatParticipants(list []string) string {
	return strings.Join(list, ", ")
}
