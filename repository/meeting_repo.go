package repository

import (
	"context"
	"errors"

	"alexportfolio/models"
)

// ErrMeetingNotFound signals a delete that affected no row.
var ErrMeetingNotFound = errors.New("meeting not found")

// MeetingRepository defines the interface for meeting operations
type MeetingRepository interface {
	// CreateMeeting persists the meeting and fills in the generated ID.
	CreateMeeting(ctx context.Context, meeting *models.Meeting) error
	// ListMeetings returns all meetings ordered by (date, time) ascending.
	ListMeetings(ctx context.Context) ([]*models.Meeting, error)
	DeleteMeeting(ctx context.Context, id int64) error
}
