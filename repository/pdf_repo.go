package repository

import (
	"context"

	"alexportfolio/models"
)

// PDFRepository provides the data needed to render the schedule export.
type PDFRepository struct {
	MeetingRepo MeetingRepository
	UserRepo    UserRepository
}

func NewPDFRepository(meetingRepo MeetingRepository, userRepo UserRepository) *PDFRepository {
	return &PDFRepository{
		MeetingRepo: meetingRepo,
		UserRepo:    userRepo,
	}
}

// GetScheduleForPDF fetches all meetings in (date, time) order.
func (r *PDFRepository) GetScheduleForPDF(ctx context.Context) ([]*models.Meeting, error) {
	return r.MeetingRepo.ListMeetings(ctx)
}

// GetCreatorsForPDF maps user IDs to usernames for creator attribution.
func (r *PDFRepository) GetCreatorsForPDF(ctx context.Context) (map[int64]string, error) {
	users, err := r.UserRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	creators := make(map[int64]string, len(users))
	for _, u := range users {
		creators[u.ID] = u.Username
	}
	return creators, nil
}
