package handlers

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"alexportfolio/models"
	"alexportfolio/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, username, passwordHash, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[username]; ok {
		return 0, repository.ErrDuplicateUsername
	}
	f.nextID++
	f.users[username] = &models.User{
		ID:           f.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return f.nextID, nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.UserInfo
	for _, u := range f.users {
		users = append(users, models.UserInfo{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeMeetingRepo struct {
	mu       sync.Mutex
	nextID   int64
	meetings []*models.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{}
}

func (f *fakeMeetingRepo) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	meeting.ID = f.nextID

	stored := *meeting
	// Mimic the real stores: participants survive as a comma-joined string.
	stored.Participants = models.SplitParticipants(models.JoinParticipants(meeting.Participants))
	f.meetings = append(f.meetings, &stored)
	return nil
}

func (f *fakeMeetingRepo) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Meeting, len(f.meetings))
	for i, m := range f.meetings {
		copied := *m
		out[i] = &copied
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeMeetingRepo) DeleteMeeting(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.meetings {
		if m.ID == id {
			f.meetings = append(f.meetings[:i], f.meetings[i+1:]...)
			return nil
		}
	}
	return repository.ErrMeetingNotFound
}
