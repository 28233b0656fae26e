package repository

import (
	"context"
	"regexp"
	"testing"

	"alexportfolio/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresMeetingRepoCreateMeeting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresMeetingRepo(db)

	// Participants go to the store as a single comma-joined string.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO meetings")).
		WithArgs("Standup", "2024-01-01", "09:00", "Team", "a@b.com,c@d.com", "daily sync", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	meeting := &models.Meeting{
		Title:        "Standup",
		Date:         "2024-01-01",
		Time:         "09:00",
		Level:        models.LevelTeam,
		Participants: []string{"a@b.com", "c@d.com"},
		Description:  "daily sync",
		CreatorID:    4,
	}
	require.NoError(t, repo.CreateMeeting(context.Background(), meeting))
	assert.Equal(t, int64(3), meeting.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMeetingRepoListMeetings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresMeetingRepo(db)

	cols := []string{"id", "title", "date", "time", "level", "participants", "description", "creator_id"}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date, time")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "Kickoff", "2024-01-01", "09:00", "Company", "x@y.com,z@y.com", "all hands", int64(1)).
			AddRow(int64(1), "Standup", "2024-01-02", "10:00", "Team", "", "", int64(1)))

	meetings, err := repo.ListMeetings(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	assert.Equal(t, []string{"x@y.com", "z@y.com"}, meetings[0].Participants)
	// Empty stored string becomes an empty list.
	assert.Equal(t, []string{}, meetings[1].Participants)
}

func TestPostgresMeetingRepoDeleteMeeting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresMeetingRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM meetings WHERE id=$1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteMeeting(context.Background(), 5))
}

func TestPostgresMeetingRepoDeleteMeetingNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresMeetingRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM meetings WHERE id=$1")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteMeeting(context.Background(), 99), ErrMeetingNotFound)
}
