package repository

import (
	"context"
	"database/sql"

	"alexportfolio/models"
)

type PostgresMeetingRepo struct {
	DB *sql.DB
}

func NewPostgresMeetingRepo(db *sql.DB) *PostgresMeetingRepo {
	return &PostgresMeetingRepo{DB: db}
}

// CreateMeeting inserts the meeting in a single statement and fills the
// generated ID back into the model.
func (r *PostgresMeetingRepo) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO meetings (title, date, time, level, participants, description, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, meeting.Title, meeting.Date, meeting.Time, meeting.Level,
		models.JoinParticipants(meeting.Participants), meeting.Description, meeting.CreatorID,
	).Scan(&meeting.ID)
}

func (r *PostgresMeetingRepo) ListMeetings(ctx context.Context) ([]*models.Meeting, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, date, time, level, participants, description, creator_id
		FROM meetings
		ORDER BY date, time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*models.Meeting
	for rows.Next() {
		m := &models.Meeting{}
		var participants string
		if err := rows.Scan(&m.ID, &m.Title, &m.Date, &m.Time, &m.Level,
			&participants, &m.Description, &m.CreatorID); err != nil {
			return nil, err
		}
		m.Participants = models.SplitParticipants(participants)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (r *PostgresMeetingRepo) DeleteMeeting(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM meetings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}
