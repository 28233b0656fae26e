package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserRepoCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hashed", "user", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.CreateUser(context.Background(), "alice", "hashed", "user")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepoCreateUserDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hashed", "user", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.CreateUser(context.Background(), "alice", "hashed", "user")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestPostgresUserRepoGetUserByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role, created_at")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "password_hash", "role", "created_at"},
		).AddRow(int64(1), "alice", "hashed", "admin", created))

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestPostgresUserRepoGetUserByUsernameAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role, created_at")).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestPostgresUserRepoCountByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE role=$1")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountByRole(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostgresUserRepoListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, role")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).
			AddRow(int64(1), "admin", "admin").
			AddRow(int64(2), "alice", "user"))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "user", users[1].Role)
}
