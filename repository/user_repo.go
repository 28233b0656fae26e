package repository

import (
	"context"
	"errors"

	"alexportfolio/models"
)

// ErrDuplicateUsername signals a unique-constraint hit on users.username.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, role string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserInfo, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
