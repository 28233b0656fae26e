package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64     `json:"id" bson:"_id" db:"id"`
	Username     string    `json:"username" bson:"username" db:"username"`
	PasswordHash string    `json:"-" bson:"password_hash" db:"password_hash"`
	Role         string    `json:"role" bson:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// UserInfo is the admin-facing listing shape; the hash never leaves the store.
type UserInfo struct {
	ID       int64  `json:"id" bson:"_id" db:"id"`
	Username string `json:"username" bson:"username" db:"username"`
	Role     string `json:"role" bson:"role" db:"role"`
}
