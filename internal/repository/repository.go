package repository

import (
	"context"
)

// UserRepository defines chat user operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
}

// StorageRepository is the durable key/value store behind user sessions
type StorageRepository interface {
	GetValue(ctx context.Context, userID int64, key string) (string, bool, error)
	SetValue(ctx context.Context, userID int64, key, value string) error
	DeleteValue(ctx context.Context, userID int64, key string) error
	DeleteStale(ctx context.Context, days int) (int64, error)
}
