package service

import (
	"context"

	"malalingo/internal/repository"
)

// userStorage scopes the storage repository to one chat user
type userStorage struct {
	repo   repository.StorageRepository
	userID int64
}

func newUserStorage(repo repository.StorageRepository, userID int64) *userStorage {
	return &userStorage{repo: repo, userID: userID}
}

func (s *userStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.GetValue(ctx, s.userID, key)
}

func (s *userStorage) Set(ctx context.Context, key, value string) error {
	return s.repo.SetValue(ctx, s.userID, key, value)
}

func (s *userStorage) Remove(ctx context.Context, key string) error {
	return s.repo.DeleteValue(ctx, s.userID, key)
}
