package testutil

import (
	"context"

	"malalingo/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockStorageRepository is a mock for StorageRepository
type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) GetValue(ctx context.Context, userID int64, key string) (string, bool, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStorageRepository) SetValue(ctx context.Context, userID int64, key, value string) error {
	args := m.Called(ctx, userID, key, value)
	return args.Error(0)
}

func (m *MockStorageRepository) DeleteValue(ctx context.Context, userID int64, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

func (m *MockStorageRepository) DeleteStale(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

// MockWordSource is a mock for the word data client
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) Fetch(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}
