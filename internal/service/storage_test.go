package service

import (
	"context"
	"fmt"
	"testing"

	"malalingo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserStorage(t *testing.T) {
	repo := new(testutil.MockStorageRepository)
	repo.On("GetValue", mock.Anything, int64(7), "token").Return("abc", true, nil)
	repo.On("SetValue", mock.Anything, int64(7), "token", "def").Return(nil)
	repo.On("DeleteValue", mock.Anything, int64(7), "token").Return(fmt.Errorf("db error"))

	s := newUserStorage(repo, 7)
	ctx := context.Background()

	value, ok, err := s.Get(ctx, "token")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	assert.NoError(t, s.Set(ctx, "token", "def"))
	assert.Error(t, s.Remove(ctx, "token"))

	repo.AssertExpectations(t)
}
