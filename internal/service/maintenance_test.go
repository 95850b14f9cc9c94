package service

import (
	"context"
	"fmt"
	"testing"

	"malalingo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMaintenanceService_CleanupStaleSessions(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockStorageRepository)
			mockRepo.On("DeleteStale", mock.Anything, 60).Return(int64(3), tt.mockError)

			service := NewMaintenanceService(mockRepo, testutil.NewTestLogger())

			err := service.CleanupStaleSessions(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
