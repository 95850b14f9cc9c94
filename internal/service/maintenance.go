package service

import (
	"context"

	"malalingo/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService handles periodic cleanup
type MaintenanceService struct {
	storageRepo repository.StorageRepository
	logger      *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(storageRepo repository.StorageRepository, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		storageRepo: storageRepo,
		logger:      logger,
	}
}

// CleanupStaleSessions removes stored tokens untouched for 60 days
func (s *MaintenanceService) CleanupStaleSessions(ctx context.Context) error {
	const retentionDays = 60

	s.logger.Info("Starting cleanup of stale sessions", zap.Int("retention_days", retentionDays))

	removed, err := s.storageRepo.DeleteStale(ctx, retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup stale sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
