package service

import (
	"context"
	"net/http"
	"sync"

	"malalingo/internal/repository"
	"malalingo/internal/session"

	"go.uber.org/zap"
)

// AuthService handles authentication logic.
// Every chat user gets one session client backed by durable storage.
type AuthService struct {
	userRepo    repository.UserRepository
	storageRepo repository.StorageRepository
	apiURL      string
	httpClient  *http.Client
	logger      *zap.Logger

	mu       sync.Mutex
	sessions map[int64]*session.Client
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	storageRepo repository.StorageRepository,
	apiURL string,
	httpClient *http.Client,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		storageRepo: storageRepo,
		apiURL:      apiURL,
		httpClient:  httpClient,
		logger:      logger,
		sessions:    make(map[int64]*session.Client),
	}
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// Session returns the user's session client, creating it on first use
func (s *AuthService) Session(userID int64) *session.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.sessions[userID]; ok {
		return c
	}

	c := s.newSession(userID)
	s.sessions[userID] = c
	return c
}

func (s *AuthService) newSession(userID int64) *session.Client {
	return session.NewClient(
		s.apiURL,
		s.httpClient,
		newUserStorage(s.storageRepo, userID),
		s.logger.With(zap.Int64("user_id", userID)),
	)
}

// Logout ends the user's session and forgets its client
func (s *AuthService) Logout(ctx context.Context, userID int64) {
	s.mu.Lock()
	c, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if !ok {
		c = s.newSession(userID)
	}
	c.Logout(ctx)
}
