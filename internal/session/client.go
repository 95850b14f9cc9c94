package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"malalingo/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	signupPath    = "/api/auth/signup"
	loginPath     = "/api/auth/login"
	userPath      = "/api/auth/user"
	magicwordPath = "/api/auth/magicword"
)

const (
	msgSignupFailed    = "An error occurred during signup"
	msgLoginFailed     = "An error occurred during login"
	msgMagicwordFailed = "An error occurred during magicword check"
)

// Client talks to the auth backend for one user and mirrors the access
// token into durable storage.
//
// Overlapping calls are not ordered: whichever response arrives last
// decides loading, error, user and token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    Storage
	logger     *zap.Logger
	now        func() time.Time

	mu      sync.Mutex
	user    *domain.User
	token   string
	loading bool
	err     string
}

// NewClient creates a session client for the API at baseURL
func NewClient(baseURL string, httpClient *http.Client, storage Storage, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		storage:    storage,
		logger:     logger,
		now:        time.Now,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type magicwordRequest struct {
	Magicword string `json:"magicword"`
}

// AuthResponse is the body of a successful auth call
type AuthResponse struct {
	Message     string       `json:"message,omitempty"`
	User        *domain.User `json:"user,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
}

// Signup creates an account. It records the user but does not authenticate.
func (c *Client) Signup(ctx context.Context, email, password string) (*AuthResponse, error) {
	c.begin()
	defer c.end()

	var resp AuthResponse
	if err := c.post(ctx, signupPath, credentials{Email: email, Password: password}, &resp); err != nil {
		c.fail(err, msgSignupFailed)
		return nil, err
	}

	c.mu.Lock()
	c.user = resp.User
	c.mu.Unlock()
	return &resp, nil
}

// Login authenticates and persists the access token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	c.begin()
	defer c.end()

	var resp AuthResponse
	if err := c.post(ctx, loginPath, credentials{Email: email, Password: password}, &resp); err != nil {
		c.fail(err, msgLoginFailed)
		return nil, err
	}

	c.mu.Lock()
	c.user = resp.User
	c.token = resp.AccessToken
	c.mu.Unlock()

	if err := c.storage.Set(ctx, TokenKey, resp.AccessToken); err != nil {
		err = fmt.Errorf("persist token: %w", err)
		c.fail(err, msgLoginFailed)
		return nil, err
	}
	return &resp, nil
}

// CheckMagicword exchanges a magic word for an access token
func (c *Client) CheckMagicword(ctx context.Context, magicword string) (*AuthResponse, error) {
	c.begin()
	defer c.end()

	var resp AuthResponse
	if err := c.post(ctx, magicwordPath, magicwordRequest{Magicword: magicword}, &resp); err != nil {
		c.fail(err, msgMagicwordFailed)
		return nil, err
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.mu.Unlock()

	if err := c.storage.Set(ctx, TokenKey, resp.AccessToken); err != nil {
		err = fmt.Errorf("persist token: %w", err)
		c.fail(err, msgMagicwordFailed)
		return nil, err
	}
	return &resp, nil
}

// Logout forgets the user and the durable token. It never fails.
func (c *Client) Logout(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.token = ""
	c.mu.Unlock()

	if err := c.storage.Remove(ctx, TokenKey); err != nil {
		c.logger.Warn("Failed to remove stored token", zap.Error(err))
	}
}

// CheckAuth restores the session from durable storage and revalidates it.
// A token the backend rejects is dropped silently.
func (c *Client) CheckAuth(ctx context.Context) {
	token, ok, err := c.storage.Get(ctx, TokenKey)
	if err != nil {
		c.logger.Warn("Failed to read stored token", zap.Error(err))
		return
	}
	if !ok || token == "" {
		return
	}

	if c.tokenExpired(token) {
		c.logger.Debug("Stored token expired, logging out")
		c.Logout(ctx)
		return
	}

	var resp AuthResponse
	if err := c.do(ctx, http.MethodGet, userPath, token, nil, &resp); err != nil {
		c.logger.Debug("Stored token rejected, logging out", zap.Error(err))
		c.Logout(ctx)
		return
	}

	c.mu.Lock()
	c.user = resp.User
	c.token = token
	c.mu.Unlock()
}

// tokenExpired reports whether token is a JWT whose exp is in the past.
// Opaque tokens are left for the backend to judge.
func (c *Client) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(c.now())
}

// User returns a copy of the loaded user, or nil
func (c *Client) User() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Token returns the in-memory access token
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// IsAuthenticated reports whether an access token is held
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// Loading reports whether a network operation is in flight
func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the message of the last failed operation
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) begin() {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()
}

func (c *Client) end() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

func (c *Client) fail(err error, fallback string) {
	msg := fallback
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		msg = apiErr.Detail
	}
	c.mu.Lock()
	c.err = msg
	c.mu.Unlock()
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	reader := bytes.NewReader(nil)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
