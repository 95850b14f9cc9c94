package words

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"malalingo/internal/domain"

	"go.uber.org/zap"
)

// MatchingPath serves the word matching dataset
const MatchingPath = "/api/word-matching/"

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// Client fetches word matching data from the backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a word data client for the API at baseURL
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

type matchingResponse struct {
	Data []domain.WordEntry `json:"data"`
}

// statusError is a non-2xx response
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.code)
}

// Fetch loads the word matching entries, retrying transport errors and 5xx
func (c *Client) Fetch(ctx context.Context) ([]domain.WordEntry, error) {
	var err error

	for i := 0; i < c.maxRetries; i++ {
		var entries []domain.WordEntry
		entries, err = c.fetchOnce(ctx)
		if err == nil {
			return entries, nil
		}

		if se, ok := err.(*statusError); ok && se.code < 500 {
			return nil, err
		}

		c.logger.Warn("Failed to fetch word matching data",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		if i == c.maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to fetch word data after %d attempts: %w", c.maxRetries, err)
}

func (c *Client) fetchOnce(ctx context.Context) ([]domain.WordEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+MatchingPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode}
	}

	var body matchingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode word data: %w", err)
	}
	return body.Data, nil
}

// Shuffle returns one independently shuffled column per side
func Shuffle(entries []domain.WordEntry) (malayalam, english []domain.VocabularyItem) {
	malayalam = make([]domain.VocabularyItem, 0, len(entries))
	english = make([]domain.VocabularyItem, 0, len(entries))
	for _, e := range entries {
		malayalam = append(malayalam, e.Item(domain.SideMalayalam))
		english = append(english, e.Item(domain.SideEnglish))
	}

	rand.Shuffle(len(malayalam), func(i, j int) { malayalam[i], malayalam[j] = malayalam[j], malayalam[i] })
	rand.Shuffle(len(english), func(i, j int) { english[i], english[j] = english[j], english[i] })
	return malayalam, english
}
