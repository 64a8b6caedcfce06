// Package api implements the Still Waters HTTP+JSON API client. Each
// endpoint gets one typed method; response bodies are decoded into exactly
// one canonical schema, and any deviation is treated as a request failure
// rather than duck-typed around.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client is the operation surface the services depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password, displayName string) (string, error)
	FetchMe(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, displayName, preferredBibleVersion string) (*models.User, error)

	ListConversations(ctx context.Context, includeDeleted bool) ([]*models.Conversation, error)
	GetConversation(ctx context.Context, id string) (*models.Conversation, []*models.Message, error)
	CreateConversation(ctx context.Context, title, initialMood string) (*models.Conversation, error)
	RenameConversation(ctx context.Context, id, title string) error
	SetConversationDeleted(ctx context.Context, id string, deletedAt *time.Time) error
	DeleteConversation(ctx context.Context, id string) error
	SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error)

	TodayDevotional(ctx context.Context) (*models.Devotional, error)
	LogDevotional(ctx context.Context, id string) error

	ListTopics(ctx context.Context) ([]models.Topic, error)
	TopicVerses(ctx context.Context, topicID int64) ([]models.Verse, error)
	SearchScriptures(ctx context.Context, query string) ([]models.Verse, error)

	ListPrayerRequests(ctx context.Context) ([]*models.PrayerRequest, error)
	SubmitPrayerRequest(ctx context.Context, content, visibility string, anonymous bool) error
	Pray(ctx context.Context, requestID string) error
}

// HTTPClient talks to the API over HTTP with JSON bodies. It holds the
// bearer token between calls; the session service sets and clears it.
//
// HTTPClient performs no retries and mutates no state beyond the token
// field: a failed call surfaces exactly once to its caller.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "https://stillwaters.umbrassi.com/api").
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) { c.token = token }

// ClearToken removes the bearer token.
func (c *HTTPClient) ClearToken() { c.token = "" }

// do issues one request and decodes the response into out (when non-nil).
// Non-2xx statuses become *RequestError with the body's message when
// present; transport and decode failures wrap ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "endpoint", endpoint, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractMessage(data)
		c.log.Warn(ctx, "request rejected", "method", method, "endpoint", endpoint, "status", resp.StatusCode)
		return &RequestError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

// extractMessage pulls the "message" field out of an error body, falling
// back to a generic string when the body is absent or malformed.
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "request failed"
}
