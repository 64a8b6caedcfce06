package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

type topicsResponse struct {
	Topics []models.Topic `json:"topics"`
}

type versesResponse struct {
	Verses []models.Verse `json:"verses"`
}

// ListTopics returns the scripture browse categories.
func (c *HTTPClient) ListTopics(ctx context.Context) ([]models.Topic, error) {
	var resp topicsResponse
	if err := c.do(ctx, http.MethodGet, "/scriptures/topics", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Topics, nil
}

// TopicVerses returns the verses filed under a topic.
func (c *HTTPClient) TopicVerses(ctx context.Context, topicID int64) ([]models.Verse, error) {
	var resp versesResponse
	endpoint := "/scriptures/topics/" + strconv.FormatInt(topicID, 10)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Verses, nil
}

// SearchScriptures runs a free-text verse search.
func (c *HTTPClient) SearchScriptures(ctx context.Context, query string) ([]models.Verse, error) {
	var resp versesResponse
	endpoint := "/scriptures/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Verses, nil
}
