package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

type devotionalResponse struct {
	Devotional *models.Devotional `json:"devotional"`
}

type devotionalLogPayload struct {
	Completed bool `json:"completed"`
}

// TodayDevotional fetches the devotional for the current day.
func (c *HTTPClient) TodayDevotional(ctx context.Context) (*models.Devotional, error) {
	var resp devotionalResponse
	if err := c.do(ctx, http.MethodGet, "/devotionals/today", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Devotional == nil || resp.Devotional.ID == "" {
		return nil, errors.New("devotional response missing devotional")
	}
	return resp.Devotional, nil
}

// LogDevotional records that the user completed the devotional.
func (c *HTTPClient) LogDevotional(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/devotionals/"+id+"/log", devotionalLogPayload{Completed: true}, nil)
}
