package api

import (
	"context"
	"net/http"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

type prayersResponse struct {
	Prayers []*models.PrayerRequest `json:"prayers"`
}

type prayerPayload struct {
	Content     string `json:"content"`
	Visibility  string `json:"visibility"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// ListPrayerRequests returns the community prayer wall.
func (c *HTTPClient) ListPrayerRequests(ctx context.Context) ([]*models.PrayerRequest, error) {
	var resp prayersResponse
	if err := c.do(ctx, http.MethodGet, "/prayers/requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Prayers, nil
}

// SubmitPrayerRequest posts a new request to the wall.
func (c *HTTPClient) SubmitPrayerRequest(ctx context.Context, content, visibility string, anonymous bool) error {
	payload := prayerPayload{Content: content, Visibility: visibility, IsAnonymous: anonymous}
	return c.do(ctx, http.MethodPost, "/prayers/requests", payload, nil)
}

// Pray records that the caller prayed for a request.
func (c *HTTPClient) Pray(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPost, "/prayers/requests/"+requestID+"/pray", nil, nil)
}
