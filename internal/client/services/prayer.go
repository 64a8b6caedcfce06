package services

import (
	"context"
	"errors"
	"strings"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// Visibility values accepted by the prayer wall.
const (
	VisibilityCommunity = "community"
	VisibilityPrivate   = "private"
)

var ErrEmptyPrayer = errors.New("prayer request is empty")

// PrayerService maintains the local view of the community prayer wall.
type PrayerService struct {
	client api.Client
	log    logging.Logger

	requests []*models.PrayerRequest
}

func NewPrayerService(client api.Client, log logging.Logger) *PrayerService {
	return &PrayerService{client: client, log: log.With("component", "prayers")}
}

// Load fetches the wall, degrading to empty on failure. Requests this
// session already prayed for keep their mark across reloads.
func (s *PrayerService) Load(ctx context.Context) {
	prayed := make(map[string]bool, len(s.requests))
	for _, r := range s.requests {
		if r.HasPrayed {
			prayed[r.ID] = true
		}
	}

	requests, err := s.client.ListPrayerRequests(ctx)
	if err != nil {
		s.log.Warn(ctx, "loading prayer wall failed", "error", err)
		s.requests = nil
		return
	}
	for _, r := range requests {
		r.HasPrayed = prayed[r.ID]
	}
	s.requests = requests
}

// Requests returns the current wall.
func (s *PrayerService) Requests() []*models.PrayerRequest { return s.requests }

// Submit posts a new request and reloads the wall on success.
func (s *PrayerService) Submit(ctx context.Context, content, visibility string, anonymous bool) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyPrayer
	}
	if visibility != VisibilityPrivate {
		visibility = VisibilityCommunity
	}
	if err := s.client.SubmitPrayerRequest(ctx, content, visibility, anonymous); err != nil {
		return err
	}
	s.Load(ctx)
	return nil
}

// Pray records a prayer for the given request, incrementing its local count
// once per session.
func (s *PrayerService) Pray(ctx context.Context, id string) error {
	var req *models.PrayerRequest
	for _, r := range s.requests {
		if r.ID == id {
			req = r
			break
		}
	}
	if req == nil || req.HasPrayed {
		return nil
	}
	if err := s.client.Pray(ctx, id); err != nil {
		return err
	}
	req.PrayerCount++
	req.HasPrayed = true
	return nil
}
