package services

import (
	"context"
	"errors"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// ErrNoDevotional is returned when completion is logged before a devotional
// has loaded.
var ErrNoDevotional = errors.New("no devotional loaded")

// DevotionalService holds today's devotional and its completion state.
type DevotionalService struct {
	client api.Client
	log    logging.Logger

	devotional *models.Devotional
	completed  bool
}

func NewDevotionalService(client api.Client, log logging.Logger) *DevotionalService {
	return &DevotionalService{client: client, log: log.With("component", "devotionals")}
}

// Load fetches today's devotional, degrading to absent on failure.
func (s *DevotionalService) Load(ctx context.Context) {
	s.completed = false
	d, err := s.client.TodayDevotional(ctx)
	if err != nil {
		s.log.Warn(ctx, "loading devotional failed", "error", err)
		s.devotional = nil
		return
	}
	s.devotional = d
}

// Today returns the loaded devotional, or nil when unavailable.
func (s *DevotionalService) Today() *models.Devotional { return s.devotional }

// Completed reports whether today's devotional was marked complete.
func (s *DevotionalService) Completed() bool { return s.completed }

// MarkComplete logs the devotional as completed.
func (s *DevotionalService) MarkComplete(ctx context.Context) error {
	if s.devotional == nil {
		return ErrNoDevotional
	}
	if s.completed {
		return nil
	}
	if err := s.client.LogDevotional(ctx, s.devotional.ID); err != nil {
		return err
	}
	s.completed = true
	return nil
}
