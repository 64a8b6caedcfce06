package services

import (
	"context"
	"strings"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// fallbackTopics keeps the browse screen usable when the topic list cannot
// be fetched.
var fallbackTopics = []models.Topic{
	{ID: 1, Name: "Anxiety"}, {ID: 2, Name: "Depression"},
	{ID: 3, Name: "Faith"}, {ID: 4, Name: "Fear"},
	{ID: 5, Name: "Forgiveness"}, {ID: 6, Name: "Grace"},
	{ID: 7, Name: "Gratitude"}, {ID: 8, Name: "Grief"},
	{ID: 9, Name: "Guidance"}, {ID: 10, Name: "Hope"},
	{ID: 11, Name: "Identity"}, {ID: 12, Name: "Joy"},
	{ID: 13, Name: "Loneliness"}, {ID: 14, Name: "Love"},
	{ID: 15, Name: "Peace"}, {ID: 16, Name: "Prayer"},
	{ID: 17, Name: "Purpose"}, {ID: 18, Name: "Salvation"},
	{ID: 19, Name: "Strength"}, {ID: 20, Name: "Trust"},
}

// ScriptureService answers topic browsing and verse search. All reads
// degrade on failure: topics fall back to a built-in list, searches to
// empty results.
type ScriptureService struct {
	client api.Client
	log    logging.Logger
}

func NewScriptureService(client api.Client, log logging.Logger) *ScriptureService {
	return &ScriptureService{client: client, log: log.With("component", "scriptures")}
}

// Topics returns the browse categories, falling back to the built-in list
// when the API call fails.
func (s *ScriptureService) Topics(ctx context.Context) []models.Topic {
	topics, err := s.client.ListTopics(ctx)
	if err != nil {
		s.log.Warn(ctx, "loading topics failed", "error", err)
		return fallbackTopics
	}
	return topics
}

// TopicVerses returns the verses filed under a topic, empty on failure.
func (s *ScriptureService) TopicVerses(ctx context.Context, topicID int64) []models.Verse {
	verses, err := s.client.TopicVerses(ctx, topicID)
	if err != nil {
		s.log.Warn(ctx, "loading topic verses failed", "topic", topicID, "error", err)
		return nil
	}
	return verses
}

// Search runs a free-text verse search. A blank query or a failed call
// yields no results.
func (s *ScriptureService) Search(ctx context.Context, query string) []models.Verse {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	verses, err := s.client.SearchScriptures(ctx, query)
	if err != nil {
		s.log.Warn(ctx, "scripture search failed", "error", err)
		return nil
	}
	return verses
}
