package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

func TestDevotionalLoad_Success(t *testing.T) {
	client := &fakeClient{
		todayDevotionalFn: func() (*models.Devotional, error) {
			return &models.Devotional{ID: "d1", Title: "Be Still"}, nil
		},
	}
	s := NewDevotionalService(client, testLogger())

	s.Load(context.Background())

	require.NotNil(t, s.Today())
	assert.Equal(t, "Be Still", s.Today().Title)
	assert.False(t, s.Completed())
}

func TestDevotionalLoad_FailureDegradesToAbsent(t *testing.T) {
	client := &fakeClient{
		todayDevotionalFn: func() (*models.Devotional, error) {
			return nil, errors.New("boom")
		},
	}
	s := NewDevotionalService(client, testLogger())
	s.devotional = &models.Devotional{ID: "stale"}
	s.completed = true

	s.Load(context.Background())

	assert.Nil(t, s.Today())
	assert.False(t, s.Completed())
}

func TestMarkComplete(t *testing.T) {
	var logged []string
	client := &fakeClient{
		logDevotionalFn: func(id string) error {
			logged = append(logged, id)
			return nil
		},
	}
	s := NewDevotionalService(client, testLogger())
	s.devotional = &models.Devotional{ID: "d1"}

	require.NoError(t, s.MarkComplete(context.Background()))
	assert.True(t, s.Completed())

	// marking again is a no-op, not a second API call
	require.NoError(t, s.MarkComplete(context.Background()))
	assert.Equal(t, []string{"d1"}, logged)
}

func TestMarkComplete_WithoutDevotional(t *testing.T) {
	s := NewDevotionalService(&fakeClient{}, testLogger())

	assert.ErrorIs(t, s.MarkComplete(context.Background()), ErrNoDevotional)
}

func TestMarkComplete_FailureLeavesIncomplete(t *testing.T) {
	client := &fakeClient{
		logDevotionalFn: func(string) error { return errors.New("boom") },
	}
	s := NewDevotionalService(client, testLogger())
	s.devotional = &models.Devotional{ID: "d1"}

	require.Error(t, s.MarkComplete(context.Background()))
	assert.False(t, s.Completed())
}
