package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// fakeClient implements api.Client through optional function fields; a nil
// field means "succeed with zero values".
type fakeClient struct {
	token string

	loginFn  func(email, password string) (string, error)
	signupFn func(email, password, displayName string) (string, error)
	fetchMeFn func() (*models.User, error)
	updateProfileFn func(displayName, version string) (*models.User, error)

	listConversationsFn func(includeDeleted bool) ([]*models.Conversation, error)
	getConversationFn   func(id string) (*models.Conversation, []*models.Message, error)
	createConversationFn func(title, mood string) (*models.Conversation, error)
	renameFn            func(id, title string) error
	setDeletedFn        func(id string, deletedAt *time.Time) error
	deleteFn            func(id string) error
	sendMessageFn       func(id, content string) (*models.Message, error)

	todayDevotionalFn func() (*models.Devotional, error)
	logDevotionalFn   func(id string) error

	listTopicsFn  func() ([]models.Topic, error)
	topicVersesFn func(topicID int64) ([]models.Verse, error)
	searchFn      func(query string) ([]models.Verse, error)

	listPrayersFn  func() ([]*models.PrayerRequest, error)
	submitPrayerFn func(content, visibility string, anonymous bool) error
	prayFn         func(id string) error

	renameCalls int
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) ClearToken()           { f.token = "" }

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return "", nil
}

func (f *fakeClient) Signup(_ context.Context, email, password, displayName string) (string, error) {
	if f.signupFn != nil {
		return f.signupFn(email, password, displayName)
	}
	return "", nil
}

func (f *fakeClient) FetchMe(context.Context) (*models.User, error) {
	if f.fetchMeFn != nil {
		return f.fetchMeFn()
	}
	return &models.User{ID: "u1", Email: "a@b.com", DisplayName: "Ann"}, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, displayName, version string) (*models.User, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(displayName, version)
	}
	return &models.User{ID: "u1", DisplayName: displayName, PreferredBibleVersion: version}, nil
}

func (f *fakeClient) ListConversations(_ context.Context, includeDeleted bool) ([]*models.Conversation, error) {
	if f.listConversationsFn != nil {
		return f.listConversationsFn(includeDeleted)
	}
	return nil, nil
}

func (f *fakeClient) GetConversation(_ context.Context, id string) (*models.Conversation, []*models.Message, error) {
	if f.getConversationFn != nil {
		return f.getConversationFn(id)
	}
	return &models.Conversation{ID: id}, nil, nil
}

func (f *fakeClient) CreateConversation(_ context.Context, title, mood string) (*models.Conversation, error) {
	if f.createConversationFn != nil {
		return f.createConversationFn(title, mood)
	}
	return &models.Conversation{ID: "new", Title: title}, nil
}

func (f *fakeClient) RenameConversation(_ context.Context, id, title string) error {
	f.renameCalls++
	if f.renameFn != nil {
		return f.renameFn(id, title)
	}
	return nil
}

func (f *fakeClient) SetConversationDeleted(_ context.Context, id string, deletedAt *time.Time) error {
	if f.setDeletedFn != nil {
		return f.setDeletedFn(id, deletedAt)
	}
	return nil
}

func (f *fakeClient) DeleteConversation(_ context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func (f *fakeClient) SendMessage(_ context.Context, id, content string) (*models.Message, error) {
	if f.sendMessageFn != nil {
		return f.sendMessageFn(id, content)
	}
	return &models.Message{Role: models.RoleAssistant, Content: "reply"}, nil
}

func (f *fakeClient) TodayDevotional(context.Context) (*models.Devotional, error) {
	if f.todayDevotionalFn != nil {
		return f.todayDevotionalFn()
	}
	return &models.Devotional{ID: "d1", Title: "Quiet Strength"}, nil
}

func (f *fakeClient) LogDevotional(_ context.Context, id string) error {
	if f.logDevotionalFn != nil {
		return f.logDevotionalFn(id)
	}
	return nil
}

func (f *fakeClient) ListTopics(context.Context) ([]models.Topic, error) {
	if f.listTopicsFn != nil {
		return f.listTopicsFn()
	}
	return nil, nil
}

func (f *fakeClient) TopicVerses(_ context.Context, topicID int64) ([]models.Verse, error) {
	if f.topicVersesFn != nil {
		return f.topicVersesFn(topicID)
	}
	return nil, nil
}

func (f *fakeClient) SearchScriptures(_ context.Context, query string) ([]models.Verse, error) {
	if f.searchFn != nil {
		return f.searchFn(query)
	}
	return nil, nil
}

func (f *fakeClient) ListPrayerRequests(context.Context) ([]*models.PrayerRequest, error) {
	if f.listPrayersFn != nil {
		return f.listPrayersFn()
	}
	return nil, nil
}

func (f *fakeClient) SubmitPrayerRequest(_ context.Context, content, visibility string, anonymous bool) error {
	if f.submitPrayerFn != nil {
		return f.submitPrayerFn(content, visibility, anonymous)
	}
	return nil
}

func (f *fakeClient) Pray(_ context.Context, id string) error {
	if f.prayFn != nil {
		return f.prayFn(id)
	}
	return nil
}

// fakeStates is an in-memory state.Repository.
type fakeStates struct {
	values map[string]string
	setErr error
	getErr error
}

func newFakeStates() *fakeStates {
	return &fakeStates{values: map[string]string{}}
}

func (f *fakeStates) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func (f *fakeStates) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeStates) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}
