package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/client/services"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// fakeClient implements api.Client through optional function fields; a nil
// field means "succeed with zero values".
type fakeClient struct {
	token string

	loginFn   func(email, password string) (string, error)
	signupFn  func(email, password, displayName string) (string, error)
	fetchMeFn func() (*models.User, error)

	listConversationsFn func(includeDeleted bool) ([]*models.Conversation, error)
	getConversationFn   func(id string) (*models.Conversation, []*models.Message, error)
	sendMessageFn       func(id, content string) (*models.Message, error)
	setDeletedFn        func(id string, deletedAt *time.Time) error

	todayDevotionalFn func() (*models.Devotional, error)
	listPrayersFn     func() ([]*models.PrayerRequest, error)
	listTopicsFn      func() ([]models.Topic, error)
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) ClearToken()           { f.token = "" }

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return "token", nil
}

func (f *fakeClient) Signup(_ context.Context, email, password, displayName string) (string, error) {
	if f.signupFn != nil {
		return f.signupFn(email, password, displayName)
	}
	return "token", nil
}

func (f *fakeClient) FetchMe(context.Context) (*models.User, error) {
	if f.fetchMeFn != nil {
		return f.fetchMeFn()
	}
	return &models.User{ID: "u1", Email: "grace@example.org", DisplayName: "Grace"}, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, displayName, version string) (*models.User, error) {
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
	return &models.Conversation{ID: "new", Title: title}, nil
}

func (f *fakeClient) RenameConversation(_ context.Context, id, title string) error { return nil }

func (f *fakeClient) SetConversationDeleted(_ context.Context, id string, deletedAt *time.Time) error {
	if f.setDeletedFn != nil {
		return f.setDeletedFn(id, deletedAt)
	}
	return nil
}

func (f *fakeClient) DeleteConversation(_ context.Context, id string) error { return nil }

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
	return nil, nil
}

func (f *fakeClient) LogDevotional(_ context.Context, id string) error { return nil }

func (f *fakeClient) ListTopics(context.Context) ([]models.Topic, error) {
	if f.listTopicsFn != nil {
		return f.listTopicsFn()
	}
	return nil, nil
}

func (f *fakeClient) TopicVerses(_ context.Context, topicID int64) ([]models.Verse, error) {
	return nil, nil
}

func (f *fakeClient) SearchScriptures(_ context.Context, query string) ([]models.Verse, error) {
	return nil, nil
}

func (f *fakeClient) ListPrayerRequests(context.Context) ([]*models.PrayerRequest, error) {
	if f.listPrayersFn != nil {
		return f.listPrayersFn()
	}
	return nil, nil
}

func (f *fakeClient) SubmitPrayerRequest(_ context.Context, content, visibility string, anonymous bool) error {
	return nil
}

func (f *fakeClient) Pray(_ context.Context, id string) error { return nil }

// fakeStates is an in-memory state.Repository.
type fakeStates struct {
	values map[string]string
}

func (f *fakeStates) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeStates) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStates) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

// newTestApp wires an App onto a fake backend, with output captured in the
// returned buffer and the given lines pre-queued as user input.
func newTestApp(client *fakeClient, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := logging.NewTextLogger(io.Discard, slog.LevelError)

	return &App{
		log:           log,
		session:       services.NewSessionService(client, &fakeStates{values: map[string]string{}}, log),
		conversations: services.NewConversationService(client, log),
		devotionals:   services.NewDevotionalService(client, log),
		scriptures:    services.NewScriptureService(client, log),
		prayers:       services.NewPrayerService(client, log),
		reader:        bufio.NewReader(strings.NewReader(input)),
		out:           out,
		screen:        ScreenHome,
	}, out
}

func loggedInApp(client *fakeClient, input string) (*App, *bytes.Buffer) {
	a, out := newTestApp(client, input)
	a.session.Login(context.Background(), "grace@example.org", "secret")
	out.Reset()
	return a, out
}
