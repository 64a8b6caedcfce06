package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/config"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/client/repositories/state"
	"github.com/mwhitfield/stillwaters/internal/client/services"
	"github.com/mwhitfield/stillwaters/internal/client/storage"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// App wires the services to the interactive loop. All fields are owned by
// the single REPL goroutine.
type App struct {
	config *config.Config
	log    logging.Logger

	session       *services.SessionService
	conversations *services.ConversationService
	devotionals   *services.DevotionalService
	scriptures    *services.ScriptureService
	prayers       *services.PrayerService

	reader *bufio.Reader
	out    io.Writer
	screen Screen

	// lastTopics keeps the order the scriptures screen displayed, so that
	// "verses <n>" resolves against what the user actually saw.
	lastTopics []models.Topic
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	states := state.NewSQLiteRepository(db)

	return &App{
		config:        c,
		log:           log,
		session:       services.NewSessionService(apiClient, states, log),
		conversations: services.NewConversationService(apiClient, log),
		devotionals:   services.NewDevotionalService(apiClient, log),
		scriptures:    services.NewScriptureService(apiClient, log),
		prayers:       services.NewPrayerService(apiClient, log),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		screen:        ScreenHome,
	}, nil
}

// Run restores any persisted session and enters the interactive loop.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
