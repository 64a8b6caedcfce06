package cli

import "context"

// Screen identifies the active view; it decides which commands the loop
// accepts and which data a switch refreshes.
type Screen string

const (
	ScreenHome       Screen = "home"
	ScreenChat       Screen = "chat"
	ScreenDevotional Screen = "devotional"
	ScreenScriptures Screen = "scriptures"
	ScreenPrayers    Screen = "prayers"
	ScreenProfile    Screen = "profile"
)

// NavParams carries per-switch options.
type NavParams struct {
	// NewChat opens the chat screen directly on a freshly created
	// conversation instead of the list.
	NewChat bool
}

// Navigate switches the active screen and triggers the loads the target
// screen depends on. Leaving the chat screen closes any open conversation so
// an in-flight reply cannot touch a view that is no longer on display.
func (a *App) Navigate(ctx context.Context, screen Screen, params NavParams) {
	if a.screen == ScreenChat && screen != ScreenChat {
		a.conversations.Close()
	}

	a.screen = screen

	switch screen {
	case ScreenChat:
		a.conversations.LoadLists(ctx)
		if params.NewChat {
			if _, err := a.conversations.StartNew(ctx); err != nil {
				a.printErr(err)
			}
		}
	case ScreenDevotional:
		a.devotionals.Load(ctx)
	case ScreenPrayers:
		a.prayers.Load(ctx)
	}
}

// Screen returns the active screen.
func (a *App) Screen() Screen {
	return a.screen
}
