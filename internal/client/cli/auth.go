package cli

import (
	"context"
	"fmt"

	"github.com/mwhitfield/stillwaters/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and authenticates. A rejected attempt prints
// the server's explanation; the loop stays on the current screen either way.
func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	defer shared.WipeByteArray(password)

	res := a.session.Login(ctx, email, string(password))
	if !res.OK {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	a.greet(ctx)
}

// signup creates an account and, like login, establishes the session on
// success.
func (a *App) signup(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	defer shared.WipeByteArray(password)

	res := a.session.Signup(ctx, email, string(password), displayName)
	if !res.OK {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	a.greet(ctx)
}

func (a *App) greet(ctx context.Context) {
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome, %s.\n", u.DisplayName)
	}
	a.Navigate(ctx, ScreenHome, NavParams{})
	a.home()
}

func (a *App) logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.screen = ScreenHome
	a.conversations.Close()
	fmt.Fprintln(a.out, "Logged out.")
}
