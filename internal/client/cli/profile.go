package cli

import (
	"context"
	"fmt"
)

func (a *App) profileCommand(ctx context.Context, cmd string) bool {
	switch cmd {
	case "show":
		a.showProfile()
	case "edit":
		a.editProfile(ctx)
	default:
		return false
	}
	return true
}

func (a *App) showProfile() {
	u := a.session.User()
	if u == nil {
		return
	}
	a.printf("\nDisplay name:  %s\nEmail:         %s\nBible version: %s\n", u.DisplayName, u.Email, u.PreferredBibleVersion)
	fmt.Fprintln(a.out, "Type 'edit' to change your profile.")
}

// editProfile prompts for the mutable fields; an empty answer keeps the
// current value.
func (a *App) editProfile(ctx context.Context) {
	u := a.session.User()
	if u == nil {
		return
	}

	displayName, err := getSimpleText(a.reader, fmt.Sprintf("Display name [%s]", u.DisplayName), a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if displayName == "" {
		displayName = u.DisplayName
	}

	version, err := getSimpleText(a.reader, fmt.Sprintf("Preferred Bible version [%s]", u.PreferredBibleVersion), a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if version == "" {
		version = u.PreferredBibleVersion
	}

	if err := a.session.UpdateProfile(ctx, displayName, version); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Profile updated.")
}
