package cli

import "fmt"

// home prints the landing screen.
func (a *App) home() {
	u := a.session.User()
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "\nBe still, %s.\n", u.DisplayName)
	fmt.Fprintln(a.out, "Where would you like to go? (chat, devotional, scriptures, prayers, profile)")
}
