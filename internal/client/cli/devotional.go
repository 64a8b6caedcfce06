package cli

import (
	"context"
	"fmt"
)

func (a *App) devotionalCommand(ctx context.Context, cmd string) bool {
	switch cmd {
	case "show":
		a.showDevotional()
	case "complete":
		if err := a.devotionals.MarkComplete(ctx); err != nil {
			a.printErr(err)
			return true
		}
		fmt.Fprintln(a.out, "Marked as completed. Well done.")
	default:
		return false
	}
	return true
}

func (a *App) showDevotional() {
	d := a.devotionals.Today()
	if d == nil {
		fmt.Fprintln(a.out, "Today's devotional is not available right now.")
		return
	}
	a.printf("\n%s\n%s\n\n%s\n", d.Title, d.ScriptureReference, d.Reflection)
	if d.PrayerPrompt != "" {
		a.printf("\nPrayer: %s\n", d.PrayerPrompt)
	}
	if d.ActionStep != "" {
		a.printf("Today: %s\n", d.ActionStep)
	}
	if a.devotionals.Completed() {
		fmt.Fprintln(a.out, "\nCompleted today.")
	} else {
		fmt.Fprintln(a.out, "\nType 'complete' when you have finished.")
	}
}
