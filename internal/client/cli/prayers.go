package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mwhitfield/stillwaters/internal/client/services"
)

func (a *App) prayersCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "l", "list":
		a.listPrayers()
	case "pray":
		a.pray(ctx, args)
	case "submit":
		a.submitPrayer(ctx)
	default:
		return false
	}
	return true
}

func (a *App) listPrayers() {
	requests := a.prayers.Requests()
	if len(requests) == 0 {
		fmt.Fprintln(a.out, "The prayer wall is empty right now.")
		return
	}
	for i, r := range requests {
		mark := " "
		if r.HasPrayed {
			mark = "*"
		}
		a.printf("%3d.%s %s\n      %s (%d praying)\n", i+1, mark, r.Content, r.AuthorName(), r.PrayerCount)
	}
}

func (a *App) pray(ctx context.Context, args []string) {
	requests := a.prayers.Requests()
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: pray <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(requests) {
		fmt.Fprintln(a.out, "No such request:", args[0])
		return
	}
	if err := a.prayers.Pray(ctx, requests[n-1].ID); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Amen.")
}

func (a *App) submitPrayer(ctx context.Context) {
	content, err := GetMultiline(a.reader, "Your prayer request", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	visibility := services.VisibilityCommunity
	answer, err := getSimpleText(a.reader, "Keep it private? (y/N)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if answer == "y" || answer == "Y" {
		visibility = services.VisibilityPrivate
	}

	anonymous := false
	answer, err = getSimpleText(a.reader, "Post anonymously? (y/N)", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if answer == "y" || answer == "Y" {
		anonymous = true
	}

	if err := a.prayers.Submit(ctx, content, visibility, anonymous); err != nil {
		if errors.Is(err, services.ErrEmptyPrayer) {
			return
		}
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Your request has been shared.")
	a.listPrayers()
}
