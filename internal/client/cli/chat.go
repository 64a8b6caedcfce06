package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/client/services"
)

func (a *App) chatCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "l", "list":
		a.listConversations()
	case "trash":
		a.listTrash()
	case "open":
		a.openConversation(ctx, args)
	case "send":
		a.sendMessage(ctx)
	case "new":
		if _, err := a.conversations.StartNew(ctx); err != nil {
			a.printErr(err)
			return true
		}
		a.showConversation()
	case "rename":
		a.renameConversation(ctx, args)
	case "delete":
		a.deleteConversation(ctx, args)
	case "restore":
		a.restoreConversation(ctx, args)
	case "purge":
		a.purgeConversation(ctx, args)
	case "back":
		a.conversations.Close()
		a.listConversations()
	default:
		return false
	}
	return true
}

// pick resolves a 1-based index argument against a conversation list.
func (a *App) pick(convos []*models.Conversation, args []string, usage string) *models.Conversation {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(convos) {
		fmt.Fprintln(a.out, "No such conversation:", args[0])
		return nil
	}
	return convos[n-1]
}

func (a *App) listConversations() {
	convos := a.conversations.Active()
	if len(convos) == 0 {
		fmt.Fprintln(a.out, "No conversations yet. Type 'new' to start one.")
		return
	}
	for i, c := range convos {
		a.printf("%3d. %s  %s\n", i+1, c.Title, services.FormatDate(c.UpdatedAt))
	}
}

func (a *App) listTrash() {
	convos := a.conversations.Deleted()
	if len(convos) == 0 {
		fmt.Fprintln(a.out, "Trash is empty.")
		return
	}
	for i, c := range convos {
		a.printf("%3d. %s  %s\n", i+1, c.Title, services.FormatDate(c.UpdatedAt))
	}
	fmt.Fprintln(a.out, "Deleted conversations are removed permanently after 30 days.")
}

func (a *App) openConversation(ctx context.Context, args []string) {
	c := a.pick(a.conversations.Active(), args, "open <n>")
	if c == nil {
		return
	}
	if err := a.conversations.Open(ctx, c.ID); err != nil {
		a.printErr(err)
		return
	}
	a.showConversation()
}

func (a *App) showConversation() {
	c := a.conversations.Current()
	if c == nil {
		return
	}
	a.printf("\n-- %s --\n", c.Title)
	for _, m := range a.conversations.Messages() {
		label := "You"
		if m.Role == models.RoleAssistant {
			label = "Companion"
		}
		a.printf("%s: %s\n", label, m.Content)
	}
}

func (a *App) sendMessage(ctx context.Context) {
	if a.conversations.Current() == nil {
		fmt.Fprintln(a.out, "Open a conversation first (open <n> or new).")
		return
	}
	text, err := GetMultiline(a.reader, "Your message", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if err := a.conversations.Send(ctx, text); err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return
		}
		a.printErr(err)
		return
	}
	a.showConversation()
}

func (a *App) renameConversation(ctx context.Context, args []string) {
	c := a.conversations.Current()
	if c == nil {
		fmt.Fprintln(a.out, "Open a conversation first.")
		return
	}
	if err := a.conversations.Rename(ctx, c.ID, strings.Join(args, " ")); err != nil {
		a.printErr(err)
	}
}

func (a *App) deleteConversation(ctx context.Context, args []string) {
	c := a.pick(a.conversations.Active(), args, "delete <n>")
	if c == nil {
		return
	}
	if err := a.conversations.SoftDelete(ctx, c.ID); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Moved to trash. Type 'trash' to see deleted conversations.")
}

func (a *App) restoreConversation(ctx context.Context, args []string) {
	c := a.pick(a.conversations.Deleted(), args, "restore <n>")
	if c == nil {
		return
	}
	if err := a.conversations.Restore(ctx, c.ID); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Restored.")
}

func (a *App) purgeConversation(ctx context.Context, args []string) {
	c := a.pick(a.conversations.Deleted(), args, "purge <n>")
	if c == nil {
		return
	}
	if err := a.conversations.HardDelete(ctx, c.ID); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Deleted permanently.")
}
