package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printErr(err error) {
	fmt.Fprintln(a.out, "Error:", err.Error())
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.DisplayName + " "
	}
	s = s + string(a.screen)
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop. A line's first token is the command; the
// rest are its arguments. Unknown commands are reported back to the user and
// handler errors never abort the loop. The loop exits on EOF or "exit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Still Waters (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printf("sw %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Go in peace.")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(a.out, "Available commands: login, signup, exit")
			case "login":
				a.login(ctx)
			case "signup":
				a.signup(ctx)
			default:
				fmt.Fprintln(a.out, "Please log in first (login, signup, exit)")
			}
			continue
		}

		if a.dispatchGlobal(ctx, cmd) {
			continue
		}
		if a.dispatchScreen(ctx, cmd, args) {
			continue
		}
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

// dispatchGlobal handles the commands available on every screen.
func (a *App) dispatchGlobal(ctx context.Context, cmd string) bool {
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, "Screens: home, chat, newchat, devotional, scriptures, prayers, profile")
		fmt.Fprintln(a.out, "Session: logout, exit")
		if help := screenHelp[a.screen]; help != "" {
			fmt.Fprintln(a.out, "Here:", help)
		}
	case "home":
		a.Navigate(ctx, ScreenHome, NavParams{})
		a.home()
	case "chat":
		a.Navigate(ctx, ScreenChat, NavParams{})
		a.listConversations()
	case "newchat":
		a.Navigate(ctx, ScreenChat, NavParams{NewChat: true})
	case "devotional":
		a.Navigate(ctx, ScreenDevotional, NavParams{})
		a.showDevotional()
	case "scriptures":
		a.Navigate(ctx, ScreenScriptures, NavParams{})
		a.listTopics(ctx)
	case "prayers":
		a.Navigate(ctx, ScreenPrayers, NavParams{})
		a.listPrayers()
	case "profile":
		a.Navigate(ctx, ScreenProfile, NavParams{})
		a.showProfile()
	case "logout":
		a.logout(ctx)
	default:
		return false
	}
	return true
}

var screenHelp = map[Screen]string{
	ScreenChat:       "list, trash, open <n>, send, new, rename <title>, delete <n>, restore <n>, purge <n>, back",
	ScreenDevotional: "show, complete",
	ScreenScriptures: "topics, verses <n>, search <text>",
	ScreenPrayers:    "list, pray <n>, submit",
	ScreenProfile:    "show, edit",
}

// dispatchScreen handles the commands of the active screen.
func (a *App) dispatchScreen(ctx context.Context, cmd string, args []string) bool {
	switch a.screen {
	case ScreenChat:
		return a.chatCommand(ctx, cmd, args)
	case ScreenDevotional:
		return a.devotionalCommand(ctx, cmd)
	case ScreenScriptures:
		return a.scripturesCommand(ctx, cmd, args)
	case ScreenPrayers:
		return a.prayersCommand(ctx, cmd, args)
	case ScreenProfile:
		return a.profileCommand(ctx, cmd)
	}
	return false
}
