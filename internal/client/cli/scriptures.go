package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

func (a *App) scripturesCommand(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "topics":
		a.listTopics(ctx)
	case "verses":
		a.topicVerses(ctx, args)
	case "search":
		a.searchScriptures(ctx, args)
	default:
		return false
	}
	return true
}

func (a *App) listTopics(ctx context.Context) {
	topics := a.scriptures.Topics(ctx)
	a.lastTopics = topics
	for i, t := range topics {
		a.printf("%3d. %s\n", i+1, t.Name)
	}
	fmt.Fprintln(a.out, "Type 'verses <n>' to browse a topic or 'search <text>'.")
}

func (a *App) topicVerses(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: verses <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastTopics) {
		fmt.Fprintln(a.out, "No such topic:", args[0])
		return
	}
	topic := a.lastTopics[n-1]
	a.printf("\n%s\n", topic.Name)
	a.printVerses(a.scriptures.TopicVerses(ctx, topic.ID))
}

func (a *App) searchScriptures(ctx context.Context, args []string) {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(a.out, "Usage: search <text>")
		return
	}
	a.printVerses(a.scriptures.Search(ctx, query))
}

func (a *App) printVerses(verses []models.Verse) {
	if len(verses) == 0 {
		fmt.Fprintln(a.out, "No verses found.")
		return
	}
	for _, v := range verses {
		a.printf("\n%q\n    - %s\n", v.Text, v.Reference)
	}
}
