package services

import (
	"fmt"
	"time"
)

// nowFn is a test seam for the current time.
var nowFn = time.Now

const (
	titleMaxLen = 40
	// only break on a space if doing so keeps a reasonable prefix
	titleMinBreak = 20
)

// GenerateTitle derives a conversation title from its first message.
// Content of at most 40 characters is used verbatim; longer content is cut
// at 40 characters, backed up to the last space when that space falls after
// index 20, and suffixed with an ellipsis. Pure function.
func GenerateTitle(content string) string {
	if content == "" {
		return defaultConversationTitle
	}
	runes := []rune(content)
	if len(runes) <= titleMaxLen {
		return content
	}
	truncated := runes[:titleMaxLen]
	lastSpace := -1
	for i, r := range truncated {
		if r == ' ' {
			lastSpace = i
		}
	}
	if lastSpace > titleMinBreak {
		truncated = truncated[:lastSpace]
	}
	return string(truncated) + "..."
}

// FormatDate renders a timestamp relative to now: "Today", "Yesterday",
// "N days ago" within a week, then a short month/day. The zero time renders
// as the empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := nowFn()
	days := daysBetween(t, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2")
	}
}

// daysBetween counts whole days from t to now.
func daysBetween(t, now time.Time) int {
	diff := now.Sub(t)
	if diff < 0 {
		return 0
	}
	return int(diff.Hours() / 24)
}
