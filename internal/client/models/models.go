// Package models defines the domain types exchanged with the Still Waters
// API. Response bodies use snake_case field names; request payloads are
// defined next to the API client.
package models

import "time"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// User is the authenticated account profile. Users are never created
// client-side; the only client mutation is the profile update.
type User struct {
	ID                    string `json:"id"`
	Email                 string `json:"email"`
	DisplayName           string `json:"display_name"`
	PreferredBibleVersion string `json:"preferred_bible_version"`
}

// Conversation is a chat thread. DeletedAt partitions conversations into the
// active set (nil) and the trash (non-nil); the server hard-deletes trashed
// conversations after a 30-day retention window.
type Conversation struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Deleted reports whether the conversation is in the trash.
func (c *Conversation) Deleted() bool {
	return c.DeletedAt != nil
}

// Message is one entry in a conversation's append-only log. ID is assigned
// locally for optimistic messages and by the server otherwise.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Devotional is the daily devotional content.
type Devotional struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	ScriptureReference string `json:"scripture_reference"`
	Reflection         string `json:"reflection"`
	PrayerPrompt       string `json:"prayer_prompt"`
	ActionStep         string `json:"action_step"`
}

// Topic is a scripture browse category.
type Topic struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Verse is a single scripture search result.
type Verse struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// PrayerRequest is an entry on the community prayer wall. HasPrayed is
/// client-side only: it marks requests this session has already prayed for.
type PrayerRequest struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	PrayerCount int    `json:"prayer_count"`
	IsAnonymous bool   `json:"is_anonymous"`
	Author      *User  `json:"user,omitempty"`

	HasPrayed bool `json:"-"`
}

// AuthorName returns the display name to show for a prayer request,
// respecting anonymity.
func (p *PrayerRequest) AuthorName() string {
	if p.IsAnonymous {
		return "Anonymous"
	}
	if p.Author == nil || p.Author.DisplayName == "" {
		return "A fellow believer"
	}
	return p.Author.DisplayName
}
