package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

const (
	defaultConversationTitle = "New Conversation"
	defaultInitialMood       = "peaceful"

	// fallbackReply stands in for the assistant when a send fails; the
	// user's own message is never retracted.
	fallbackReply = "I apologize, but I encountered an error. Please try again."
)

var (
	ErrNoOpenConversation = errors.New("no open conversation")
	ErrEmptyMessage       = errors.New("message is empty")
)

// ConversationService keeps the local conversation state in sync with the
// server: the active and deleted sets (partitioned by DeletedAt), the open
// conversation and its message log.
//
// Every conversation id lives in exactly one of the two sets at any time.
// A generation counter tracks which conversation is open so that a response
// arriving after the user navigated away is discarded instead of mutating
// state for a conversation no longer on screen.
type ConversationService struct {
	client api.Client
	log    logging.Logger

	active  []*models.Conversation
	deleted []*models.Conversation

	current  *models.Conversation
	messages []*models.Message
	gen      uint64
}

func NewConversationService(client api.Client, log logging.Logger) *ConversationService {
	return &ConversationService{
		client: client,
		log:    log.With("component", "conversations"),
	}
}

// Active returns the non-deleted conversations, newest first.
func (s *ConversationService) Active() []*models.Conversation { return s.active }

// Deleted returns the trashed conversations.
func (s *ConversationService) Deleted() []*models.Conversation { return s.deleted }

// Current returns the open conversation, or nil in list view.
func (s *ConversationService) Current() *models.Conversation { return s.current }

// Messages returns the open conversation's log.
func (s *ConversationService) Messages() []*models.Message { return s.messages }

// LoadLists populates both conversation sets. Each fetch degrades to an
// empty set on failure; navigation must never break because a list would
// not load.
func (s *ConversationService) LoadLists(ctx context.Context) {
	s.active = nil
	s.deleted = nil

	convos, err := s.client.ListConversations(ctx, false)
	if err != nil {
		s.log.Warn(ctx, "loading conversations failed", "error", err)
	} else {
		for _, c := range convos {
			if !c.Deleted() {
				s.active = append(s.active, c)
			}
		}
	}

	all, err := s.client.ListConversations(ctx, true)
	if err != nil {
		s.log.Warn(ctx, "loading deleted conversations failed", "error", err)
		return
	}
	for _, c := range all {
		if c.Deleted() {
			s.deleted = append(s.deleted, c)
		}
	}
}

// Open fetches a conversation with its message log and makes it current.
// The fetched log replaces any prior one. On failure the view is unchanged.
func (s *ConversationService) Open(ctx context.Context, id string) error {
	convo, msgs, err := s.client.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	s.current = convo
	s.messages = msgs
	s.gen++
	return nil
}

// Close returns to the list view, discarding the open message log.
func (s *ConversationService) Close() {
	s.current = nil
	s.messages = nil
	s.gen++
}

// StartNew creates a conversation with the default title and mood, prepends
// it to the active set and opens it with an empty log. On failure state is
// unchanged and the caller may retry.
func (s *ConversationService) StartNew(ctx context.Context) (*models.Conversation, error) {
	convo, err := s.client.CreateConversation(ctx, defaultConversationTitle, defaultInitialMood)
	if err != nil {
		return nil, err
	}
	s.active = append([]*models.Conversation{convo}, s.active...)
	s.current = convo
	s.messages = nil
	s.gen++
	return convo, nil
}

// Send appends the user's message optimistically, posts it, and appends the
// assistant's reply — or the fixed fallback reply when the post fails. The
// optimistic user message is never removed. The first message of a
// conversation additionally derives a title and issues a best-effort rename.
//
// A reply that arrives after the conversation was closed or replaced is
// discarded.
func (s *ConversationService) Send(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}
	if s.current == nil {
		return ErrNoOpenConversation
	}

	wasEmpty := len(s.messages) == 0
	s.messages = append(s.messages, &models.Message{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   content,
		CreatedAt: nowFn().UTC(),
	})

	id, gen := s.current.ID, s.gen

	reply, err := s.client.SendMessage(ctx, id, content)
	if s.staleSince(id, gen) {
		return nil
	}
	if err != nil {
		s.log.Warn(ctx, "send failed", "conversation", id, "error", err)
		s.messages = append(s.messages, &models.Message{
			Role:      models.RoleAssistant,
			Content:   fallbackReply,
			CreatedAt: nowFn().UTC(),
		})
		return nil
	}
	s.messages = append(s.messages, reply)

	if wasEmpty {
		title := GenerateTitle(content)
		if err := s.client.RenameConversation(ctx, id, title); err != nil {
			// swallowed: the prior title simply stays
			s.log.Warn(ctx, "title update failed", "conversation", id, "error", err)
		} else if !s.staleSince(id, gen) {
			s.current.Title = title
			s.retitle(id, title)
		}
	}
	return nil
}

// SoftDelete moves a conversation to the trash: the move is optimistic and
// reverted when the server rejects the partial update, so a failed soft
// delete can simply be retried and is never escalated to a permanent
// delete. Deleting the open conversation closes the detail view.
func (s *ConversationService) SoftDelete(ctx context.Context, id string) error {
	idx := indexOf(s.active, id)
	if idx < 0 {
		return nil
	}

	now := nowFn().UTC()
	convo := s.active[idx]
	convo.DeletedAt = &now
	s.active = append(s.active[:idx:idx], s.active[idx+1:]...)
	s.deleted = append([]*models.Conversation{convo}, s.deleted...)

	if s.current != nil && s.current.ID == id {
		s.Close()
	}

	if err := s.client.SetConversationDeleted(ctx, id, &now); err != nil {
		convo.DeletedAt = nil
		s.deleted = s.deleted[1:]
		s.active = insertAt(s.active, idx, convo)
		return err
	}
	return nil
}

// Restore moves a trashed conversation back to the active set. The move is
// applied only after the server accepts the update.
func (s *ConversationService) Restore(ctx context.Context, id string) error {
	idx := indexOf(s.deleted, id)
	if idx < 0 {
		return nil
	}

	if err := s.client.SetConversationDeleted(ctx, id, nil); err != nil {
		return err
	}

	convo := s.deleted[idx]
	convo.DeletedAt = nil
	s.deleted = append(s.deleted[:idx:idx], s.deleted[idx+1:]...)
	s.active = append([]*models.Conversation{convo}, s.active...)
	return nil
}

// HardDelete permanently removes an already-trashed conversation.
func (s *ConversationService) HardDelete(ctx context.Context, id string) error {
	idx := indexOf(s.deleted, id)
	if idx < 0 {
		return nil
	}
	if err := s.client.DeleteConversation(ctx, id); err != nil {
		return err
	}
	s.deleted = append(s.deleted[:idx:idx], s.deleted[idx+1:]...)
	return nil
}

// Rename sets a new title. An empty trimmed title cancels the edit without
// a network call; on failure local state is unchanged.
func (s *ConversationService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if err := s.client.RenameConversation(ctx, id, title); err != nil {
		s.log.Warn(ctx, "rename failed", "conversation", id, "error", err)
		return err
	}
	s.retitle(id, title)
	if s.current != nil && s.current.ID == id {
		s.current.Title = title
	}
	return nil
}

// staleSince reports whether the conversation targeted at (id, gen) is no
// longer the open one.
func (s *ConversationService) staleSince(id string, gen uint64) bool {
	return s.current == nil || s.current.ID != id || s.gen != gen
}

func (s *ConversationService) retitle(id, title string) {
	for _, c := range s.active {
		if c.ID == id {
			c.Title = title
			return
		}
	}
}

func indexOf(convos []*models.Conversation, id string) int {
	for i, c := range convos {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func insertAt(convos []*models.Conversation, idx int, c *models.Conversation) []*models.Conversation {
	if idx >= len(convos) {
		return append(convos, c)
	}
	convos = append(convos[:idx+1], convos[idx:]...)
	convos[idx] = c
	return convos
}
