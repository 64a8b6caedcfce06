package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mwhitfield/stillwaters/internal/client/models"
)

type conversationsResponse struct {
	Conversations []*models.Conversation `json:"conversations"`
}

type conversationResponse struct {
	Conversation *models.Conversation `json:"conversation"`
	Messages     []*models.Message    `json:"messages"`
}

type createConversationPayload struct {
	Title       string `json:"title"`
	InitialMood string `json:"initialMood"`
}

type renamePayload struct {
	Title string `json:"title"`
}

// deletedAtPayload always serializes the field so PATCH {deletedAt: null}
// restores a conversation.
type deletedAtPayload struct {
	DeletedAt *time.Time `json:"deletedAt"`
}

type sendMessagePayload struct {
	Content string `json:"content"`
}

type sendMessageResponse struct {
	AssistantMessage *models.Message `json:"assistantMessage"`
}

// ListConversations returns the caller's conversations. With includeDeleted
// the result also carries soft-deleted ones, distinguished by DeletedAt.
func (c *HTTPClient) ListConversations(ctx context.Context, includeDeleted bool) ([]*models.Conversation, error) {
	endpoint := "/conversations"
	if includeDeleted {
		endpoint += "?includeDeleted=true"
	}
	var resp conversationsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// GetConversation fetches one conversation together with its message log.
func (c *HTTPClient) GetConversation(ctx context.Context, id string) (*models.Conversation, []*models.Message, error) {
	var resp conversationResponse
	if err := c.do(ctx, http.MethodGet, "/conversations/"+id, nil, &resp); err != nil {
		return nil, nil, err
	}
	if resp.Conversation == nil || resp.Conversation.ID == "" {
		return nil, nil, errors.New("conversation response missing conversation")
	}
	return resp.Conversation, resp.Messages, nil
}

// CreateConversation starts a new conversation and returns it.
func (c *HTTPClient) CreateConversation(ctx context.Context, title, initialMood string) (*models.Conversation, error) {
	payload := createConversationPayload{Title: title, InitialMood: initialMood}
	var resp conversationResponse
	if err := c.do(ctx, http.MethodPost, "/conversations", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Conversation == nil || resp.Conversation.ID == "" {
		return nil, errors.New("create response missing conversation")
	}
	return resp.Conversation, nil
}

// RenameConversation sets a conversation's title via partial update.
func (c *HTTPClient) RenameConversation(ctx context.Context, id, title string) error {
	return c.do(ctx, http.MethodPatch, "/conversations/"+id, renamePayload{Title: title}, nil)
}

// SetConversationDeleted marks or clears the soft-delete timestamp. A nil
// deletedAt restores the conversation.
func (c *HTTPClient) SetConversationDeleted(ctx context.Context, id string, deletedAt *time.Time) error {
	return c.do(ctx, http.MethodPatch, "/conversations/"+id, deletedAtPayload{DeletedAt: deletedAt}, nil)
}

// DeleteConversation removes a conversation permanently. The endpoint is
// idempotent server-side.
func (c *HTTPClient) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/conversations/"+id, nil, nil)
}

// SendMessage posts the user's message and returns the assistant's reply.
func (c *HTTPClient) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	var resp sendMessageResponse
	err := c.do(ctx, http.MethodPost, "/conversations/"+conversationID+"/messages", sendMessagePayload{Content: content}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AssistantMessage == nil || resp.AssistantMessage.Content == "" {
		return nil, errors.New("send response missing assistant message")
	}
	return resp.AssistantMessage, nil
}
