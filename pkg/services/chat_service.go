package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/message"
)

// ChatService manages chats and their messages. Deleting a chat cascades to
// messages, executions, runs, and operational token usage; snapshots are
// detached (chat_id nullified) and ledger rows are untouched.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService.
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// Create opens a chat in a project.
func (s *ChatService) Create(ctx context.Context, projectID, title string) (*ent.Chat, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if title == "" {
		title = "New chat"
	}
	c, err := s.client.Chat.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetTitle(title).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %q", ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return c, nil
}

// Get returns a chat by id.
func (s *ChatService) Get(ctx context.Context, id string) (*ent.Chat, error) {
	c, err := s.client.Chat.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: chat %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load chat: %w", err)
	}
	return c, nil
}

// ListByProject returns the project's chats, newest first.
func (s *ChatService) ListByProject(ctx context.Context, projectID string) ([]*ent.Chat, error) {
	rows, err := s.client.Chat.Query().
		Where(chat.ProjectIDEQ(projectID)).
		Order(ent.Desc(chat.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return rows, nil
}

// Rename updates the chat title.
func (s *ChatService) Rename(ctx context.Context, id, title string) (*ent.Chat, error) {
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	c, err := s.client.Chat.UpdateOneID(id).
		SetTitle(title).
		SetUpdatedAt(time.Now().UnixMilli()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: chat %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to rename chat: %w", err)
	}
	return c, nil
}

// Delete removes a chat and its descendants.
func (s *ChatService) Delete(ctx context.Context, id string) error {
	err := s.client.Chat.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: chat %q", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	return nil
}

// Messages returns the chat's messages in creation order.
func (s *ChatService) Messages(ctx context.Context, chatID string) ([]*ent.Message, error) {
	rows, err := s.client.Message.Query().
		Where(message.ChatIDEQ(chatID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return rows, nil
}

// AppendMessage records a message on a chat. Messages are append-only.
func (s *ChatService) AppendMessage(ctx context.Context, chatID string, role message.Role, content, agentName string) (*ent.Message, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetChatID(chatID).
		SetRole(role).
		SetContent(content)
	if agentName != "" {
		create.SetAgentName(agentName)
	}
	m, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: chat %q", ErrNotFound, chatID)
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return m, nil
}
