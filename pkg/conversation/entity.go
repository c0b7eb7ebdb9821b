package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/workvibe/pkg/career"
)

var ErrNotFound = errors.New("not found")

// CardsRecord — сохранённый payload карточек беседы.
type CardsRecord struct {
	ID             uuid.UUID      `json:"id"`
	ConversationID string         `json:"conversationId"`
	Payload        career.Payload `json:"payload"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// HistoryRepository — порт для журнала реплик беседы ("user: ...", "assistant: ...").
type HistoryRepository interface {
	Append(ctx context.Context, conversationID string, lines ...string) error
	List(ctx context.Context, conversationID string) ([]string, error)
}

// CardsRepository — порт для хранения payload'ов карточек.
type CardsRepository interface {
	Create(ctx context.Context, rec CardsRecord) (CardsRecord, error)
	// Latest returns ErrNotFound when nothing is stored for the conversation.
	Latest(ctx context.Context, conversationID string) (CardsRecord, error)
}

type ChatInput struct {
	Message        string
	ConversationID string
}

type ChatOutput struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversation_id"`
}

// CardsLookup — то, что клиент получает по GET /api/conversation/{id}/cards.
type CardsLookup struct {
	File string          `json:"file,omitempty"`
	Data *career.Payload `json:"data,omitempty"`
}
