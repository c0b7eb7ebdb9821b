package session

import (
	"context"
	"errors"

	"github.com/artem13815/workvibe/pkg/cards"
	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/summary"
)

const (
	Greeting        = "Привет! Кем бы ты хотел себя почувствовать? Если ты еще не знаешь, то можешь пройти тест по профориентации (ссылка на тест)."
	ConnectionError = "Ошибка соединения с сервером"
)

var ErrEmptyMessage = errors.New("empty message")

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Kind — вид записи в чате.
type Kind string

const (
	KindText    Kind = "text"
	KindSummary Kind = "summary"
	KindJSON    Kind = "json"
)

// Message — запись в видимом чате. Summary заполнен только для KindSummary.
type Message struct {
	Role    Role
	Kind    Kind
	Text    string
	Summary *summary.Summary
}

// Source names the resolution step that produced the payload of a turn.
type Source string

const (
	SourceNone       Source = ""
	SourceStructured Source = "structured_data"
	SourceMarker     Source = "marker_json"
	SourceCardsFile  Source = "cards_file"
	SourceLookup     Source = "conversation_lookup"
	SourceHint       Source = "profession_hint"
	SourceInput      Source = "user_input"
)

// Backend — всё, что сессии нужно от чат-бэкенда. *chatapi.Client его реализует.
type Backend interface {
	Chat(ctx context.Context, req chatapi.ChatRequest) (chatapi.ChatResponse, error)
	ConversationCards(ctx context.Context, conversationID string) (chatapi.CardsLookup, error)
	FetchJSON(ctx context.Context, ref string, out any) error
}

// State is a copy of the session state for rendering.
type State struct {
	Transcript     []Message
	Cards          []cards.Card
	Cursor         int
	ConversationID string
	History        []chatapi.HistoryItem
	Payload        *career.Payload
	// Touched is set once the user has sent anything; carousel arrows stay inert before that.
	Touched bool
}

// Card returns the card under the cursor.
func (s State) Card() cards.Card {
	if len(s.Cards) == 0 {
		return cards.Placeholder()
	}
	return s.Cards[s.Cursor]
}

// Turn describes the outcome of one Send.
type Turn struct {
	Source  Source
	Summary *summary.Summary
}
