package session

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/artem13815/workvibe/pkg/cards"
	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/logger"
	"github.com/artem13815/workvibe/pkg/preset"
	"github.com/artem13815/workvibe/pkg/reply"
	"github.com/artem13815/workvibe/pkg/summary"
)

// Session — состояние чата и карусели одного пользователя.
// Методы безопасны для вызова из разных горутин; порядок пересекающихся Send не гарантирован.
type Session struct {
	backend Backend
	catalog *preset.Catalog
	log     *logger.Logger

	mu             sync.Mutex
	transcript     []Message
	history        []chatapi.HistoryItem
	conversationID string
	payload        *career.Payload
	cards          []cards.Card
	cursor         int
	touched        bool
}

func New(backend Backend, catalog *preset.Catalog, log *logger.Logger) *Session {
	if catalog == nil {
		catalog = preset.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{backend: backend, catalog: catalog, log: log}
	s.reset()
	return s
}

// Reset returns the session to the greeting state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.transcript = []Message{{Role: RoleBot, Kind: KindText, Text: Greeting}}
	s.history = []chatapi.HistoryItem{{Role: "assistant", Content: Greeting}}
	s.conversationID = ""
	s.payload = nil
	s.cards = cards.Build(nil)
	s.cursor = 0
	s.touched = false
}

// Send submits a user message and runs the resolution chain on the reply.
// A backend failure leaves a connection error in the transcript and returns the error;
// conversation id, payload and history keep their pre-turn values.
func (s *Session) Send(ctx context.Context, input string) (Turn, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, Message{Role: RoleUser, Kind: KindText, Text: text})
	s.touched = true
	history := append(cloneHistory(s.history), chatapi.HistoryItem{Role: "user", Content: text})
	req := chatapi.ChatRequest{Message: text, History: history}
	if s.conversationID != "" {
		id := s.conversationID
		req.ConversationID = &id
	}
	t := &turn{input: text, conversationID: s.conversationID}
	if s.payload != nil {
		t.shownProfession = s.payload.Profession
	}
	s.mu.Unlock()

	resp, err := s.backend.Chat(ctx, req)
	if err != nil {
		s.log.Error("chat request failed", "error", err)
		s.mu.Lock()
		s.transcript = append(s.transcript, Message{Role: RoleBot, Kind: KindText, Text: ConnectionError})
		s.mu.Unlock()
		return Turn{}, err
	}

	t.resp = resp
	t.parts = reply.Split(resp.Reply)
	if resp.ConversationID != "" {
		t.conversationID = resp.ConversationID
	}
	payload, source := firstUsable(ctx, t, s.chain())

	var digest *summary.Summary
	if payload != nil {
		if sum, ok := summary.Build(payload); ok {
			digest = &sum
		}
		t.showJSON(prettyJSON(payload))
		s.log.Debug("payload resolved", "source", source, "profession", payload.Profession)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversationID = t.conversationID
	if t.parts.Text != "" {
		s.transcript = append(s.transcript, Message{Role: RoleBot, Kind: KindText, Text: t.parts.Text})
		history = append(history, chatapi.HistoryItem{Role: "assistant", Content: t.parts.Text})
	}
	if t.jsonShown {
		s.transcript = append(s.transcript, Message{Role: RoleBot, Kind: KindJSON, Text: t.jsonText})
	}
	if payload != nil {
		s.payload = payload
		s.cards = cards.Build(payload)
		s.cursor = 0
		if digest != nil {
			s.transcript = append(s.transcript, Message{Role: RoleBot, Kind: KindSummary, Text: digest.Text, Summary: digest})
			history = append(history, chatapi.HistoryItem{Role: "assistant", Content: digest.Text})
		}
	}
	s.history = history
	return Turn{Source: source, Summary: digest}, nil
}

// Next moves the carousel forward, clamped to the last card.
func (s *Session) Next() int {
	return s.move(func(i, n int) int { return min(i+1, n-1) })
}

// Prev moves the carousel back, clamped to the first card.
func (s *Session) Prev() int {
	return s.move(func(i, _ int) int { return max(i-1, 0) })
}

// Random jumps to a random card.
func (s *Session) Random() int {
	return s.move(func(_, n int) int { return rand.IntN(n) })
}

func (s *Session) move(step func(index, count int) int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touched && len(s.cards) > 1 {
		s.cursor = step(s.cursor, len(s.cards))
	}
	return s.cursor
}

// Snapshot copies the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Transcript:     append([]Message(nil), s.transcript...),
		Cards:          append([]cards.Card(nil), s.cards...),
		Cursor:         s.cursor,
		ConversationID: s.conversationID,
		History:        cloneHistory(s.history),
		Payload:        s.payload.Clone(),
		Touched:        s.touched,
	}
}

func cloneHistory(in []chatapi.HistoryItem) []chatapi.HistoryItem {
	return append(make([]chatapi.HistoryItem, 0, len(in)+3), in...)
}

func prettyJSON(p *career.Payload) string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
