package session

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/reply"
)

// turn — данные одного ответа бэкенда, доступные всем шагам цепочки.
type turn struct {
	input          string
	resp           chatapi.ChatResponse
	parts          reply.Parts
	conversationID string
	// shownProfession — профессия, которая была на экране до этого хода.
	shownProfession string

	jsonText  string
	jsonShown bool
}

// showJSON records the single JSON transcript entry allowed per turn.
func (t *turn) showJSON(text string) {
	if t.jsonShown {
		return
	}
	t.jsonShown = true
	t.jsonText = text
}

type resolver struct {
	source  Source
	resolve func(ctx context.Context, t *turn) *career.Payload
}

func (s *Session) chain() []resolver {
	return []resolver{
		{SourceStructured, s.fromStructured},
		{SourceMarker, s.fromMarker},
		{SourceCardsFile, s.fromCardsFile},
		{SourceLookup, s.fromLookup},
		{SourceHint, s.fromHint},
		{SourceInput, s.fromInput},
	}
}

// firstUsable runs resolvers in order and stops at the first usable payload.
func firstUsable(ctx context.Context, t *turn, chain []resolver) (*career.Payload, Source) {
	for _, r := range chain {
		if p := r.resolve(ctx, t); p.Usable() {
			return p, r.source
		}
	}
	return nil, SourceNone
}

func (s *Session) fromStructured(_ context.Context, t *turn) *career.Payload {
	p, err := decodeRaw(t.resp.StructuredData)
	if err != nil {
		s.log.Warn("structured_data rejected", "error", err)
		return nil
	}
	return p
}

func (s *Session) fromMarker(_ context.Context, t *turn) *career.Payload {
	if !t.parts.HasJSON {
		return nil
	}
	p, err := career.DecodePayload([]byte(t.parts.JSON))
	if err != nil || !p.Usable() {
		s.log.Warn("reply json unusable", "error", err)
		t.showJSON(t.parts.JSON)
		return nil
	}
	return p
}

func (s *Session) fromCardsFile(ctx context.Context, t *turn) *career.Payload {
	if t.resp.CardsFile == "" {
		return nil
	}
	return s.fetchPayload(ctx, t.resp.CardsFile)
}

func (s *Session) fromLookup(ctx context.Context, t *turn) *career.Payload {
	if t.resp.CardsFile == "" || t.conversationID == "" {
		return nil
	}
	lookup, err := s.backend.ConversationCards(ctx, t.conversationID)
	if err != nil {
		s.log.Warn("conversation cards lookup failed", "conversation_id", t.conversationID, "error", err)
		return nil
	}
	if lookup.File != "" {
		if p := s.fetchPayload(ctx, lookup.File); p.Usable() {
			return p
		}
	}
	p, err := decodeRaw(lookup.Data)
	if err != nil {
		s.log.Warn("conversation cards data rejected", "conversation_id", t.conversationID, "error", err)
		return nil
	}
	return p
}

func (s *Session) fromHint(_ context.Context, t *turn) *career.Payload {
	name, ok := reply.ProfessionHint(t.parts.Text)
	if !ok {
		return nil
	}
	p, _ := s.catalog.Resolve(name)
	return p
}

func (s *Session) fromInput(_ context.Context, t *turn) *career.Payload {
	p, ok := s.catalog.Resolve(t.input)
	if !ok || p.Profession == t.shownProfession {
		return nil
	}
	return p
}

func (s *Session) fetchPayload(ctx context.Context, ref string) *career.Payload {
	var raw json.RawMessage
	if err := s.backend.FetchJSON(ctx, ref, &raw); err != nil {
		s.log.Warn("cards file fetch failed", "ref", ref, "error", err)
		return nil
	}
	p, err := decodeRaw(raw)
	if err != nil {
		s.log.Warn("cards file rejected", "ref", ref, "error", err)
		return nil
	}
	return p
}

// decodeRaw treats an absent or null document as "no data".
func decodeRaw(raw json.RawMessage) (*career.Payload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	return career.DecodePayload(raw)
}
