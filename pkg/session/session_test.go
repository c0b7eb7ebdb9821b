package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/workvibe/pkg/cards"
	"github.com/artem13815/workvibe/pkg/chatapi"
	"github.com/artem13815/workvibe/pkg/preset"
)

type fakeBackend struct {
	replies  []chatapi.ChatResponse
	chatErr  error
	lookups  map[string]chatapi.CardsLookup
	files    map[string]string
	requests []chatapi.ChatRequest
	fetched  []string
}

func (f *fakeBackend) Chat(_ context.Context, req chatapi.ChatRequest) (chatapi.ChatResponse, error) {
	f.requests = append(f.requests, req)
	if f.chatErr != nil {
		return chatapi.ChatResponse{}, f.chatErr
	}
	if len(f.replies) == 0 {
		return chatapi.ChatResponse{Reply: "…"}, nil
	}
	resp := f.replies[0]
	f.replies = f.replies[1:]
	return resp, nil
}

func (f *fakeBackend) ConversationCards(_ context.Context, id string) (chatapi.CardsLookup, error) {
	l, ok := f.lookups[id]
	if !ok {
		return chatapi.CardsLookup{}, fmt.Errorf("%w: 404", chatapi.ErrStatus)
	}
	return l, nil
}

func (f *fakeBackend) FetchJSON(_ context.Context, ref string, out any) error {
	f.fetched = append(f.fetched, ref)
	doc, ok := f.files[ref]
	if !ok {
		return fmt.Errorf("%w: 404", chatapi.ErrStatus)
	}
	return json.Unmarshal([]byte(doc), out)
}

func newSession(b *fakeBackend) *Session {
	return New(b, preset.Default(), nil)
}

func kinds(msgs []Message) []Kind {
	out := make([]Kind, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Kind)
	}
	return out
}

func TestNewSessionState(t *testing.T) {
	st := newSession(&fakeBackend{}).Snapshot()
	require.Len(t, st.Transcript, 1)
	assert.Equal(t, Greeting, st.Transcript[0].Text)
	assert.Equal(t, []chatapi.HistoryItem{{Role: "assistant", Content: Greeting}}, st.History)
	assert.Equal(t, []cards.Card{cards.Placeholder()}, st.Cards)
	assert.Empty(t, st.ConversationID)
	assert.Nil(t, st.Payload)
}

func TestSendFallsBackToUserInputPreset(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "Вайб принят: «бухгалтер». Собираем рабочее настроение.", ConversationID: "c9"}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "бухгалтер")
	require.NoError(t, err)
	assert.Equal(t, SourceInput, turn.Source)
	require.NotNil(t, turn.Summary)
	assert.Contains(t, turn.Summary.Text, "Результат: Бухгалтер")

	st := s.Snapshot()
	assert.Len(t, st.Cards, 4)
	assert.Equal(t, 0, st.Cursor)
	assert.Equal(t, "c9", st.ConversationID)
	assert.Equal(t, "Бухгалтер", st.Payload.Profession)
	assert.Equal(t, []Kind{KindText, KindText, KindText, KindJSON, KindSummary}, kinds(st.Transcript))

	require.Len(t, st.History, 4)
	assert.Equal(t, chatapi.HistoryItem{Role: "user", Content: "бухгалтер"}, st.History[1])
	assert.Equal(t, "assistant", st.History[3].Role)
	assert.Equal(t, turn.Summary.Text, st.History[3].Content)

	require.Len(t, b.requests, 1)
	assert.Nil(t, b.requests[0].ConversationID)
	assert.Len(t, b.requests[0].History, 2)
}

func TestSendMarkerJSON(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "ok<<JSON>>{\"profession\":\"Test\"}", ConversationID: "c1"}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "кто угодно")
	require.NoError(t, err)
	assert.Equal(t, SourceMarker, turn.Source)

	st := s.Snapshot()
	assert.Equal(t, "c1", st.ConversationID)
	require.Len(t, st.Cards, 4)
	assert.Equal(t, "Типичный день Test", st.Cards[0].Title)
	assert.Equal(t, "ok", st.Transcript[2].Text)
	assert.Equal(t, KindText, st.Transcript[2].Kind)
}

func TestStructuredDataWinsOverMarker(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{
		Reply:          "text<<JSON>>{\"profession\":\"Marker\"}",
		StructuredData: json.RawMessage(`{"profession":"Structured"}`),
	}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, SourceStructured, turn.Source)
	assert.Equal(t, "Structured", s.Snapshot().Payload.Profession)
}

func TestStructuredNullFallsThrough(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{
		Reply:          "t<<JSON>>{\"profession\":\"Marker\"}",
		StructuredData: json.RawMessage(`null`),
	}}}
	turn, err := newSession(b).Send(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, SourceMarker, turn.Source)
}

func TestMalformedMarkerShowsRawAndFallsThrough(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "Спасибо за ответы! Твоя профессию «бухгалтер».<<JSON>>{broken"}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, SourceHint, turn.Source)

	st := s.Snapshot()
	assert.Equal(t, []Kind{KindText, KindText, KindText, KindJSON, KindSummary}, kinds(st.Transcript))
	assert.Equal(t, "{broken", st.Transcript[3].Text, "raw json is the single json entry of the turn")
	assert.Equal(t, "Бухгалтер", st.Payload.Profession)
}

func TestCardsFileThenLookup(t *testing.T) {
	t.Run("direct file", func(t *testing.T) {
		b := &fakeBackend{
			replies: []chatapi.ChatResponse{{Reply: "готово", ConversationID: "c1", CardsFile: "/cards/c1.json"}},
			files:   map[string]string{"/cards/c1.json": `{"profession":"Из файла"}`},
		}
		turn, err := newSession(b).Send(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, SourceCardsFile, turn.Source)
	})

	t.Run("lookup file", func(t *testing.T) {
		b := &fakeBackend{
			replies: []chatapi.ChatResponse{{Reply: "готово", ConversationID: "c1", CardsFile: "/missing.json"}},
			lookups: map[string]chatapi.CardsLookup{"c1": {File: "/cards/c1.json"}},
			files:   map[string]string{"/cards/c1.json": `{"profession":"Из поиска"}`},
		}
		turn, err := newSession(b).Send(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, SourceLookup, turn.Source)
		assert.Equal(t, []string{"/missing.json", "/cards/c1.json"}, b.fetched)
	})

	t.Run("lookup data", func(t *testing.T) {
		b := &fakeBackend{
			replies: []chatapi.ChatResponse{{Reply: "готово", ConversationID: "c1", CardsFile: "/missing.json"}},
			lookups: map[string]chatapi.CardsLookup{"c1": {Data: json.RawMessage(`{"profession":"Из данных"}`)}},
		}
		s := newSession(b)
		turn, err := s.Send(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, SourceLookup, turn.Source)
		assert.Equal(t, "Из данных", s.Snapshot().Payload.Profession)
	})

	t.Run("no cards file skips lookup", func(t *testing.T) {
		b := &fakeBackend{
			replies: []chatapi.ChatResponse{{Reply: "готово", ConversationID: "c1"}},
			lookups: map[string]chatapi.CardsLookup{"c1": {Data: json.RawMessage(`{"profession":"X"}`)}},
		}
		turn, err := newSession(b).Send(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, SourceNone, turn.Source)
	})
}

func TestUnresolvedKeepsPlaceholder(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "hello"}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "космонавт")
	require.NoError(t, err)
	assert.Equal(t, SourceNone, turn.Source)
	assert.Nil(t, turn.Summary)

	st := s.Snapshot()
	assert.Equal(t, []cards.Card{cards.Placeholder()}, st.Cards)
	assert.Equal(t, []Kind{KindText, KindText, KindText}, kinds(st.Transcript))
}

func TestSameProfessionInputIsNotRedisplayed(t *testing.T) {
	b := &fakeBackend{}
	s := newSession(b)

	first, err := s.Send(context.Background(), "бухгалтер")
	require.NoError(t, err)
	assert.Equal(t, SourceInput, first.Source)

	s.Next()
	second, err := s.Send(context.Background(), "Главный бухгалтер")
	require.NoError(t, err)
	assert.Equal(t, SourceNone, second.Source)

	st := s.Snapshot()
	assert.Equal(t, 1, st.Cursor, "cursor untouched without a new payload")
	summaries := 0
	for _, m := range st.Transcript {
		if m.Kind == KindSummary {
			summaries++
		}
	}
	assert.Equal(t, 1, summaries)

	third, err := s.Send(context.Background(), "frontend developer")
	require.NoError(t, err)
	assert.Equal(t, SourceInput, third.Source)
	assert.Equal(t, 0, s.Snapshot().Cursor)
}

func TestHintAndInputYieldOneSummary(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "Спасибо за ответы! Выбирай профессию фронтенд-разработчик."}}}
	s := newSession(b)

	turn, err := s.Send(context.Background(), "бухгалтер")
	require.NoError(t, err)
	assert.Equal(t, SourceHint, turn.Source)
	assert.Equal(t, "Фронтенд-разработчик", s.Snapshot().Payload.Profession)
	assert.Equal(t, []Kind{KindText, KindText, KindText, KindJSON, KindSummary}, kinds(s.Snapshot().Transcript))
}

func TestBackendFailureRollsBack(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "ok<<JSON>>{\"profession\":\"Test\"}", ConversationID: "c1"}}}
	s := newSession(b)
	_, err := s.Send(context.Background(), "первое")
	require.NoError(t, err)
	before := s.Snapshot()

	b.chatErr = fmt.Errorf("chat: %w: 500", chatapi.ErrStatus)
	_, err = s.Send(context.Background(), "второе")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chatapi.ErrStatus))

	after := s.Snapshot()
	assert.Equal(t, before.ConversationID, after.ConversationID)
	assert.Equal(t, before.History, after.History)
	assert.Equal(t, before.Payload, after.Payload)
	last := after.Transcript[len(after.Transcript)-1]
	assert.Equal(t, ConnectionError, last.Text)
	assert.Equal(t, "второе", after.Transcript[len(after.Transcript)-2].Text)

	require.Len(t, b.requests, 2)
	require.NotNil(t, b.requests[1].ConversationID)
	assert.Equal(t, "c1", *b.requests[1].ConversationID)
}

func TestSendEmpty(t *testing.T) {
	b := &fakeBackend{}
	s := newSession(b)
	_, err := s.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, b.requests)
	assert.Len(t, s.Snapshot().Transcript, 1)
}

func TestCarousel(t *testing.T) {
	s := newSession(&fakeBackend{})
	assert.Equal(t, 0, s.Next(), "inert before any input")

	_, err := s.Send(context.Background(), "шахтёр-супергерой")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Next())
	assert.Equal(t, 2, s.Next())
	assert.Equal(t, 3, s.Next())
	assert.Equal(t, 3, s.Next(), "clamped at the end")
	assert.Equal(t, 2, s.Prev())
	for i := 0; i < 5; i++ {
		s.Prev()
	}
	assert.Equal(t, 0, s.Prev(), "clamped at the start")

	for i := 0; i < 20; i++ {
		idx := s.Random()
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
}

func TestCarouselInertOnPlaceholder(t *testing.T) {
	s := newSession(&fakeBackend{})
	_, err := s.Send(context.Background(), "космонавт")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Next())
	assert.Equal(t, 0, s.Random())
}

func TestReset(t *testing.T) {
	b := &fakeBackend{replies: []chatapi.ChatResponse{{Reply: "ok<<JSON>>{\"profession\":\"Test\"}", ConversationID: "c1"}}}
	s := newSession(b)
	_, err := s.Send(context.Background(), "x")
	require.NoError(t, err)
	s.Next()

	s.Reset()
	st := s.Snapshot()
	assert.Len(t, st.Transcript, 1)
	assert.Len(t, st.History, 1)
	assert.Empty(t, st.ConversationID)
	assert.Nil(t, st.Payload)
	assert.Equal(t, 0, st.Cursor)
	assert.Len(t, st.Cards, 1)
	assert.False(t, st.Touched)
}
