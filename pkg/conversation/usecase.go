package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/logger"
)

var ErrNoProfession = errors.New("payload has no profession")

// UseCase — сценарии заглушки чат-бэкенда.
type UseCase interface {
	// Reply echoes the message after a fixed delay and records both lines in history.
	Reply(ctx context.Context, in ChatInput) (ChatOutput, error)
	History(ctx context.Context, conversationID string) ([]string, error)
	SaveCards(ctx context.Context, conversationID string, p career.Payload) (CardsLookup, error)
	// Cards returns the latest stored payload, falling back to the export file.
	Cards(ctx context.Context, conversationID string) (CardsLookup, error)
}

type Options struct {
	Delay        time.Duration
	PreviewRunes int
}

type service struct {
	history  HistoryRepository
	cards    CardsRepository
	exporter *FileExporter
	opts     Options
	log      *logger.Logger
	now      func() time.Time
}

func NewService(history HistoryRepository, cards CardsRepository, exporter *FileExporter, opts Options, log *logger.Logger) UseCase {
	if opts.PreviewRunes <= 0 {
		opts.PreviewRunes = 140
	}
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		history:  history,
		cards:    cards,
		exporter: exporter,
		opts:     opts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Reply(ctx context.Context, in ChatInput) (ChatOutput, error) {
	id := in.ConversationID
	if id == "" {
		id = uuid.NewString()
	}
	if err := s.history.Append(ctx, id, "user: "+in.Message); err != nil {
		return ChatOutput{}, fmt.Errorf("append history: %w", err)
	}

	text := fmt.Sprintf("Вайб принят: «%s». Собираем рабочее настроение.", preview(in.Message, s.opts.PreviewRunes))
	if err := sleep(ctx, s.opts.Delay); err != nil {
		return ChatOutput{}, err
	}

	if err := s.history.Append(ctx, id, "assistant: "+text); err != nil {
		return ChatOutput{}, fmt.Errorf("append history: %w", err)
	}
	return ChatOutput{Reply: text, ConversationID: id}, nil
}

func (s *service) History(ctx context.Context, conversationID string) ([]string, error) {
	return s.history.List(ctx, conversationID)
}

func (s *service) SaveCards(ctx context.Context, conversationID string, p career.Payload) (CardsLookup, error) {
	if !p.Usable() {
		return CardsLookup{}, ErrNoProfession
	}
	rec, err := s.cards.Create(ctx, CardsRecord{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Payload:        p,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return CardsLookup{}, fmt.Errorf("store cards: %w", err)
	}
	out := CardsLookup{Data: &rec.Payload}
	if s.exporter != nil {
		file, err := s.exporter.Write(conversationID, p)
		if err != nil {
			s.log.Warn("cards export failed", "conversation_id", conversationID, "error", err)
		} else {
			out.File = file
		}
	}
	return out, nil
}

func (s *service) Cards(ctx context.Context, conversationID string) (CardsLookup, error) {
	rec, err := s.cards.Latest(ctx, conversationID)
	if err == nil {
		out := CardsLookup{Data: &rec.Payload}
		if s.exporter != nil {
			out.File = s.exporter.URL(conversationID)
		}
		return out, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return CardsLookup{}, err
	}
	if s.exporter == nil {
		return CardsLookup{}, ErrNotFound
	}
	p, err := s.exporter.Read(conversationID)
	if err != nil {
		return CardsLookup{}, err
	}
	return CardsLookup{File: s.exporter.URL(conversationID), Data: p}, nil
}

// preview cuts s to at most n runes.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
