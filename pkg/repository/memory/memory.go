package memory

import (
	"context"
	"sync"

	"github.com/artem13815/workvibe/pkg/conversation"
)

// HistoryRepository хранит историю бесед в памяти процесса.
type HistoryRepository struct {
	mu    sync.RWMutex
	lines map[string][]string
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{lines: make(map[string][]string)}
}

func (r *HistoryRepository) Append(_ context.Context, conversationID string, lines ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[conversationID] = append(r.lines[conversationID], lines...)
	return nil
}

func (r *HistoryRepository) List(_ context.Context, conversationID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.lines[conversationID]...), nil
}

// CardsRepository хранит payload'ы карточек в памяти процесса.
type CardsRepository struct {
	mu      sync.RWMutex
	records map[string][]conversation.CardsRecord
}

func NewCardsRepository() *CardsRepository {
	return &CardsRepository{records: make(map[string][]conversation.CardsRecord)}
}

func (r *CardsRepository) Create(_ context.Context, rec conversation.CardsRecord) (conversation.CardsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.Payload = *rec.Payload.Clone()
	r.records[rec.ConversationID] = append(r.records[rec.ConversationID], rec)
	return rec, nil
}

func (r *CardsRepository) Latest(_ context.Context, conversationID string) (conversation.CardsRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.records[conversationID]
	if len(recs) == 0 {
		return conversation.CardsRecord{}, conversation.ErrNotFound
	}
	rec := recs[len(recs)-1]
	rec.Payload = *rec.Payload.Clone()
	return rec, nil
}
