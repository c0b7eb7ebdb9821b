package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/workvibe/pkg/conversation"
)

// CardsRepository сохраняет payload'ы карточек бесед.
type CardsRepository struct {
	pool *pgxpool.Pool
}

func NewCardsRepository(pool *pgxpool.Pool) (*CardsRepository, error) {
	r := &CardsRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CardsRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS conversation_cards (
	id UUID PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS conversation_cards_conversation_idx
	ON conversation_cards (conversation_id, created_at DESC);
`)
	return err
}

func (r *CardsRepository) Create(ctx context.Context, rec conversation.CardsRecord) (conversation.CardsRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	payloadJSON, err := json.Marshal(rec.Payload)
	if err != nil {
		return conversation.CardsRecord{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO conversation_cards (id, conversation_id, payload, created_at)
VALUES ($1, $2, $3, $4)
`, rec.ID, rec.ConversationID, payloadJSON, rec.CreatedAt)
	if err != nil {
		return conversation.CardsRecord{}, err
	}
	return rec, nil
}

func (r *CardsRepository) Latest(ctx context.Context, conversationID string) (conversation.CardsRecord, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, conversation_id, payload, created_at
FROM conversation_cards
WHERE conversation_id = $1
ORDER BY created_at DESC
LIMIT 1
`, conversationID)
	var rec conversation.CardsRecord
	var payloadBytes []byte
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.ConversationID, &payloadBytes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return conversation.CardsRecord{}, conversation.ErrNotFound
		}
		return conversation.CardsRecord{}, err
	}
	if err := json.Unmarshal(payloadBytes, &rec.Payload); err != nil {
		return conversation.CardsRecord{}, err
	}
	rec.CreatedAt = created.UTC()
	return rec, nil
}
