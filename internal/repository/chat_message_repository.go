package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-chat-service/internal/domain"
	"github.com/spec-kit/support-chat-service/internal/persistence"
)

// ChatMessageRepository persists chat turns. Insert runs against a Querier
// so the caller can compose it with attachment writes and the session
// preview update inside one transaction.
type ChatMessageRepository interface {
	Insert(ctx context.Context, q Querier, msg *domain.ChatMessage) (int64, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}

type chatMessageRepository struct {
	pool   *pgxpool.Pool
	schema persistence.Schema
}

// NewChatMessageRepository instantiates repository. The schema snapshot
// decides whether sentiment columns are read and written.
func NewChatMessageRepository(pool *pgxpool.Pool, schema persistence.Schema) ChatMessageRepository {
	return &chatMessageRepository{pool: pool, schema: schema}
}

func (r *chatMessageRepository) Insert(ctx context.Context, q Querier, msg *domain.ChatMessage) (int64, error) {
	var id int64

	if r.schema.HasSentimentColumns {
		const query = `
            INSERT INTO chat_messages
                (session_id, sender, text, timestamp,
                 sentiment_score, sentiment_comparative, sentiment_label, sentiment_magnitude)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
            RETURNING id`

		var score, comparative *float64
		var label, magnitude *string
		if s := msg.Sentiment; s != nil {
			score = &s.Score
			comparative = &s.Comparative
			l, m := string(s.Label), string(s.Magnitude)
			label, magnitude = &l, &m
		}
		if err := q.QueryRow(ctx, query,
			msg.SessionID, msg.Sender, msg.Text, msg.Timestamp,
			score, comparative, label, magnitude,
		).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	const query = `
        INSERT INTO chat_messages (session_id, sender, text, timestamp)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	if err := q.QueryRow(ctx, query, msg.SessionID, msg.Sender, msg.Text, msg.Timestamp).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ListBySession returns the transcript oldest first. Ordering by id keeps
// same-timestamp turns in insertion order.
func (r *chatMessageRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	if r.schema.HasSentimentColumns {
		return r.listWithSentiment(ctx, sessionID)
	}
	return r.listPlain(ctx, sessionID)
}

func (r *chatMessageRepository) listWithSentiment(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	const query = `
        SELECT id, session_id, sender, text, timestamp,
               sentiment_score, sentiment_comparative, sentiment_label, sentiment_magnitude
        FROM chat_messages
        WHERE session_id = $1
        ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		var score, comparative *float64
		var label, magnitude *string
		if err := rows.Scan(
			&msg.ID,
			&msg.SessionID,
			&msg.Sender,
			&msg.Text,
			&msg.Timestamp,
			&score,
			&comparative,
			&label,
			&magnitude,
		); err != nil {
			return nil, err
		}
		if score != nil && comparative != nil && label != nil && magnitude != nil {
			msg.Sentiment = &domain.Sentiment{
				Score:       *score,
				Comparative: *comparative,
				Label:       domain.SentimentLabel(*label),
				Magnitude:   domain.SentimentMagnitude(*magnitude),
			}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *chatMessageRepository) listPlain(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	const query = `
        SELECT id, session_id, sender, text, timestamp
        FROM chat_messages
        WHERE session_id = $1
        ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Text, &msg.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
