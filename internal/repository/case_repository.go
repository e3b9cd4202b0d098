package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// CaseSummary is the flattened per-case row used by the bulk CSV export.
type CaseSummary struct {
	ID           string
	CreatedAt    time.Time
	Status       domain.CaseStatus
	Summary      string
	ContactEmail *string
	ContactPhone *string
	EscalatedAt  *time.Time
	MessageCount int
}

// CaseRepository encapsulates case persistence.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	ListSummaries(ctx context.Context, status *domain.CaseStatus) ([]CaseSummary, error)
	UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) (*domain.Case, error)
}

type caseRepository struct {
	pool *pgxpool.Pool
}

// NewCaseRepository instantiates repository.
func NewCaseRepository(pool *pgxpool.Pool) CaseRepository {
	return &caseRepository{pool: pool}
}

func (r *caseRepository) Create(ctx context.Context, c *domain.Case) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const caseQuery = `
        INSERT INTO cases (id, created_at, status, summary, contact_email, contact_phone, escalated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`
	if _, err := tx.Exec(ctx, caseQuery,
		c.ID,
		c.CreatedAt,
		c.Status,
		c.Summary,
		c.ContactEmail,
		c.ContactPhone,
		c.EscalatedAt,
	); err != nil {
		return err
	}

	const messageQuery = `
        INSERT INTO case_messages (case_id, sender, text, timestamp)
        VALUES ($1,$2,$3,$4)`
	for _, msg := range c.Messages {
		if _, err := tx.Exec(ctx, messageQuery, c.ID, msg.Sender, msg.Text, msg.Timestamp); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *caseRepository) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	const query = `
        SELECT id, created_at, status, summary, contact_email, contact_phone, escalated_at
        FROM cases WHERE id=$1`

	var c domain.Case
	var summary *string
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.CreatedAt,
		&c.Status,
		&summary,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.EscalatedAt,
	); err != nil {
		return nil, err
	}
	if summary != nil {
		c.Summary = *summary
	}

	messages, err := r.messagesForCase(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Messages = messages
	return &c, nil
}

func (r *caseRepository) List(ctx context.Context) ([]domain.Case, error) {
	const query = `
        SELECT id, created_at, status, summary, contact_email, contact_phone, escalated_at
        FROM cases ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		var c domain.Case
		var summary *string
		if err := rows.Scan(
			&c.ID,
			&c.CreatedAt,
			&c.Status,
			&summary,
			&c.ContactEmail,
			&c.ContactPhone,
			&c.EscalatedAt,
		); err != nil {
			return nil, err
		}
		if summary != nil {
			c.Summary = *summary
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range cases {
		messages, err := r.messagesForCase(ctx, cases[i].ID)
		if err != nil {
			return nil, err
		}
		cases[i].Messages = messages
	}
	return cases, nil
}

func (r *caseRepository) ListSummaries(ctx context.Context, status *domain.CaseStatus) ([]CaseSummary, error) {
	const base = `
        SELECT c.id, c.created_at, c.status, c.summary, c.contact_email, c.contact_phone, c.escalated_at,
               COUNT(m.id) AS message_count
        FROM cases c
        LEFT JOIN case_messages m ON m.case_id = c.id`
	const tail = `
        GROUP BY c.id
        ORDER BY c.created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE c.status = $1`+tail, *status)
	} else {
		rows, err = r.pool.Query(ctx, base+tail)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []CaseSummary
	for rows.Next() {
		var s CaseSummary
		var summary *string
		if err := rows.Scan(
			&s.ID,
			&s.CreatedAt,
			&s.Status,
			&summary,
			&s.ContactEmail,
			&s.ContactPhone,
			&s.EscalatedAt,
			&s.MessageCount,
		); err != nil {
			return nil, err
		}
		if summary != nil {
			s.Summary = *summary
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *caseRepository) UpdateStatus(ctx context.Context, id string, status domain.CaseStatus) (*domain.Case, error) {
	// escalated_at is written once, on the first transition into
	// escalated, and never touched again.
	const query = `
        UPDATE cases
        SET status = $1,
            escalated_at = CASE
                WHEN $1 = 'escalated' AND escalated_at IS NULL THEN NOW()
                ELSE escalated_at
            END,
            updated_at = NOW()
        WHERE id = $2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *caseRepository) messagesForCase(ctx context.Context, caseID string) ([]domain.CaseMessage, error) {
	const query = `
        SELECT sender, text, timestamp
        FROM case_messages WHERE case_id=$1 ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.CaseMessage
	for rows.Next() {
		var msg domain.CaseMessage
		if err := rows.Scan(&msg.Sender, &msg.Text, &msg.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
