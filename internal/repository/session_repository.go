package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// SessionRepository encapsulates chat session persistence. Every read and
// mutation is scoped by user_id so one user can never touch another's
// sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ChatSession) error
	GetByID(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatSession, error)
	Search(ctx context.Context, userID, query string, limit int) ([]domain.ChatSession, error)
	ListBookmarked(ctx context.Context, userID string) ([]domain.ChatSession, error)
	ToggleBookmark(ctx context.Context, sessionID, userID string) (bool, error)
	Rename(ctx context.Context, sessionID, userID, title string) error
	Delete(ctx context.Context, sessionID, userID string) error
	TouchPreview(ctx context.Context, q Querier, sessionID, preview string) error
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository instantiates repository.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

const sessionColumns = `
        s.id, s.user_id, s.title, s.created_at, s.updated_at,
        COALESCE(s.is_bookmarked, FALSE), s.last_message_preview,
        (SELECT COUNT(*) FROM chat_messages m WHERE m.session_id = s.id) AS message_count`

func (r *sessionRepository) Create(ctx context.Context, s *domain.ChatSession) error {
	const query = `
        INSERT INTO chat_sessions (id, user_id, title, created_at, updated_at, is_bookmarked)
        VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.pool.Exec(ctx, query, s.ID, s.UserID, s.Title, s.CreatedAt, s.UpdatedAt, s.IsBookmarked)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, sessionID, userID string) (*domain.ChatSession, error) {
	const query = `
        SELECT` + sessionColumns + `
        FROM chat_sessions s WHERE s.id = $1 AND s.user_id = $2`

	var s domain.ChatSession
	if err := r.pool.QueryRow(ctx, query, sessionID, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.Title,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.IsBookmarked,
		&s.LastMessagePreview,
		&s.MessageCount,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.ChatSession, error) {
	const query = `
        SELECT` + sessionColumns + `
        FROM chat_sessions s
        WHERE s.user_id = $1
        ORDER BY s.updated_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *sessionRepository) Search(ctx context.Context, userID, query string, limit int) ([]domain.ChatSession, error) {
	// Matches session titles, previews and message bodies; DISTINCT keeps a
	// session with several matching messages to a single row.
	const sql = `
        SELECT DISTINCT` + sessionColumns + `
        FROM chat_sessions s
        LEFT JOIN chat_messages m ON m.session_id = s.id
        WHERE s.user_id = $1
          AND (s.title ILIKE $2 OR s.last_message_preview ILIKE $2 OR m.text ILIKE $2)
        ORDER BY s.updated_at DESC
        LIMIT $3`

	rows, err := r.pool.Query(ctx, sql, userID, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *sessionRepository) ListBookmarked(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	const query = `
        SELECT` + sessionColumns + `
        FROM chat_sessions s
        WHERE s.user_id = $1 AND s.is_bookmarked = TRUE
        ORDER BY s.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *sessionRepository) ToggleBookmark(ctx context.Context, sessionID, userID string) (bool, error) {
	const query = `
        UPDATE chat_sessions
        SET is_bookmarked = NOT COALESCE(is_bookmarked, FALSE)
        WHERE id = $1 AND user_id = $2
        RETURNING is_bookmarked`

	var bookmarked bool
	if err := r.pool.QueryRow(ctx, query, sessionID, userID).Scan(&bookmarked); err != nil {
		return false, err
	}
	return bookmarked, nil
}

func (r *sessionRepository) Rename(ctx context.Context, sessionID, userID, title string) error {
	const query = `
        UPDATE chat_sessions
        SET title = $1, updated_at = NOW()
        WHERE id = $2 AND user_id = $3`

	cmd, err := r.pool.Exec(ctx, query, title, sessionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID, userID string) error {
	// Messages and their attachments go with the session via ON DELETE CASCADE.
	const query = `DELETE FROM chat_sessions WHERE id = $1 AND user_id = $2`

	cmd, err := r.pool.Exec(ctx, query, sessionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *sessionRepository) TouchPreview(ctx context.Context, q Querier, sessionID, preview string) error {
	const query = `
        UPDATE chat_sessions
        SET last_message_preview = $1, updated_at = NOW()
        WHERE id = $2`
	_, err := q.Exec(ctx, query, preview, sessionID)
	return err
}

func scanSessions(rows pgx.Rows) ([]domain.ChatSession, error) {
	var sessions []domain.ChatSession
	for rows.Next() {
		var s domain.ChatSession
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Title,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.IsBookmarked,
			&s.LastMessagePreview,
			&s.MessageCount,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
