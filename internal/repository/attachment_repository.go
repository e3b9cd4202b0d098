package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-chat-service/internal/domain"
)

// AttachmentRepository persists message attachments. Insert takes a Querier
// so it joins the same transaction as the owning message.
type AttachmentRepository interface {
	Insert(ctx context.Context, q Querier, att *domain.Attachment) error
	ListByMessage(ctx context.Context, messageID int64) ([]domain.Attachment, error)
}

type attachmentRepository struct {
	pool *pgxpool.Pool
}

// NewAttachmentRepository instantiates repository.
func NewAttachmentRepository(pool *pgxpool.Pool) AttachmentRepository {
	return &attachmentRepository{pool: pool}
}

func (r *attachmentRepository) Insert(ctx context.Context, q Querier, att *domain.Attachment) error {
	const query = `
        INSERT INTO attachments (id, message_id, file_name, mime_type, file_size, data, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := q.Exec(ctx, query,
		att.ID,
		att.MessageID,
		att.FileName,
		att.MimeType,
		att.FileSize,
		att.Data,
		att.CreatedAt,
	)
	return err
}

func (r *attachmentRepository) ListByMessage(ctx context.Context, messageID int64) ([]domain.Attachment, error) {
	const query = `
        SELECT id, message_id, file_name, mime_type, file_size, data, created_at
        FROM attachments
        WHERE message_id = $1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var att domain.Attachment
		if err := rows.Scan(
			&att.ID,
			&att.MessageID,
			&att.FileName,
			&att.MimeType,
			&att.FileSize,
			&att.Data,
			&att.CreatedAt,
		); err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, rows.Err()
}
