package repository

import (
	"context"
	"fmt"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

type EmailLogPostgresRepository struct {
	db DBTX
}

var _ interfaces.IEmailLogRepository = (*EmailLogPostgresRepository)(nil)

func NewEmailLogPostgresRepository(db DBTX) *EmailLogPostgresRepository {
	return &EmailLogPostgresRepository{db: db}
}

func (r *EmailLogPostgresRepository) Create(ctx context.Context, l entities.EmailLog) error {
	_, err := r.db.Exec(ctx, `INSERT INTO email_logs
		(template, recipient_email, subject, status, external_id, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		l.Template, l.RecipientEmail, l.Subject, l.Status, nullString(l.ExternalID), l.SentAt,
	)
	if err != nil {
		return fmt.Errorf("insert email log: %w", err)
	}
	return nil
}
