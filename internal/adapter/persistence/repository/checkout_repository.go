package repository

import (
	"context"
	"fmt"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const checkoutColumns = `id::text, email, name, phone, payment_intent_id, amount_pence,
	service_name, booking_data, status, email_1h_sent, email_24h_sent, abandoned_at, recovered_at`

type checkoutRow struct {
	ID              string
	Email           string
	Name            *string
	Phone           *string
	PaymentIntentID *string
	AmountPence     int64
	ServiceName     *string
	BookingData     map[string]any
	Status          string
	Email1hSent     bool
	Email24hSent    bool
	AbandonedAt     time.Time
	RecoveredAt     *time.Time
}

func (r *checkoutRow) targets() []any {
	return []any{
		&r.ID, &r.Email, &r.Name, &r.Phone, &r.PaymentIntentID, &r.AmountPence,
		&r.ServiceName, &r.BookingData, &r.Status, &r.Email1hSent, &r.Email24hSent,
		&r.AbandonedAt, &r.RecoveredAt,
	}
}

func (r checkoutRow) toEntity() entities.AbandonedCheckout {
	return entities.AbandonedCheckout{
		ID:              r.ID,
		Email:           r.Email,
		Name:            deref(r.Name),
		Phone:           deref(r.Phone),
		PaymentIntentID: deref(r.PaymentIntentID),
		AmountPence:     r.AmountPence,
		ServiceName:     deref(r.ServiceName),
		BookingData:     r.BookingData,
		Status:          entities.CheckoutStatus(r.Status),
		Email1hSent:     r.Email1hSent,
		Email24hSent:    r.Email24hSent,
		AbandonedAt:     r.AbandonedAt,
		RecoveredAt:     r.RecoveredAt,
	}
}

// recoveryWindows maps a stage to its sent flag and the age range it covers.
// A zero newest bound means no upper age limit.
var recoveryWindows = map[entities.RecoveryStage]struct {
	flag   string
	oldest time.Duration
	newest time.Duration
}{
	entities.RecoveryStage1h:  {flag: "email_1h_sent", oldest: time.Hour, newest: 24 * time.Hour},
	entities.RecoveryStage24h: {flag: "email_24h_sent", oldest: 24 * time.Hour},
}

// CheckoutPostgresRepository persists abandoned checkouts.
type CheckoutPostgresRepository struct {
	db DBTX
}

var _ interfaces.ICheckoutRepository = (*CheckoutPostgresRepository)(nil)

func NewCheckoutPostgresRepository(db DBTX) *CheckoutPostgresRepository {
	return &CheckoutPostgresRepository{db: db}
}

func (r *CheckoutPostgresRepository) FindPending(ctx context.Context, email, paymentIntentID string) (entities.AbandonedCheckout, error) {
	var row checkoutRow
	err := r.db.QueryRow(ctx, `SELECT `+checkoutColumns+` FROM abandoned_checkouts
		WHERE email = $1 AND payment_intent_id IS NOT DISTINCT FROM $2 AND status = 'pending'
		ORDER BY abandoned_at DESC LIMIT 1`,
		email, nullString(paymentIntentID),
	).Scan(row.targets()...)
	if notFound(err) {
		return entities.AbandonedCheckout{}, nil
	}
	if err != nil {
		return entities.AbandonedCheckout{}, fmt.Errorf("find pending checkout: %w", err)
	}
	return row.toEntity(), nil
}

func (r *CheckoutPostgresRepository) Create(ctx context.Context, c entities.AbandonedCheckout) (entities.AbandonedCheckout, error) {
	data := c.BookingData
	if data == nil {
		data = map[string]any{}
	}
	status := c.Status
	if status == "" {
		status = entities.CheckoutStatusPending
	}

	var row checkoutRow
	err := r.db.QueryRow(ctx, `INSERT INTO abandoned_checkouts
		(email, name, phone, payment_intent_id, amount_pence, service_name, booking_data, status, abandoned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()))
		RETURNING `+checkoutColumns,
		c.Email, nullString(c.Name), nullString(c.Phone), nullString(c.PaymentIntentID),
		c.AmountPence, nullString(c.ServiceName), data, string(status), nullTime(c.AbandonedAt),
	).Scan(row.targets()...)
	if err != nil {
		return entities.AbandonedCheckout{}, fmt.Errorf("insert checkout: %w", err)
	}
	return row.toEntity(), nil
}

func (r *CheckoutPostgresRepository) ListDueForRecovery(ctx context.Context, stage entities.RecoveryStage, now time.Time, limit int) ([]entities.AbandonedCheckout, error) {
	w, ok := recoveryWindows[stage]
	if !ok {
		return nil, fmt.Errorf("unknown recovery stage %q", stage)
	}

	var newest *time.Time
	if w.newest > 0 {
		t := now.Add(-w.newest)
		newest = &t
	}

	rows, err := r.db.Query(ctx, `SELECT `+checkoutColumns+` FROM abandoned_checkouts
		WHERE status = 'pending' AND `+w.flag+` = false
		  AND abandoned_at <= $1 AND ($2::timestamptz IS NULL OR abandoned_at > $2)
		ORDER BY abandoned_at ASC LIMIT $3`,
		now.Add(-w.oldest), newest, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list checkouts due for %s: %w", stage, err)
	}
	defer rows.Close()

	var out []entities.AbandonedCheckout
	for rows.Next() {
		var row checkoutRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan checkout: %w", err)
		}
		out = append(out, row.toEntity())
	}
	return out, rows.Err()
}

func (r *CheckoutPostgresRepository) MarkRecoverySent(ctx context.Context, id string, stage entities.RecoveryStage) error {
	w, ok := recoveryWindows[stage]
	if !ok {
		return fmt.Errorf("unknown recovery stage %q", stage)
	}
	if _, err := r.db.Exec(ctx, `UPDATE abandoned_checkouts SET `+w.flag+` = true WHERE id = $1::text::uuid`, id); err != nil {
		return fmt.Errorf("mark %s reminder for %s: %w", stage, id, err)
	}
	return nil
}

func (r *CheckoutPostgresRepository) MarkRecovered(ctx context.Context, paymentIntentID string, at time.Time) error {
	if paymentIntentID == "" {
		return nil
	}
	if _, err := r.db.Exec(ctx, `UPDATE abandoned_checkouts SET status = 'recovered', recovered_at = $2
		WHERE payment_intent_id = $1 AND status = 'pending'`, paymentIntentID, at.UTC()); err != nil {
		return fmt.Errorf("mark checkout recovered for %s: %w", paymentIntentID, err)
	}
	return nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
