package repository

import (
	"context"
	"fmt"
	"time"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

const subscriptionColumns = `id::text, email, name, stripe_customer_id, stripe_subscription_id, status,
	current_period_start, current_period_end, cancel_at_period_end, created_at, updated_at`

type subscriptionRow struct {
	ID                   string
	Email                string
	Name                 *string
	StripeCustomerID     string
	StripeSubscriptionID string
	Status               string
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
	CancelAtPeriodEnd    bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (r *subscriptionRow) targets() []any {
	return []any{
		&r.ID, &r.Email, &r.Name, &r.StripeCustomerID, &r.StripeSubscriptionID, &r.Status,
		&r.CurrentPeriodStart, &r.CurrentPeriodEnd, &r.CancelAtPeriodEnd, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r subscriptionRow) toEntity() entities.Subscription {
	return entities.Subscription{
		ID:                   r.ID,
		Email:                r.Email,
		Name:                 deref(r.Name),
		StripeCustomerID:     r.StripeCustomerID,
		StripeSubscriptionID: r.StripeSubscriptionID,
		Status:               entities.SubscriptionStatus(r.Status),
		CurrentPeriodStart:   r.CurrentPeriodStart,
		CurrentPeriodEnd:     r.CurrentPeriodEnd,
		CancelAtPeriodEnd:    r.CancelAtPeriodEnd,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// SubscriptionPostgresRepository persists Master Club memberships.
type SubscriptionPostgresRepository struct {
	db DBTX
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionPostgresRepository)(nil)

func NewSubscriptionPostgresRepository(db DBTX) *SubscriptionPostgresRepository {
	return &SubscriptionPostgresRepository{db: db}
}

func (r *SubscriptionPostgresRepository) FindByEmail(ctx context.Context, email string, statuses []entities.SubscriptionStatus) (entities.Subscription, error) {
	return r.findOne(ctx, `SELECT `+subscriptionColumns+` FROM master_club_subscriptions_website
		WHERE email = $1 AND status = ANY($2::text[])
		ORDER BY created_at DESC LIMIT 1`, email, textArray(statuses))
}

func (r *SubscriptionPostgresRepository) FindBySubscriptionID(ctx context.Context, email, stripeSubscriptionID string) (entities.Subscription, error) {
	return r.findOne(ctx, `SELECT `+subscriptionColumns+` FROM master_club_subscriptions_website
		WHERE email = $1 AND stripe_subscription_id = $2`, email, stripeSubscriptionID)
}

func (r *SubscriptionPostgresRepository) findOne(ctx context.Context, query string, args ...any) (entities.Subscription, error) {
	var row subscriptionRow
	err := r.db.QueryRow(ctx, query, args...).Scan(row.targets()...)
	if notFound(err) {
		return entities.Subscription{}, nil
	}
	if err != nil {
		return entities.Subscription{}, fmt.Errorf("find subscription: %w", err)
	}
	return row.toEntity(), nil
}

func (r *SubscriptionPostgresRepository) FindCustomerID(ctx context.Context, email string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT stripe_customer_id FROM master_club_subscriptions_website
		WHERE email = $1 AND stripe_customer_id <> ''
		ORDER BY created_at DESC LIMIT 1`, email).Scan(&id)
	if notFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find customer id: %w", err)
	}
	return id, nil
}

func (r *SubscriptionPostgresRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	var row subscriptionRow
	err := r.db.QueryRow(ctx, `INSERT INTO master_club_subscriptions_website
		(email, name, stripe_customer_id, stripe_subscription_id, status,
		 current_period_start, current_period_end, cancel_at_period_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+subscriptionColumns,
		s.Email, nullString(s.Name), s.StripeCustomerID, s.StripeSubscriptionID, string(s.Status),
		s.CurrentPeriodStart, s.CurrentPeriodEnd, s.CancelAtPeriodEnd,
	).Scan(row.targets()...)
	if err != nil {
		return entities.Subscription{}, fmt.Errorf("insert subscription %s: %w", s.StripeSubscriptionID, err)
	}
	return row.toEntity(), nil
}

func (r *SubscriptionPostgresRepository) UpdateStatus(ctx context.Context, stripeSubscriptionID string, status entities.SubscriptionStatus, cancelAtPeriodEnd bool, periodEnd *time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE master_club_subscriptions_website SET
		status = $2,
		cancel_at_period_end = $3,
		current_period_end = COALESCE($4, current_period_end),
		updated_at = now()
		WHERE stripe_subscription_id = $1`,
		stripeSubscriptionID, string(status), cancelAtPeriodEnd, periodEnd,
	)
	if err != nil {
		return fmt.Errorf("update subscription %s: %w", stripeSubscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update subscription %s: no row", stripeSubscriptionID)
	}
	return nil
}
