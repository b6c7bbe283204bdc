package interfaces

//go:generate mockgen -source=subscription_repository_interface.go -destination=mocks/subscription_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"master_booking/internal/domain/entities"
)

// ISubscriptionRepository persists Master Club memberships.
// Lookups return a zero Subscription when nothing matches.
type ISubscriptionRepository interface {
	// FindByEmail returns the newest subscription for email in one of statuses.
	FindByEmail(ctx context.Context, email string, statuses []entities.SubscriptionStatus) (entities.Subscription, error)
	FindBySubscriptionID(ctx context.Context, email, stripeSubscriptionID string) (entities.Subscription, error)
	// FindCustomerID returns the provider customer already used by email, if any.
	FindCustomerID(ctx context.Context, email string) (string, error)
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	UpdateStatus(ctx context.Context, stripeSubscriptionID string, status entities.SubscriptionStatus, cancelAtPeriodEnd bool, periodEnd *time.Time) error
}
