package entities

import "time"

// SubscriptionStatus mirrors the provider statuses plus the local "paused" state.
type SubscriptionStatus string

const (
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue    SubscriptionStatus = "past_due"
	SubscriptionStatusPaused     SubscriptionStatus = "paused"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
)

var (
	// CurrentSubscriptionStatuses count as "has a subscription".
	CurrentSubscriptionStatuses = []SubscriptionStatus{SubscriptionStatusActive, SubscriptionStatusTrialing}
	// ManageableSubscriptionStatuses can still be paused, resumed or cancelled.
	ManageableSubscriptionStatuses = []SubscriptionStatus{
		SubscriptionStatusActive,
		SubscriptionStatusTrialing,
		SubscriptionStatusPastDue,
		SubscriptionStatusPaused,
	}
)

// Subscription is a Master Club membership row.
type Subscription struct {
	ID                   string
	Email                string
	Name                 string
	StripeCustomerID     string
	StripeSubscriptionID string
	Status               SubscriptionStatus
	CurrentPeriodStart   *time.Time
	CurrentPeriodEnd     *time.Time
	CancelAtPeriodEnd    bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProviderSubscription is the payment provider's view of a subscription.
type ProviderSubscription struct {
	ID                 string
	CustomerID         string
	Status             SubscriptionStatus
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CancelAtPeriodEnd  bool
	ClientSecret       string
	PaymentMethodID    string
}
