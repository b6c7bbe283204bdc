package entities

import "time"

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusRecovered CheckoutStatus = "recovered"
)

// RecoveryStage selects which reminder an abandoned checkout is due.
type RecoveryStage string

const (
	RecoveryStage1h  RecoveryStage = "1h"
	RecoveryStage24h RecoveryStage = "24h"
)

// AbandonedCheckout is a checkout the customer left before paying.
type AbandonedCheckout struct {
	ID              string
	Email           string
	Name            string
	Phone           string
	PaymentIntentID string
	AmountPence     int64
	ServiceName     string
	BookingData     map[string]any
	Status          CheckoutStatus
	Email1hSent     bool
	Email24hSent    bool
	AbandonedAt     time.Time
	RecoveredAt     *time.Time
}
