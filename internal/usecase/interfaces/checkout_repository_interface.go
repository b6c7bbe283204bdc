package interfaces

//go:generate mockgen -source=checkout_repository_interface.go -destination=mocks/checkout_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"master_booking/internal/domain/entities"
)

// ICheckoutRepository tracks abandoned checkouts for the recovery emails.
type ICheckoutRepository interface {
	// FindPending returns the pending checkout for email and intent, or a zero value.
	FindPending(ctx context.Context, email, paymentIntentID string) (entities.AbandonedCheckout, error)
	Create(ctx context.Context, c entities.AbandonedCheckout) (entities.AbandonedCheckout, error)
	// ListDueForRecovery returns pending checkouts whose reminder for stage has not been sent.
	ListDueForRecovery(ctx context.Context, stage entities.RecoveryStage, now time.Time, limit int) ([]entities.AbandonedCheckout, error)
	MarkRecoverySent(ctx context.Context, id string, stage entities.RecoveryStage) error
	MarkRecovered(ctx context.Context, paymentIntentID string, at time.Time) error
}
