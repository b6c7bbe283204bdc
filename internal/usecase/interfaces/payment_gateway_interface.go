package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"master_booking/internal/domain/entities"
)

// ErrPaymentRejected is wrapped by gateways when the provider refuses the
// request itself (declined card, invalid payment method), as opposed to being unreachable.
var ErrPaymentRejected = errors.New("payment rejected by provider")

// IPaymentGateway abstracts the card payment provider (Stripe).
//
// The booking flow uses it to create a payment intent whose client secret
// the browser confirms; the final status arrives through the webhook.
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
}

// ISubscriptionGateway manages Master Club memberships at the provider.
type ISubscriptionGateway interface {
	// EnsureCustomer reuses existingID when the provider still has it, otherwise creates a customer.
	EnsureCustomer(ctx context.Context, existingID, email, name string) (customerID string, err error)
	// AttachPaymentMethod attaches the method and makes it the customer's default.
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string, metadata map[string]string) (entities.ProviderSubscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error)
	// SetCancelAtPeriodEnd backs pause (true) and resume (false); metadata is merged.
	SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool, metadata map[string]string) (entities.ProviderSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error)
	UpdateDefaultPaymentMethod(ctx context.Context, subscriptionID, paymentMethodID string) (entities.ProviderSubscription, error)
}

// IWebhookVerifier checks the provider signature and decodes the event.
// Events the booking flow does not handle come back with only ID and Type set.
type IWebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (entities.PaymentEvent, error)
}
