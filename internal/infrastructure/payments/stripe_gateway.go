package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"master_booking/internal/domain/entities"
	"master_booking/internal/usecase/interfaces"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway talks to Stripe for payment intents and Master Club subscriptions.
// In mock mode no request leaves the process.
type StripeGateway struct {
	sc       *client.API
	mockMode bool
	now      func() time.Time
}

var (
	_ interfaces.IPaymentGateway      = (*StripeGateway)(nil)
	_ interfaces.ISubscriptionGateway = (*StripeGateway)(nil)
)

func NewStripeGateway(secretKey string, mockMode bool) (*StripeGateway, error) {
	if mockMode {
		slog.Warn("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true, now: time.Now}, nil
	}
	if secretKey == "" {
		slog.Warn("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	slog.Info("[payment][gateway] Stripe client initialized")
	return newStripeGatewayWithBackends(secretKey, nil), nil
}

func newStripeGatewayWithBackends(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{sc: client.New(secretKey, backends), now: time.Now}
}

func (g *StripeGateway) ready() error {
	if g == nil || (!g.mockMode && g.sc == nil) {
		slog.Error("[payment][gateway] gateway not configured")
		return ErrStripeGatewayNotConfigured
	}
	return nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	if err := g.ready(); err != nil {
		return entities.PaymentIntent{}, err
	}
	if g.mockMode {
		return g.mockPaymentIntent(req), nil
	}
	slog.InfoContext(ctx, "[payment][gateway] create intent start", "amount", req.AmountPence, "currency", req.Currency)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountPence),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyID != "" {
		params.SetIdempotencyKey("pi-" + req.IdempotencyID)
	}
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] create intent failed", "error", describe(err))
		return entities.PaymentIntent{}, classify(err)
	}
	slog.InfoContext(ctx, "[payment][gateway] create intent success", "payment_intent_id", pi.ID, "status", pi.Status)

	return entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountPence:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     pi.Metadata,
	}, nil
}

func (g *StripeGateway) EnsureCustomer(ctx context.Context, existingID, email, name string) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	if g.mockMode {
		if existingID != "" {
			return existingID, nil
		}
		return g.mockID("cus"), nil
	}

	if existingID != "" {
		params := &stripe.CustomerParams{}
		params.Context = ctx
		c, err := g.sc.Customers.Get(existingID, params)
		if err == nil && !c.Deleted {
			return c.ID, nil
		}
		slog.WarnContext(ctx, "[payment][gateway] stored customer unusable, creating a new one", "customer_id", existingID, "error", describe(err))
	}

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	if name != "" {
		params.Name = stripe.String(name)
	}
	params.AddMetadata("source", "master_club")
	params.Context = ctx

	c, err := g.sc.Customers.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] create customer failed", "error", describe(err))
		return "", classify(err)
	}
	slog.InfoContext(ctx, "[payment][gateway] customer created", "customer_id", c.ID)
	return c.ID, nil
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	if err := g.ready(); err != nil {
		return err
	}
	if g.mockMode {
		return nil
	}

	attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	attach.Context = ctx
	if _, err := g.sc.PaymentMethods.Attach(paymentMethodID, attach); err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] attach payment method failed", "customer_id", customerID, "error", describe(err))
		return classify(err)
	}

	update := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	update.Context = ctx
	if _, err := g.sc.Customers.Update(customerID, update); err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] set default payment method failed", "customer_id", customerID, "error", describe(err))
		return classify(err)
	}
	return nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID, priceID string, metadata map[string]string) (entities.ProviderSubscription, error) {
	if err := g.ready(); err != nil {
		return entities.ProviderSubscription{}, err
	}
	if g.mockMode {
		return g.mockSubscription(g.mockID("sub"), customerID, false), nil
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.AddExpand("latest_invoice.payment_intent")
	params.Context = ctx

	s, err := g.sc.Subscriptions.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] create subscription failed", "customer_id", customerID, "error", describe(err))
		return entities.ProviderSubscription{}, classify(err)
	}
	slog.InfoContext(ctx, "[payment][gateway] subscription created", "subscription_id", s.ID, "status", s.Status)
	return toProviderSubscription(s), nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error) {
	if err := g.ready(); err != nil {
		return entities.ProviderSubscription{}, err
	}
	if g.mockMode {
		return g.mockSubscription(subscriptionID, "", false), nil
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	s, err := g.sc.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] get subscription failed", "subscription_id", subscriptionID, "error", describe(err))
		return entities.ProviderSubscription{}, classify(err)
	}
	return toProviderSubscription(s), nil
}

func (g *StripeGateway) SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool, metadata map[string]string) (entities.ProviderSubscription, error) {
	if err := g.ready(); err != nil {
		return entities.ProviderSubscription{}, err
	}
	if g.mockMode {
		return g.mockSubscription(subscriptionID, "", cancel), nil
	}

	params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(cancel)}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	return g.update(ctx, subscriptionID, params)
}

func (g *StripeGateway) UpdateDefaultPaymentMethod(ctx context.Context, subscriptionID, paymentMethodID string) (entities.ProviderSubscription, error) {
	if err := g.ready(); err != nil {
		return entities.ProviderSubscription{}, err
	}
	if g.mockMode {
		ps := g.mockSubscription(subscriptionID, "", false)
		ps.PaymentMethodID = paymentMethodID
		return ps, nil
	}

	params := &stripe.SubscriptionParams{DefaultPaymentMethod: stripe.String(paymentMethodID)}
	params.Context = ctx
	return g.update(ctx, subscriptionID, params)
}

func (g *StripeGateway) update(ctx context.Context, subscriptionID string, params *stripe.SubscriptionParams) (entities.ProviderSubscription, error) {
	s, err := g.sc.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] update subscription failed", "subscription_id", subscriptionID, "error", describe(err))
		return entities.ProviderSubscription{}, classify(err)
	}
	slog.InfoContext(ctx, "[payment][gateway] subscription updated", "subscription_id", s.ID, "cancel_at_period_end", s.CancelAtPeriodEnd)
	return toProviderSubscription(s), nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string) (entities.ProviderSubscription, error) {
	if err := g.ready(); err != nil {
		return entities.ProviderSubscription{}, err
	}
	if g.mockMode {
		ps := g.mockSubscription(subscriptionID, "", false)
		ps.Status = entities.SubscriptionStatusCanceled
		return ps, nil
	}

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	s, err := g.sc.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][gateway] cancel subscription failed", "subscription_id", subscriptionID, "error", describe(err))
		return entities.ProviderSubscription{}, classify(err)
	}
	slog.InfoContext(ctx, "[payment][gateway] subscription canceled", "subscription_id", s.ID)
	return toProviderSubscription(s), nil
}

func toProviderSubscription(s *stripe.Subscription) entities.ProviderSubscription {
	ps := entities.ProviderSubscription{
		ID:                 s.ID,
		Status:             entities.SubscriptionStatus(s.Status),
		CurrentPeriodStart: unixTime(s.CurrentPeriodStart),
		CurrentPeriodEnd:   unixTime(s.CurrentPeriodEnd),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
	}
	if s.Customer != nil {
		ps.CustomerID = s.Customer.ID
	}
	if s.DefaultPaymentMethod != nil {
		ps.PaymentMethodID = s.DefaultPaymentMethod.ID
	}
	if s.LatestInvoice != nil && s.LatestInvoice.PaymentIntent != nil {
		ps.ClientSecret = s.LatestInvoice.PaymentIntent.ClientSecret
	}
	return ps
}

func unixTime(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

// classify marks errors where Stripe refused the request itself.
// Everything else is treated as the provider being unavailable.
func classify(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		switch se.Type {
		case stripe.ErrorTypeCard, stripe.ErrorTypeInvalidRequest:
			return fmt.Errorf("%w: %s", interfaces.ErrPaymentRejected, se.Msg)
		}
	}
	return err
}

// describe keeps Stripe's error code and request id for logs.
func describe(err error) string {
	if err == nil {
		return ""
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return fmt.Sprintf("type=%s code=%s status=%d request_id=%s", se.Type, se.Code, se.HTTPStatusCode, se.RequestID)
	}
	return err.Error()
}

func (g *StripeGateway) mockID(prefix string) string {
	return prefix + "_mock_" + strconv.FormatInt(g.now().UTC().UnixNano(), 10)
}

func (g *StripeGateway) mockPaymentIntent(req entities.PaymentIntentRequest) entities.PaymentIntent {
	id := g.mockID("pi")
	slog.Info("[payment][gateway] mock create intent success", "payment_intent_id", id, "amount", req.AmountPence)
	return entities.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_mock",
		AmountPence:  req.AmountPence,
		Currency:     req.Currency,
		Status:       string(stripe.PaymentIntentStatusRequiresPaymentMethod),
		ReceiptEmail: req.ReceiptEmail,
		Metadata:     req.Metadata,
	}
}

func (g *StripeGateway) mockSubscription(id, customerID string, cancelAtPeriodEnd bool) entities.ProviderSubscription {
	start := g.now().UTC()
	end := start.AddDate(0, 1, 0)
	return entities.ProviderSubscription{
		ID:                 id,
		CustomerID:         customerID,
		Status:             entities.SubscriptionStatusActive,
		CurrentPeriodStart: &start,
		CurrentPeriodEnd:   &end,
		CancelAtPeriodEnd:  cancelAtPeriodEnd,
	}
}
