package usecase

//go:generate mockgen -source=subscription_usecase.go -destination=../adapter/http/handlers/mocks/subscription_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

// Manage actions.
const (
	ActionPause               = "pause"
	ActionResume              = "resume"
	ActionCancel              = "cancel"
	ActionUpdatePaymentMethod = "update_payment_method"
	ActionGetSubscription     = "get_subscription"
)

// SubscriptionView is the membership state shown to the customer.
type SubscriptionView struct {
	HasSubscription   bool
	SubscriptionID    string
	Status            entities.SubscriptionStatus
	CurrentPeriodEnd  *time.Time
	CancelAtPeriodEnd bool
}

type CreateSubscriptionInput struct {
	Email           string
	Name            string
	PaymentMethodID string
}

type CreateSubscriptionResult struct {
	SubscriptionID string
	ClientSecret   string
	Status         entities.SubscriptionStatus
}

type ManageSubscriptionInput struct {
	Action          string
	Email           string
	SubscriptionID  string
	PaymentMethodID string
}

type ManageSubscriptionResult struct {
	Message      string
	Subscription SubscriptionView
}

type ISubscriptionUseCase interface {
	Check(ctx context.Context, email string) (SubscriptionView, error)
	Create(ctx context.Context, in CreateSubscriptionInput) (CreateSubscriptionResult, error)
	Manage(ctx context.Context, in ManageSubscriptionInput) (ManageSubscriptionResult, error)
}

type SubscriptionUseCase struct {
	repo     interfaces.ISubscriptionRepository
	gateway  interfaces.ISubscriptionGateway
	notifier interfaces.INotifier
	priceID  string
	now      func() time.Time
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, gateway interfaces.ISubscriptionGateway, notifier interfaces.INotifier, priceID string) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, gateway: gateway, notifier: notifier, priceID: priceID, now: time.Now}
}

func (u *SubscriptionUseCase) Check(ctx context.Context, email string) (SubscriptionView, error) {
	addr, err := requireEmail(email)
	if err != nil {
		return SubscriptionView{}, err
	}
	if u.repo == nil {
		return SubscriptionView{}, missingConfig("DATABASE_URL")
	}
	sub, err := u.repo.FindByEmail(ctx, addr, entities.CurrentSubscriptionStatuses)
	if err != nil {
		slog.ErrorContext(ctx, "[subscription][usecase] check failed", "error", err)
		return SubscriptionView{}, err
	}
	return viewOf(sub), nil
}

func (u *SubscriptionUseCase) Create(ctx context.Context, in CreateSubscriptionInput) (CreateSubscriptionResult, error) {
	addr, err := requireEmail(in.Email)
	if err != nil {
		return CreateSubscriptionResult{}, err
	}
	pm := strings.TrimSpace(in.PaymentMethodID)
	if pm == "" {
		return CreateSubscriptionResult{}, invalid("Payment method ID is required")
	}
	name := validation.SanitizeString(in.Name, 200)

	switch {
	case u.repo == nil:
		return CreateSubscriptionResult{}, missingConfig("DATABASE_URL")
	case u.gateway == nil:
		return CreateSubscriptionResult{}, missingConfig("STRIPE_SECRET_KEY")
	case u.priceID == "":
		return CreateSubscriptionResult{}, missingConfig("STRIPE_MASTER_CLUB_PRICE_ID")
	}

	current, err := u.repo.FindByEmail(ctx, addr, entities.ManageableSubscriptionStatuses)
	if err != nil {
		return CreateSubscriptionResult{}, err
	}
	if current.ID != "" && current.Status != entities.SubscriptionStatusPaused {
		return CreateSubscriptionResult{}, ErrSubscriptionExists
	}

	existingCustomer, err := u.repo.FindCustomerID(ctx, addr)
	if err != nil {
		slog.WarnContext(ctx, "[subscription][usecase] customer lookup failed", "error", err)
	}
	customerID, err := u.gateway.EnsureCustomer(ctx, existingCustomer, addr, name)
	if err != nil {
		return CreateSubscriptionResult{}, u.gatewayError(ctx, "ensure customer", err)
	}
	if err := u.gateway.AttachPaymentMethod(ctx, customerID, pm); err != nil {
		return CreateSubscriptionResult{}, u.gatewayError(ctx, "attach payment method", err)
	}

	ps, err := u.gateway.CreateSubscription(ctx, customerID, u.priceID, map[string]string{
		"source": createdViaWebsite,
		"email":  addr,
	})
	if err != nil {
		return CreateSubscriptionResult{}, u.gatewayError(ctx, "create subscription", err)
	}
	if ps.ClientSecret == "" && ps.Status != entities.SubscriptionStatusActive && ps.Status != entities.SubscriptionStatusTrialing {
		slog.ErrorContext(ctx, "[subscription][usecase] missing client secret", "subscription_id", ps.ID, "status", ps.Status)
		return CreateSubscriptionResult{}, upstream(ProviderStripe, errors.New("subscription created without a payment client secret"))
	}

	if _, err := u.repo.Create(ctx, entities.Subscription{
		Email:                addr,
		Name:                 name,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: ps.ID,
		Status:               ps.Status,
		CurrentPeriodStart:   ps.CurrentPeriodStart,
		CurrentPeriodEnd:     ps.CurrentPeriodEnd,
		CancelAtPeriodEnd:    ps.CancelAtPeriodEnd,
	}); err != nil {
		slog.ErrorContext(ctx, "[subscription][usecase] row insert failed", "subscription_id", ps.ID, "error", err)
	}

	slog.InfoContext(ctx, "[subscription][usecase] created", "subscription_id", ps.ID, "status", ps.Status)
	return CreateSubscriptionResult{SubscriptionID: ps.ID, ClientSecret: ps.ClientSecret, Status: ps.Status}, nil
}

func (u *SubscriptionUseCase) Manage(ctx context.Context, in ManageSubscriptionInput) (ManageSubscriptionResult, error) {
	action := strings.TrimSpace(in.Action)
	switch action {
	case ActionPause, ActionResume, ActionCancel, ActionUpdatePaymentMethod, ActionGetSubscription:
	default:
		return ManageSubscriptionResult{}, invalid("Invalid action. Must be one of: pause, cancel, resume, update_payment_method, get_subscription")
	}
	addr, err := requireEmail(in.Email)
	if err != nil {
		return ManageSubscriptionResult{}, err
	}
	if u.repo == nil {
		return ManageSubscriptionResult{}, missingConfig("DATABASE_URL")
	}

	sub, err := u.findOwned(ctx, addr, strings.TrimSpace(in.SubscriptionID))
	if err != nil {
		return ManageSubscriptionResult{}, err
	}
	if action == ActionGetSubscription {
		return ManageSubscriptionResult{Subscription: viewOf(sub)}, nil
	}
	if sub.ID == "" {
		return ManageSubscriptionResult{}, ErrSubscriptionNotFound
	}
	if u.gateway == nil {
		return ManageSubscriptionResult{}, missingConfig("STRIPE_SECRET_KEY")
	}

	slog.InfoContext(ctx, "[subscription][usecase] manage", "action", action, "subscription_id", sub.StripeSubscriptionID)

	var (
		ps      entities.ProviderSubscription
		status  entities.SubscriptionStatus
		message string
	)
	switch action {
	case ActionPause:
		ps, err = u.gateway.SetCancelAtPeriodEnd(ctx, sub.StripeSubscriptionID, true, map[string]string{"paused": "true"})
		status, message = entities.SubscriptionStatusPaused, "Subscription paused. It will not renew at the end of the current period."
	case ActionResume:
		ps, err = u.gateway.SetCancelAtPeriodEnd(ctx, sub.StripeSubscriptionID, false, map[string]string{"paused": "false"})
		status, message = entities.SubscriptionStatusActive, "Subscription resumed."
	case ActionCancel:
		ps, err = u.gateway.CancelSubscription(ctx, sub.StripeSubscriptionID)
		status, message = entities.SubscriptionStatusCanceled, "Subscription cancelled."
	case ActionUpdatePaymentMethod:
		pm := strings.TrimSpace(in.PaymentMethodID)
		if pm == "" {
			return ManageSubscriptionResult{}, invalid("Payment method ID is required")
		}
		if err = u.gateway.AttachPaymentMethod(ctx, sub.StripeCustomerID, pm); err == nil {
			ps, err = u.gateway.UpdateDefaultPaymentMethod(ctx, sub.StripeSubscriptionID, pm)
		}
		status, message = sub.Status, "Payment method updated."
	}
	if err != nil {
		return ManageSubscriptionResult{}, u.gatewayError(ctx, action, err)
	}

	periodEnd := ps.CurrentPeriodEnd
	if periodEnd == nil {
		periodEnd = sub.CurrentPeriodEnd
	}
	if err := u.repo.UpdateStatus(ctx, sub.StripeSubscriptionID, status, ps.CancelAtPeriodEnd, periodEnd); err != nil {
		slog.ErrorContext(ctx, "[subscription][usecase] status update failed", "subscription_id", sub.StripeSubscriptionID, "error", err)
		return ManageSubscriptionResult{}, err
	}

	if action == ActionCancel && u.notifier != nil {
		data := emails.Data{"name": sub.Name}
		if periodEnd != nil {
			data["periodEnd"] = periodEnd.Format("2 January 2006")
		}
		if err := u.notifier.Notify(ctx, emails.SubscriptionCancelled, sub.Email, data); err != nil {
			slog.WarnContext(ctx, "[subscription][usecase] cancellation email failed", "error", err)
		}
	}

	sub.Status = status
	sub.CancelAtPeriodEnd = ps.CancelAtPeriodEnd
	sub.CurrentPeriodEnd = periodEnd
	return ManageSubscriptionResult{Message: message, Subscription: viewOf(sub)}, nil
}

func (u *SubscriptionUseCase) findOwned(ctx context.Context, email, subscriptionID string) (entities.Subscription, error) {
	var (
		sub entities.Subscription
		err error
	)
	if subscriptionID != "" {
		sub, err = u.repo.FindBySubscriptionID(ctx, email, subscriptionID)
	} else {
		sub, err = u.repo.FindByEmail(ctx, email, entities.ManageableSubscriptionStatuses)
	}
	if err != nil {
		slog.ErrorContext(ctx, "[subscription][usecase] lookup failed", "error", err)
	}
	return sub, err
}

func (u *SubscriptionUseCase) gatewayError(ctx context.Context, step string, err error) error {
	slog.ErrorContext(ctx, "[subscription][usecase] gateway error", "step", step, "error", err)
	if errors.Is(err, interfaces.ErrPaymentRejected) {
		return invalid("Your payment method was declined. Please try another card.")
	}
	return upstream(ProviderStripe, err)
}

func requireEmail(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid("Email is required")
	}
	res := validation.Email(raw)
	if !res.Valid {
		return "", invalid(res.Error)
	}
	return res.Sanitized, nil
}

func viewOf(s entities.Subscription) SubscriptionView {
	if s.ID == "" {
		return SubscriptionView{}
	}
	return SubscriptionView{
		HasSubscription:   true,
		SubscriptionID:    s.StripeSubscriptionID,
		Status:            s.Status,
		CurrentPeriodEnd:  s.CurrentPeriodEnd,
		CancelAtPeriodEnd: s.CancelAtPeriodEnd,
	}
}
