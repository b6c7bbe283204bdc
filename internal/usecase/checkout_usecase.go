package usecase

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"master_booking/internal/domain/emails"
	"master_booking/internal/domain/entities"
	"master_booking/internal/domain/validation"
	"master_booking/internal/usecase/interfaces"
)

const (
	actionAbandon        = "abandon"
	defaultRecoveryBatch = 50
)

// TrackCheckoutInput reports a checkout the customer left. Amount is in pounds.
type TrackCheckoutInput struct {
	Action          string
	Email           string
	Name            string
	Phone           string
	PaymentIntentID string
	Amount          any
	ServiceName     string
	BookingData     map[string]any
}

type TrackCheckoutResult struct {
	ID             string
	AlreadyTracked bool
}

// RecoveryResult counts the reminders sent by one recovery run.
type RecoveryResult struct {
	Sent1h  int `json:"sent_1h"`
	Sent24h int `json:"sent_24h"`
	Failed  int `json:"failed"`
}

type ICheckoutUseCase interface {
	TrackAbandon(ctx context.Context, in TrackCheckoutInput) (TrackCheckoutResult, error)
	SendRecoveryEmails(ctx context.Context) (RecoveryResult, error)
}

type CheckoutUseCase struct {
	repo     interfaces.ICheckoutRepository
	notifier interfaces.INotifier
	siteURL  string
	batch    int
	now      func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.ICheckoutRepository, notifier interfaces.INotifier, siteURL string, batch int) *CheckoutUseCase {
	if batch <= 0 {
		batch = defaultRecoveryBatch
	}
	return &CheckoutUseCase{
		repo:     repo,
		notifier: notifier,
		siteURL:  strings.TrimRight(siteURL, "/"),
		batch:    batch,
		now:      time.Now,
	}
}

func (u *CheckoutUseCase) TrackAbandon(ctx context.Context, in TrackCheckoutInput) (TrackCheckoutResult, error) {
	if strings.TrimSpace(in.Action) != actionAbandon {
		return TrackCheckoutResult{}, invalid("Invalid action")
	}
	if strings.TrimSpace(in.Email) == "" {
		return TrackCheckoutResult{}, invalid("Email is required")
	}
	email := validation.Email(in.Email)
	if !email.Valid {
		return TrackCheckoutResult{}, invalid(email.Error)
	}

	var amount int64
	if !isZeroAmount(in.Amount) {
		res := validation.Amount(in.Amount, MaxPayLaterPounds)
		if !res.Valid {
			return TrackCheckoutResult{}, invalid(res.Error)
		}
		amount = poundsToPence(res.Value)
	}
	if u.repo == nil {
		return TrackCheckoutResult{}, missingConfig("DATABASE_URL")
	}

	piID := validation.SanitizeString(in.PaymentIntentID, 255)
	existing, err := u.repo.FindPending(ctx, email.Sanitized, piID)
	if err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] dedupe lookup failed", "error", err)
		return TrackCheckoutResult{}, err
	}
	if existing.ID != "" {
		slog.InfoContext(ctx, "[checkout][usecase] already tracked", "id", existing.ID)
		return TrackCheckoutResult{ID: existing.ID, AlreadyTracked: true}, nil
	}

	phone := ""
	if ph := validation.Phone(in.Phone); ph.Valid {
		phone = ph.Sanitized
	}
	created, err := u.repo.Create(ctx, entities.AbandonedCheckout{
		Email:           email.Sanitized,
		Name:            validation.SanitizeString(in.Name, 200),
		Phone:           phone,
		PaymentIntentID: piID,
		AmountPence:     amount,
		ServiceName:     validation.SanitizeString(in.ServiceName, 200),
		BookingData:     in.BookingData,
		Status:          entities.CheckoutStatusPending,
		AbandonedAt:     u.now().UTC(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] insert failed", "error", err)
		return TrackCheckoutResult{}, err
	}
	slog.InfoContext(ctx, "[checkout][usecase] abandoned checkout tracked", "id", created.ID, "amount_pence", amount)
	return TrackCheckoutResult{ID: created.ID}, nil
}

// SendRecoveryEmails runs the 1h pass and then the 24h pass. A failing pass is
// logged and does not stop the other one.
func (u *CheckoutUseCase) SendRecoveryEmails(ctx context.Context) (RecoveryResult, error) {
	if u.repo == nil {
		return RecoveryResult{}, missingConfig("DATABASE_URL")
	}
	if u.notifier == nil {
		return RecoveryResult{}, missingConfig("RESEND_API_KEY")
	}

	var res RecoveryResult
	now := u.now()
	res.Sent1h = u.recoveryPass(ctx, entities.RecoveryStage1h, emails.CartAbandoned1h, now, &res.Failed)
	res.Sent24h = u.recoveryPass(ctx, entities.RecoveryStage24h, emails.CartAbandoned24h, now, &res.Failed)

	slog.InfoContext(ctx, "[checkout][usecase] recovery run done",
		"sent_1h", res.Sent1h,
		"sent_24h", res.Sent24h,
		"failed", res.Failed,
	)
	return res, nil
}

func (u *CheckoutUseCase) recoveryPass(ctx context.Context, stage entities.RecoveryStage, tpl emails.TemplateID, now time.Time, failed *int) int {
	due, err := u.repo.ListDueForRecovery(ctx, stage, now, u.batch)
	if err != nil {
		slog.ErrorContext(ctx, "[checkout][usecase] list due failed", "stage", stage, "error", err)
		return 0
	}

	sent := 0
	for _, c := range due {
		if ctx.Err() != nil {
			break
		}
		data := emails.Data{
			"name":        c.Name,
			"serviceName": c.ServiceName,
			"resumeUrl":   u.resumeURL(c),
		}
		if err := u.notifier.Notify(ctx, tpl, c.Email, data); err != nil {
			*failed++
			slog.WarnContext(ctx, "[checkout][usecase] recovery email failed", "id", c.ID, "stage", stage, "error", err)
			continue
		}
		if err := u.repo.MarkRecoverySent(ctx, c.ID, stage); err != nil {
			slog.ErrorContext(ctx, "[checkout][usecase] mark sent failed", "id", c.ID, "stage", stage, "error", err)
		}
		sent++
	}
	return sent
}

func (u *CheckoutUseCase) resumeURL(c entities.AbandonedCheckout) string {
	if u.siteURL == "" {
		return ""
	}
	q := url.Values{}
	q.Set("checkout", c.ID)
	return u.siteURL + "/booking?" + q.Encode()
}
